package services_test

import (
	"context"
	"sort"
	"strings"

	"github.com/rafabene/users-api/internal/domain/entities"
	"github.com/rafabene/users-api/internal/domain/ports"
	"github.com/rafabene/users-api/internal/domain/repositories"
)

// fakeUserRepository guarda usuários em memória; os campos *Err forçam falhas
type fakeUserRepository struct {
	users  map[int64]entities.User
	nextID int64

	createErr     error
	findErr       error
	updateMissing bool
	deactivateHit func(id int64)
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[int64]entities.User{}, nextID: 1}
}

func (r *fakeUserRepository) Create(_ context.Context, user *entities.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = *user
	return nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id int64) (*entities.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepository) Update(_ context.Context, user *entities.User) (*entities.User, error) {
	if _, ok := r.users[user.ID]; !ok || r.updateMissing {
		return nil, nil
	}
	r.users[user.ID] = *user
	u := *user
	return &u, nil
}

func (r *fakeUserRepository) Deactivate(_ context.Context, id int64) (int64, error) {
	if r.deactivateHit != nil {
		r.deactivateHit(id)
	}
	u, ok := r.users[id]
	if !ok || !u.Active {
		return 0, nil
	}
	u.Active = false
	r.users[id] = u
	return 1, nil
}

func (r *fakeUserRepository) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	result := []*entities.User{}
	for _, u := range r.users {
		if active, ok := filters.Active.Value(); ok && u.Active != active {
			continue
		}
		if filters.Name != "" && !strings.Contains(strings.ToLower(u.Name), strings.ToLower(filters.Name)) {
			continue
		}
		u := u
		result = append(result, &u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// fakeUnitOfWork conta transações e registra se houve rollback
type fakeUnitOfWork struct {
	commits   int
	rollbacks int
}

func (u *fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	if err := fn(ctx); err != nil {
		u.rollbacks++
		return err
	}
	u.commits++
	return nil
}

// discardLogger descarta tudo
type discardLogger struct{}

func (discardLogger) Info(string, ...any)        {}
func (discardLogger) Error(string, ...any)       {}
func (discardLogger) Debug(string, ...any)       {}
func (discardLogger) Warn(string, ...any)        {}
func (l discardLogger) With(...any) ports.Logger { return l }

// recordingLogger guarda mensagem e pares chave/valor dos avisos
type recordingLogger struct {
	discardLogger
	warnings [][]any
}

func (l *recordingLogger) Warn(msg string, args ...any) {
	l.warnings = append(l.warnings, append([]any{msg}, args...))
}
