package postgres

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rafabene/users-api/internal/domain/entities"
	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
	"github.com/rafabene/users-api/internal/domain/repositories"
	"github.com/rafabene/users-api/internal/domain/valueobjects"
)

const userColumns = "id, name, email, active"

// likeEscaper escapa os metacaracteres de LIKE presentes na entrada do usuário
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	exec *Executor
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(exec *Executor) repositories.UserRepository {
	return &UserRepository{exec: exec}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	var model UserModel

	found, err := r.exec.QueryOne(ctx, &model,
		"INSERT INTO users (name, email, active) VALUES (?, ?, ?) RETURNING "+userColumns,
		user.Name, user.Email.String(), user.Active,
	)
	if err != nil {
		return err
	}
	if !found {
		return &domainerrors.StorageError{Op: "create user", Message: "insert returned no row"}
	}

	created, err := r.toEntity(&model)
	if err != nil {
		return err
	}
	*user = *created
	return nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entities.User, error) {
	var model UserModel

	found, err := r.exec.QueryOne(ctx, &model,
		"SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil || !found {
		return nil, err
	}

	return r.toEntity(&model)
}

// Update substitui name, email e active; retorna (nil, nil) se nenhuma linha foi alterada
func (r *UserRepository) Update(ctx context.Context, user *entities.User) (*entities.User, error) {
	var model UserModel

	found, err := r.exec.QueryOne(ctx, &model,
		"UPDATE users SET name = ?, email = ?, active = ? WHERE id = ? RETURNING "+userColumns,
		user.Name, user.Email.String(), user.Active, user.ID,
	)
	if err != nil || !found {
		return nil, err
	}

	return r.toEntity(&model)
}

// Deactivate marca o usuário como inativo (soft delete).
// Apenas linhas ainda ativas são afetadas; retorna o número de linhas alteradas.
func (r *UserRepository) Deactivate(ctx context.Context, id int64) (int64, error) {
	res, err := r.exec.Execute(ctx,
		"UPDATE users SET active = ? WHERE id = ? AND active = ?", false, id, true)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected, nil
}

func (r *UserRepository) List(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var models []*UserModel

	if err := r.exec.QueryMany(ctx, &models, listQuery(filters)); err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// listQuery aplica os filtros de listagem. A coluna de ORDER BY vem
// exclusivamente de SortColumn.Column().
func listQuery(filters repositories.UserFilters) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Model(&UserModel{})

		if active, ok := filters.Active.Value(); ok {
			db = db.Where("active = ?", active)
		}

		if filters.Name != "" {
			db = db.Where(`LOWER(name) LIKE LOWER(?) ESCAPE '\'`, "%"+likeEscaper.Replace(filters.Name)+"%")
		}

		return db.Order(clause.OrderByColumn{Column: clause.Column{Name: filters.Sort.Column()}})
	}
}

// Conversores
func (r *UserRepository) toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, &domainerrors.StorageError{
			Op:      "decode user",
			Message: "stored email is not valid",
			Err:     err,
		}
	}

	return &entities.User{
		ID:     model.ID,
		Name:   model.Name,
		Email:  email,
		Active: model.Active,
	}, nil
}

func (r *UserRepository) toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, entity)
	}

	return users, nil
}
