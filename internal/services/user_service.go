package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/rafabene/users-api/internal/domain/entities"
	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
	"github.com/rafabene/users-api/internal/domain/ports"
	"github.com/rafabene/users-api/internal/domain/repositories"
)

// UserService contém a lógica de negócio para usuários.
//
// Update e Deactivate fazem checagem de existência seguida da mutação dentro da
// mesma transação, sem lock explícito: duas requisições concorrentes para o mesmo
// id podem passar pela checagem antes de qualquer uma alterar a linha. Isso fica a
// cargo do isolamento padrão do banco.
type UserService struct {
	userRepo repositories.UserRepository
	uow      ports.UnitOfWork
	logger   ports.Logger
	validate *validator.Validate
}

// NewUserService cria um novo UserService
func NewUserService(
	userRepo repositories.UserRepository,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		uow:      uow,
		logger:   logger,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Active bool
}

// UpdateUserInput representa a substituição completa dos campos mutáveis
type UpdateUserInput struct {
	Name   string `validate:"required"`
	Email  string `validate:"required,email"`
	Active bool
}

// CreateUser cria um novo usuário e retorna o registro com o ID atribuído pelo banco
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	user, err := entities.NewUser(input.Name, input.Email, input.Active)
	if err != nil {
		return nil, err
	}

	err = s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		s.logger.Warn("failed to create user", "op", "create user", "error", err)
		return nil, asStorageError("create user", err)
	}

	s.logger.Info("user created", "user_id", user.ID)
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.userRepo.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, asStorageError("get user", err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com filtros; lista vazia não é erro
func (s *UserService) ListUsers(ctx context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	var users []*entities.User

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		users, err = s.userRepo.List(ctx, filters)
		return err
	})
	if err != nil {
		return nil, asStorageError("list users", err)
	}
	return users, nil
}

// UpdateUser substitui name, email e active de um usuário existente
func (s *UserService) UpdateUser(ctx context.Context, id int64, input UpdateUserInput) (*entities.User, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	var updated *entities.User

	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return domainerrors.ErrUserNotFound
		}

		if err := user.Replace(input.Name, input.Email, input.Active); err != nil {
			return err
		}

		updated, err = s.userRepo.Update(ctx, user)
		if err != nil {
			return err
		}
		if updated == nil {
			return &domainerrors.ConsistencyError{Op: "update user", ID: id}
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("user updated", "user_id", id)
		return updated, nil
	case errors.Is(err, domainerrors.ErrUserNotFound), domainerrors.IsValidation(err):
		return nil, err
	case domainerrors.IsConsistency(err):
		s.logger.Error("update affected no rows after existence check", "user_id", id, "error", err)
		return nil, err
	default:
		return nil, asStorageError("update user", err)
	}
}

// DeactivateUser faz o soft delete de um usuário ativo.
// Usuário inexistente ou já inativo resulta em ErrUserNotFound.
func (s *UserService) DeactivateUser(ctx context.Context, id int64) error {
	err := s.uow.WithTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil || user.IsDeleted() {
			return domainerrors.ErrUserNotFound
		}

		affected, err := s.userRepo.Deactivate(ctx, id)
		if err != nil {
			return err
		}
		if affected == 0 {
			// Outra requisição desativou o usuário entre a checagem e o UPDATE
			s.logger.Warn("user deactivated concurrently", "user_id", id)
			return domainerrors.ErrUserNotFound
		}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info("user deactivated", "user_id", id)
		return nil
	case errors.Is(err, domainerrors.ErrUserNotFound):
		return err
	default:
		return asStorageError("deactivate user", err)
	}
}

// validateInput aplica as tags de validação e devolve o primeiro campo inválido
func (s *UserService) validateInput(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	switch verrs[0].Field() {
	case "Email":
		return domainerrors.NewValidationError("email", domainerrors.MsgInvalidEmail)
	default:
		return domainerrors.NewValidationError("name", domainerrors.MsgNameRequired)
	}
}

// asStorageError garante que nenhum erro cru do banco saia do serviço
func asStorageError(op string, err error) error {
	if domainerrors.IsStorage(err) {
		return err
	}
	return &domainerrors.StorageError{Op: op, Message: err.Error(), Err: err}
}
