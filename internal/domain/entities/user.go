package entities

import (
	"strings"

	"github.com/rafabene/users-api/internal/domain/errors"
	"github.com/rafabene/users-api/internal/domain/valueobjects"
)

// User representa um usuário do sistema.
// O ID é atribuído pelo banco na criação e nunca é reutilizado.
type User struct {
	ID     int64
	Name   string
	Email  valueobjects.Email
	Active bool
}

// NewUser cria um usuário ainda não persistido (sem ID)
func NewUser(name, email string, active bool) (*User, error) {
	u := &User{Active: active}
	if err := u.Replace(name, email, active); err != nil {
		return nil, err
	}
	return u, nil
}

// Replace substitui todos os campos mutáveis, validando-os antes
func (u *User) Replace(name, email string, active bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.NewValidationError("name", errors.MsgNameRequired)
	}

	parsed, err := valueobjects.NewEmail(email)
	if err != nil {
		return errors.NewValidationError("email", errors.MsgInvalidEmail)
	}

	u.Name = name
	u.Email = parsed
	u.Active = active
	return nil
}

// IsDeleted verifica se o usuário foi desativado (soft delete)
func (u *User) IsDeleted() bool {
	return !u.Active
}
