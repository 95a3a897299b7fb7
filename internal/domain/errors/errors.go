package errors

import (
	"errors"
	"fmt"
)

// Business errors
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrUserNotFound = errors.New("error.user_not_found")
)

// Mensagens de validação (message IDs para i18n)
const (
	MsgNameRequired   = "error.validation.name_required"
	MsgInvalidEmail   = "error.validation.invalid_email"
	MsgActiveRequired = "error.validation.active_required"
	MsgInvalidActive  = "error.validation.invalid_active"
	MsgInvalidID      = "error.validation.invalid_id"
	MsgInvalidBody    = "error.validation.invalid_body"
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
//
//nolint:misspell
const (
	ProblemTypeValidation  = "/problems/validation-error"
	ProblemTypeNotFound    = "/problems/not-found"
	ProblemTypeStorage     = "/problems/storage-error"
	ProblemTypeConsistency = "/problems/consistency-error"
	ProblemTypeInternal    = "/problems/internal-error"
	ProblemTypeUnavailable = "/problems/service-unavailable"
)

// ValidationError indica entrada malformada; a operação não chega ao banco
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

// StorageError indica que o banco rejeitou a operação ou que a conexão falhou.
// Client é verdadeiro quando a causa é o dado enviado (constraint, tipo inválido).
// A transação que a originou já sofreu rollback.
type StorageError struct {
	Op      string
	Message string
	Client  bool
	Err     error
}

func (e *StorageError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ConsistencyError indica que a checagem de existência passou mas a mutação
// seguinte não afetou nenhuma linha (corrida ou schema divergente)
type ConsistencyError struct {
	Op string
	ID int64
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: user %d passed existence check but no row was affected", e.Op, e.ID)
}

// IsValidation, IsStorage e IsConsistency são atalhos sobre errors.As

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsStorage(err error) bool {
	var target *StorageError
	return errors.As(err, &target)
}

func IsConsistency(err error) bool {
	var target *ConsistencyError
	return errors.As(err, &target)
}
