package dto

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/moogar0880/problems"

	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
)

// ErrorResponse segue RFC 7807 (Problem Details for HTTP APIs)
type ErrorResponse struct {
	*problems.Problem
	Errors []ValidationError `json:"errors,omitempty"`
}

// ValidationError representa um erro de validação de campo
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NewErrorResponseI18n cria uma resposta de erro RFC 7807 usando i18n
func NewErrorResponseI18n(c *gin.Context, problemType, titleKey, detailKey string, status int, params ...map[string]interface{}) ErrorResponse {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8000"
	}

	problem := problems.NewDetailedProblem(status, T(c, detailKey, params...)).
		WithType(baseURL + problemType).
		WithTitle(T(c, titleKey, params...)).
		WithInstance(c.Request.URL.Path)

	return ErrorResponse{Problem: problem}
}

// WriteProblem escreve a resposta com o media type application/problem+json
func WriteProblem(c *gin.Context, response ErrorResponse) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(response.Status, response)
}

// Helper functions para respostas de erro comuns com i18n

// ValidationErrorResponseI18n cria uma resposta de erro de validação (400)
func ValidationErrorResponseI18n(c *gin.Context, validationErrors []ValidationError) ErrorResponse {
	response := NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeValidation,
		"error.validation.title",
		"error.validation.detail",
		400,
	)
	response.Errors = validationErrors
	return response
}

// NotFoundErrorResponseI18n cria uma resposta de erro 404.
// A mensagem do erro de domínio (ex.: error.user_not_found) é a chave do detail.
func NotFoundErrorResponseI18n(c *gin.Context, err error) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeNotFound,
		"error.not_found.title",
		err.Error(),
		404,
	)
}

// StorageErrorResponseI18n cria uma resposta para falhas do banco (400 ou 500)
func StorageErrorResponseI18n(c *gin.Context, status int, message string) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeStorage,
		"error.storage.title",
		"error.storage.detail",
		status,
		map[string]interface{}{"Message": message},
	)
}

// ConsistencyErrorResponseI18n cria uma resposta de erro 500 de consistência
func ConsistencyErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeConsistency,
		"error.consistency.title",
		"error.consistency.detail",
		500,
	)
}

// InternalErrorResponseI18n cria uma resposta de erro 500
func InternalErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeInternal,
		"error.internal.title",
		"error.internal.detail",
		500,
	)
}

// UnavailableErrorResponseI18n cria uma resposta de erro 503
func UnavailableErrorResponseI18n(c *gin.Context) ErrorResponse {
	return NewErrorResponseI18n(
		c,
		domainerrors.ProblemTypeUnavailable,
		"error.unavailable.title",
		"error.unavailable.detail",
		503,
	)
}

// FieldError traduz um erro de validação de domínio
func FieldError(c *gin.Context, err *domainerrors.ValidationError) ValidationError {
	return ValidationError{
		Field:   err.Field,
		Message: T(c, err.Message),
	}
}

// BindingErrors converte erros do binding do gin em erros de campo traduzidos
func BindingErrors(c *gin.Context, err error) []ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ValidationError{{Field: "body", Message: T(c, domainerrors.MsgInvalidBody)}}
	}

	result := make([]ValidationError, 0, len(verrs))
	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		result = append(result, ValidationError{
			Field:   field,
			Message: T(c, bindingMessageKey(field, fe.Tag())),
			Tag:     fe.Tag(),
		})
	}
	return result
}

func bindingMessageKey(field, tag string) string {
	switch {
	case field == "email":
		return domainerrors.MsgInvalidEmail
	case field == "active":
		return domainerrors.MsgActiveRequired
	case tag == "required":
		return domainerrors.MsgNameRequired
	default:
		return "error.validation.detail"
	}
}
