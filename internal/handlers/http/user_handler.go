package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/rafabene/users-api/internal/domain/errors"
	"github.com/rafabene/users-api/internal/domain/ports"
	"github.com/rafabene/users-api/internal/domain/repositories"
	"github.com/rafabene/users-api/internal/handlers/dto"
	"github.com/rafabene/users-api/internal/handlers/middleware"
	"github.com/rafabene/users-api/internal/services"
)

// UserHandler lida com requisições HTTP relacionadas a usuários
type UserHandler struct {
	userService *services.UserService
	logger      ports.Logger
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService, logger ports.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// CreateUser cria um novo usuário
//
//	@Summary	Cria um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		user	body		dto.CreateUserRequest	true	"Usuário"
//	@Success	201		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(c, err)))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), services.CreateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Active: req.IsActive(),
	})
	if err != nil {
		// Qualquer rejeição do banco na criação é tratada como erro do cliente
		h.respondError(c, err, true)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// GetUser busca um usuário por ID
//
//	@Summary	Busca um usuário
//	@Tags		users
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	dto.UserResponse
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListUsers lista usuários com filtros opcionais
//
//	@Summary	Lista usuários
//	@Tags		users
//	@Produce	json
//	@Param		active	query		string	false	"true, false ou all"
//	@Param		name	query		string	false	"Trecho do nome (case-insensitive)"
//	@Param		sort	query		string	false	"id, name ou email"
//	@Success	200		{object}	dto.ListUsersResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Router		/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	var query dto.ListUsersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(c, err)))
		return
	}

	active, ok := repositories.ParseActiveFilter(query.Active)
	if !ok {
		h.respondError(c, domainerrors.NewValidationError("active", domainerrors.MsgInvalidActive), false)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context(), repositories.UserFilters{
		Active: active,
		Name:   query.Name,
		Sort:   repositories.ParseSortColumn(query.Sort),
	})
	if err != nil {
		h.respondError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, dto.ListUsersResponse{Users: dto.ToUserResponses(users)})
}

// UpdateUser substitui name, email e active de um usuário
//
//	@Summary	Atualiza um usuário
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID do usuário"
//	@Param		user	body		dto.UpdateUserRequest	true	"Novos dados"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	400		{object}	dto.ErrorResponse
//	@Failure	404		{object}	dto.ErrorResponse
//	@Failure	500		{object}	dto.ErrorResponse
//	@Router		/users/{id} [patch]
//	@Router		/users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, dto.BindingErrors(c, err)))
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, services.UpdateUserInput{
		Name:   req.Name,
		Email:  req.Email,
		Active: *req.Active,
	})
	if err != nil {
		h.respondError(c, err, false)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeactivateUser faz o soft delete de um usuário
//
//	@Summary	Desativa um usuário
//	@Tags		users
//	@Param		id	path	int	true	"ID do usuário"
//	@Success	204
//	@Failure	400	{object}	dto.ErrorResponse
//	@Failure	404	{object}	dto.ErrorResponse
//	@Router		/users/{id} [delete]
func (h *UserHandler) DeactivateUser(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		h.respondError(c, err, false)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UserHandler) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		h.respondError(c, domainerrors.NewValidationError("id", domainerrors.MsgInvalidID), false)
		return 0, false
	}
	return id, true
}

// respondError mapeia os erros de domínio para respostas RFC 7807.
// storageIsClient força 400 para qualquer StorageError.
func (h *UserHandler) respondError(c *gin.Context, err error, storageIsClient bool) {
	var (
		validationErr  *domainerrors.ValidationError
		storageErr     *domainerrors.StorageError
		consistencyErr *domainerrors.ConsistencyError
	)

	switch {
	case errors.As(err, &validationErr):
		dto.WriteProblem(c, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{dto.FieldError(c, validationErr)}))
	case errors.Is(err, domainerrors.ErrUserNotFound):
		dto.WriteProblem(c, dto.NotFoundErrorResponseI18n(c, domainerrors.ErrUserNotFound))
	case errors.As(err, &consistencyErr):
		dto.WriteProblem(c, dto.ConsistencyErrorResponseI18n(c))
	case errors.As(err, &storageErr):
		if storageIsClient || storageErr.Client {
			dto.WriteProblem(c, dto.StorageErrorResponseI18n(c, http.StatusBadRequest, storageErr.Message))
			return
		}
		h.logger.Error("storage failure", "op", storageErr.Op, "error", err, "request_id", middleware.GetRequestID(c))
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	default:
		h.logger.Error("unexpected error", "error", err, "request_id", middleware.GetRequestID(c))
		dto.WriteProblem(c, dto.InternalErrorResponseI18n(c))
	}
}
