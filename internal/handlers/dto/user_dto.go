package dto

import (
	"github.com/rafabene/users-api/internal/domain/entities"
)

// CreateUserRequest representa a requisição para criar um usuário.
// Active é opcional e vale true quando omitido.
type CreateUserRequest struct {
	Name   string `json:"name" binding:"required" example:"Ana"`
	Email  string `json:"email" binding:"required,email" example:"ana@example.com"`
	Active *bool  `json:"active" example:"true"`
}

// IsActive retorna o valor de Active, com default true
func (r CreateUserRequest) IsActive() bool {
	return r.Active == nil || *r.Active
}

// UpdateUserRequest representa a substituição completa de um usuário
type UpdateUserRequest struct {
	Name   string `json:"name" binding:"required" example:"Ana Maria"`
	Email  string `json:"email" binding:"required,email" example:"ana.maria@example.com"`
	Active *bool  `json:"active" binding:"required" example:"false"`
}

// ListUsersQuery representa os parâmetros de listagem.
// Active aceita "true", "false" ou "all" (ou ausente) para não filtrar.
type ListUsersQuery struct {
	Active string `form:"active" example:"all"`
	Name   string `form:"name" example:"ana"`
	Sort   string `form:"sort" example:"name"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID     int64  `json:"id" example:"1"`
	Name   string `json:"name" example:"Ana"`
	Email  string `json:"email" example:"ana@example.com"`
	Active bool   `json:"active" example:"true"`
}

// ListUsersResponse envelopa a listagem
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// MessageResponse é uma resposta simples com mensagem
type MessageResponse struct {
	Message string `json:"message" example:"Users API"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Name:   user.Name,
		Email:  user.Email.String(),
		Active: user.Active,
	}
}

// ToUserResponses converte uma lista de entidades User para UserResponse
func ToUserResponses(users []*entities.User) []UserResponse {
	responses := make([]UserResponse, len(users))
	for i, user := range users {
		responses[i] = ToUserResponse(user)
	}
	return responses
}
