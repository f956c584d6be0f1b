package handler

import "github.com/99minutos/access-control/internal/core/domain"

// --- Request / Response types ---

type createUserRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role"  validate:"required,oneof=admin user"`
}

type updateUserRequest struct {
	Name   *string `json:"name"   validate:"omitempty,min=1"`
	Email  *string `json:"email"  validate:"omitempty,email"`
	Role   *string `json:"role"   validate:"omitempty,oneof=admin user"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type deactivateUserResponse struct {
	Message string       `json:"message"`
	User    *domain.User `json:"user"`
}
