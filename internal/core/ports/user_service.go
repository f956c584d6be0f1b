package ports

import (
	"context"

	"github.com/99minutos/access-control/internal/core/domain"
)

// CreateUserInput is the DTO passed from the transport layer to UserService.
type CreateUserInput struct {
	Name  string
	Email string
	Role  domain.UserRole
}

// UpdateUserInput is a partial update. Nil fields are left untouched.
type UpdateUserInput struct {
	Name   *string
	Email  *string
	Role   *domain.UserRole
	Status *domain.UserStatus
}

// UserService defines the user use cases.
type UserService interface {
	CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error)
	// GetUser returns nil, nil when the user does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetAllUsers(ctx context.Context, skip, limit int) ([]*domain.User, error)
	GetUserCount(ctx context.Context) (int, error)
	UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*domain.User, error)
	// DeleteUser deactivates the user. It returns nil, nil when the user does not exist.
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
