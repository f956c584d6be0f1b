package ports

import (
	"context"
	"time"

	"github.com/99minutos/access-control/internal/core/domain"
)

// UserPatch carries the fields of a partial user write. Nil fields are left untouched.
type UserPatch struct {
	Name      *string
	Email     *string
	Role      *domain.UserRole
	Status    *domain.UserStatus
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// UserRepository persists users under the "users" collection root.
type UserRepository interface {
	NewID(ctx context.Context) (string, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	// FindByEmail matches across every status.
	FindByEmail(ctx context.Context, email string) ([]*domain.User, error)
	FindByStatus(ctx context.Context, status domain.UserStatus) ([]*domain.User, error)
	Put(ctx context.Context, user *domain.User) error
	Patch(ctx context.Context, id string, patch UserPatch) error
}
