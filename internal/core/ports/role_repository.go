package ports

import (
	"context"

	"github.com/99minutos/access-control/internal/core/domain"
)

// RoleRepository persists roles under the "roles" collection root.
// Results of FindByName and List come back in store order.
type RoleRepository interface {
	NewID(ctx context.Context) (string, error)
	Get(ctx context.Context, id string) (*domain.Role, error)
	FindByName(ctx context.Context, name string) ([]*domain.Role, error)
	List(ctx context.Context) ([]*domain.Role, error)
	// Put writes the whole record, replacing any previous value.
	Put(ctx context.Context, role *domain.Role) error
	Remove(ctx context.Context, id string) error
}

// UserRolesRepository persists assignment records under "user_roles", keyed by user.
// There is no reverse index from role to users.
type UserRolesRepository interface {
	Get(ctx context.Context, userID string) (*domain.UserRoles, error)
	List(ctx context.Context) ([]*domain.UserRoles, error)
	Put(ctx context.Context, record *domain.UserRoles) error
}
