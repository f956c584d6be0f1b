package ports

import (
	"context"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/version"
)

// CreateRoleInput is the DTO passed from the transport layer to RoleService.
// Description and Metadata are only honoured for v2 requests.
type CreateRoleInput struct {
	Version     version.Version
	Name        string
	Permissions []domain.Permission
	Description *string
	Metadata    map[string]any
}

// UpdateRoleInput is a partial update. Nil fields are left untouched.
type UpdateRoleInput struct {
	Version     version.Version
	Name        *string
	Permissions []domain.Permission // nil = absent, empty = invalid
	Description *string
	Metadata    map[string]any
}

// RoleService defines the role use cases.
type RoleService interface {
	CreateRole(ctx context.Context, in CreateRoleInput) (*domain.Role, error)
	// GetRole returns nil, nil when the role does not exist.
	GetRole(ctx context.Context, id string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]*domain.Role, error)
	UpdateRole(ctx context.Context, id string, in UpdateRoleInput) (*domain.Role, error)
	// DeleteRole returns false, nil when the role does not exist.
	DeleteRole(ctx context.Context, id string) (bool, error)
	GetRoleByName(ctx context.Context, name string) (*domain.Role, error)
	AssignRolesByNames(ctx context.Context, userID string, names []string) error
	GetUserRoles(ctx context.Context, userID string) ([]*domain.Role, error)
	GetUserPermissions(ctx context.Context, userID string) ([]domain.Permission, error)
}
