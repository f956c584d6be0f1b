package memory

import (
	"context"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

type RoleRepository struct {
	col *collection[*domain.Role]
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func (r *RoleRepository) NewID(_ context.Context) (string, error) { return newID(), nil }

func (r *RoleRepository) Get(_ context.Context, id string) (*domain.Role, error) {
	return r.col.get(id)
}

func (r *RoleRepository) FindByName(_ context.Context, name string) ([]*domain.Role, error) {
	return r.col.filter(func(role *domain.Role) bool { return role.Name == name }), nil
}

func (r *RoleRepository) List(_ context.Context) ([]*domain.Role, error) {
	return r.col.filter(nil), nil
}

func (r *RoleRepository) Put(_ context.Context, role *domain.Role) error {
	r.col.put(role.ID, role)
	return nil
}

func (r *RoleRepository) Remove(_ context.Context, id string) error {
	r.col.remove(id)
	return nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type UserRepository struct {
	col *collection[*domain.User]
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) NewID(_ context.Context) (string, error) { return newID(), nil }

func (r *UserRepository) Get(_ context.Context, id string) (*domain.User, error) {
	return r.col.get(id)
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) ([]*domain.User, error) {
	return r.col.filter(func(u *domain.User) bool { return u.Email == email }), nil
}

func (r *UserRepository) FindByStatus(_ context.Context, status domain.UserStatus) ([]*domain.User, error) {
	return r.col.filter(func(u *domain.User) bool { return u.Status == status }), nil
}

func (r *UserRepository) Put(_ context.Context, user *domain.User) error {
	r.col.put(user.ID, user)
	return nil
}

func (r *UserRepository) Patch(_ context.Context, id string, patch ports.UserPatch) error {
	return r.col.update(id, func(u *domain.User) *domain.User {
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		if patch.UpdatedAt != nil {
			u.UpdatedAt = *patch.UpdatedAt
		}
		if patch.DeletedAt != nil {
			t := *patch.DeletedAt
			u.DeletedAt = &t
		}
		return u
	})
}

// ---------------------------------------------------------------------------
// User role assignments
// ---------------------------------------------------------------------------

type UserRolesRepository struct {
	col *collection[*domain.UserRoles]
}

var _ ports.UserRolesRepository = (*UserRolesRepository)(nil)

func (r *UserRolesRepository) Get(_ context.Context, userID string) (*domain.UserRoles, error) {
	return r.col.get(userID)
}

func (r *UserRolesRepository) List(_ context.Context) ([]*domain.UserRoles, error) {
	return r.col.filter(nil), nil
}

func (r *UserRolesRepository) Put(_ context.Context, record *domain.UserRoles) error {
	r.col.put(record.UserID, record)
	return nil
}
