package memory

import (
	"context"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

// Store holds the users, roles and user_roles collections.
type Store struct {
	users     *collection[*domain.User]
	roles     *collection[*domain.Role]
	userRoles *collection[*domain.UserRoles]
}

func NewStore() *Store {
	return &Store{
		users:     newCollection(cloneUser),
		roles:     newCollection(cloneRole),
		userRoles: newCollection(cloneUserRoles),
	}
}

func (s *Store) Users() *UserRepository          { return &UserRepository{col: s.users} }
func (s *Store) Roles() *RoleRepository          { return &RoleRepository{col: s.roles} }
func (s *Store) UserRoles() *UserRolesRepository { return &UserRolesRepository{col: s.userRoles} }

// Clear drops every record from every collection.
func (s *Store) Clear(_ context.Context) error {
	s.users.clear()
	s.roles.clear()
	s.userRoles.clear()
	return nil
}

// Ping always succeeds.
func (s *Store) Ping(_ context.Context) error { return nil }

var (
	_ ports.Clearer = (*Store)(nil)
	_ ports.Pinger  = (*Store)(nil)
)

func newID() string { return uuid.NewString() }

func cloneUser(u *domain.User) *domain.User {
	c := *u
	if u.DeletedAt != nil {
		t := *u.DeletedAt
		c.DeletedAt = &t
	}
	return &c
}

func cloneRole(r *domain.Role) *domain.Role {
	c := *r
	c.Permissions = slices.Clone(r.Permissions)
	if r.Description != nil {
		d := *r.Description
		c.Description = &d
	}
	if r.Metadata != nil {
		c.Metadata = maps.Clone(r.Metadata)
	}
	return &c
}

func cloneUserRoles(ur *domain.UserRoles) *domain.UserRoles {
	c := *ur
	c.RoleIDs = slices.Clone(ur.RoleIDs)
	return &c
}
