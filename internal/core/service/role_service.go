package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/core/version"
)

// RoleService implements role CRUD, assignment by name and permission derivation.
//
// Uniqueness checks and the role-in-use check are separate store round trips
// from the write that follows them; concurrent requests can interleave.
type RoleService struct {
	roles     ports.RoleRepository
	userRoles ports.UserRolesRepository
	metrics   Recorder
	logger    zerolog.Logger
	now       func() time.Time
}

func NewRoleService(roles ports.RoleRepository, userRoles ports.UserRolesRepository, metrics Recorder, logger zerolog.Logger) *RoleService {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &RoleService{
		roles:     roles,
		userRoles: userRoles,
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *RoleService) CreateRole(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error) {
	if in.Name == "" {
		return nil, domain.Validation("Role name is required")
	}
	if err := domain.ValidatePermissions(in.Permissions); err != nil {
		return nil, err
	}

	taken, err := s.isNameTaken(ctx, in.Name, "")
	if err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	if taken {
		s.metrics.Conflict("role", "name_taken")
		return nil, domain.Conflict("Role name is already taken")
	}

	id, err := s.roles.NewID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create role: allocate id: %w", err)
	}

	now := s.now()
	role := &domain.Role{
		ID:          id,
		Name:        in.Name,
		Permissions: in.Permissions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Version == version.V2 {
		role.Version = 1
		role.Description = in.Description
		role.Metadata = in.Metadata
		if role.Metadata == nil {
			role.Metadata = map[string]any{}
		}
	}

	if err := s.roles.Put(ctx, role); err != nil {
		s.logger.Error().Err(err).Str("role", in.Name).Msg("failed to persist role")
		return nil, fmt.Errorf("create role: %w", err)
	}

	s.metrics.RoleCreated(string(in.Version))
	s.logger.Info().Str("role_id", id).Str("name", in.Name).Str("version", string(in.Version)).Msg("role created")
	return role, nil
}

func (s *RoleService) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	role, err := s.roles.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	return role, nil
}

func (s *RoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	roles, err := s.roles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

func (s *RoleService) UpdateRole(ctx context.Context, id string, in ports.UpdateRoleInput) (*domain.Role, error) {
	current, err := s.GetRole(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	if current == nil {
		return nil, domain.NotFound("Role not found")
	}

	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.Validation("Role name is required")
		}
		taken, err := s.isNameTaken(ctx, *in.Name, id)
		if err != nil {
			return nil, fmt.Errorf("update role: %w", err)
		}
		if taken {
			s.metrics.Conflict("role", "name_taken")
			return nil, domain.Conflict("Role name is already taken")
		}
	}
	if in.Permissions != nil {
		if err := domain.ValidatePermissions(in.Permissions); err != nil {
			return nil, err
		}
	}

	updated := *current
	updated.ID = id
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Permissions != nil {
		updated.Permissions = in.Permissions
	}
	if in.Version == version.V2 {
		if in.Description != nil {
			updated.Description = in.Description
		}
		if in.Metadata != nil {
			updated.Metadata = in.Metadata
		}
	}
	if updated.Version > 0 {
		updated.Version++
	}
	updated.UpdatedAt = s.now()

	if err := s.roles.Put(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}

	s.logger.Info().Str("role_id", id).Msg("role updated")
	return &updated, nil
}

func (s *RoleService) DeleteRole(ctx context.Context, id string) (bool, error) {
	current, err := s.GetRole(ctx, id)
	if err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}
	if current == nil {
		return false, nil
	}

	// No reverse index exists, so every assignment record is scanned.
	records, err := s.userRoles.List(ctx)
	if err != nil {
		return false, fmt.Errorf("delete role: scan assignments: %w", err)
	}
	for _, rec := range records {
		if rec.References(id) {
			s.metrics.Conflict("role", "in_use")
			return false, domain.Conflict("Cannot delete role: it is still assigned to users")
		}
	}

	if err := s.roles.Remove(ctx, id); err != nil {
		return false, fmt.Errorf("delete role: %w", err)
	}

	s.metrics.RoleDeleted()
	s.logger.Info().Str("role_id", id).Msg("role deleted")
	return true, nil
}

func (s *RoleService) GetRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	matches, err := s.roles.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get role by name: %w", err)
	}
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

// AssignRolesByNames replaces the user's assignment record with the roles
// named in names. Nothing is written unless every name resolves.
func (s *RoleService) AssignRolesByNames(ctx context.Context, userID string, names []string) error {
	if len(names) == 0 {
		return domain.Validation("User must have at least one role")
	}

	resolved := make([]*domain.Role, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			role, err := s.GetRoleByName(gctx, name)
			if err != nil {
				return err
			}
			resolved[i] = role
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("assign roles: %w", err)
	}

	var missing []string
	roleIDs := make([]string, 0, len(names))
	for i, role := range resolved {
		if role == nil {
			missing = append(missing, names[i])
			continue
		}
		roleIDs = append(roleIDs, role.ID)
	}
	if len(missing) > 0 {
		return domain.NotFound("One or more roles not found").
			WithDetails("Roles not found: " + strings.Join(missing, ", "))
	}

	record := &domain.UserRoles{
		UserID:    userID,
		RoleIDs:   roleIDs,
		UpdatedAt: s.now(),
	}
	if err := s.userRoles.Put(ctx, record); err != nil {
		return fmt.Errorf("assign roles: %w", err)
	}

	s.metrics.RolesAssigned(len(roleIDs))
	s.logger.Info().Str("user_id", userID).Strs("role_ids", roleIDs).Msg("roles assigned")
	return nil
}

// GetUserRoles resolves the user's assignment record. Role ids that no longer
// resolve are skipped.
func (s *RoleService) GetUserRoles(ctx context.Context, userID string) ([]*domain.Role, error) {
	record, err := s.userRoles.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, ports.ErrRecordNotFound) {
			return []*domain.Role{}, nil
		}
		return nil, fmt.Errorf("get user roles: %w", err)
	}

	resolved := make([]*domain.Role, len(record.RoleIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, roleID := range record.RoleIDs {
		i, roleID := i, roleID
		g.Go(func() error {
			role, err := s.GetRole(gctx, roleID)
			if err != nil {
				return err
			}
			resolved[i] = role
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("get user roles: %w", err)
	}

	roles := make([]*domain.Role, 0, len(resolved))
	for i, role := range resolved {
		if role == nil {
			s.logger.Debug().Str("user_id", userID).Str("role_id", record.RoleIDs[i]).Msg("dangling role reference skipped")
			continue
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// GetUserPermissions returns the union of the permissions of every role the
// user holds, in order of first appearance.
func (s *RoleService) GetUserPermissions(ctx context.Context, userID string) ([]domain.Permission, error) {
	roles, err := s.GetUserRoles(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user permissions: %w", err)
	}

	seen := make(map[domain.Permission]struct{})
	perms := make([]domain.Permission, 0)
	for _, role := range roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			perms = append(perms, p)
		}
	}
	return perms, nil
}

// isNameTaken reports whether a role other than excludeID already uses name.
func (s *RoleService) isNameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	matches, err := s.roles.FindByName(ctx, name)
	if err != nil {
		return false, err
	}
	for _, m := range matches {
		if excludeID == "" || m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}
