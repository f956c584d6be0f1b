package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

var errEmailInUse = domain.Conflict("Email is already in use").
	WithDetails("Please use a different email address")

// UserService implements user CRUD with soft deletion.
type UserService struct {
	repo    ports.UserRepository
	metrics Recorder
	logger  zerolog.Logger
	now     func() time.Time
}

func NewUserService(repo ports.UserRepository, metrics Recorder, logger zerolog.Logger) *UserService {
	if metrics == nil {
		metrics = NopRecorder{}
	}
	return &UserService{
		repo:    repo,
		metrics: metrics,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *UserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	if in.Name == "" || in.Email == "" {
		return nil, domain.Validation("Name and email are required")
	}
	if !in.Role.IsValid() {
		return nil, domain.Validation("Role must be one of: admin, user")
	}

	taken, err := s.isEmailTaken(ctx, in.Email, "")
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	if taken {
		s.metrics.Conflict("user", "email_taken")
		return nil, errEmailInUse
	}

	id, err := s.repo.NewID(ctx)
	if err != nil {
		return nil, fmt.Errorf("create user: allocate id: %w", err)
	}

	now := s.now()
	user := &domain.User{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    domain.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Put(ctx, user); err != nil {
		s.logger.Error().Err(err).Str("email", in.Email).Msg("failed to persist user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.metrics.UserCreated()
	s.logger.Info().Str("user_id", id).Msg("user created")
	return user, nil
}

// GetUser treats an absent key and an empty stored value alike.
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user.IsZero() {
		return nil, nil
	}
	return user, nil
}

// GetAllUsers fetches every active user and slices the page in memory, so
// each page costs a full read of the active set.
func (s *UserService) GetAllUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	users, err := s.repo.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	s.logger.Debug().Int("skip", skip).Int("limit", limit).Int("active", len(users)).Msg("listing users")

	if skip < 0 {
		skip = 0
	}
	if skip >= len(users) || limit <= 0 {
		return []*domain.User{}, nil
	}
	end := skip + limit
	if end > len(users) {
		end = len(users)
	}
	return users[skip:end], nil
}

func (s *UserService) GetUserCount(ctx context.Context) (int, error) {
	users, err := s.repo.FindByStatus(ctx, domain.StatusActive)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return len(users), nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	current, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if current == nil {
		return nil, domain.NotFound("User not found")
	}

	if in.Role != nil && !in.Role.IsValid() {
		return nil, domain.Validation("Role must be one of: admin, user")
	}
	if in.Status != nil && !in.Status.IsValid() {
		return nil, domain.Validation("Status must be one of: active, inactive")
	}
	if in.Email != nil && *in.Email != "" {
		taken, err := s.isEmailTaken(ctx, *in.Email, id)
		if err != nil {
			return nil, fmt.Errorf("update user: %w", err)
		}
		if taken {
			s.metrics.Conflict("user", "email_taken")
			return nil, errEmailInUse
		}
	}

	updated := *current
	updated.ID = id
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Email != nil {
		updated.Email = *in.Email
	}
	if in.Role != nil {
		updated.Role = *in.Role
	}
	if in.Status != nil {
		updated.Status = *in.Status
	}
	updated.UpdatedAt = s.now()

	if err := s.repo.Put(ctx, &updated); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.logger.Info().Str("user_id", id).Msg("user updated")
	return &updated, nil
}

// DeleteUser flips the user to inactive. The record stays retrievable by id.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	current, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}
	if current == nil {
		return nil, nil
	}

	now := s.now()
	status := domain.StatusInactive
	if err := s.repo.Patch(ctx, id, ports.UserPatch{
		Status:    &status,
		UpdatedAt: &now,
		DeletedAt: &now,
	}); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	deactivated := *current
	deactivated.Status = status
	deactivated.UpdatedAt = now
	deactivated.DeletedAt = &now

	s.metrics.UserDeactivated()
	s.logger.Info().Str("user_id", id).Msg("user deactivated")
	return &deactivated, nil
}

// isEmailTaken reports whether a user other than excludeID, in any status, uses email.
func (s *UserService) isEmailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	matches, err := s.repo.FindByEmail(ctx, email)
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
