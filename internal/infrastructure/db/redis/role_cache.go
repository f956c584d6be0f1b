package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

const defaultRoleTTL = 5 * time.Minute

// RoleCache is a read-through cache in front of a ports.RoleRepository.
// Only lookups by id are cached; writes evict the key.
// Key format: role:<id>
//
// Redis failures never fail a request: reads fall through to the wrapped
// repository and are logged at warn level.
type RoleCache struct {
	next   ports.RoleRepository
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewRoleCache wraps next. A non-positive ttl falls back to five minutes.
func NewRoleCache(next ports.RoleRepository, client *redis.Client, ttl time.Duration, logger zerolog.Logger) *RoleCache {
	if ttl <= 0 {
		ttl = defaultRoleTTL
	}
	return &RoleCache{next: next, client: client, ttl: ttl, logger: logger}
}

var _ ports.RoleRepository = (*RoleCache)(nil)

func (c *RoleCache) NewID(ctx context.Context) (string, error) {
	return c.next.NewID(ctx)
}

func (c *RoleCache) Get(ctx context.Context, id string) (*domain.Role, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	switch {
	case err == nil:
		var cached cachedRole
		if jerr := json.Unmarshal(raw, &cached); jerr == nil {
			return cached.role(), nil
		}
		c.logger.Warn().Str("role_id", id).Msg("discarding undecodable cached role")
	case !errors.Is(err, redis.Nil):
		c.logger.Warn().Err(err).Str("role_id", id).Msg("role cache read failed")
	}

	role, err := c.next.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if payload, jerr := json.Marshal(newCachedRole(role)); jerr == nil {
		if serr := c.client.Set(ctx, c.key(id), payload, c.ttl).Err(); serr != nil {
			c.logger.Warn().Err(serr).Str("role_id", id).Msg("role cache write failed")
		}
	}
	return role, nil
}

func (c *RoleCache) FindByName(ctx context.Context, name string) ([]*domain.Role, error) {
	return c.next.FindByName(ctx, name)
}

func (c *RoleCache) List(ctx context.Context) ([]*domain.Role, error) {
	return c.next.List(ctx)
}

func (c *RoleCache) Put(ctx context.Context, role *domain.Role) error {
	if err := c.next.Put(ctx, role); err != nil {
		return err
	}
	c.evict(ctx, role.ID)
	return nil
}

func (c *RoleCache) Remove(ctx context.Context, id string) error {
	if err := c.next.Remove(ctx, id); err != nil {
		return err
	}
	c.evict(ctx, id)
	return nil
}

// Ping reports whether the cache server is reachable.
func (c *RoleCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping: %w", err)
	}
	return nil
}

func (c *RoleCache) evict(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("role_id", id).Msg("role cache eviction failed")
	}
}

func (c *RoleCache) key(id string) string {
	return fmt.Sprintf("role:%s", id)
}

// cachedRole is the cache payload. Unlike domain.Role it keeps an empty
// metadata object distinct from a missing one.
type cachedRole struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Permissions []domain.Permission `json:"permissions"`
	Description *string             `json:"description"`
	Metadata    map[string]any      `json:"metadata"`
	Version     int                 `json:"version"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

func newCachedRole(r *domain.Role) cachedRole {
	return cachedRole{
		ID:          r.ID,
		Name:        r.Name,
		Permissions: r.Permissions,
		Description: r.Description,
		Metadata:    r.Metadata,
		Version:     r.Version,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func (c cachedRole) role() *domain.Role {
	return &domain.Role{
		ID:          c.ID,
		Name:        c.Name,
		Permissions: c.Permissions,
		Description: c.Description,
		Metadata:    c.Metadata,
		Version:     c.Version,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
