// Package db opens the store backend selected by configuration.
package db

import (
	"context"
	"fmt"

	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/infrastructure/config"
	"github.com/99minutos/access-control/internal/infrastructure/db/memory"
	mongostore "github.com/99minutos/access-control/internal/infrastructure/db/mongo"
)

// Backend bundles the repositories of one store.
type Backend struct {
	// Name is how the store is reported by the readiness probe.
	Name      string
	Users     ports.UserRepository
	Roles     ports.RoleRepository
	UserRoles ports.UserRolesRepository
	Clearer   ports.Clearer
	Pinger    ports.Pinger

	close func(context.Context) error
}

// Close releases the connection held by the backend, if any.
func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

// Open connects to the store named by cfg.StoreDriver. For mongo the
// secondary indexes are created before returning.
func Open(ctx context.Context, cfg *config.Config) (*Backend, error) {
	switch cfg.StoreDriver {
	case config.DriverMemory:
		store := memory.NewStore()
		return &Backend{
			Name:      "memory",
			Users:     store.Users(),
			Roles:     store.Roles(),
			UserRoles: store.UserRoles(),
			Clearer:   store,
			Pinger:    store,
		}, nil

	case config.DriverMongo:
		client, database, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, err
		}
		store := mongostore.NewStore(database)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("mongo indexes: %w", err)
		}
		return &Backend{
			Name:      "mongodb",
			Users:     store.Users(),
			Roles:     store.Roles(),
			UserRoles: store.UserRoles(),
			Clearer:   store,
			Pinger:    store,
			close:     client.Disconnect,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
