package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/infrastructure/config"
)

func TestOpen_Memory(t *testing.T) {
	ctx := context.Background()
	b, err := Open(ctx, &config.Config{StoreDriver: config.DriverMemory})
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close(ctx) })

	assert.Equal(t, "memory", b.Name)
	require.NoError(t, b.Pinger.Ping(ctx))

	require.NoError(t, b.Roles.Put(ctx, &domain.Role{ID: "r1", Name: "admin"}))
	require.NoError(t, b.Clearer.Clear(ctx))
	roles, err := b.Roles.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, roles)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), &config.Config{StoreDriver: "sqlite"})
	assert.Error(t, err)
}
