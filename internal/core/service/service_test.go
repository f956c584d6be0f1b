package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/infrastructure/db/memory"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

var errStoreDown = errors.New("store unavailable")

// countingRecorder captures metric observations.
type countingRecorder struct {
	mu            sync.Mutex
	rolesCreated  map[string]int
	rolesDeleted  int
	assigned      []int
	usersCreated  int
	deactivated   int
	conflictCount map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{rolesCreated: map[string]int{}, conflictCount: map[string]int{}}
}

func (r *countingRecorder) RoleCreated(v string) { r.mu.Lock(); r.rolesCreated[v]++; r.mu.Unlock() }
func (r *countingRecorder) RoleDeleted()         { r.mu.Lock(); r.rolesDeleted++; r.mu.Unlock() }
func (r *countingRecorder) RolesAssigned(n int) {
	r.mu.Lock()
	r.assigned = append(r.assigned, n)
	r.mu.Unlock()
}
func (r *countingRecorder) UserCreated()     { r.mu.Lock(); r.usersCreated++; r.mu.Unlock() }
func (r *countingRecorder) UserDeactivated() { r.mu.Lock(); r.deactivated++; r.mu.Unlock() }
func (r *countingRecorder) Conflict(resource, reason string) {
	r.mu.Lock()
	r.conflictCount[resource+"/"+reason]++
	r.mu.Unlock()
}

// ---------------------------------------------------------------------------
// Failing repositories
// ---------------------------------------------------------------------------

// failingUserRoles fails the assignment scan.
type failingUserRoles struct {
	ports.UserRolesRepository
}

func (failingUserRoles) List(context.Context) ([]*domain.UserRoles, error) { return nil, errStoreDown }

// failingRoles fails name lookups.
type failingRoles struct {
	ports.RoleRepository
}

func (failingRoles) FindByName(context.Context, string) ([]*domain.Role, error) {
	return nil, errStoreDown
}

func newMemoryRoleService(rec Recorder) (*RoleService, *memory.Store) {
	store := memory.NewStore()
	svc := NewRoleService(store.Roles(), store.UserRoles(), rec, discardLogger)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func newMemoryUserService(rec Recorder) (*UserService, *memory.Store) {
	store := memory.NewStore()
	svc := NewUserService(store.Users(), rec, discardLogger)
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}
