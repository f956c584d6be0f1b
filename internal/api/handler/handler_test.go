package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stub services
// ---------------------------------------------------------------------------

type stubUserService struct {
	createFn func(ctx context.Context, in ports.CreateUserInput) (*domain.User, error)
	getFn    func(ctx context.Context, id string) (*domain.User, error)
	listFn   func(ctx context.Context, skip, limit int) ([]*domain.User, error)
	countFn  func(ctx context.Context) (int, error)
	updateFn func(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error)
	deleteFn func(ctx context.Context, id string) (*domain.User, error)
}

func (s *stubUserService) CreateUser(ctx context.Context, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, in)
}
func (s *stubUserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.getFn(ctx, id)
}
func (s *stubUserService) GetAllUsers(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	return s.listFn(ctx, skip, limit)
}
func (s *stubUserService) GetUserCount(ctx context.Context) (int, error) {
	return s.countFn(ctx)
}
func (s *stubUserService) UpdateUser(ctx context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubUserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	return s.deleteFn(ctx, id)
}

type stubRoleService struct {
	createFn      func(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error)
	getFn         func(ctx context.Context, id string) (*domain.Role, error)
	listFn        func(ctx context.Context) ([]*domain.Role, error)
	updateFn      func(ctx context.Context, id string, in ports.UpdateRoleInput) (*domain.Role, error)
	deleteFn      func(ctx context.Context, id string) (bool, error)
	assignFn      func(ctx context.Context, userID string, names []string) error
	userRolesFn   func(ctx context.Context, userID string) ([]*domain.Role, error)
	permissionsFn func(ctx context.Context, userID string) ([]domain.Permission, error)
}

func (s *stubRoleService) CreateRole(ctx context.Context, in ports.CreateRoleInput) (*domain.Role, error) {
	return s.createFn(ctx, in)
}
func (s *stubRoleService) GetRole(ctx context.Context, id string) (*domain.Role, error) {
	return s.getFn(ctx, id)
}
func (s *stubRoleService) ListRoles(ctx context.Context) ([]*domain.Role, error) {
	return s.listFn(ctx)
}
func (s *stubRoleService) UpdateRole(ctx context.Context, id string, in ports.UpdateRoleInput) (*domain.Role, error) {
	return s.updateFn(ctx, id, in)
}
func (s *stubRoleService) DeleteRole(ctx context.Context, id string) (bool, error) {
	return s.deleteFn(ctx, id)
}
func (s *stubRoleService) GetRoleByName(context.Context, string) (*domain.Role, error) {
	return nil, nil
}
func (s *stubRoleService) AssignRolesByNames(ctx context.Context, userID string, names []string) error {
	return s.assignFn(ctx, userID, names)
}
func (s *stubRoleService) GetUserRoles(ctx context.Context, userID string) ([]*domain.Role, error) {
	return s.userRolesFn(ctx, userID)
}
func (s *stubRoleService) GetUserPermissions(ctx context.Context, userID string) ([]domain.Permission, error) {
	return s.permissionsFn(ctx, userID)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func newContext(method, target string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, body)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func withParams(c echo.Context, kv ...string) {
	var names, values []string
	for i := 0; i+1 < len(kv); i += 2 {
		names = append(names, kv[i])
		values = append(values, kv[i+1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), err)
	}
	return out
}

func expectKind(t *testing.T, err error, want domain.ErrorKind) *domain.Error {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := domain.KindOf(err); got != want {
		t.Fatalf("expected %v error, got %v (%v)", want, got, err)
	}
	de, _ := err.(*domain.Error)
	return de
}
