package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/ports"
)

func sampleUser(id string) *domain.User {
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &domain.User{
		ID: id, Name: "Ana", Email: "ana@example.com",
		Role: domain.UserRoleUser, Status: domain.StatusActive,
		CreatedAt: ts, UpdatedAt: ts,
	}
}

func TestUserHandler_Create_Success(t *testing.T) {
	stub := &stubUserService{
		createFn: func(_ context.Context, in ports.CreateUserInput) (*domain.User, error) {
			if in.Name != "Ana" || in.Email != "ana@example.com" || in.Role != domain.UserRoleAdmin {
				t.Fatalf("unexpected input: %+v", in)
			}
			u := sampleUser("u1")
			u.Role = in.Role
			return u, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newContext(http.MethodPost, "/users",
		strings.NewReader(`{"name":"Ana","email":"ana@example.com","role":"admin"}`))

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "http://example.com/users/u1" {
		t.Errorf("unexpected Location %q", loc)
	}

	body := decodeBody(t, rec)
	if body["status"] != "created" {
		t.Errorf("status = %v", body["status"])
	}
	data := body["data"].(map[string]any)
	if data["id"] != "u1" || data["role"] != "admin" || data["status"] != "active" {
		t.Errorf("unexpected data: %+v", data)
	}
	if _, ok := data["deletedAt"]; ok {
		t.Errorf("deletedAt must be omitted for active users")
	}
	self := body["_links"].(map[string]any)["self"].(map[string]any)["href"]
	if self != "http://example.com/users/u1" {
		t.Errorf("self link = %v", self)
	}
}

func TestUserHandler_Create_ValidationFailure(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	})

	c, _ := newContext(http.MethodPost, "/users", strings.NewReader(`{"name":"Ana","email":"not-an-email","role":"root"}`))
	de := expectKind(t, h.Create(c), domain.KindValidation)
	if !strings.Contains(de.Details, "email must be a valid email") || !strings.Contains(de.Details, "role must be one of: admin, user") {
		t.Errorf("unexpected details %q", de.Details)
	}
}

func TestUserHandler_Create_MalformedJSON(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newContext(http.MethodPost, "/users", strings.NewReader(`{"name":`))
	de := expectKind(t, h.Create(c), domain.KindValidation)
	if de.Message != "Invalid request" {
		t.Errorf("unexpected message %q", de.Message)
	}
}

func TestUserHandler_Create_Conflict(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		createFn: func(context.Context, ports.CreateUserInput) (*domain.User, error) {
			return nil, domain.Conflict("Email is already in use")
		},
	})
	c, _ := newContext(http.MethodPost, "/users", strings.NewReader(`{"name":"A","email":"a@x.io","role":"user"}`))
	expectKind(t, h.Create(c), domain.KindConflict)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		getFn: func(context.Context, string) (*domain.User, error) { return nil, nil },
	})
	c, _ := newContext(http.MethodGet, "/users/missing", nil)
	withParams(c, "id", "missing")

	de := expectKind(t, h.Get(c), domain.KindNotFound)
	if de.Message != "User not found" {
		t.Errorf("unexpected message %q", de.Message)
	}
}

func TestUserHandler_List_Pagination(t *testing.T) {
	var gotSkip, gotLimit int
	h := NewUserHandler(&stubUserService{
		listFn: func(_ context.Context, skip, limit int) ([]*domain.User, error) {
			gotSkip, gotLimit = skip, limit
			return []*domain.User{sampleUser("u3"), sampleUser("u4")}, nil
		},
		countFn: func(context.Context) (int, error) { return 5, nil },
	})

	c, rec := newContext(http.MethodGet, "/users?page=2&pageSize=2", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotSkip != 2 || gotLimit != 2 {
		t.Fatalf("skip/limit = %d/%d, want 2/2", gotSkip, gotLimit)
	}

	body := decodeBody(t, rec)
	pag := body["pagination"].(map[string]any)
	if pag["currentPage"] != 2.0 || pag["pageSize"] != 2.0 || pag["totalItems"] != 5.0 || pag["totalPages"] != 3.0 {
		t.Errorf("unexpected pagination %+v", pag)
	}
	links := body["_links"].(map[string]any)
	for rel, want := range map[string]string{
		"self":  "http://example.com/users?page=2&pageSize=2",
		"first": "http://example.com/users?page=1&pageSize=2",
		"prev":  "http://example.com/users?page=1&pageSize=2",
		"next":  "http://example.com/users?page=3&pageSize=2",
		"last":  "http://example.com/users?page=3&pageSize=2",
	} {
		link, ok := links[rel].(map[string]any)
		if !ok || link["href"] != want {
			t.Errorf("%s link = %v, want %s", rel, links[rel], want)
		}
	}
	if data := body["data"].(map[string]any); data["count"] != 2.0 {
		t.Errorf("count = %v", data["count"])
	}
}

func TestUserHandler_List_InvalidParamsFallBack(t *testing.T) {
	var gotSkip, gotLimit int
	h := NewUserHandler(&stubUserService{
		listFn: func(_ context.Context, skip, limit int) ([]*domain.User, error) {
			gotSkip, gotLimit = skip, limit
			return nil, nil
		},
		countFn: func(context.Context) (int, error) { return 0, nil },
	})

	c, rec := newContext(http.MethodGet, "/users?page=abc&pageSize=0", nil)
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if gotSkip != 0 || gotLimit != 10 {
		t.Fatalf("skip/limit = %d/%d, want 0/10", gotSkip, gotLimit)
	}
	body := decodeBody(t, rec)
	if _, ok := body["_links"].(map[string]any)["next"]; ok {
		t.Errorf("empty listing must not have a next link")
	}
}

func TestUserHandler_List_CountFailure(t *testing.T) {
	boom := errors.New("store down")
	h := NewUserHandler(&stubUserService{
		listFn: func(context.Context, int, int) ([]*domain.User, error) {
			return nil, nil
		},
		countFn: func(context.Context) (int, error) { return 0, boom },
	})
	c, _ := newContext(http.MethodGet, "/users", nil)
	if err := h.List(c); !errors.Is(err, boom) {
		t.Fatalf("expected store error, got %v", err)
	}
}

func TestUserHandler_Update(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		updateFn: func(_ context.Context, id string, in ports.UpdateUserInput) (*domain.User, error) {
			if id != "u1" || in.Status == nil || *in.Status != domain.StatusInactive || in.Name != nil {
				t.Fatalf("unexpected update %s %+v", id, in)
			}
			u := sampleUser(id)
			u.Status = *in.Status
			return u, nil
		},
	})
	c, rec := newContext(http.MethodPut, "/users/u1", strings.NewReader(`{"status":"inactive"}`))
	withParams(c, "id", "u1")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if body := decodeBody(t, rec); body["status"] != "updated" {
		t.Errorf("status = %v", body["status"])
	}
}

func TestUserHandler_Update_InvalidStatus(t *testing.T) {
	h := NewUserHandler(&stubUserService{})
	c, _ := newContext(http.MethodPut, "/users/u1", strings.NewReader(`{"status":"banned"}`))
	withParams(c, "id", "u1")
	expectKind(t, h.Update(c), domain.KindValidation)
}

func TestUserHandler_Delete(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(_ context.Context, id string) (*domain.User, error) {
			u := sampleUser(id)
			u.Status = domain.StatusInactive
			now := time.Now()
			u.DeletedAt = &now
			return u, nil
		},
	})
	c, rec := newContext(http.MethodDelete, "/users/u1", nil)
	withParams(c, "id", "u1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	body := decodeBody(t, rec)
	if body["status"] != "deactivated" {
		t.Errorf("status = %v", body["status"])
	}
	data := body["data"].(map[string]any)
	if data["message"] != "User deactivated successfully" {
		t.Errorf("message = %v", data["message"])
	}
	if user := data["user"].(map[string]any); user["status"] != "inactive" || user["deletedAt"] == nil {
		t.Errorf("unexpected user %+v", user)
	}
	if _, ok := body["_links"]; ok {
		t.Errorf("delete response carries no links")
	}
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	h := NewUserHandler(&stubUserService{
		deleteFn: func(context.Context, string) (*domain.User, error) { return nil, nil },
	})
	c, _ := newContext(http.MethodDelete, "/users/nope", nil)
	withParams(c, "id", "nope")
	expectKind(t, h.Delete(c), domain.KindNotFound)
}
