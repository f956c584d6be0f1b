package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/99minutos/access-control/internal/core/ports"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestReadiness(t *testing.T) {
	ok := pingFunc(func(context.Context) error { return nil })
	down := pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") })

	tests := []struct {
		name   string
		deps   map[string]ports.Pinger
		code   int
		status string
	}{
		{"all healthy", map[string]ports.Pinger{"mongodb": ok, "redis": ok}, http.StatusOK, "ok"},
		{"one down", map[string]ports.Pinger{"mongodb": ok, "redis": down}, http.StatusServiceUnavailable, "degraded"},
		{"no dependencies", nil, http.StatusOK, "ok"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/health/ready", nil)
			if err := NewHealthDependenciesHandler(tt.deps).Readiness(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}
			body := decodeBody(t, rec)
			if body["status"] != tt.status {
				t.Errorf("status = %v", body["status"])
			}
			if tt.code != http.StatusOK {
				redis := body["dependencies"].(map[string]any)["redis"].(map[string]any)
				if redis["error"] != "dial tcp: refused" {
					t.Errorf("unexpected redis report %+v", redis)
				}
			}
		})
	}
}
