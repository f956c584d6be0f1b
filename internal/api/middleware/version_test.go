package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/core/domain"
	"github.com/99minutos/access-control/internal/core/version"
)

func newVersionContext(param string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if param != "" {
		c.SetParamNames("version")
		c.SetParamValues(param)
	}
	return c, rec
}

func TestVersion_ExplicitVersion(t *testing.T) {
	c, rec := newVersionContext("v1")

	var seen version.Version
	handler := Version(version.Default)(func(c echo.Context) error {
		seen = APIVersion(c)
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen != version.V1 {
		t.Fatalf("expected v1, got %q", seen)
	}
	if rec.Header().Get("Deprecation") != "" {
		t.Errorf("active version must not carry a Deprecation header")
	}
}

func TestVersion_DefaultsToLatest(t *testing.T) {
	c, _ := newVersionContext("")

	var seen version.Version
	handler := Version(version.Default)(func(c echo.Context) error {
		seen = APIVersion(c)
		return nil
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if seen != version.V2 {
		t.Fatalf("expected latest (v2), got %q", seen)
	}
}

func TestVersion_RejectsUnsupported(t *testing.T) {
	c, _ := newVersionContext("v3")

	handler := Version(version.Default)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	var de *domain.Error
	if !errors.As(err, &de) || de.Details != "supported versions: v1, v2" {
		t.Fatalf("expected supported versions in details, got %+v", err)
	}
}

func TestVersion_DeprecationHeaders(t *testing.T) {
	deprecated := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	sunset := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	reg := version.Registry{
		{Version: version.V1, IsActive: true, DeprecatedAt: &deprecated, SunsetAt: &sunset},
		{Version: version.V2, IsActive: true},
	}
	c, rec := newVersionContext("v1")

	handler := Version(reg)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if got := rec.Header().Get("Deprecation"); got != "@1704067200" {
		t.Errorf("Deprecation = %q", got)
	}
	if got := rec.Header().Get("Sunset"); got != "Sun, 30 Jun 2024 00:00:00 GMT" {
		t.Errorf("Sunset = %q", got)
	}
}

func TestAPIVersion_WithoutMiddleware(t *testing.T) {
	c, _ := newVersionContext("")
	if got := APIVersion(c); got != version.Default.Latest() {
		t.Fatalf("expected latest, got %q", got)
	}
}
