package middleware

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/api/metrics"
	"github.com/99minutos/access-control/internal/core/version"
)

const versionKey = "api_version"

// Version negotiates the API version for a route group. The version is taken
// from the :version path parameter; groups without one get the latest active
// version. Unsupported versions are rejected before the handler runs.
//
// Deprecated and sunset versions are still served, with the Deprecation and
// Sunset response headers set.
func Version(reg version.Registry) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requested := c.Param("version")
			v, err := reg.Resolve(requested)
			if err != nil {
				return err
			}

			if d, ok := reg.Lookup(string(v)); ok {
				h := c.Response().Header()
				if d.DeprecatedAt != nil {
					h.Set("Deprecation", "@"+strconv.FormatInt(d.DeprecatedAt.Unix(), 10))
				}
				if d.SunsetAt != nil {
					h.Set("Sunset", d.SunsetAt.UTC().Format(http.TimeFormat))
				}
			}

			metrics.VersionNegotiated(string(v), requested != "")
			c.Set(versionKey, v)
			return next(c)
		}
	}
}

// APIVersion returns the version negotiated by Version, or the latest version
// of version.Default when the middleware did not run.
func APIVersion(c echo.Context) version.Version {
	if v, ok := c.Get(versionKey).(version.Version); ok {
		return v
	}
	return version.Default.Latest()
}
