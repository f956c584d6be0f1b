package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/access-control/internal/core/domain"
)

// absURL builds scheme://host<path> from the incoming request.
func absURL(c echo.Context, path string) string {
	return c.Scheme() + "://" + c.Request().Host + path
}

// collectionURL is the absolute URL of the collection the request targets,
// with any trailing slash or id segment removed.
func collectionURL(c echo.Context, idParam string) string {
	path := strings.TrimSuffix(c.Request().URL.Path, "/")
	if id := c.Param(idParam); id != "" {
		path = strings.TrimSuffix(path, "/"+id)
	}
	return absURL(c, path)
}

// invalidPayload turns a bind failure into a 400 validation error.
func invalidPayload(err error) error {
	details := err.Error()
	var he *echo.HTTPError
	if errors.As(err, &he) {
		details = fmt.Sprintf("%v", he.Message)
	}
	return domain.Validation("Invalid request").WithDetails(details)
}
