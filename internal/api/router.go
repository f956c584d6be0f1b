package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/access-control/docs"
	"github.com/99minutos/access-control/internal/api/handler"
	"github.com/99minutos/access-control/internal/api/middleware"
	"github.com/99minutos/access-control/internal/core/ports"
	"github.com/99minutos/access-control/internal/core/version"
)

// Dependencies are the collaborators the router wires into handlers.
type Dependencies struct {
	Users    ports.UserService
	Roles    ports.RoleService
	Versions version.Registry
	// Probes are pinged by the readiness endpoint, keyed by report name.
	Probes map[string]ports.Pinger
	Logger zerolog.Logger
	// Metrics mounts the Prometheus middleware and /metrics. Tests leave it
	// off because the HTTP collectors register globally.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	versions := deps.Versions
	if len(versions) == 0 {
		versions = version.Default
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.RequestLogger(deps.Logger))
	if deps.Metrics {
		e.Use(echoprometheus.NewMiddleware("access_control"))
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Probes)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/hello", healthHandler.Hello)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Users ---
	userHandler := handler.NewUserHandler(deps.Users)
	users := e.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	// --- Roles: latest version and explicit version prefixes ---
	roleHandler := handler.NewRoleHandler(deps.Roles)
	registerRoleRoutes(e.Group("/roles", middleware.Version(versions)), roleHandler)
	registerRoleRoutes(e.Group("/:version/roles", middleware.Version(versions)), roleHandler)

	return e
}

func registerRoleRoutes(g *echo.Group, h *handler.RoleHandler) {
	g.POST("", h.Create)
	g.GET("", h.List)
	g.GET("/users/:userId", h.UserRoles)
	g.POST("/users/:userId", h.AssignToUser)
	g.GET("/users/:userId/permissions", h.UserPermissions)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
