package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/99minutos/users-service/docs"
	"github.com/99minutos/users-service/internal/api/handler"
	"github.com/99minutos/users-service/internal/api/middleware"
	"github.com/99minutos/users-service/internal/core/ports"
)

// Deps carries everything the HTTP layer needs. Registry is optional: when nil
// neither the request metrics middleware nor /metrics is mounted.
type Deps struct {
	Users    ports.UserService
	Auth     ports.AuthService
	Tokens   ports.TokenVerifier
	Checks   map[string]handler.PingFunc
	Registry *prometheus.Registry
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if d.Registry != nil {
		e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
			Subsystem:                 "http",
			Registerer:                d.Registry,
			DoNotUseRequestPathFor404: true,
		}))
	}

	// --- Dependencies ---
	userHandler := handler.NewUserHandler(d.Users)
	authHandler := handler.NewAuthHandler(d.Auth)
	authMiddleware := middleware.Auth(d.Tokens)

	// --- User routes ---
	e.POST("/user/:username/:email/:password", userHandler.CreateFromPath)
	e.POST("/user", userHandler.CreateFromBody)
	e.GET("/user/:email", userHandler.Get)
	e.DELETE("/user/:email", userHandler.Delete, authMiddleware)
	e.GET("/users", userHandler.List)

	// --- Auth routes ---
	e.POST("/auth", authHandler.Login)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	if d.Registry != nil {
		e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
			Gatherer: d.Registry,
		}))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
