// Package stub implements the BuildFlow REST contract in memory: the demo
// accounts, seeded portfolio data, and computed fields normally owned by
// the real backend. The CLI serves it for local development and the SDK
// tests run against it via httptest.
package stub

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

// Options configures a stub Server.
type Options struct {
	JWTSecret string
	// TokenTTL bounds issued tokens. Zero selects 8 hours.
	TokenTTL time.Duration
	Logger   zerolog.Logger
}

// Server is the in-memory BuildFlow API.
type Server struct {
	echo      *echo.Echo
	accounts  map[string]*demoAccount
	data      *dataset
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// New builds the server with demo accounts and seeded data.
func New(opts Options) *Server {
	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 8 * time.Hour
	}
	s := &Server{
		accounts:  demoAccounts(),
		data:      newDataset(),
		jwtSecret: opts.JWTSecret,
		tokenTTL:  ttl,
		log:       opts.Logger,
	}
	s.echo = s.router()
	return s
}

// Handler exposes the router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves on addr until the process exits.
func (s *Server) Start(addr string) error {
	s.log.Info().Str("addr", addr).Msg("stub API listening")
	return s.echo.Start(addr)
}

func (s *Server) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = newValidator()
	e.HTTPErrorHandler = newHTTPErrorHandler(s.log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())

	// Per-instance registry so several servers can coexist in one process.
	registry := prometheus.NewRegistry()
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "buildflow_stub",
		Registerer: registry,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: registry}))

	// Public auth endpoints.
	e.POST("/api/auth/login", s.handleLogin)
	e.GET("/api/auth/demo-users", s.handleDemoUsers)

	// Everything below requires a valid bearer token.
	auth := e.Group("", s.requireAuth)
	auth.GET("/api/auth/me", s.handleMe)

	auth.GET("/api/projects/", s.handleListProjects)
	auth.POST("/api/projects/", s.handleCreateProject)
	auth.GET("/api/projects/:id", s.handleGetProject)
	auth.PUT("/api/projects/:id", s.handleUpdateProject)
	auth.DELETE("/api/projects/:id", s.handleDeleteProject)

	auth.GET("/api/tasks/", s.handleListTasks)
	auth.POST("/api/tasks/", s.handleCreateTask)
	auth.GET("/api/tasks/:id", s.handleGetTask)
	auth.PUT("/api/tasks/:id", s.handleUpdateTask)
	auth.DELETE("/api/tasks/:id", s.handleDeleteTask)
	auth.GET("/api/tasks/project/:id/overdue", s.handleOverdueTasks)

	auth.GET("/api/resources/", s.handleListResources)
	auth.POST("/api/resources/", s.handleCreateResource)
	auth.GET("/api/resources/:id", s.handleGetResource)
	auth.PUT("/api/resources/:id", s.handleUpdateResource)
	auth.DELETE("/api/resources/:id", s.handleDeleteResource)

	auth.GET("/api/budgets/", s.handleListBudgets)
	auth.POST("/api/budgets/", s.handleCreateBudget)
	auth.GET("/api/budgets/:id", s.handleGetBudget)
	auth.PUT("/api/budgets/:id", s.handleUpdateBudget)
	auth.DELETE("/api/budgets/:id", s.handleDeleteBudget)

	auth.GET("/api/analytics/dashboard", s.handleDashboard)
	auth.GET("/api/analytics/team-performance", s.handleTeamPerformance)

	auth.GET("/api/users/profile", s.handleGetProfile)
	auth.PUT("/api/users/profile", s.handleUpdateProfile)
	auth.GET("/api/users/team", s.handleTeam)
	auth.GET("/api/users/activity-log", s.handleActivityLog, s.requireRoles("admin"))

	auth.POST("/api/import/csv", s.handleImportCSV, s.requireRoles("admin"))
	auth.POST("/api/import/excel", s.handleImportExcel, s.requireRoles("admin"))

	return e
}

// errorResponse matches the real backend's envelope.
type errorResponse struct {
	Detail string `json:"detail"`
}

// newHTTPErrorHandler renders every error as {"detail": "<message>"},
// logging unexpected ones without leaking details to the client.
func newHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			_ = c.JSON(he.Code, errorResponse{Detail: fmt.Sprintf("%v", he.Message)})
			return
		}

		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")
		_ = c.JSON(http.StatusInternalServerError, errorResponse{Detail: "internal server error"})
	}
}
