// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server serves the keyword discovery dashboard: an HTML form that
// runs a discovery, a JSON API for the same, CSV downloads of past runs and
// a Prometheus endpoint.
package server

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/keyword-discovery/internal/expand"
	"github.com/pdiddy/keyword-discovery/internal/metrics"
	"github.com/pdiddy/keyword-discovery/pkg/types"
)

//go:embed views/*.html
var viewsFS embed.FS

// DefaultAddr is used when no listen address is configured.
const DefaultAddr = ":8080"

// recentLimit bounds how many runs stay downloadable without a store.
const recentLimit = 50

// RunStore persists finished runs. *store.Store implements it.
type RunStore interface {
	SaveRun(ctx context.Context, run types.Run) error
	GetRun(ctx context.Context, id string) (types.Run, error)
}

// Deps are the collaborators a Server runs discoveries with.
type Deps struct {
	Suggester expand.Suggester

	// Options is the base expansion configuration. Deep is set per request.
	Options expand.Options

	// Metrics is optional; when set, /metrics exposes its registry.
	Metrics *metrics.Metrics

	// Store is optional; when set, every run is saved and downloads fall
	// back to it for runs no longer held in memory.
	Store RunStore

	Logger zerolog.Logger
}

// Server wraps the fiber app and its dependencies.
type Server struct {
	App *fiber.App

	addr   string
	deps   Deps
	recent *recentRuns
	log    zerolog.Logger
}

// New builds the app and registers all routes.
func New(cfg types.ServerConfig, deps Deps) (*Server, error) {
	views, err := fs.Sub(viewsFS, "views")
	if err != nil {
		return nil, fmt.Errorf("loading views: %w", err)
	}
	engine := html.NewFileSystem(http.FS(views), ".html")
	engine.AddFunc("pct", func(v float64) string { return fmt.Sprintf("%.1f%%", v) })

	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		addr:   addr,
		deps:   deps,
		recent: newRecentRuns(recentLimit),
		log:    deps.Logger.With().Str("component", "server").Logger(),
	}

	s.App = fiber.New(fiber.Config{
		Views:                 engine,
		DisableStartupMessage: true,
		// Runs outlive their request in the recent-runs cache, so query
		// values must not alias fasthttp's reused buffers.
		Immutable: true,
		ErrorHandler:          s.handleError,
	})
	s.App.Use(recover.New())
	s.App.Use(requestLogger(s.log))

	s.routes()
	return s, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string { return s.addr }

// Start listens until the app is shut down.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.addr).Msg("dashboard listening")
	return s.App.Listen(s.addr)
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	return s.App.Shutdown()
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(code).Render("index", s.page(c, err.Error()))
}

func requestLogger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
		return err
	}
}
