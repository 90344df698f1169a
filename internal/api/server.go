// Copyright (c) 2026 Tigerlilly. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tigerlilly/api/internal/magazine/article"
	"github.com/tigerlilly/api/internal/magazine/author"
	"github.com/tigerlilly/api/internal/magazine/comment"
	"github.com/tigerlilly/api/internal/magazine/issue"
	"github.com/tigerlilly/api/internal/magazine/keyword"
	"github.com/tigerlilly/api/internal/magazine/user"
	"github.com/tigerlilly/api/internal/platform/config"
	"github.com/tigerlilly/api/internal/platform/constants"
	"github.com/tigerlilly/api/internal/platform/metrics"
	"github.com/tigerlilly/api/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// User handles registration, login, profiles, and site feedback.
	User *user.Handler

	// Author manages contributor profiles.
	Author *author.Handler

	// Article manages the article catalogue and search.
	Article *article.Handler

	// Issue manages published issues and their article rosters.
	Issue *issue.Handler

	// Comment manages reader comments on articles.
	Comment *comment.Handler

	// Keyword manages article tag associations.
	Keyword *keyword.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, collector *metrics.Collector, gatherer prometheus.Gatherer, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(metrics.Instrument(collector))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated probes for container orchestration and scraping.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	r.Method(http.MethodGet, "/metrics", metrics.Handler(gatherer))

	// # Application API
	// Domain-specific route groups, one per entity.
	r.Route("/users", h.User.RegisterRoutes)
	r.Route("/authors", h.Author.RegisterRoutes)
	r.Route("/articles", h.Article.RegisterRoutes)
	r.Route("/issues", h.Issue.RegisterRoutes)
	r.Route("/comments", h.Comment.RegisterRoutes)
	r.Route("/keywords", h.Keyword.RegisterRoutes)

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
