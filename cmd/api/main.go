// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Command api is the entry point for the Tigerlilly HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Run database migrations (idempotent).
//  5. Wire the token service, icon store, sanitizer, and metrics.
//  6. Wire HTTP handlers.
//  7. Start HTTP server with graceful shutdown.
//
// No business logic lives here. All wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tigerlilly/api/internal/api"
	"github.com/tigerlilly/api/internal/magazine/article"
	"github.com/tigerlilly/api/internal/magazine/author"
	"github.com/tigerlilly/api/internal/magazine/comment"
	"github.com/tigerlilly/api/internal/magazine/issue"
	"github.com/tigerlilly/api/internal/magazine/keyword"
	"github.com/tigerlilly/api/internal/magazine/user"
	"github.com/tigerlilly/api/internal/platform/config"
	"github.com/tigerlilly/api/internal/platform/constants"
	"github.com/tigerlilly/api/internal/platform/icon"
	"github.com/tigerlilly/api/internal/platform/metrics"
	"github.com/tigerlilly/api/internal/platform/migration"
	pgstore "github.com/tigerlilly/api/internal/platform/postgres"
	"github.com/tigerlilly/api/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Add global context to all log entries.
	log := rawLog.With(slog.String("app", "tigerlilly"))
	slog.SetDefault(log)

	log.Info("[Tigerlilly] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "tigerlilly"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
	)

	// Root context for startup. Use a 30s deadline so misconfiguration is
	// caught quickly rather than hanging indefinitely.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 5. Platform Services ──────────────────────────────────────────────
	tokenService, err := sec.NewTokenService(cfg.SecretKey, constants.AuthIssuer)
	must(log, err, "initialize token service")

	iconStore, err := icon.NewFSStore(cfg.UploadPath)
	must(log, err, "initialize icon store")

	sanitizer := bluemonday.StrictPolicy()

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// ── 6. Health handlers (wired with real dependency checkers) ──────────
	liveness, readiness := api.NewHealthHandlers(api.HealthDependencies{
		CheckDatabase: func() error {
			return pgstore.Ping(context.Background(), pool)
		},
		CheckIconStore: iconStore.Check,
	}, log)

	// ── 7. Domain Wiring ──────────────────────────────────────────────────
	userService := user.NewService(user.NewPostgresRepository(pool), tokenService, iconStore, sanitizer, collector, log)
	authorService := author.NewService(author.NewPostgresRepository(pool), iconStore, log)
	articleService := article.NewService(article.NewPostgresRepository(pool), log)
	issueService := issue.NewService(issue.NewPostgresRepository(pool), log)
	commentService := comment.NewService(comment.NewPostgresRepository(pool), sanitizer, log)
	keywordService := keyword.NewService(keyword.NewPostgresRepository(pool), log)

	// ── 8. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		User:      user.NewHandler(userService),
		Author:    author.NewHandler(authorService),
		Article:   article.NewHandler(articleService),
		Issue:     issue.NewHandler(issueService),
		Comment:   comment.NewHandler(commentService),
		Keyword:   keyword.NewHandler(keywordService),
	}

	// The server context outlives startup; it backs the rate limiter's
	// cleanup loop for the life of the process.
	serverCtx, serverCancel := context.WithCancel(context.Background())
	defer serverCancel()

	server := api.NewServer(serverCtx, cfg, log, tokenService, collector, registry, handlers)

	// ── 9. Graceful Shutdown ──────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)

	serverErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Block until OS signal or server error.
	select {
	case sig := <-quit:
		log.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-serverErr:
		log.Error("server startup error", slog.Any("error", err))
	}

	// Give in-flight requests enough time to complete.
	shutdownTimeout := constants.ShutdownTimeout
	log.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

	if err := server.Shutdown(shutdownTimeout); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	log.Info("server stopped cleanly")
}

// must logs a structured fatal error and terminates the process if err is non-nil.
//
// It is intentionally limited to startup wiring. After startup, all errors
// must be returned and handled explicitly (never panic).
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
