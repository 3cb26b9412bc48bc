// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command api is the entry point for the Spectator HTTP API server.
//
// # Startup Sequence
//
//  1. Initialize structured logger.
//  2. Load configuration from environment variables.
//  3. Connect to PostgreSQL (pgxpool).
//  4. Connect to Redis when a URL is configured.
//  5. Run database migrations (idempotent).
//  6. Wire repositories, services and HTTP handlers.
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

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/spectator/internal/api"
	"github.com/taibuivan/spectator/internal/core/creator"
	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/reading"
	"github.com/taibuivan/spectator/internal/core/venue"
	"github.com/taibuivan/spectator/internal/core/work"
	"github.com/taibuivan/spectator/internal/platform/config"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/middleware"
	"github.com/taibuivan/spectator/internal/platform/migration"
	pgstore "github.com/taibuivan/spectator/internal/platform/postgres"
	redisstore "github.com/taibuivan/spectator/internal/platform/redis"
	"github.com/taibuivan/spectator/internal/platform/sec"
)

func main() {
	// ── 1. Logger ──────────────────────────────────────────────────────────
	// Initialize first so that subsequent startup errors are structured JSON.
	rawLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	log := rawLog.With(slog.String("app", "spectator"))
	slog.SetDefault(log)

	log.Info("[Spectator] service_initializing")

	// ── 2. Configuration ──────────────────────────────────────────────────
	cfg, err := config.Load()
	must(log, err, "load configuration")

	if cfg.Debug {
		debugLog := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		log = debugLog.With(slog.String("app", "spectator"))
		slog.SetDefault(log)
		log.Debug("debug_logging_enabled")
	}

	log.Info("configuration_loaded",
		slog.String("environment", cfg.Environment),
		slog.String("port", cfg.ServerPort),
		slog.Bool("cache_enabled", cfg.CacheEnabled()),
		slog.Bool("writes_enabled", cfg.WritesEnabled()),
	)

	// Root context for startup, bounded so misconfiguration fails fast.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	// Lives as long as the process; stops background sweepers on shutdown.
	appCtx, appCancel := context.WithCancel(context.Background())
	defer appCancel()

	// ── 3. PostgreSQL ─────────────────────────────────────────────────────
	pool, err := pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer func() {
		log.Info("closing postgres pool")
		pool.Close()
	}()

	// ── 4. Redis (optional) ───────────────────────────────────────────────
	var (
		rdb   *redis.Client
		pages middleware.PageStore
	)
	if cfg.CacheEnabled() {
		rdb, err = redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() {
			log.Info("closing redis client")
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis close error", slog.Any("error", cerr))
			}
		}()

		// Assigned only here so a disabled cache stays a true nil interface
		pages = redisstore.NewPageStore(rdb)
	}

	// ── 5. Migrations ─────────────────────────────────────────────────────
	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	// ── 6. Write Authorization ────────────────────────────────────────────
	verifier, err := sec.NewVerifier(cfg.JWTPubKeyPath, cfg.JWTIssuer)
	must(log, err, "initialize jwt verifier")

	// ── 7. Health handlers (wired with real dependency checkers) ──────────
	healthDeps := api.HealthDependencies{
		CheckDatabase: func(ctx context.Context) error {
			return pgstore.Ping(ctx, pool)
		},
	}
	if rdb != nil {
		healthDeps.CheckCache = func(ctx context.Context) error {
			return redisstore.Ping(ctx, rdb)
		}
	}
	liveness, readiness := api.NewHealthHandlers(healthDeps, log)

	// ── 8. Domain Wiring ──────────────────────────────────────────────────
	eventService := event.NewService(event.NewPostgresRepository(pool), log)

	creatorService := creator.NewService(creator.NewPostgresRepository(pool), log)

	venueService := venue.NewService(venue.NewPostgresRepository(pool), eventService, cfg.GoogleMapsAPIKey, log)

	workService := work.NewService(
		work.NewMovieRepository(pool),
		work.NewPlayRepository(pool),
		work.NewProductionRepository(pool),
		eventService,
		log,
	)

	readingService := reading.NewService(
		reading.NewSeriesRepository(pool),
		reading.NewPublicationRepository(pool),
		reading.NewReadingRepository(pool),
		reading.AmazonTags{UK: cfg.AmazonTagUK, US: cfg.AmazonTagUS},
		log,
	)

	// ── 9. HTTP Server ────────────────────────────────────────────────────
	handlers := api.Handlers{
		Liveness:  liveness,
		Readiness: readiness,
		Creator:   creator.NewHandler(creatorService),
		Event:     event.NewHandler(eventService),
		Venue:     venue.NewHandler(venueService),
		Work:      work.NewHandler(workService),
		Reading:   reading.NewHandler(readingService),
	}

	server := api.NewServer(appCtx, cfg, log, verifier, pages, handlers)

	// ── 10. Graceful Shutdown ─────────────────────────────────────────────
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
// It is limited to startup wiring. After startup, errors are returned and handled.
func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("startup failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
