// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

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

	"github.com/taibuivan/spectator/internal/core/creator"
	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/reading"
	"github.com/taibuivan/spectator/internal/core/venue"
	"github.com/taibuivan/spectator/internal/core/work"
	"github.com/taibuivan/spectator/internal/platform/config"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/middleware"
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
type Handlers struct {
	// Liveness is the /health handler, 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 when every dependency answers.
	Readiness http.HandlerFunc

	Creator *creator.Handler
	Event   *event.Handler
	Venue   *venue.Handler
	Work    *work.Handler
	Reading *reading.Handler
}

// # Server Initialization

/*
NewServer constructs the chi router with the full middleware chain and
registers all route groups.

A nil pages store serves every request uncached.
*/
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, pages middleware.PageStore, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Use(middleware.SanitizeJSON())
		api.Use(middleware.Cache(pages, cfg.CacheTTL))

		Mount(api, h)
	})

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

/*
Mount registers every domain route group on router.

  - /events, /concerts, /misc-events
  - /movies, /plays, /productions
  - /venues, /creators
  - /publications, /series, /readings
*/
func Mount(router chi.Router, h Handlers) {
	router.Route("/events", h.Event.RegisterRoutes)
	router.Route("/concerts", h.Event.TitledRoutes(event.KindConcert))
	router.Route("/misc-events", h.Event.TitledRoutes(event.KindMisc))

	router.Route("/movies", h.Work.MovieRoutes)
	router.Route("/plays", h.Work.PlayRoutes)
	router.Route("/productions", h.Work.ProductionRoutes)

	router.Route("/venues", h.Venue.RegisterRoutes)
	router.Route("/creators", h.Creator.RegisterRoutes)

	router.Route("/publications", h.Reading.PublicationRoutes)
	router.Route("/series", h.Reading.SeriesRoutes)
	router.Route("/readings", h.Reading.ReadingRoutes)
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Handler exposes the composed router, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
