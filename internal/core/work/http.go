// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/middleware"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/internal/platform/sec"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// Handler serves movies, plays and productions.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// MovieRoutes mounts /movies.
func (handler *Handler) MovieRoutes(router chi.Router) {
	router.Get("/", handler.listMovies)
	router.Get("/{id}", handler.getMovie)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createMovie)
		adminRoute.Patch("/{id}", handler.updateMovie)
		adminRoute.Delete("/{id}", handler.deleteMovie)
	})
}

// PlayRoutes mounts /plays.
func (handler *Handler) PlayRoutes(router chi.Router) {
	router.Get("/", handler.listPlays)
	router.Get("/{id}", handler.getPlay)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createPlay)
		adminRoute.Patch("/{id}", handler.updatePlay)
		adminRoute.Delete("/{id}", handler.deletePlay)
	})
}

// ProductionRoutes mounts /productions.
func (handler *Handler) ProductionRoutes(router chi.Router) {
	router.Get("/", handler.listProductions)
	router.Get("/{id}", handler.getProduction)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createProduction)
		adminRoute.Patch("/{id}", handler.updateProduction)
		adminRoute.Delete("/{id}", handler.deleteProduction)
	})
}

// writePage sends a list page, or not-found for a page past the end.
func writePage(writer http.ResponseWriter, request *http.Request, params pagination.Params, items any, total int) {
	meta := pagination.NewMeta(params.Page, total)
	if meta.OutOfRange() {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}
	respond.Paginated(writer, items, meta)
}
