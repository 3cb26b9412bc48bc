// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/middleware"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/internal/platform/sec"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// Handler serves series, publications and readings.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// SeriesRoutes mounts /series.
func (handler *Handler) SeriesRoutes(router chi.Router) {
	router.Get("/", handler.listSeries)
	router.Get("/{id}", handler.getSeries)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createSeries)
		adminRoute.Patch("/{id}", handler.updateSeries)
		adminRoute.Delete("/{id}", handler.deleteSeries)
	})
}

/*
PublicationRoutes mounts /publications.

  - GET /?kind=&page=    every publication, or books or periodicals only
  - GET /in-progress     started and not ended
  - GET /unread          never started
  - GET /{id}            one publication with its readings
  - POST /{id}/readings  admin only, records a reading
*/
func (handler *Handler) PublicationRoutes(router chi.Router) {
	router.Get("/", handler.listPublications(PublicationFilter{}))
	router.Get("/in-progress", handler.listPublications(PublicationFilter{InProgress: true}))
	router.Get("/unread", handler.listPublications(PublicationFilter{Unread: true}))
	router.Get("/{id}", handler.getPublication)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createPublication)
		adminRoute.Patch("/{id}", handler.updatePublication)
		adminRoute.Delete("/{id}", handler.deletePublication)
		adminRoute.Post("/{id}/readings", handler.createReading)
	})
}

// ReadingRoutes mounts /readings. New readings are created under their publication.
func (handler *Handler) ReadingRoutes(router chi.Router) {
	router.Get("/", handler.listReadings)
	router.Get("/{id}", handler.getReading)

	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Patch("/{id}", handler.updateReading)
		adminRoute.Delete("/{id}", handler.deleteReading)
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
