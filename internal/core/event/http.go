// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/middleware"
	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/internal/platform/sec"
	"github.com/taibuivan/spectator/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/*
RegisterRoutes mounts the combined event endpoints.

  - GET /?kind=&venue=&page=  every event, or one kind, latest first
  - GET /{id}                 any event
  - POST, PATCH, DELETE       admin only
*/
func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listEvents)
	router.Get("/{id}", handler.getEvent)

	// Owner only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createEvent)
		adminRoute.Patch("/{id}", handler.updateEvent)
		adminRoute.Delete("/{id}", handler.deleteEvent)
	})
}

// TitledRoutes mounts the title-ordered list and detail of concerts or misc events.
func (handler *Handler) TitledRoutes(kind Kind) func(chi.Router) {
	return func(router chi.Router) {
		router.Get("/", handler.listTitled(kind))
		router.Get("/{id}", handler.getOfKind(kind))
	}
}

func (handler *Handler) listEvents(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := Filter{Kind: Kind(requestutil.Query(request, "kind"))}
	if filter.Kind != "" && !filter.Kind.Valid() {
		respond.Error(writer, request, apperr.NotFound("Event kind"))
		return
	}

	venueID, err := requestutil.QueryID(request, "venue")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	filter.VenueID = venueID

	events, total, err := handler.service.List(request.Context(), filter, params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	meta := pagination.NewMeta(params.Page, total)
	if meta.OutOfRange() {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	counts, err := handler.service.Counts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Page(writer, events, meta, counts.Context(filter.Kind))
}

func (handler *Handler) listTitled(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		params := pagination.FromRequest(request)

		events, total, err := handler.service.ListTitled(request.Context(), kind, params.Limit(), params.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		meta := pagination.NewMeta(params.Page, total)
		if meta.OutOfRange() {
			respond.Error(writer, request, apperr.NotFound("Page"))
			return
		}

		respond.Page(writer, events, meta, map[string]any{"event_kind": ContextName(kind)})
	}
}

func (handler *Handler) getEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) getOfKind(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		id, err := requestutil.ID(request, "id", kind.Resource())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}

		event, err := handler.service.GetOfKind(request.Context(), kind, id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, event)
	}
}

func (handler *Handler) createEvent(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, event)
}

func (handler *Handler) updateEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Fields missing from the body keep their current value
	input := current.Input()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	event, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, event)
}

func (handler *Handler) deleteEvent(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
