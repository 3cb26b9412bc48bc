// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

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

func (handler *Handler) RegisterRoutes(router chi.Router) {
	// Public
	router.Get("/", handler.listCreators)
	router.Get("/{id}", handler.getCreator)

	// Owner only
	router.Group(func(adminRoute chi.Router) {
		adminRoute.Use(middleware.RequireRole(sec.RoleAdmin))

		adminRoute.Post("/", handler.createCreator)
		adminRoute.Patch("/{id}", handler.updateCreator)
		adminRoute.Delete("/{id}", handler.deleteCreator)
	})
}

func (handler *Handler) listCreators(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	creators, total, err := handler.service.List(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	meta := pagination.NewMeta(params.Page, total)
	if meta.OutOfRange() {
		respond.Error(writer, request, apperr.NotFound("Page"))
		return
	}

	respond.Paginated(writer, creators, meta)
}

func (handler *Handler) getCreator(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resource)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.Get(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createCreator(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	creator, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, creator)
}

func (handler *Handler) updateCreator(writer http.ResponseWriter, request *http.Request) {
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

	creator, err := handler.service.Update(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, creator)
}

func (handler *Handler) deleteCreator(writer http.ResponseWriter, request *http.Request) {
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
