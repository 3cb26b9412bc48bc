// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"net/http"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// # Publication Handlers

// listPublications serves one of the fixed listings, narrowed further by ?kind=.
func (handler *Handler) listPublications(base PublicationFilter) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		params := pagination.FromRequest(request)

		filter := base
		filter.Kind = Kind(requestutil.Query(request, "kind"))
		if filter.Kind != "" && !filter.Kind.Valid() {
			respond.Error(writer, request, apperr.NotFound("Publication kind"))
			return
		}

		items, total, err := handler.service.ListPublications(request.Context(), filter, params.Limit(), params.Offset())
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		writePage(writer, request, params, items, total)
	}
}

func (handler *Handler) getPublication(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePublication)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetPublication(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createPublication(writer http.ResponseWriter, request *http.Request) {
	var input PublicationInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	publication, err := handler.service.CreatePublication(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, publication)
}

func (handler *Handler) updatePublication(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePublication)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetPublication(request.Context(), id)
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

	publication, err := handler.service.UpdatePublication(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, publication)
}

func (handler *Handler) deletePublication(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePublication)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePublication(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
