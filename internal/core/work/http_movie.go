// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"net/http"

	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// # Movie Handlers

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListMovies(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	writePage(writer, request, params, items, total)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceMovie)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetMovie(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input MovieInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	movie, err := handler.service.CreateMovie(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, movie)
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceMovie)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetMovie(request.Context(), id)
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

	movie, err := handler.service.UpdateMovie(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movie)
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceMovie)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteMovie(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
