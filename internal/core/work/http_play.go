// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"net/http"

	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// # Play Handlers

func (handler *Handler) listPlays(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListPlays(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	writePage(writer, request, params, items, total)
}

func (handler *Handler) getPlay(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePlay)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetPlay(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createPlay(writer http.ResponseWriter, request *http.Request) {
	var input PlayInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	play, err := handler.service.CreatePlay(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, play)
}

func (handler *Handler) updatePlay(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePlay)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetPlay(request.Context(), id)
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

	play, err := handler.service.UpdatePlay(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, play)
}

func (handler *Handler) deletePlay(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourcePlay)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeletePlay(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

// # Production Handlers

func (handler *Handler) listProductions(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListProductions(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	writePage(writer, request, params, items, total)
}

func (handler *Handler) getProduction(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceProduction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetProduction(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createProduction(writer http.ResponseWriter, request *http.Request) {
	var input ProductionInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	production, err := handler.service.CreateProduction(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, production)
}

func (handler *Handler) updateProduction(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceProduction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetProduction(request.Context(), id)
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

	production, err := handler.service.UpdateProduction(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, production)
}

func (handler *Handler) deleteProduction(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceProduction)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteProduction(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
