// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"net/http"

	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// # Series Handlers

func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListSeries(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	writePage(writer, request, params, items, total)
}

func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceSeries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	detail, err := handler.service.GetSeries(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, detail)
}

func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	var input SeriesInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	series, err := handler.service.CreateSeries(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, series)
}

func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceSeries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetSeries(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := current.Input()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	series, err := handler.service.UpdateSeries(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, series)
}

func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceSeries)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteSeries(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
