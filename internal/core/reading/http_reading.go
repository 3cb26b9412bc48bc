// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"net/http"

	requestutil "github.com/taibuivan/spectator/internal/platform/request"
	"github.com/taibuivan/spectator/internal/platform/respond"
	"github.com/taibuivan/spectator/pkg/pagination"
)

// # Reading Handlers

func (handler *Handler) listReadings(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	items, total, err := handler.service.ListReadings(request.Context(), params.Limit(), params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	writePage(writer, request, params, items, total)
}

func (handler *Handler) getReading(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceReading)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.service.GetReading(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reading)
}

// createReading is mounted under /publications/{id}/readings.
func (handler *Handler) createReading(writer http.ResponseWriter, request *http.Request) {
	publicationID, err := requestutil.ID(request, "id", resourcePublication)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input ReadingInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.service.CreateReading(request.Context(), publicationID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, reading)
}

func (handler *Handler) updateReading(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceReading)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	current, err := handler.service.GetReading(request.Context(), id)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	input := current.Input()
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	reading, err := handler.service.UpdateReading(request.Context(), id, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, reading)
}

func (handler *Handler) deleteReading(writer http.ResponseWriter, request *http.Request) {
	id, err := requestutil.ID(request, "id", resourceReading)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteReading(request.Context(), id); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}
