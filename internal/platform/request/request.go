// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the router's parameter extraction and common body decoding
patterns, so every handler fails the same way on malformed input.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/ctxutil"
	"github.com/taibuivan/spectator/internal/platform/sec"
	"github.com/taibuivan/spectator/internal/platform/validate"
)

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(request.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID parses a named URL parameter as a positive integer primary key.

Returns:
  - int64: the id
  - error: apperr.NotFound(resource) when the segment is not a valid id
*/
func ID(request *http.Request, name, resource string) (int64, error) {
	raw := chi.URLParam(request, name)

	// A malformed id can never match a row
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(resource)
	}

	return id, nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
Query retrieves a single query-string value.
*/
func Query(request *http.Request, name string) string {
	return request.URL.Query().Get(name)
}

/*
QueryID parses an optional numeric query parameter such as ?venue=12.

Returns nil when absent, and a validation error when present but malformed.
*/
func QueryID(request *http.Request, name string) (*int64, error) {
	raw := request.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, validate.FieldError(name, "Must be a positive integer")
	}

	return &id, nil
}

/*
Claims extracts the verified token claims from the request context.

Returns nil if the request carried no token.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetClaims(request.Context())
}
