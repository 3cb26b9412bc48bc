// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// Page size is fixed server-side; the only client input is the page number.
package pagination

import (
	"net/http"
	"strconv"

	"github.com/taibuivan/spectator/internal/platform/constants"
)

// DefaultPage is the starting page (1-indexed).
const DefaultPage = 1

// Params holds the parsed page number.
type Params struct {
	Page int
}

// Limit returns the SQL LIMIT, always [constants.PageSize].
func (p Params) Limit() int {
	return constants.PageSize
}

// Offset returns the SQL OFFSET value derived from Page.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * constants.PageSize
}

// Meta is the pagination metadata included in API list responses.
type Meta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
func NewMeta(page, total int) Meta {
	return Meta{
		Page:       page,
		Limit:      constants.PageSize,
		Total:      total,
		TotalPages: (total + constants.PageSize - 1) / constants.PageSize,
	}
}

// OutOfRange reports whether the page lies past the last page.
// Page 1 of an empty list is in range.
func (m Meta) OutOfRange() bool {
	return m.Page > 1 && m.Page > m.TotalPages
}

// FromRequest parses the "page" query parameter.
//
// Missing, malformed, or non-positive values fall back to [DefaultPage].
func FromRequest(r *http.Request) Params {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return Params{Page: DefaultPage}
	}

	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return Params{Page: DefaultPage}
	}

	return Params{Page: page}
}
