// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package pagination_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/spectator/pkg/pagination"
)

func TestFromRequest(t *testing.T) {
	tests := []struct {
		query  string
		page   int
		offset int
	}{
		{"", 1, 0},
		{"?page=2", 2, 25},
		{"?page=0", 1, 0},
		{"?page=abc", 1, 0},
		{"?page=3&limit=500", 3, 50},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			params := pagination.FromRequest(httptest.NewRequest(http.MethodGet, "/events"+tt.query, nil))
			assert.Equal(t, tt.page, params.Page)
			assert.Equal(t, tt.offset, params.Offset())
			assert.Equal(t, 25, params.Limit())
		})
	}
}

func TestNewMeta(t *testing.T) {
	assert.Equal(t, 0, pagination.NewMeta(1, 0).TotalPages)
	assert.Equal(t, 1, pagination.NewMeta(1, 25).TotalPages)
	assert.Equal(t, 2, pagination.NewMeta(1, 26).TotalPages)

	assert.False(t, pagination.NewMeta(1, 0).OutOfRange())
	assert.False(t, pagination.NewMeta(2, 26).OutOfRange())
	assert.True(t, pagination.NewMeta(3, 26).OutOfRange())
}
