// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	requestutil "github.com/taibuivan/spectator/internal/platform/request"
)

func TestID(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    int64
		missing bool
	}{
		{"numeric", "/venues/42", 42, false},
		{"zero", "/venues/0", 0, true},
		{"negative", "/venues/-1", 0, true},
		{"text", "/venues/abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				got int64
				err error
			)

			router := chi.NewRouter()
			router.Get("/venues/{id}", func(w http.ResponseWriter, r *http.Request) {
				got, err = requestutil.ID(r, "id", "Venue")
			})
			router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.missing {
				assert.True(t, apperr.IsNotFound(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryID(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/events?venue=7&movie=x", nil)

	venue, err := requestutil.QueryID(request, "venue")
	require.NoError(t, err)
	require.NotNil(t, venue)
	assert.Equal(t, int64(7), *venue)

	_, err = requestutil.QueryID(request, "movie")
	assert.Error(t, err)

	absent, err := requestutil.QueryID(request, "production")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestDecodeJSON(t *testing.T) {
	var target struct {
		Name string `json:"name"`
	}

	ok := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Barbican"}`))
	require.NoError(t, requestutil.DecodeJSON(ok, &target))
	assert.Equal(t, "Barbican", target.Name)

	unknown := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x"}`))
	assert.Error(t, requestutil.DecodeJSON(unknown, &target))

	broken := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.Error(t, requestutil.DecodeJSON(broken, &target))
}
