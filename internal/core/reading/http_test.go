// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/platform/ctxutil"
	"github.com/taibuivan/spectator/internal/platform/sec"
)

// asAdmin injects owner claims the way middleware.Authenticate would.
func asAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		ctx := ctxutil.WithClaims(request.Context(), &sec.AuthClaims{UserID: "owner", Role: string(sec.RoleAdmin)})
		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

func newTestRouter(admin bool) (http.Handler, *fixture) {
	f := newFixture(AmazonTags{US: "us-20"})
	handler := NewHandler(f.service)

	router := chi.NewRouter()
	if admin {
		router.Use(asAdmin)
	}
	router.Route("/series", handler.SeriesRoutes)
	router.Route("/publications", handler.PublicationRoutes)
	router.Route("/readings", handler.ReadingRoutes)
	return router, f
}

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(method, path, strings.NewReader(body)))
	return recorder
}

func TestHandler_PublicationLifecycle(t *testing.T) {
	router, _ := newTestRouter(true)

	recorder := serve(router, http.MethodPost, "/publications", `{"title":"Aurora","isbn_us":"0316098094","roles":[{"creator_id":1,"role_name":"Author"}]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = serve(router, http.MethodPost, "/publications/1/readings", `{"start_date":"2024-02-01"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = serve(router, http.MethodGet, "/publications/1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data struct {
			Title      string      `json:"title"`
			Kind       string      `json:"kind"`
			HasURLs    bool        `json:"has_urls"`
			AmazonURLs []AmazonURL `json:"amazon_urls"`
			Roles      []struct {
				RoleName string `json:"role_name"`
			} `json:"roles"`
			Readings []struct {
				StartDate        string `json:"start_date"`
				StartGranularity int    `json:"start_granularity"`
			} `json:"readings"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))

	assert.Equal(t, "Aurora", body.Data.Title)
	assert.Equal(t, "book", body.Data.Kind)
	assert.True(t, body.Data.HasURLs)
	require.Len(t, body.Data.AmazonURLs, 1)
	assert.Equal(t, "https://www.amazon.com/dp/0316098094/?tag=us-20", body.Data.AmazonURLs[0].URL)
	require.Len(t, body.Data.Roles, 1)
	assert.Equal(t, "Author", body.Data.Roles[0].RoleName)
	require.Len(t, body.Data.Readings, 1)
	assert.Equal(t, "2024-02-01", body.Data.Readings[0].StartDate)
	assert.Equal(t, 3, body.Data.Readings[0].StartGranularity)
}

func TestHandler_InProgressRouteIsNotAnID(t *testing.T) {
	router, f := newTestRouter(false)
	f.publish(t, PublicationInput{Title: "Current"})
	f.publish(t, PublicationInput{Title: "Shelf"})
	f.read(t, 1, ReadingInput{StartDate: day("2024-06-01")})

	for path, want := range map[string]string{
		"/publications/in-progress": "Current",
		"/publications/unread":      "Shelf",
	} {
		recorder := serve(router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, recorder.Code, path)

		var body struct {
			Data []Publication `json:"data"`
			Meta struct {
				Total int `json:"total"`
			} `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.Len(t, body.Data, 1, path)
		assert.Equal(t, want, body.Data[0].Title, path)
		assert.Equal(t, 1, body.Meta.Total, path)
	}
}

func TestHandler_KindFilter(t *testing.T) {
	router, f := newTestRouter(false)
	f.publish(t, PublicationInput{Title: "Book"})
	f.publish(t, PublicationInput{Title: "Issue 1", Kind: KindPeriodical})

	recorder := serve(router, http.MethodGet, "/publications?kind=periodical", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Issue 1")
	assert.NotContains(t, recorder.Body.String(), `"Book"`)

	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/publications?kind=comic", "").Code)
}

func TestHandler_PatchReading(t *testing.T) {
	router, f := newTestRouter(true)
	publication := f.publish(t, PublicationInput{Title: "Patched"})
	f.read(t, publication.ID, ReadingInput{StartDate: day("2024-01-01"), StartGranularity: GranularityMonth})

	recorder := serve(router, http.MethodPatch, "/readings/1", `{"end_date":"2024-03-01","is_finished":true}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	reading := f.readings.readings[1]
	assert.Equal(t, GranularityMonth, reading.StartGranularity)
	assert.Equal(t, "2024-03-01", reading.EndDate.String())
	assert.Equal(t, StateFinished, reading.State())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		admin  bool
		method string
		path   string
		body   string
		want   int
	}{
		{"missing publication", false, http.MethodGet, "/publications/7", "", http.StatusNotFound},
		{"missing series", false, http.MethodGet, "/series/7", "", http.StatusNotFound},
		{"missing reading", false, http.MethodGet, "/readings/7", "", http.StatusNotFound},
		{"page out of range", false, http.MethodGet, "/readings?page=2", "", http.StatusNotFound},
		{"anonymous reading", false, http.MethodPost, "/publications/1/readings", `{}`, http.StatusUnauthorized},
		{"reading of missing publication", true, http.MethodPost, "/publications/7/readings", `{}`, http.StatusNotFound},
		{"bad granularity", true, http.MethodPost, "/publications/1/readings", `{"end_granularity":1}`, http.StatusBadRequest},
		{"unknown field", true, http.MethodPost, "/series", `{"title":"X","colour":"red"}`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, f := newTestRouter(tt.admin)
			f.publish(t, PublicationInput{Title: "Exists"})

			assert.Equal(t, tt.want, serve(router, tt.method, tt.path, tt.body).Code)
		})
	}
}
