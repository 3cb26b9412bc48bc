// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/ctxutil"
	"github.com/taibuivan/spectator/internal/platform/middleware"
	"github.com/taibuivan/spectator/internal/platform/sec"
)

// # Fakes

type fakeVerifier struct {
	claims map[string]*sec.AuthClaims
}

func (verifier *fakeVerifier) Verify(token string) (*sec.AuthClaims, error) {
	claims, ok := verifier.claims[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return claims, nil
}

type memoryStore struct {
	mu         sync.Mutex
	generation int64
	pages      map[string][]byte
}

func newMemoryStore() *memoryStore {
	return &memoryStore{pages: make(map[string][]byte)}
}

func (store *memoryStore) Generation(context.Context) (int64, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.generation, nil
}

func (store *memoryStore) Bump(context.Context) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.generation++
	return nil
}

func (store *memoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	payload, ok := store.pages[key]
	return payload, ok, nil
}

func (store *memoryStore) Set(_ context.Context, key string, payload []byte, _ time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.pages[key] = payload
	return nil
}

type devConfig struct{ dev bool }

func (c devConfig) IsDevelopment() bool  { return c.dev }
func (c devConfig) OriginSuffix() string { return "spectator.app" }

// # Tests

func TestRequestID(t *testing.T) {
	var seen string
	handler := middleware.RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = ctxutil.GetRequestID(r.Context())
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("X-Request-ID", "from-client")
	handler.ServeHTTP(httptest.NewRecorder(), request)
	assert.Equal(t, "from-client", seen)
}

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name    string
		dev     bool
		origin  string
		allowed bool
	}{
		{"production allowed", false, "https://www.spectator.app", true},
		{"production foreign", false, "https://evil.example", false},
		{"development anything", true, "http://localhost:3000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)

			recorder := httptest.NewRecorder()
			middleware.CORS(devConfig{dev: tt.dev})(ok).ServeHTTP(recorder, request)

			if tt.allowed {
				assert.Equal(t, tt.origin, recorder.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestAuthorization(t *testing.T) {
	verifier := &fakeVerifier{claims: map[string]*sec.AuthClaims{
		"admin-token":  {UserID: "owner", Role: "admin"},
		"viewer-token": {UserID: "guest", Role: "viewer"},
	}}

	protected := middleware.Authenticate(verifier)(
		middleware.RequireRole(sec.RoleAdmin)(
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusCreated)
			}),
		),
	)

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"anonymous", "", http.StatusUnauthorized},
		{"malformed", "Token abc", http.StatusUnauthorized},
		{"unknown token", "Bearer nope", http.StatusUnauthorized},
		{"insufficient role", "Bearer viewer-token", http.StatusForbidden},
		{"admin", "Bearer admin-token", http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/venues", nil)
			if tt.header != "" {
				request.Header.Set("Authorization", tt.header)
			}

			recorder := httptest.NewRecorder()
			protected.ServeHTTP(recorder, request)
			assert.Equal(t, tt.status, recorder.Code)
		})
	}
}

func TestSanitizeJSON(t *testing.T) {
	var received string
	handler := middleware.SanitizeJSON()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
	}))

	body := `{"title":"<b>Simon & Garfunkel</b>","roles":[{"role_name":"<script>x</script>Vocals","creator_id":12345678901}]}`
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/concerts", strings.NewReader(body)))

	var decoded struct {
		Title string `json:"title"`
		Roles []struct {
			RoleName  string `json:"role_name"`
			CreatorID int64  `json:"creator_id"`
		} `json:"roles"`
	}
	require.NoError(t, json.Unmarshal([]byte(received), &decoded))

	assert.Equal(t, "Simon & Garfunkel", decoded.Title)
	require.Len(t, decoded.Roles, 1)
	assert.Equal(t, "Vocals", decoded.Roles[0].RoleName)
	assert.Equal(t, int64(12345678901), decoded.Roles[0].CreatorID)

	// Ampersands stay literal on the wire
	assert.Contains(t, received, `Simon & Garfunkel`)
	assert.NotContains(t, received, `\u0026`)
}

func TestSanitizeJSON_BodyTooLarge(t *testing.T) {
	called := false
	handler := middleware.SanitizeJSON()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	body := `{"title":"` + strings.Repeat("x", constants.MaxBodyBytes) + `"}`
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPatch, "/venues/1", strings.NewReader(body)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, recorder.Code)
	assert.False(t, called)
}

func TestSanitizeJSON_InvalidBodyPassesThrough(t *testing.T) {
	var received string
	handler := middleware.SanitizeJSON()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		received = string(body)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/venues", strings.NewReader(`{"name":`)))
	assert.Equal(t, `{"name":`, received)
}

func TestCache(t *testing.T) {
	store := newMemoryStore()
	calls := 0

	router := http.NewServeMux()
	router.HandleFunc("GET /venues", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[]}`)
	})
	router.HandleFunc("POST /venues", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	handler := middleware.Cache(store, time.Minute)(router)

	get := func() *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/venues", nil))
		return recorder
	}

	first := get()
	assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

	second := get()
	assert.Equal(t, "HIT", second.Header().Get("X-Cache"))
	assert.Equal(t, `{"data":[]}`, second.Body.String())
	assert.Equal(t, "application/json", second.Header().Get("Content-Type"))
	assert.Equal(t, 1, calls)

	// A successful write invalidates every cached page
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/venues", nil))

	third := get()
	assert.Equal(t, "MISS", third.Header().Get("X-Cache"))
	assert.Equal(t, 2, calls)
}

func TestCache_Disabled(t *testing.T) {
	handler := middleware.Cache(nil, time.Minute)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTeapot, recorder.Code)
	assert.Empty(t, recorder.Header().Get("X-Cache"))
}
