// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/ctxutil"
)

// PageStore is the storage behind [Cache]. The Redis implementation lives in
// the redis package; a nil PageStore disables caching.
type PageStore interface {
	// Generation returns the current write generation.
	Generation(ctx context.Context) (int64, error)
	// Bump advances the generation so every cached page becomes unreachable.
	Bump(ctx context.Context) error
	// Get returns a cached payload, or ok=false on a miss.
	Get(ctx context.Context, key string) (payload []byte, ok bool, err error)
	// Set stores a payload until ttl elapses.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

// captureWriter records status and body while forwarding to the client.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// Cache serves anonymous GET responses from store and invalidates on writes.
//
// # Flow
//  1. Authenticated requests and non-GET reads bypass the cache.
//  2. GET: the key embeds the current generation, so a hit is never older than the last write.
//  3. Any other method that finishes with a 2xx status bumps the generation.
//
// Store errors are logged and the request falls through to the handler.
func Cache(store PageStore, ttl time.Duration) func(http.Handler) http.Handler {
	if store == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			ctx := request.Context()
			logger := ctxutil.GetLogger(ctx)

			if request.Method != http.MethodGet {
				recorder := &statusRecorder{ResponseWriter: writer, status: http.StatusOK}
				next.ServeHTTP(recorder, request)

				if recorder.status >= 200 && recorder.status < 300 {
					if err := store.Bump(context.WithoutCancel(ctx)); err != nil {
						logger.WarnContext(ctx, "cache_bump_failed", slog.String("error", err.Error()))
					}
				}
				return
			}

			if request.Header.Get(constants.HeaderAuthorization) != "" {
				next.ServeHTTP(writer, request)
				return
			}

			generation, err := store.Generation(ctx)
			if err != nil {
				logger.WarnContext(ctx, "cache_unavailable", slog.String("error", err.Error()))
				next.ServeHTTP(writer, request)
				return
			}

			key := pageKey(generation, request)

			if payload, ok, err := store.Get(ctx, key); err == nil && ok {
				if status, header, body, valid := decodePayload(payload); valid {
					for name, values := range header {
						if strings.EqualFold(name, "Content-Length") {
							continue
						}
						for _, value := range values {
							writer.Header().Add(name, value)
						}
					}
					writer.Header().Set(constants.HeaderXCache, "HIT")
					writer.WriteHeader(status)
					_, _ = writer.Write(body)
					return
				}
			}

			capture := &captureWriter{ResponseWriter: writer, status: http.StatusOK}
			writer.Header().Set(constants.HeaderXCache, "MISS")

			next.ServeHTTP(capture, request)

			// Only successful pages are cached; a 404 may turn into a 200 after the next write anyway
			if capture.status != http.StatusOK {
				return
			}

			header := writer.Header().Clone()
			header.Del(constants.HeaderXCache)
			header.Del(constants.HeaderXRequestID)

			payload, err := encodePayload(capture.status, header, capture.buf.Bytes())
			if err != nil {
				return
			}

			if err := store.Set(context.WithoutCancel(ctx), key, payload, ttl); err != nil {
				logger.WarnContext(ctx, "cache_store_failed", slog.String("error", err.Error()))
			}
		})
	}
}

// pageKey hashes the path and query under the generation prefix.
func pageKey(generation int64, request *http.Request) string {
	sum := sha1.Sum([]byte(request.URL.Path + "?" + request.URL.RawQuery))
	return fmt.Sprintf("%s%d:%x", constants.RedisPrefixPage, generation, sum[:])
}

// encodePayload packs: [4 bytes status][4 bytes headerLen][headerJSON][body]
func encodePayload(status int, header http.Header, body []byte) ([]byte, error) {
	headerJSON, err := json.Marshal(header)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 8+len(headerJSON)+len(body))
	binary.BigEndian.PutUint32(out[0:4], uint32(status))
	binary.BigEndian.PutUint32(out[4:8], uint32(len(headerJSON)))
	copy(out[8:], headerJSON)
	copy(out[8+len(headerJSON):], body)
	return out, nil
}

func decodePayload(payload []byte) (status int, header http.Header, body []byte, ok bool) {
	if len(payload) < 8 {
		return 0, nil, nil, false
	}

	status = int(binary.BigEndian.Uint32(payload[0:4]))
	headerLen := int(binary.BigEndian.Uint32(payload[4:8]))
	if headerLen < 0 || 8+headerLen > len(payload) {
		return 0, nil, nil, false
	}

	header = make(http.Header)
	if headerLen > 0 {
		if err := json.Unmarshal(payload[8:8+headerLen], &header); err != nil {
			return 0, nil, nil, false
		}
	}

	return status, header, payload[8+headerLen:], true
}
