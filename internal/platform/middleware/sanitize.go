// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"html"
	"io"
	"net/http"

	"github.com/microcosm-cc/bluemonday"

	"github.com/taibuivan/spectator/internal/platform/constants"
)

// SanitizeJSON strips markup from every string in a JSON write body.
//
// Nested objects and arrays (role lists) are walked too. Entities produced by
// the policy are unescaped again so "Simon & Garfunkel" survives intact.
// Bodies that are not valid JSON are passed on untouched and rejected by the handler.
// Bodies over [constants.MaxBodyBytes] are refused with 413.
func SanitizeJSON() func(http.Handler) http.Handler {
	policy := bluemonday.StrictPolicy()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if request.Body == nil || (request.Method != http.MethodPost &&
				request.Method != http.MethodPut &&
				request.Method != http.MethodPatch) {
				next.ServeHTTP(writer, request)
				return
			}

			raw, err := io.ReadAll(http.MaxBytesReader(writer, request.Body, constants.MaxBodyBytes))
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					writeError(writer, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Body too large")
					return
				}
				writeError(writer, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid body")
				return
			}
			_ = request.Body.Close()

			cleaned := raw
			decoder := json.NewDecoder(bytes.NewReader(raw))
			decoder.UseNumber()

			var body any
			if err := decoder.Decode(&body); err == nil {
				var encoded bytes.Buffer
				encoder := json.NewEncoder(&encoded)
				encoder.SetEscapeHTML(false)
				if err := encoder.Encode(cleanValue(policy, body)); err == nil {
					cleaned = bytes.TrimRight(encoded.Bytes(), "\n")
				}
			}

			request.Body = io.NopCloser(bytes.NewReader(cleaned))
			request.ContentLength = int64(len(cleaned))

			next.ServeHTTP(writer, request)
		})
	}
}

func cleanValue(policy *bluemonday.Policy, value any) any {
	switch typed := value.(type) {
	case string:
		return html.UnescapeString(policy.Sanitize(typed))
	case map[string]any:
		for key, item := range typed {
			typed[key] = cleanValue(policy, item)
		}
		return typed
	case []any:
		for i, item := range typed {
			typed[i] = cleanValue(policy, item)
		}
		return typed
	default:
		return value
	}
}
