// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/spectator/internal/platform/ctxutil"
	"github.com/taibuivan/spectator/internal/platform/sec"
)

func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0192f1a4-request")
	assert.Equal(t, "0192f1a4-request", ctxutil.GetRequestID(ctx))
}

func TestContext_Logger(t *testing.T) {
	ctx := context.Background()

	// Falls back to the process logger
	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Same(t, logger, ctxutil.GetLogger(ctx))
}

func TestContext_Claims(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetClaims(ctx), "anonymous requests carry no claims")

	ctx = ctxutil.WithClaims(ctx, &sec.AuthClaims{UserID: "owner", Role: string(sec.RoleAdmin)})

	claims := ctxutil.GetClaims(ctx)
	if assert.NotNil(t, claims) {
		assert.Equal(t, "owner", claims.UserID)
		assert.Equal(t, "admin", claims.Role)
	}
}
