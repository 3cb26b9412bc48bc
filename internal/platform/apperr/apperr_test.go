// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/platform/apperr"
)

/*
TestNotFound_IsDistinct checks that not-found never looks like validation or internal errors.
*/
func TestNotFound_IsDistinct(t *testing.T) {
	notFound := apperr.NotFound("Concert")

	assert.Equal(t, "Concert not found", notFound.Error())
	assert.Equal(t, http.StatusNotFound, notFound.HTTPStatus)
	assert.True(t, apperr.IsNotFound(notFound))

	assert.False(t, apperr.IsNotFound(apperr.ValidationError("Validation failed")))
	assert.False(t, apperr.IsNotFound(apperr.Internal(errors.New("boom"))))
	assert.False(t, apperr.IsNotFound(errors.New("plain")))
}

/*
TestAs_Wrapped extracts an AppError through fmt.Errorf wrapping.
*/
func TestAs_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading venue: %w", apperr.NotFound("Venue"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.True(t, apperr.IsNotFound(wrapped))
}

/*
TestInternal_KeepsCause ensures the cause is reachable but not part of the message.
*/
func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperr.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.NotContains(t, err.Error(), "connection refused")
}
