// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/pointer"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		hasError bool
	}{
		{"valid_string", "Royal Albert Hall", false},
		{"empty_string", "", true},
		{"whitespace_only", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required("name", tt.value)

			if !tt.hasError {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
				return
			}

			ae := apperr.As(v.Err())
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			assert.Equal(t, "name", ae.Details[0].Field)
		})
	}
}

func TestValidator_Formats(t *testing.T) {
	tests := []struct {
		name     string
		run      func(v *validate.Validator)
		hasError bool
	}{
		{"isbn13", func(v *validate.Validator) { v.ISBN("isbn_uk", "9780241985144") }, false},
		{"isbn10 with X", func(v *validate.Validator) { v.ISBN("isbn_uk", "080442957X") }, false},
		{"isbn with dashes", func(v *validate.Validator) { v.ISBN("isbn_uk", "978-0241985144") }, true},
		{"empty isbn", func(v *validate.Validator) { v.ISBN("isbn_uk", "") }, false},
		{"country", func(v *validate.Validator) { v.Country("country", "GB") }, false},
		{"lower country", func(v *validate.Validator) { v.Country("country", "gb") }, true},
		{"imdb", func(v *validate.Validator) { v.IMDbID("imdb_id", "tt0111161") }, false},
		{"bad imdb", func(v *validate.Validator) { v.IMDbID("imdb_id", "0111161") }, true},
		{"https url", func(v *validate.Validator) { v.URL("url", "https://example.org/a") }, false},
		{"relative url", func(v *validate.Validator) { v.URL("url", "/a/b") }, true},
		{"ftp url", func(v *validate.Validator) { v.URL("url", "ftp://example.org") }, true},
		{"latitude ok", func(v *validate.Validator) { v.Coordinate("latitude", pointer.To(51.5), 90) }, false},
		{"latitude out", func(v *validate.Validator) { v.Coordinate("latitude", pointer.To(91.0), 90) }, true},
		{"latitude nil", func(v *validate.Validator) { v.Coordinate("latitude", nil, 90) }, false},
		{"one of", func(v *validate.Validator) { v.OneOf("kind", "book", "book", "periodical") }, false},
		{"not one of", func(v *validate.Validator) { v.OneOf("kind", "comic", "book", "periodical") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			tt.run(v)
			assert.Equal(t, tt.hasError, v.HasErrors())
		})
	}
}

/*
TestValidator_Chaining ensures every failure is collected, not just the first.
*/
func TestValidator_Chaining(t *testing.T) {
	v := &validate.Validator{}
	v.Required("title", "").
		MaxLen("role_name", "a very long role name that exceeds the fifty character limit", 50).
		Custom("venue_id", true, "Must reference a venue")

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 3)
}
