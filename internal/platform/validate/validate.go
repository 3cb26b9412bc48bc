// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package validate provides a chainable Validator that collects field-level
// errors before returning a single [apperr.AppError].
//
// It is used in the service layer only; handlers decode and stores persist.
package validate

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/taibuivan/spectator/internal/platform/apperr"
)

var (
	// isbnRegex accepts ISBN-10 (final X allowed) and ISBN-13 without separators.
	isbnRegex = regexp.MustCompile(`^(?:\d{9}[\dX]|\d{13})$`)

	// countryRegex matches an ISO 3166-1 alpha-2 code.
	countryRegex = regexp.MustCompile(`^[A-Z]{2}$`)

	// imdbRegex matches IMDb title ids such as tt0111161.
	imdbRegex = regexp.MustCompile(`^tt\d{7,10}$`)

	// ErrInvalidJSON is returned when the request body cannot be decoded.
	ErrInvalidJSON = apperr.ValidationError("Invalid JSON payload")
)

// Validator collects field-level validation errors via a fluent, chainable API.
//
// Validator is not safe for concurrent use. Create one per operation.
type Validator struct {
	errs []apperr.FieldError
}

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	if strings.TrimSpace(value) == "" {
		v.add(field, "This field is required")
	}
	return v
}

// MaxLen fails if the Unicode character count exceeds max.
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	if utf8.RuneCountInString(value) > max {
		v.add(field, fmt.Sprintf("Maximum %d characters", max))
	}
	return v
}

// Range fails if the value is outside the [min, max] range (inclusive).
func (v *Validator) Range(field string, value, min, max int) *Validator {
	if value < min || value > max {
		v.add(field, fmt.Sprintf("Must be between %d and %d", min, max))
	}
	return v
}

// Coordinate fails if a non-nil value is outside [-limit, limit].
func (v *Validator) Coordinate(field string, value *float64, limit float64) *Validator {
	if value != nil && (*value < -limit || *value > limit) {
		v.add(field, fmt.Sprintf("Must be between %g and %g", -limit, limit))
	}
	return v
}

// URL fails if a non-empty value is not an absolute http(s) URL.
func (v *Validator) URL(field, value string) *Validator {
	if value == "" {
		return v
	}

	parsed, err := url.Parse(value)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		v.add(field, "Must be a valid http or https URL")
	}
	return v
}

// ISBN fails if a non-empty value is not a bare ISBN-10 or ISBN-13.
func (v *Validator) ISBN(field, value string) *Validator {
	if value != "" && !isbnRegex.MatchString(value) {
		v.add(field, "Must be 10 or 13 characters with no separators")
	}
	return v
}

// Country fails if a non-empty value is not a two-letter upper-case code.
func (v *Validator) Country(field, value string) *Validator {
	if value != "" && !countryRegex.MatchString(value) {
		v.add(field, "Must be an ISO 3166-1 alpha-2 code")
	}
	return v
}

// IMDbID fails if a non-empty value is not an IMDb title id.
func (v *Validator) IMDbID(field, value string) *Validator {
	if value != "" && !imdbRegex.MatchString(value) {
		v.add(field, "Must look like tt0123456")
	}
	return v
}

// OneOf fails if the value is not in the allowed set of strings.
func (v *Validator) OneOf(field, value string, allowed ...string) *Validator {
	for _, a := range allowed {
		if value == a {
			return v
		}
	}
	v.add(field, fmt.Sprintf("Must be one of: %s", strings.Join(allowed, ", ")))
	return v
}

// Custom adds a failure with a custom message if the condition is true.
//
//	v.Custom("venue_id", input.VenueID <= 0, "Must reference a venue")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed {
		v.add(field, message)
	}
	return v
}

// Err returns a VALIDATION_ERROR [apperr.AppError] if any rule failed, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError("Validation failed", v.errs...)
}

// HasErrors reports whether any validation rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) add(field, message string) {
	v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
}

// FieldError is a shortcut to create a single-field validation error.
func FieldError(field, message string) *apperr.AppError {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   field,
		Message: message,
	})
}
