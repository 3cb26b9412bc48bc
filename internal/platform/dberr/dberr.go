// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/spectator/internal/platform/apperr"
)

// Wrap inspects a database error and classifies it as an [apperr.AppError].
//
// # Mapping
//
//   - pgx.ErrNoRows → NotFound(resource)
//   - unique_violation → Conflict
//   - foreign_key_violation → ValidationError on the constraint's column
//   - check_violation / not_null_violation → ValidationError
//   - anything else → Internal (the action is kept in the cause for logs)
func Wrap(err error, resource, action string) error {
	if err == nil {
		return nil
	}

	// Already classified further down the stack
	if apperr.As(err) != nil {
		return err
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Constraint violations reported by Postgres
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case pgerrcode.ForeignKeyViolation:
			return apperr.ValidationError("Referenced record does not exist", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: "Unknown reference (" + pgErr.ConstraintName + ")",
			})
		case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
			return apperr.ValidationError("Validation failed", apperr.FieldError{
				Field:   pgErr.ColumnName,
				Message: pgErr.Message,
			})
		}
	}

	// 3. Unknown errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}
