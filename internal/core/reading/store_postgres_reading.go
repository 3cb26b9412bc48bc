// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/pkg/date"
)

var (
	readingColumns = fmt.Sprintf(`r.%s, r.%s, p.%s, r.%s, r.%s, r.%s, r.%s, r.%s, r.%s, r.%s`,
		schema.Reading.ID, schema.Reading.PublicationID, schema.Publication.Title,
		schema.Reading.StartDate, schema.Reading.StartGranularity,
		schema.Reading.EndDate, schema.Reading.EndGranularity,
		schema.Reading.IsFinished, schema.Reading.CreatedAt, schema.Reading.UpdatedAt,
	)

	readingFrom = fmt.Sprintf(`%s r JOIN %s p ON p.%s = r.%s`,
		schema.Reading.Table, schema.Publication.Table, schema.Publication.ID, schema.Reading.PublicationID,
	)

	// Latest finish first; readings with no end date come last.
	byEndDate = fmt.Sprintf(`r.%s DESC NULLS LAST, r.%s DESC`, schema.Reading.EndDate, schema.Reading.ID)

	byStartDate = fmt.Sprintf(`r.%s ASC NULLS LAST, r.%s ASC`, schema.Reading.StartDate, schema.Reading.ID)
)

func scanReading(row pgx.Row, extra ...any) (*Reading, error) {
	var (
		reading    = &Reading{}
		start, end date.Date
	)

	targets := append([]any{
		&reading.ID, &reading.PublicationID, &reading.PublicationTitle,
		&start, &reading.StartGranularity,
		&end, &reading.EndGranularity,
		&reading.IsFinished, &reading.CreatedAt, &reading.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}

	if !start.IsZero() {
		reading.StartDate = &start
	}
	if !end.IsZero() {
		reading.EndDate = &end
	}
	return reading, nil
}

func collectReadings(rows pgx.Rows, extra ...any) ([]*Reading, error) {
	defer rows.Close()

	readings := []*Reading{}
	for rows.Next() {
		reading, err := scanReading(rows, extra...)
		if err != nil {
			return nil, dberr.Wrap(err, resourceReading, "scan_reading")
		}
		readings = append(readings, reading)
	}
	return readings, dberr.Wrap(rows.Err(), resourceReading, "list_readings")
}

// # Reading Repository Implementation

func (repository *readingRepository) List(context context.Context, limit, offset int) ([]*Reading, int, error) {
	query := fmt.Sprintf(`SELECT %s, COUNT(*) OVER() AS total_count FROM %s ORDER BY %s LIMIT $1 OFFSET $2`,
		readingColumns, readingFrom, byEndDate,
	)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceReading, "list_readings")
	}

	total := 0
	readings, err := collectReadings(rows, &total)
	if err != nil {
		return nil, 0, err
	}

	if len(readings) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Reading.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourceReading, "count_readings")
		}
	}

	return readings, total, nil
}

func (repository *readingRepository) ListByPublication(context context.Context, publicationID int64) ([]*Reading, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE r.%s = $1 ORDER BY %s`,
		readingColumns, readingFrom, schema.Reading.PublicationID, byStartDate,
	)

	rows, err := repository.pool.Query(context, query, publicationID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceReading, "list_publication_readings")
	}
	return collectReadings(rows)
}

func (repository *readingRepository) FindByID(context context.Context, id int64) (*Reading, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE r.%s = $1`, readingColumns, readingFrom, schema.Reading.ID)

	reading, err := scanReading(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceReading, "get_reading")
	}
	return reading, nil
}

func (repository *readingRepository) Create(context context.Context, reading *Reading) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Reading.Table,
		schema.Reading.PublicationID, schema.Reading.StartDate, schema.Reading.StartGranularity,
		schema.Reading.EndDate, schema.Reading.EndGranularity, schema.Reading.IsFinished,
		schema.Reading.CreatedAt, schema.Reading.UpdatedAt,
		schema.Reading.ID, schema.Reading.CreatedAt, schema.Reading.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		reading.PublicationID, reading.StartDate, reading.StartGranularity,
		reading.EndDate, reading.EndGranularity, reading.IsFinished,
	).Scan(&reading.ID, &reading.CreatedAt, &reading.UpdatedAt)
	return dberr.Wrap(err, resourceReading, "create_reading")
}

// Update rewrites the dates and flag. A reading never moves to another publication.
func (repository *readingRepository) Update(context context.Context, reading *Reading) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s, %s
	`,
		schema.Reading.Table,
		schema.Reading.StartDate, schema.Reading.StartGranularity,
		schema.Reading.EndDate, schema.Reading.EndGranularity, schema.Reading.IsFinished,
		schema.Reading.UpdatedAt,
		schema.Reading.ID,
		schema.Reading.PublicationID, schema.Reading.CreatedAt, schema.Reading.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		reading.ID, reading.StartDate, reading.StartGranularity,
		reading.EndDate, reading.EndGranularity, reading.IsFinished,
	).Scan(&reading.PublicationID, &reading.CreatedAt, &reading.UpdatedAt)
	return dberr.Wrap(err, resourceReading, "update_reading")
}

func (repository *readingRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Reading.Table, schema.Reading.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceReading, "delete_reading")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceReading)
	}
	return nil
}
