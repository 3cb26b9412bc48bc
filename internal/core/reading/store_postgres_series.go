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
)

var seriesColumns = fmt.Sprintf(`%s, %s, %s, %s, %s, %s`,
	schema.PublicationSeries.ID, schema.PublicationSeries.Title, schema.PublicationSeries.TitleSort,
	schema.PublicationSeries.URL, schema.PublicationSeries.CreatedAt, schema.PublicationSeries.UpdatedAt,
)

func scanSeries(row pgx.Row, extra ...any) (*Series, error) {
	series := &Series{}
	targets := append([]any{
		&series.ID, &series.Title, &series.TitleSort,
		&series.URL, &series.CreatedAt, &series.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return series, nil
}

// # Series Repository Implementation

func (repository *seriesRepository) List(context context.Context, limit, offset int) ([]*Series, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, seriesColumns, schema.PublicationSeries.Table, schema.PublicationSeries.TitleSort, schema.PublicationSeries.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceSeries, "list_series")
	}
	defer rows.Close()

	list := []*Series{}
	total := 0
	for rows.Next() {
		series, err := scanSeries(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceSeries, "scan_series")
		}
		list = append(list, series)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceSeries, "list_series")
	}

	if len(list) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.PublicationSeries.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourceSeries, "count_series")
		}
	}

	return list, total, nil
}

func (repository *seriesRepository) FindByID(context context.Context, id int64) (*Series, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		seriesColumns, schema.PublicationSeries.Table, schema.PublicationSeries.ID,
	)

	series, err := scanSeries(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceSeries, "get_series")
	}
	return series, nil
}

func (repository *seriesRepository) Create(context context.Context, series *Series) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.PublicationSeries.Table,
		schema.PublicationSeries.Title, schema.PublicationSeries.TitleSort, schema.PublicationSeries.URL,
		schema.PublicationSeries.CreatedAt, schema.PublicationSeries.UpdatedAt,
		schema.PublicationSeries.ID, schema.PublicationSeries.CreatedAt, schema.PublicationSeries.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, series.Title, series.TitleSort, series.URL).
		Scan(&series.ID, &series.CreatedAt, &series.UpdatedAt)
	return dberr.Wrap(err, resourceSeries, "create_series")
}

func (repository *seriesRepository) Update(context context.Context, series *Series) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.PublicationSeries.Table,
		schema.PublicationSeries.Title, schema.PublicationSeries.TitleSort, schema.PublicationSeries.URL,
		schema.PublicationSeries.UpdatedAt,
		schema.PublicationSeries.ID,
		schema.PublicationSeries.CreatedAt, schema.PublicationSeries.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, series.ID, series.Title, series.TitleSort, series.URL).
		Scan(&series.CreatedAt, &series.UpdatedAt)
	return dberr.Wrap(err, resourceSeries, "update_series")
}

func (repository *seriesRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PublicationSeries.Table, schema.PublicationSeries.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceSeries, "delete_series")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceSeries)
	}
	return nil
}
