// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
)

const resource = "Venue"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// Coordinates are NUMERIC in the table and read back as float8.
var venueColumns = fmt.Sprintf("%s, %s, %s, %s::float8, %s::float8, %s, %s, %s, %s",
	schema.Venue.ID, schema.Venue.Name, schema.Venue.NameSort,
	schema.Venue.Latitude, schema.Venue.Longitude,
	schema.Venue.Address, schema.Venue.Country,
	schema.Venue.CreatedAt, schema.Venue.UpdatedAt,
)

func scanVenue(row pgx.Row, extra ...any) (*Venue, error) {
	venue := &Venue{}
	targets := append([]any{
		&venue.ID, &venue.Name, &venue.NameSort,
		&venue.Latitude, &venue.Longitude,
		&venue.Address, &venue.Country,
		&venue.CreatedAt, &venue.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return venue, nil
}

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Venue, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, venueColumns, schema.Venue.Table, schema.Venue.NameSort, schema.Venue.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_venues")
	}
	defer rows.Close()

	venues := []*Venue{}
	total := 0
	for rows.Next() {
		venue, err := scanVenue(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resource, "scan_venue")
		}
		venues = append(venues, venue)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_venues")
	}

	// Past the last page no row carries the window count
	if len(venues) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Venue.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resource, "count_venues")
		}
	}

	return venues, total, nil
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Venue, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, venueColumns, schema.Venue.Table, schema.Venue.ID)

	venue, err := scanVenue(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_venue")
	}
	return venue, nil
}

func (repository *PostgresRepository) Create(context context.Context, venue *Venue) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Venue.Table,
		schema.Venue.Name, schema.Venue.NameSort, schema.Venue.Latitude, schema.Venue.Longitude,
		schema.Venue.Address, schema.Venue.Country, schema.Venue.CreatedAt, schema.Venue.UpdatedAt,
		schema.Venue.ID, schema.Venue.CreatedAt, schema.Venue.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		venue.Name, venue.NameSort, venue.Latitude, venue.Longitude, venue.Address, venue.Country,
	).Scan(&venue.ID, &venue.CreatedAt, &venue.UpdatedAt)
	return dberr.Wrap(err, resource, "create_venue")
}

func (repository *PostgresRepository) Update(context context.Context, venue *Venue) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.Venue.Table,
		schema.Venue.Name, schema.Venue.NameSort, schema.Venue.Latitude, schema.Venue.Longitude,
		schema.Venue.Address, schema.Venue.Country, schema.Venue.UpdatedAt,
		schema.Venue.ID,
		schema.Venue.CreatedAt, schema.Venue.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		venue.ID, venue.Name, venue.NameSort, venue.Latitude, venue.Longitude, venue.Address, venue.Country,
	).Scan(&venue.CreatedAt, &venue.UpdatedAt)
	return dberr.Wrap(err, resource, "update_venue")
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Venue.Table, schema.Venue.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resource, "delete_venue")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resource)
	}
	return nil
}
