// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

const resource = "Creator"

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

var creatorColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.Creator.ID, schema.Creator.Name, schema.Creator.NameSort,
	schema.Creator.CreatedAt, schema.Creator.UpdatedAt,
)

func (repository *PostgresRepository) List(context context.Context, limit, offset int) ([]*Creator, int, error) {
	var total int
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Creator.Table)
	if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, resource, "count_creators")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, creatorColumns, schema.Creator.Table, schema.Creator.NameSort, schema.Creator.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resource, "list_creators")
	}
	defer rows.Close()

	creators := []*Creator{}
	for rows.Next() {
		c := &Creator{}
		if err := rows.Scan(&c.ID, &c.Name, &c.NameSort, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, 0, dberr.Wrap(err, resource, "scan_creator")
		}
		creators = append(creators, c)
	}

	return creators, total, dberr.Wrap(rows.Err(), resource, "list_creators")
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Creator, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		creatorColumns, schema.Creator.Table, schema.Creator.ID,
	)

	c := &Creator{}
	err := repository.pool.QueryRow(context, query, id).Scan(&c.ID, &c.Name, &c.NameSort, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, resource, "get_creator")
	}
	return c, nil
}

func (repository *PostgresRepository) ListCredits(context context.Context, id int64) ([]role.CreatorRole, error) {
	return role.ListByCreator(context, repository.pool, id)
}

func (repository *PostgresRepository) Create(context context.Context, c *Creator) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Creator.Table, schema.Creator.Name, schema.Creator.NameSort,
		schema.Creator.CreatedAt, schema.Creator.UpdatedAt,
		schema.Creator.ID, schema.Creator.CreatedAt, schema.Creator.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, c.Name, c.NameSort).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return dberr.Wrap(err, resource, "create_creator")
}

/*
Update renames a creator.

Untitled concerts and misc events crediting them are re-sorted in the same
transaction, since their title_sort is built from creator names.
*/
func (repository *PostgresRepository) Update(context context.Context, c *Creator) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = NOW()
			WHERE %s = $1
			RETURNING %s, %s
		`,
			schema.Creator.Table,
			schema.Creator.Name, schema.Creator.NameSort, schema.Creator.UpdatedAt,
			schema.Creator.ID,
			schema.Creator.CreatedAt, schema.Creator.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, c.ID, c.Name, c.NameSort).Scan(&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resource, "update_creator")
		}

		credited, err := event.UntitledCredited(context, transaction, c.ID)
		if err != nil {
			return err
		}
		return event.ResortUntitled(context, transaction, credited)
	})
}

// Delete removes a creator and re-sorts the untitled events they were credited on.
func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		// Collected first: the delete cascades to the role rows
		credited, err := event.UntitledCredited(context, transaction, id)
		if err != nil {
			return err
		}

		query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Creator.Table, schema.Creator.ID)

		tag, err := transaction.Exec(context, query, id)
		if err != nil {
			return dberr.Wrap(err, resource, "delete_creator")
		}

		if tag.RowsAffected() == 0 {
			return apperr.NotFound(resource)
		}
		return event.ResortUntitled(context, transaction, credited)
	})
}
