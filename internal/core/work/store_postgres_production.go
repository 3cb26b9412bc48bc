// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// Every production is read with its play's title.
var (
	productionColumns = fmt.Sprintf(`pp.%s, pp.%s, p.%s, pp.%s, pp.%s, pp.%s, pp.%s`,
		schema.PlayProduction.ID, schema.PlayProduction.PlayID, schema.Play.Title,
		schema.PlayProduction.Title, schema.PlayProduction.TitleSort,
		schema.PlayProduction.CreatedAt, schema.PlayProduction.UpdatedAt,
	)

	productionFrom = fmt.Sprintf(`%s pp JOIN %s p ON p.%s = pp.%s`,
		schema.PlayProduction.Table, schema.Play.Table, schema.Play.ID, schema.PlayProduction.PlayID,
	)

	productionOrder = fmt.Sprintf(`pp.%s ASC, pp.%s ASC`, schema.PlayProduction.TitleSort, schema.PlayProduction.ID)
)

func scanProduction(row pgx.Row, extra ...any) (*Production, error) {
	production := &Production{Roles: []role.Role{}}
	targets := append([]any{
		&production.ID, &production.PlayID, &production.PlayTitle,
		&production.Title, &production.TitleSort,
		&production.CreatedAt, &production.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return production, nil
}

// # Production Repository Implementation

func (repository *productionRepository) List(context context.Context, limit, offset int) ([]*Production, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, productionColumns, productionFrom, productionOrder)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceProduction, "list_productions")
	}
	defer rows.Close()

	productions := []*Production{}
	ids := []int64{}
	total := 0
	for rows.Next() {
		production, err := scanProduction(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceProduction, "scan_production")
		}
		productions = append(productions, production)
		ids = append(ids, production.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceProduction, "list_productions")
	}

	if len(productions) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.PlayProduction.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourceProduction, "count_productions")
		}
	}

	err = attachRoles(context, repository.pool, role.KindProduction, ids, func(i int, roles []role.Role) {
		productions[i].Roles = roles
	})
	return productions, total, err
}

func (repository *productionRepository) ListByPlay(context context.Context, playID int64) ([]*Production, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE pp.%s = $1 ORDER BY %s`,
		productionColumns, productionFrom, schema.PlayProduction.PlayID, productionOrder,
	)

	rows, err := repository.pool.Query(context, query, playID)
	if err != nil {
		return nil, dberr.Wrap(err, resourceProduction, "list_play_productions")
	}
	defer rows.Close()

	productions := []*Production{}
	ids := []int64{}
	for rows.Next() {
		production, err := scanProduction(rows)
		if err != nil {
			return nil, dberr.Wrap(err, resourceProduction, "scan_production")
		}
		productions = append(productions, production)
		ids = append(ids, production.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, resourceProduction, "list_play_productions")
	}

	err = attachRoles(context, repository.pool, role.KindProduction, ids, func(i int, roles []role.Role) {
		productions[i].Roles = roles
	})
	return productions, err
}

func (repository *productionRepository) FindByID(context context.Context, id int64) (*Production, error) {
	return findProduction(context, repository.pool, id)
}

func findProduction(context context.Context, db postgres.DBTX, id int64) (*Production, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE pp.%s = $1`, productionColumns, productionFrom, schema.PlayProduction.ID)

	production, err := scanProduction(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceProduction, "get_production")
	}

	if production.Roles, err = role.List(context, db, role.KindProduction, id); err != nil {
		return nil, err
	}
	return production, nil
}

/*
resolveSort reads the play's title inside the transaction and derives title_sort.

Returns:
  - error: validation error on play_id when the play does not exist
*/
func resolveSort(context context.Context, transaction pgx.Tx, production *Production) error {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, schema.Play.Title, schema.Play.Table, schema.Play.ID)

	if err := transaction.QueryRow(context, query, production.PlayID).Scan(&production.PlayTitle); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return validate.FieldError(FieldPlayID, "Must reference a play")
		}
		return dberr.Wrap(err, resourcePlay, "get_play")
	}

	production.TitleSort = sortkey.From(production.DisplayTitle())
	return nil
}

func (repository *productionRepository) Create(context context.Context, production *Production, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		if err := resolveSort(context, transaction, production); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, NOW(), NOW())
			RETURNING %s, %s, %s
		`,
			schema.PlayProduction.Table,
			schema.PlayProduction.PlayID, schema.PlayProduction.Title, schema.PlayProduction.TitleSort,
			schema.PlayProduction.CreatedAt, schema.PlayProduction.UpdatedAt,
			schema.PlayProduction.ID, schema.PlayProduction.CreatedAt, schema.PlayProduction.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, production.PlayID, production.Title, production.TitleSort).
			Scan(&production.ID, &production.CreatedAt, &production.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceProduction, "create_production")
		}

		production.Roles, err = role.Replace(context, transaction, role.KindProduction, production.ID, roles)
		return err
	})
}

func (repository *productionRepository) Update(context context.Context, production *Production, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		if err := resolveSort(context, transaction, production); err != nil {
			return err
		}

		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = NOW()
			WHERE %s = $1
			RETURNING %s, %s
		`,
			schema.PlayProduction.Table,
			schema.PlayProduction.PlayID, schema.PlayProduction.Title, schema.PlayProduction.TitleSort,
			schema.PlayProduction.UpdatedAt,
			schema.PlayProduction.ID,
			schema.PlayProduction.CreatedAt, schema.PlayProduction.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, production.ID, production.PlayID, production.Title, production.TitleSort).
			Scan(&production.CreatedAt, &production.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceProduction, "update_production")
		}

		production.Roles, err = role.Replace(context, transaction, role.KindProduction, production.ID, roles)
		return err
	})
}

func (repository *productionRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.PlayProduction.Table, schema.PlayProduction.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceProduction, "delete_production")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceProduction)
	}
	return nil
}
