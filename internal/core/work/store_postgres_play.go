// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/dberr"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

var playColumns = fmt.Sprintf("%s, %s, %s, %s, %s",
	schema.Play.ID, schema.Play.Title, schema.Play.TitleSort, schema.Play.CreatedAt, schema.Play.UpdatedAt,
)

func scanPlay(row pgx.Row, extra ...any) (*Play, error) {
	play := &Play{Roles: []role.Role{}}
	targets := append([]any{&play.ID, &play.Title, &play.TitleSort, &play.CreatedAt, &play.UpdatedAt}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return play, nil
}

// # Play Repository Implementation

func (repository *playRepository) List(context context.Context, limit, offset int) ([]*Play, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, playColumns, schema.Play.Table, schema.Play.TitleSort, schema.Play.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourcePlay, "list_plays")
	}
	defer rows.Close()

	plays := []*Play{}
	ids := []int64{}
	total := 0
	for rows.Next() {
		play, err := scanPlay(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourcePlay, "scan_play")
		}
		plays = append(plays, play)
		ids = append(ids, play.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourcePlay, "list_plays")
	}

	if len(plays) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Play.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourcePlay, "count_plays")
		}
	}

	err = attachRoles(context, repository.pool, role.KindPlay, ids, func(i int, roles []role.Role) {
		plays[i].Roles = roles
	})
	return plays, total, err
}

func (repository *playRepository) FindByID(context context.Context, id int64) (*Play, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, playColumns, schema.Play.Table, schema.Play.ID)

	play, err := scanPlay(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourcePlay, "get_play")
	}

	if play.Roles, err = role.List(context, repository.pool, role.KindPlay, id); err != nil {
		return nil, err
	}
	return play, nil
}

func (repository *playRepository) Create(context context.Context, play *Play, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s)
			VALUES ($1, $2, NOW(), NOW())
			RETURNING %s, %s, %s
		`,
			schema.Play.Table,
			schema.Play.Title, schema.Play.TitleSort, schema.Play.CreatedAt, schema.Play.UpdatedAt,
			schema.Play.ID, schema.Play.CreatedAt, schema.Play.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, play.Title, play.TitleSort).Scan(&play.ID, &play.CreatedAt, &play.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourcePlay, "create_play")
		}

		play.Roles, err = role.Replace(context, transaction, role.KindPlay, play.ID, roles)
		return err
	})
}

func (repository *playRepository) Update(context context.Context, play *Play, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = NOW()
			WHERE %s = $1
			RETURNING %s, %s
		`,
			schema.Play.Table,
			schema.Play.Title, schema.Play.TitleSort, schema.Play.UpdatedAt,
			schema.Play.ID,
			schema.Play.CreatedAt, schema.Play.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, play.ID, play.Title, play.TitleSort).Scan(&play.CreatedAt, &play.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourcePlay, "update_play")
		}

		// Untitled productions sort under the play's title
		productionQuery := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1 AND %s = ''`,
			schema.PlayProduction.Table, schema.PlayProduction.TitleSort,
			schema.PlayProduction.PlayID, schema.PlayProduction.Title,
		)
		if _, err := transaction.Exec(context, productionQuery, play.ID, play.TitleSort); err != nil {
			return dberr.Wrap(err, resourceProduction, "resort_productions")
		}

		play.Roles, err = role.Replace(context, transaction, role.KindPlay, play.ID, roles)
		return err
	})
}

func (repository *playRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Play.Table, schema.Play.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourcePlay, "delete_play")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourcePlay)
	}
	return nil
}
