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

var movieColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s",
	schema.Movie.ID, schema.Movie.Title, schema.Movie.TitleSort, schema.Movie.Year,
	schema.Movie.IMDbID, schema.Movie.CreatedAt, schema.Movie.UpdatedAt,
)

func scanMovie(row pgx.Row, extra ...any) (*Movie, error) {
	movie := &Movie{Roles: []role.Role{}}
	targets := append([]any{
		&movie.ID, &movie.Title, &movie.TitleSort, &movie.Year,
		&movie.IMDbID, &movie.CreatedAt, &movie.UpdatedAt,
	}, extra...)

	if err := row.Scan(targets...); err != nil {
		return nil, err
	}
	return movie, nil
}

// # Movie Repository Implementation

/*
List returns one page of movies in title order.

Description: The total rides along each row through COUNT(*) OVER(), and the
roles of the whole page are loaded with a single extra query.
*/
func (repository *movieRepository) List(context context.Context, limit, offset int) ([]*Movie, int, error) {
	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total_count
		FROM %s
		ORDER BY %s ASC, %s ASC
		LIMIT $1 OFFSET $2
	`, movieColumns, schema.Movie.Table, schema.Movie.TitleSort, schema.Movie.ID)

	rows, err := repository.pool.Query(context, query, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceMovie, "list_movies")
	}
	defer rows.Close()

	movies := []*Movie{}
	ids := []int64{}
	total := 0
	for rows.Next() {
		movie, err := scanMovie(rows, &total)
		if err != nil {
			return nil, 0, dberr.Wrap(err, resourceMovie, "scan_movie")
		}
		movies = append(movies, movie)
		ids = append(ids, movie.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, dberr.Wrap(err, resourceMovie, "list_movies")
	}

	// Past the last page no row carries the window count
	if len(movies) == 0 && offset > 0 {
		countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.Movie.Table)
		if err := repository.pool.QueryRow(context, countQuery).Scan(&total); err != nil {
			return nil, 0, dberr.Wrap(err, resourceMovie, "count_movies")
		}
	}

	err = attachRoles(context, repository.pool, role.KindMovie, ids, func(i int, roles []role.Role) {
		movies[i].Roles = roles
	})
	return movies, total, err
}

func (repository *movieRepository) FindByID(context context.Context, id int64) (*Movie, error) {
	return findMovie(context, repository.pool, id)
}

func findMovie(context context.Context, db postgres.DBTX, id int64) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`, movieColumns, schema.Movie.Table, schema.Movie.ID)

	movie, err := scanMovie(db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, resourceMovie, "get_movie")
	}

	if movie.Roles, err = role.List(context, db, role.KindMovie, id); err != nil {
		return nil, err
	}
	return movie, nil
}

func (repository *movieRepository) Create(context context.Context, movie *Movie, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING %s, %s, %s
		`,
			schema.Movie.Table,
			schema.Movie.Title, schema.Movie.TitleSort, schema.Movie.Year, schema.Movie.IMDbID,
			schema.Movie.CreatedAt, schema.Movie.UpdatedAt,
			schema.Movie.ID, schema.Movie.CreatedAt, schema.Movie.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, movie.Title, movie.TitleSort, movie.Year, movie.IMDbID).
			Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceMovie, "create_movie")
		}

		movie.Roles, err = role.Replace(context, transaction, role.KindMovie, movie.ID, roles)
		return err
	})
}

func (repository *movieRepository) Update(context context.Context, movie *Movie, roles []role.Input) error {
	return postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		query := fmt.Sprintf(`
			UPDATE %s
			SET %s = $2, %s = $3, %s = $4, %s = $5, %s = NOW()
			WHERE %s = $1
			RETURNING %s, %s
		`,
			schema.Movie.Table,
			schema.Movie.Title, schema.Movie.TitleSort, schema.Movie.Year, schema.Movie.IMDbID, schema.Movie.UpdatedAt,
			schema.Movie.ID,
			schema.Movie.CreatedAt, schema.Movie.UpdatedAt,
		)

		err := transaction.QueryRow(context, query, movie.ID, movie.Title, movie.TitleSort, movie.Year, movie.IMDbID).
			Scan(&movie.CreatedAt, &movie.UpdatedAt)
		if err != nil {
			return dberr.Wrap(err, resourceMovie, "update_movie")
		}

		movie.Roles, err = role.Replace(context, transaction, role.KindMovie, movie.ID, roles)
		return err
	})
}

func (repository *movieRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Movie.Table, schema.Movie.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, resourceMovie, "delete_movie")
	}

	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceMovie)
	}
	return nil
}
