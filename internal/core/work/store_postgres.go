// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package work holds the things events point at: movies, plays and productions
of plays.

Each is an aggregate with its own creator roles. Writes replace the whole
role list in the same transaction as the parent row.
*/
package work

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/postgres"
)

const (
	resourceMovie      = "Movie"
	resourcePlay       = "Play"
	resourceProduction = "Play production"
)

// # PostgreSQL Repositories

// movieRepository implements the [MovieRepository] interface using pgx.
type movieRepository struct {
	pool *pgxpool.Pool
}

// NewMovieRepository constructs a PostgreSQL backed movie store.
func NewMovieRepository(pool *pgxpool.Pool) MovieRepository {
	return &movieRepository{pool: pool}
}

// playRepository implements the [PlayRepository] interface using pgx.
type playRepository struct {
	pool *pgxpool.Pool
}

// NewPlayRepository constructs a PostgreSQL backed play store.
func NewPlayRepository(pool *pgxpool.Pool) PlayRepository {
	return &playRepository{pool: pool}
}

// productionRepository implements the [ProductionRepository] interface using pgx.
type productionRepository struct {
	pool *pgxpool.Pool
}

// NewProductionRepository constructs a PostgreSQL backed production store.
func NewProductionRepository(pool *pgxpool.Pool) ProductionRepository {
	return &productionRepository{pool: pool}
}

// # Shared Helpers

/*
attachRoles loads the roles of a page of parents with one query.

Parameters:
  - context: context.Context
  - db: postgres.DBTX
  - kind: role.Kind
  - ids: []int64 (parent ids in page order)
  - set: func(i int, roles []role.Role) (stores the roles on the i-th parent)

Returns:
  - error: database failures
*/
func attachRoles(context context.Context, db postgres.DBTX, kind role.Kind, ids []int64, set func(i int, roles []role.Role)) error {
	byParent, err := role.ListForParents(context, db, kind, ids)
	if err != nil {
		return err
	}

	for i, id := range ids {
		roles, ok := byParent[id]
		if !ok {
			roles = []role.Role{}
		}
		set(i, roles)
	}
	return nil
}
