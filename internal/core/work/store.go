// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"

	"github.com/taibuivan/spectator/internal/core/role"
)

// # Movie Data Access

// MovieRepository defines the data access contract for movies.
type MovieRepository interface {

	/*
		List returns one page of movies ordered by title_sort, id.

		Parameters:
		  - context: context.Context
		  - limit: int
		  - offset: int

		Returns:
		  - []*Movie: movies with their roles
		  - int: total number of movies
		  - error: database failures
	*/
	List(context context.Context, limit, offset int) ([]*Movie, int, error)

	// FindByID returns the movie with its roles, or a not-found error.
	FindByID(context context.Context, id int64) (*Movie, error)

	/*
		Create persists a movie and its roles in one transaction.

		Parameters:
		  - context: context.Context
		  - movie: *Movie (ID and timestamps are filled in)
		  - roles: []role.Input

		Returns:
		  - error: validation error for an unknown creator, or database failures
	*/
	Create(context context.Context, movie *Movie, roles []role.Input) error

	// Update rewrites a movie and replaces its roles in one transaction.
	Update(context context.Context, movie *Movie, roles []role.Input) error

	// Delete removes the movie; its screenings and roles go with it.
	Delete(context context.Context, id int64) error
}

// # Play Data Access

// PlayRepository defines the data access contract for plays.
type PlayRepository interface {
	List(context context.Context, limit, offset int) ([]*Play, int, error)
	FindByID(context context.Context, id int64) (*Play, error)
	Create(context context.Context, play *Play, roles []role.Input) error

	/*
		Update rewrites a play and replaces its roles.

		Description: Untitled productions sort under the play's title, so their
		title_sort is rederived in the same transaction.
	*/
	Update(context context.Context, play *Play, roles []role.Input) error

	// Delete removes the play with its productions and their performances.
	Delete(context context.Context, id int64) error
}

// # Production Data Access

// ProductionRepository defines the data access contract for play productions.
type ProductionRepository interface {
	List(context context.Context, limit, offset int) ([]*Production, int, error)

	// ListByPlay returns every production of a play ordered by title_sort, id.
	ListByPlay(context context.Context, playID int64) ([]*Production, error)

	FindByID(context context.Context, id int64) (*Production, error)

	/*
		Create persists a production and its roles.

		Description: title_sort is derived from the title, or from the play's
		title when the production has none, inside the write transaction.
	*/
	Create(context context.Context, production *Production, roles []role.Input) error

	Update(context context.Context, production *Production, roles []role.Input) error
	Delete(context context.Context, id int64) error
}
