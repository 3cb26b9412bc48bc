// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"

	"github.com/taibuivan/spectator/internal/core/role"
)

// SeriesRepository defines the persistence contract for publication series.
type SeriesRepository interface {
	// List returns one page ordered by title_sort, id, and the total count.
	List(context context.Context, limit, offset int) ([]*Series, int, error)
	FindByID(context context.Context, id int64) (*Series, error)
	Create(context context.Context, series *Series) error
	Update(context context.Context, series *Series) error

	// Delete removes the series. Its publications stay, detached.
	Delete(context context.Context, id int64) error
}

// PublicationRepository defines the persistence contract for publications.
type PublicationRepository interface {
	/*
		List returns one page of publications ordered by title_sort, id.

		Parameters:
		  - context: context.Context
		  - filter: PublicationFilter (kind, in-progress, unread)
		  - limit, offset: int

		Returns:
		  - []*Publication: the page, roles loaded
		  - int: total matches
		  - error: database failures
	*/
	List(context context.Context, filter PublicationFilter, limit, offset int) ([]*Publication, int, error)

	// ListBySeries returns every publication of a series in title order.
	ListBySeries(context context.Context, seriesID int64) ([]*Publication, error)

	FindByID(context context.Context, id int64) (*Publication, error)

	// Create writes the publication and its roles in one transaction.
	Create(context context.Context, publication *Publication, roles []role.Input) error

	// Update rewrites the publication and replaces its roles in one transaction.
	Update(context context.Context, publication *Publication, roles []role.Input) error

	// Delete removes the publication with its readings and roles.
	Delete(context context.Context, id int64) error
}

// ReadingRepository defines the persistence contract for readings.
type ReadingRepository interface {
	// List returns one page of readings, latest end date first, and the total count.
	List(context context.Context, limit, offset int) ([]*Reading, int, error)

	// ListByPublication returns every reading of a publication, earliest start first.
	ListByPublication(context context.Context, publicationID int64) ([]*Reading, error)

	FindByID(context context.Context, id int64) (*Reading, error)
	Create(context context.Context, reading *Reading) error
	Update(context context.Context, reading *Reading) error
	Delete(context context.Context, id int64) error
}
