// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reading tracks what was read and when.

Publications (books or periodical issues) optionally belong to a series and
carry creator roles. A reading is one period spent with a publication; a
publication may be read many times or never. "In progress" and "unread" are
queries over readings, never stored flags.
*/
package reading

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	resourceSeries      = "Publication series"
	resourcePublication = "Publication"
	resourceReading     = "Reading"
)

// # PostgreSQL Repositories

// seriesRepository implements the [SeriesRepository] interface using pgx.
type seriesRepository struct {
	pool *pgxpool.Pool
}

// NewSeriesRepository constructs a PostgreSQL backed series store.
func NewSeriesRepository(pool *pgxpool.Pool) SeriesRepository {
	return &seriesRepository{pool: pool}
}

// publicationRepository implements the [PublicationRepository] interface using pgx.
type publicationRepository struct {
	pool *pgxpool.Pool
}

// NewPublicationRepository constructs a PostgreSQL backed publication store.
func NewPublicationRepository(pool *pgxpool.Pool) PublicationRepository {
	return &publicationRepository{pool: pool}
}

// readingRepository implements the [ReadingRepository] interface using pgx.
type readingRepository struct {
	pool *pgxpool.Pool
}

// NewReadingRepository constructs a PostgreSQL backed reading store.
func NewReadingRepository(pool *pgxpool.Pool) ReadingRepository {
	return &readingRepository{pool: pool}
}
