// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"time"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/role"
)

// # Movie

// Movie is a film, seen at one or more screenings.
type Movie struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	TitleSort string      `json:"title_sort"`
	Year      *int        `json:"year"`
	IMDbID    string      `json:"imdb_id"`
	Roles     []role.Role `json:"roles"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// IMDbURL returns the title page on IMDb, or "" without an id.
func (movie *Movie) IMDbURL() string {
	if movie.IMDbID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + movie.IMDbID + "/"
}

// MovieDetail is a movie with its screenings, latest first.
type MovieDetail struct {
	*Movie
	IMDbURL string         `json:"imdb_url,omitempty"`
	Events  []*event.Event `json:"events"`
}

// MovieInput is the write shape of a [Movie].
type MovieInput struct {
	Title  string       `json:"title"`
	Year   *int         `json:"year"`
	IMDbID string       `json:"imdb_id"`
	Roles  []role.Input `json:"roles"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (movie *Movie) Input() MovieInput {
	return MovieInput{
		Title:  movie.Title,
		Year:   movie.Year,
		IMDbID: movie.IMDbID,
		Roles:  role.Inputs(movie.Roles),
	}
}
