// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package event holds everything the owner went to: concerts, film screenings,
theatre performances and anything else.

Storage model:

  - One row in events.event carries what all kinds share (date, venue).
  - Exactly one extension row carries the kind-specific part.
  - Extension rows reference (id, kind), so the database itself refuses a
    second extension or one of the wrong kind.

Listing across kinds reads the base table; a kind-filtered listing joins only
that kind's extension table.
*/
package event

import (
	"strings"
	"time"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/pkg/date"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// # Kinds

// Kind names the extension table an event lives in.
type Kind string

const (
	KindConcert Kind = "concert"
	KindMovie   Kind = "movie"
	KindPlay    Kind = "play"
	KindMisc    Kind = "misc"
)

// Kinds lists every event kind in display order.
var Kinds = []Kind{KindConcert, KindMovie, KindPlay, KindMisc}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	switch k {
	case KindConcert, KindMovie, KindPlay, KindMisc:
		return true
	}
	return false
}

// Titled reports whether events of this kind carry their own title and roles.
func (k Kind) Titled() bool {
	return k == KindConcert || k == KindMisc
}

// Resource is the entity name used in not-found errors.
func (k Kind) Resource() string {
	switch k {
	case KindConcert:
		return "Concert"
	case KindMovie:
		return "Movie event"
	case KindPlay:
		return "Play production event"
	case KindMisc:
		return "Event"
	}
	return resource
}

// CountKey is the list-context key holding the number of events of this kind.
func (k Kind) CountKey() string {
	switch k {
	case KindConcert:
		return "concert_count"
	case KindMovie:
		return "movieevent_count"
	case KindPlay:
		return "playproductionevent_count"
	case KindMisc:
		return "miscevent_count"
	}
	return "event_count"
}

// roleKind maps a titled kind to its role table.
func (k Kind) roleKind() (role.Kind, bool) {
	switch k {
	case KindConcert:
		return role.KindConcert, true
	case KindMisc:
		return role.KindMiscEvent, true
	}
	return "", false
}

// ContextName is the value of "event_kind" in list contexts. The combined list is "event".
func ContextName(kind Kind) string {
	if kind == "" {
		return "event"
	}
	return string(kind)
}

// # Entities

// Titled is the extension of concerts and miscellaneous events.
type Titled struct {
	Title     string      `json:"title"`
	TitleSort string      `json:"title_sort"`
	Roles     []role.Role `json:"roles"`
}

// MovieRef is the extension of a film screening.
type MovieRef struct {
	MovieID    int64  `json:"movie_id"`
	MovieTitle string `json:"movie_title"`
}

// ProductionRef is the extension of a theatre performance.
type ProductionRef struct {
	ProductionID    int64  `json:"production_id"`
	ProductionTitle string `json:"production_title"`
	PlayID          int64  `json:"play_id"`
	PlayTitle       string `json:"play_title"`
}

// Event is a base row joined with its single extension.
type Event struct {
	ID        int64      `json:"id"`
	Kind      Kind       `json:"kind"`
	Date      *date.Date `json:"date"`
	VenueID   int64      `json:"venue_id"`
	VenueName string     `json:"venue_name"`

	// Title is the display title, derived from whichever extension is set.
	Title string `json:"title"`

	Concert    *Titled        `json:"concert,omitempty"`
	Movie      *MovieRef      `json:"movie,omitempty"`
	Production *ProductionRef `json:"production,omitempty"`
	Misc       *Titled        `json:"misc,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// titled returns the concert or misc extension, or nil for other kinds.
func (event *Event) titled() *Titled {
	switch event.Kind {
	case KindConcert:
		return event.Concert
	case KindMisc:
		return event.Misc
	}
	return nil
}

/*
refreshTitle derives the display title.

Untitled concerts and misc events are named after their creators. A production
without its own title uses the play's.
*/
func (event *Event) refreshTitle() {
	switch {
	case event.titled() != nil:
		titled := event.titled()
		event.Title = titled.Title
		if strings.TrimSpace(event.Title) == "" {
			event.Title = role.JoinNames(titled.Roles)
		}
	case event.Movie != nil:
		event.Title = event.Movie.MovieTitle
	case event.Production != nil:
		event.Title = event.Production.ProductionTitle
		if event.Title == "" {
			event.Title = event.Production.PlayTitle
		}
	}
}

// TitleSort is the sort key of a titled event: its title, or its creators' names.
func TitleSort(title string, roles []role.Role) string {
	if strings.TrimSpace(title) != "" {
		return sortkey.From(title)
	}
	return sortkey.From(role.JoinNames(roles))
}

// Input is the write shape of an [Event].
type Input struct {
	Kind    Kind       `json:"kind"`
	Date    *date.Date `json:"date"`
	VenueID int64      `json:"venue_id"`

	// Concert and misc only
	Title string       `json:"title"`
	Roles []role.Input `json:"roles"`

	MovieID      *int64 `json:"movie_id,omitempty"`
	ProductionID *int64 `json:"production_id,omitempty"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (event *Event) Input() Input {
	input := Input{
		Kind:    event.Kind,
		Date:    event.Date,
		VenueID: event.VenueID,
	}

	if titled := event.titled(); titled != nil {
		input.Title = titled.Title
		input.Roles = role.Inputs(titled.Roles)
	}
	if event.Movie != nil {
		input.MovieID = &event.Movie.MovieID
	}
	if event.Production != nil {
		input.ProductionID = &event.Production.ProductionID
	}
	return input
}

// Filter narrows an event listing. Zero values mean "any".
type Filter struct {
	Kind         Kind
	VenueID      *int64
	MovieID      *int64
	ProductionID *int64
}

// normalized pins the kind implied by a movie or production filter.
func (filter Filter) normalized() Filter {
	switch {
	case filter.MovieID != nil:
		filter.Kind = KindMovie
	case filter.ProductionID != nil:
		filter.Kind = KindPlay
	}
	return filter
}

// # Counts

// Counts is the number of events per kind plus their sum.
type Counts struct {
	Total   int
	Concert int
	Movie   int
	Play    int
	Misc    int
}

// Tally folds per-kind counts into [Counts] in one pass.
func Tally(byKind map[Kind]int) Counts {
	var counts Counts
	for kind, n := range byKind {
		switch kind {
		case KindConcert:
			counts.Concert += n
		case KindMovie:
			counts.Movie += n
		case KindPlay:
			counts.Play += n
		case KindMisc:
			counts.Misc += n
		default:
			continue
		}
		counts.Total += n
	}
	return counts
}

// Of returns the count for one kind, or the total for the combined list.
func (counts Counts) Of(kind Kind) int {
	switch kind {
	case KindConcert:
		return counts.Concert
	case KindMovie:
		return counts.Movie
	case KindPlay:
		return counts.Play
	case KindMisc:
		return counts.Misc
	}
	return counts.Total
}

// Context renders the list context sent alongside a page of events.
func (counts Counts) Context(kind Kind) map[string]any {
	context := map[string]any{
		"event_kind":  ContextName(kind),
		"event_count": counts.Total,
	}
	for _, k := range Kinds {
		context[k.CountKey()] = counts.Of(k)
	}
	return context
}

// Global field names for validation
const (
	FieldKind         = "kind"
	FieldVenueID      = "venue_id"
	FieldTitle        = "title"
	FieldRoles        = "roles"
	FieldMovieID      = "movie_id"
	FieldProductionID = "production_id"
)
