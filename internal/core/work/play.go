// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"time"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/role"
)

// # Play

// Play is a written work for the stage.
type Play struct {
	ID        int64       `json:"id"`
	Title     string      `json:"title"`
	TitleSort string      `json:"title_sort"`
	Roles     []role.Role `json:"roles"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// PlayDetail is a play with its productions.
type PlayDetail struct {
	*Play
	Productions []*Production `json:"productions"`
}

// PlayInput is the write shape of a [Play].
type PlayInput struct {
	Title string       `json:"title"`
	Roles []role.Input `json:"roles"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (play *Play) Input() PlayInput {
	return PlayInput{Title: play.Title, Roles: role.Inputs(play.Roles)}
}

// # Production

/*
Production is one staging of a play: a company, a cast, a run.

Title is optional. An untitled production is shown, and sorted, under its
play's title.
*/
type Production struct {
	ID        int64       `json:"id"`
	PlayID    int64       `json:"play_id"`
	PlayTitle string      `json:"play_title"`
	Title     string      `json:"title"`
	TitleSort string      `json:"title_sort"`
	Roles     []role.Role `json:"roles"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// DisplayTitle is the production's own title, falling back to the play's.
func (production *Production) DisplayTitle() string {
	if production.Title != "" {
		return production.Title
	}
	return production.PlayTitle
}

// ProductionDetail is a production with its performances, latest first.
type ProductionDetail struct {
	*Production
	DisplayTitle string         `json:"display_title"`
	Events       []*event.Event `json:"events"`
}

// ProductionInput is the write shape of a [Production].
type ProductionInput struct {
	PlayID int64        `json:"play_id"`
	Title  string       `json:"title"`
	Roles  []role.Input `json:"roles"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (production *Production) Input() ProductionInput {
	return ProductionInput{
		PlayID: production.PlayID,
		Title:  production.Title,
		Roles:  role.Inputs(production.Roles),
	}
}

// Global field names for validation
const (
	FieldTitle  = "title"
	FieldYear   = "year"
	FieldIMDbID = "imdb_id"
	FieldPlayID = "play_id"
	FieldRoles  = "roles"
)
