// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"time"

	"github.com/taibuivan/spectator/internal/core/role"
)

// Creator is a person or group credited on publications, events or works.
type Creator struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NameSort  string    `json:"name_sort"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Detail is a creator with everything they are credited on.
type Detail struct {
	*Creator
	Credits []role.CreatorRole `json:"credits"`
}

// Input is the write shape of a [Creator]. NameSort is always derived.
type Input struct {
	Name string `json:"name"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (creator *Creator) Input() Input {
	return Input{Name: creator.Name}
}

// Global field names for validation
const (
	FieldName = "name"
)
