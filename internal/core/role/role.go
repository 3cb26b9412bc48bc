// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package role links creators to the things they made or performed in.

Six parent kinds share one shape: a creator reference, an optional free-text
role label and an explicit order. Each kind has its own table so the parent
foreign key can cascade, but every read and write goes through the helpers in
this package.

Ordering:

  - role_order ascending, then role_name by byte value, then insertion order.
  - An empty role_name is the smallest name.
*/
package role

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/database/schema"
	"github.com/taibuivan/spectator/internal/platform/validate"
)

// # Parent Kinds

// Kind identifies which table a role row lives in.
type Kind string

const (
	KindPublication Kind = "publication"
	KindConcert     Kind = "concert"
	KindMovie       Kind = "movie"
	KindPlay        Kind = "play"
	KindProduction  Kind = "production"
	KindMiscEvent   Kind = "miscevent"
)

// Kinds lists every parent kind in display order.
var Kinds = []Kind{KindPublication, KindConcert, KindMovie, KindPlay, KindProduction, KindMiscEvent}

var tables = map[Kind]schema.RoleTable{
	KindPublication: schema.PublicationRole,
	KindConcert:     schema.ConcertRole,
	KindMovie:       schema.MovieRole,
	KindPlay:        schema.PlayRole,
	KindProduction:  schema.PlayProductionRole,
	KindMiscEvent:   schema.MiscEventRole,
}

// Valid reports whether k names a known parent kind.
func (k Kind) Valid() bool {
	_, ok := tables[k]
	return ok
}

// Table returns the role table of k. It panics on an unknown kind.
func (k Kind) Table() schema.RoleTable {
	table, ok := tables[k]
	if !ok {
		// Kinds are compile-time constants; an unknown one is a programming error.
		panic(fmt.Sprintf("role: unknown kind %q", k))
	}
	return table
}

// # Entities

// DefaultOrder is the role_order given to inputs that omit it.
const DefaultOrder int16 = 1

// Role is one creator credited on a parent.
type Role struct {
	ID          int64  `json:"id"`
	CreatorID   int64  `json:"creator_id"`
	CreatorName string `json:"creator_name"`
	RoleName    string `json:"role_name"`
	RoleOrder   int16  `json:"role_order"`
}

// Input is the write shape of a [Role].
type Input struct {
	CreatorID int64  `json:"creator_id"`
	RoleName  string `json:"role_name"`
	RoleOrder *int16 `json:"role_order,omitempty"`
}

// Order returns the explicit order or [DefaultOrder].
func (input Input) Order() int16 {
	if input.RoleOrder == nil {
		return DefaultOrder
	}
	return *input.RoleOrder
}

// Inputs converts stored roles back into write shapes, the base for PATCH bodies.
func Inputs(roles []Role) []Input {
	inputs := make([]Input, 0, len(roles))
	for _, r := range roles {
		order := r.RoleOrder
		inputs = append(inputs, Input{CreatorID: r.CreatorID, RoleName: r.RoleName, RoleOrder: &order})
	}
	return inputs
}

// CreatorRole is a role seen from the creator's side: what they were credited on.
type CreatorRole struct {
	Kind        Kind   `json:"kind"`
	ParentID    int64  `json:"parent_id"`
	ParentTitle string `json:"parent_title"`
	RoleName    string `json:"role_name"`
	RoleOrder   int16  `json:"role_order"`
}

// # Ordering

// Compare orders roles by (role_order, role_name). Names compare by byte value.
func Compare(a, b Role) int {
	if c := cmp.Compare(a.RoleOrder, b.RoleOrder); c != 0 {
		return c
	}
	return strings.Compare(a.RoleName, b.RoleName)
}

// Less reports whether a sorts before b.
func Less(a, b Role) bool {
	return Compare(a, b) < 0
}

// Sort orders roles in place. Equal roles keep their relative order.
func Sort(roles []Role) {
	slices.SortStableFunc(roles, Compare)
}

// # Helpers

// JoinNames lists creator names in role order as "A", "A and B" or "A, B and C".
func JoinNames(roles []Role) string {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.CreatorName)
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}

// Validate checks a list of role inputs under the given field prefix.
func Validate(validator *validate.Validator, field string, inputs []Input) {
	for i, input := range inputs {
		prefix := fmt.Sprintf("%s[%d]", field, i)

		validator.
			Custom(prefix+".creator_id", input.CreatorID <= 0, "Must reference a creator").
			MaxLen(prefix+".role_name", input.RoleName, constants.MaxRoleNameLength).
			Custom(prefix+".role_order", input.Order() < 0, "Must not be negative")
	}
}
