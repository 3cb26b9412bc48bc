// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"

	"github.com/taibuivan/spectator/internal/core/role"
)

// Repository defines the persistence contract for events.
type Repository interface {
	// List returns one page ordered by date (latest first, undated last), id, and the match count.
	List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error)

	// ListAll is List without paging, for detail pages of venues and works.
	ListAll(context context.Context, filter Filter) ([]*Event, error)

	// ListTitled returns concerts or misc events ordered by title_sort, id.
	ListTitled(context context.Context, kind Kind, limit, offset int) ([]*Event, int, error)

	// CountByKind returns the number of events per kind from a single grouped query.
	CountByKind(context context.Context) (map[Kind]int, error)

	// ListRoles loads the roles of a page of titled events in one query.
	ListRoles(context context.Context, kind Kind, ids []int64) (map[int64][]role.Role, error)

	// FindByID returns the event with its extension and, for titled kinds, its roles.
	FindByID(context context.Context, id int64) (*Event, error)

	// Create writes the base row, the extension row and the roles in one transaction.
	Create(context context.Context, event *Event, roles []role.Input) error

	// Update rewrites an event of an unchanged kind in one transaction.
	Update(context context.Context, event *Event, roles []role.Input) error

	// Delete removes the base row; extension and role rows go with it.
	Delete(context context.Context, id int64) error
}
