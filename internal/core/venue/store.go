// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import "context"

// Repository defines the persistence contract for venues.
type Repository interface {
	// List returns one page ordered by name_sort, id, and the total count.
	List(context context.Context, limit, offset int) ([]*Venue, int, error)
	FindByID(context context.Context, id int64) (*Venue, error)
	Create(context context.Context, venue *Venue) error
	Update(context context.Context, venue *Venue) error
	// Delete removes the venue and, by cascade, every event held there.
	Delete(context context.Context, id int64) error
}
