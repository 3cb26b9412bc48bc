// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"

	"github.com/taibuivan/spectator/internal/core/role"
)

// Repository defines the persistence contract for creators.
type Repository interface {
	// List returns one page ordered by name_sort, id, and the total count.
	List(context context.Context, limit, offset int) ([]*Creator, int, error)
	FindByID(context context.Context, id int64) (*Creator, error)
	ListCredits(context context.Context, id int64) ([]role.CreatorRole, error)
	Create(context context.Context, creator *Creator) error
	// Update renames the creator and re-sorts the untitled events crediting them.
	Update(context context.Context, creator *Creator) error
	// Delete removes the creator and, by cascade, every role row crediting them.
	// Untitled events they were credited on are re-sorted by the remaining names.
	Delete(context context.Context, id int64) error
}
