// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"io"
	"log/slog"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
)

// fakeRepository keeps creators in memory with the same ordering as the SQL store.
//
// billed holds the roles of untitled concerts by event id, and titleSorts their
// stored keys, so renames and deletes can be checked for re-sorting.
type fakeRepository struct {
	creators   map[int64]*Creator
	credits    map[int64][]role.CreatorRole
	billed     map[int64][]role.Role
	titleSorts map[int64]string
	nextID     int64
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		creators:   make(map[int64]*Creator),
		credits:    make(map[int64][]role.CreatorRole),
		billed:     make(map[int64][]role.Role),
		titleSorts: make(map[int64]string),
	}
}

// bill credits creators, in order, on an untitled concert.
func (repository *fakeRepository) bill(eventID int64, creators ...*Creator) {
	roles := make([]role.Role, 0, len(creators))
	for i, c := range creators {
		roles = append(roles, role.Role{CreatorID: c.ID, CreatorName: c.Name, RoleOrder: int16(i + 1)})
	}
	repository.billed[eventID] = roles
	repository.titleSorts[eventID] = event.TitleSort("", roles)
}

func (repository *fakeRepository) resort(creatorID int64, rewrite func([]role.Role) []role.Role) {
	for eventID, roles := range repository.billed {
		if !slices.ContainsFunc(roles, func(r role.Role) bool { return r.CreatorID == creatorID }) {
			continue
		}
		roles = rewrite(roles)
		repository.billed[eventID] = roles
		repository.titleSorts[eventID] = event.TitleSort("", roles)
	}
}

func (repository *fakeRepository) List(_ context.Context, limit, offset int) ([]*Creator, int, error) {
	all := make([]*Creator, 0, len(repository.creators))
	for _, c := range repository.creators {
		all = append(all, c)
	}

	slices.SortFunc(all, func(a, b *Creator) int {
		if c := strings.Compare(a.NameSort, b.NameSort); c != 0 {
			return c
		}
		return int(a.ID - b.ID)
	})

	total := len(all)
	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	return all[offset:end], total, nil
}

func (repository *fakeRepository) FindByID(_ context.Context, id int64) (*Creator, error) {
	c, ok := repository.creators[id]
	if !ok {
		return nil, apperr.NotFound(resource)
	}
	return c, nil
}

func (repository *fakeRepository) ListCredits(_ context.Context, id int64) ([]role.CreatorRole, error) {
	credits := repository.credits[id]
	if credits == nil {
		credits = []role.CreatorRole{}
	}
	return credits, nil
}

func (repository *fakeRepository) Create(_ context.Context, c *Creator) error {
	repository.nextID++
	c.ID = repository.nextID
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	repository.creators[c.ID] = c
	return nil
}

func (repository *fakeRepository) Update(_ context.Context, c *Creator) error {
	existing, ok := repository.creators[c.ID]
	if !ok {
		return apperr.NotFound(resource)
	}
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = time.Now()
	repository.creators[c.ID] = c

	repository.resort(c.ID, func(roles []role.Role) []role.Role {
		for i := range roles {
			if roles[i].CreatorID == c.ID {
				roles[i].CreatorName = c.Name
			}
		}
		return roles
	})
	return nil
}

func (repository *fakeRepository) Delete(_ context.Context, id int64) error {
	if _, ok := repository.creators[id]; !ok {
		return apperr.NotFound(resource)
	}
	delete(repository.creators, id)
	delete(repository.credits, id)

	repository.resort(id, func(roles []role.Role) []role.Role {
		return slices.DeleteFunc(roles, func(r role.Role) bool { return r.CreatorID == id })
	})
	return nil
}

func newTestService() (*Service, *fakeRepository) {
	repository := newFakeRepository()
	return NewService(repository, slog.New(slog.NewTextHandler(io.Discard, nil))), repository
}

func TestService_CreateDerivesNameSort(t *testing.T) {
	service, _ := newTestService()

	creator, err := service.Create(context.Background(), Input{Name: "  The Beatles "})
	require.NoError(t, err)

	assert.Equal(t, "The Beatles", creator.Name)
	assert.Equal(t, "beatles, the", creator.NameSort)
	assert.NotZero(t, creator.ID)
}

func TestService_CreateValidation(t *testing.T) {
	service, repository := newTestService()

	_, err := service.Create(context.Background(), Input{Name: "   "})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeValidation, ae.Code)
	assert.Equal(t, FieldName, ae.Details[0].Field)
	assert.Empty(t, repository.creators)
}

func TestService_UpdateRederivesNameSort(t *testing.T) {
	service, _ := newTestService()

	created, err := service.Create(context.Background(), Input{Name: "Beatles"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID, Input{Name: "The Beatles"})
	require.NoError(t, err)
	assert.Equal(t, "beatles, the", updated.NameSort)
}

func TestService_GetMissing(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Get(context.Background(), 404)
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_GetIncludesCredits(t *testing.T) {
	service, repository := newTestService()

	created, err := service.Create(context.Background(), Input{Name: "Caryl Churchill"})
	require.NoError(t, err)

	repository.credits[created.ID] = []role.CreatorRole{
		{Kind: role.KindPlay, ParentID: 3, ParentTitle: "Top Girls", RoleName: "Playwright", RoleOrder: 1},
	}

	detail, err := service.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Caryl Churchill", detail.Name)
	require.Len(t, detail.Credits, 1)
	assert.Equal(t, role.KindPlay, detail.Credits[0].Kind)
}

func TestService_ListOrdersByNameSort(t *testing.T) {
	service, _ := newTestService()

	for _, name := range []string{"Chipmunks", "The Aardvarks", "A Bat"} {
		_, err := service.Create(context.Background(), Input{Name: name})
		require.NoError(t, err)
	}

	creators, total, err := service.List(context.Background(), 25, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	names := []string{}
	for _, c := range creators {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"The Aardvarks", "A Bat", "Chipmunks"}, names)
}

func TestService_RenamingCreatorResortsUntitledEvents(t *testing.T) {
	service, repository := newTestService()
	ctx := context.Background()

	nick, err := service.Create(ctx, Input{Name: "Nick Cave"})
	require.NoError(t, err)
	warren, err := service.Create(ctx, Input{Name: "Warren Ellis"})
	require.NoError(t, err)
	other, err := service.Create(ctx, Input{Name: "Anna Calvi"})
	require.NoError(t, err)

	repository.bill(7, nick, warren)
	repository.bill(8, other)
	require.Equal(t, "nick cave and warren ellis", repository.titleSorts[7])

	_, err = service.Update(ctx, nick.ID, Input{Name: "Zed"})
	require.NoError(t, err)
	assert.Equal(t, "zed and warren ellis", repository.titleSorts[7])
	assert.Equal(t, "anna calvi", repository.titleSorts[8])

	require.NoError(t, service.Delete(ctx, nick.ID))
	assert.Equal(t, "warren ellis", repository.titleSorts[7])
	assert.Equal(t, "anna calvi", repository.titleSorts[8])
}
