// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package role_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/pointer"
)

/*
TestSort_OrderThenName checks the primary and secondary keys.
*/
func TestSort_OrderThenName(t *testing.T) {
	roles := []role.Role{
		{ID: 1, CreatorName: "Support act", RoleOrder: 2, RoleName: "Support"},
		{ID: 2, CreatorName: "Headliner", RoleOrder: 1, RoleName: "Headliner"},
		{ID: 3, CreatorName: "Uncredited", RoleOrder: 1, RoleName: ""},
		{ID: 4, CreatorName: "Director", RoleOrder: 1, RoleName: "Director"},
	}

	role.Sort(roles)

	ids := []int64{}
	for _, r := range roles {
		ids = append(ids, r.ID)
	}

	// "" < "Director" < "Headliner" at order 1, then order 2
	assert.Equal(t, []int64{3, 4, 2, 1}, ids)
}

/*
TestSort_ByteOrder ensures names compare by byte value, so upper case sorts first.
*/
func TestSort_ByteOrder(t *testing.T) {
	roles := []role.Role{
		{ID: 1, RoleName: "actor"},
		{ID: 2, RoleName: "Zither"},
		{ID: 3, RoleName: "Écrivain"},
	}

	role.Sort(roles)

	assert.Equal(t, "Zither", roles[0].RoleName)
	assert.Equal(t, "actor", roles[1].RoleName)
	assert.Equal(t, "Écrivain", roles[2].RoleName)
}

/*
TestSort_Stable keeps insertion order among equal keys.
*/
func TestSort_Stable(t *testing.T) {
	roles := []role.Role{
		{ID: 10, RoleName: "Actor", RoleOrder: 1},
		{ID: 11, RoleName: "Actor", RoleOrder: 1},
		{ID: 12, RoleName: "Actor", RoleOrder: 1},
	}

	role.Sort(roles)

	assert.Equal(t, int64(10), roles[0].ID)
	assert.Equal(t, int64(11), roles[1].ID)
	assert.Equal(t, int64(12), roles[2].ID)
}

/*
TestSort_NonDecreasing shuffles a larger list and checks the output is ordered.
*/
func TestSort_NonDecreasing(t *testing.T) {
	names := []string{"", "Actor", "Director", "director", "Writer"}
	roles := make([]role.Role, 0, 50)

	for i := range 50 {
		roles = append(roles, role.Role{
			ID:        int64(i),
			RoleOrder: int16(rand.IntN(4)),
			RoleName:  names[rand.IntN(len(names))],
		})
	}

	role.Sort(roles)

	for i := 1; i < len(roles); i++ {
		require.False(t, role.Less(roles[i], roles[i-1]), "position %d out of order", i)
	}
}

func TestJoinNames(t *testing.T) {
	tests := []struct {
		name  string
		names []string
		want  string
	}{
		{"none", nil, ""},
		{"one", []string{"Bob Dylan"}, "Bob Dylan"},
		{"two", []string{"Simon", "Garfunkel"}, "Simon and Garfunkel"},
		{"three", []string{"Crosby", "Stills", "Nash"}, "Crosby, Stills and Nash"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roles := []role.Role{}
			for _, name := range tt.names {
				roles = append(roles, role.Role{CreatorName: name})
			}
			assert.Equal(t, tt.want, role.JoinNames(roles))
		})
	}
}

func TestKind_Valid(t *testing.T) {
	for _, kind := range role.Kinds {
		assert.True(t, kind.Valid(), kind)
	}
	assert.False(t, role.Kind("comic").Valid())
}

func TestInput_Order(t *testing.T) {
	assert.Equal(t, role.DefaultOrder, role.Input{}.Order())
	assert.Equal(t, int16(4), role.Input{RoleOrder: pointer.To(int16(4))}.Order())
}

func TestValidate(t *testing.T) {
	validator := &validate.Validator{}
	role.Validate(validator, "roles", []role.Input{
		{CreatorID: 1, RoleName: "Headliner"},
		{CreatorID: 0, RoleName: "This role name is far too long to fit in fifty characters"},
		{CreatorID: 2, RoleOrder: pointer.To(int16(-1))},
	})

	ae := apperr.As(validator.Err())
	require.NotNil(t, ae)

	fields := []string{}
	for _, detail := range ae.Details {
		fields = append(fields, detail.Field)
	}
	assert.ElementsMatch(t, []string{"roles[1].creator_id", "roles[1].role_name", "roles[2].role_order"}, fields)
}

func TestInputs(t *testing.T) {
	inputs := role.Inputs([]role.Role{
		{ID: 7, CreatorID: 3, CreatorName: "Patti Smith", RoleName: "Vocals", RoleOrder: 2},
	})

	require.Len(t, inputs, 1)
	assert.Equal(t, int64(3), inputs[0].CreatorID)
	assert.Equal(t, "Vocals", inputs[0].RoleName)
	assert.Equal(t, int16(2), inputs[0].Order())
}

func TestNameParents_UntitledCreditsTakeBilledNames(t *testing.T) {
	credits := []role.CreatorRole{
		{Kind: role.KindConcert, ParentID: 4, ParentTitle: ""},
		{Kind: role.KindConcert, ParentID: 4, ParentTitle: "", RoleName: "Guitar"},
		{Kind: role.KindConcert, ParentID: 5, ParentTitle: "Live at the Roundhouse"},
		{Kind: role.KindMiscEvent, ParentID: 9, ParentTitle: ""},
		{Kind: role.KindProduction, ParentID: 2, ParentTitle: "Hamlet"},
	}

	untitled := role.UntitledParents(credits)
	assert.Equal(t, map[role.Kind][]int64{
		role.KindConcert:   {4},
		role.KindMiscEvent: {9},
	}, untitled)

	role.NameParents(credits, role.KindConcert, map[int64][]role.Role{
		4: {{CreatorName: "Nick Cave", RoleOrder: 1}, {CreatorName: "Warren Ellis", RoleOrder: 2}},
	})

	assert.Equal(t, "Nick Cave and Warren Ellis", credits[0].ParentTitle)
	assert.Equal(t, "Nick Cave and Warren Ellis", credits[1].ParentTitle)
	assert.Equal(t, "Live at the Roundhouse", credits[2].ParentTitle)
	assert.Equal(t, "", credits[3].ParentTitle, "other kinds are named separately")
	assert.Equal(t, "Hamlet", credits[4].ParentTitle)
}
