// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package date_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/spectator/pkg/date"
)

func TestParse(t *testing.T) {
	d, err := date.Parse("2017-02-10")
	require.NoError(t, err)
	assert.Equal(t, 2017, d.Year())
	assert.Equal(t, time.February, d.Month())
	assert.Equal(t, 10, d.Day())

	_, err = date.Parse("10/02/2017")
	assert.Error(t, err)
}

func TestJSON(t *testing.T) {
	type payload struct {
		Start *date.Date `json:"start"`
		End   *date.Date `json:"end"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2017-02-10","end":null}`), &p))
	require.NotNil(t, p.Start)
	assert.Nil(t, p.End)
	assert.Equal(t, "2017-02-10", p.Start.String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2017-02-10","end":null}`, string(out))
}

func TestPgtypeRoundTrip(t *testing.T) {
	var d date.Date
	require.NoError(t, d.ScanDate(pgtype.Date{Time: time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC), Valid: true}))
	assert.Equal(t, date.New(2020, time.May, 1), d)

	value, err := d.DateValue()
	require.NoError(t, err)
	assert.True(t, value.Valid)

	require.NoError(t, d.ScanDate(pgtype.Date{}))
	assert.True(t, d.IsZero())
}

func TestBefore(t *testing.T) {
	assert.True(t, date.MustParse("2017-02-09").Before(date.MustParse("2017-02-10")))
	assert.False(t, date.MustParse("2017-02-10").Before(date.MustParse("2017-02-10")))
}
