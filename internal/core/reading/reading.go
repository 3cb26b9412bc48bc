// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"time"

	"github.com/taibuivan/spectator/pkg/date"
)

// Granularity is how precisely a reading date is known.
type Granularity int16

const (
	GranularityDay   Granularity = 3
	GranularityMonth Granularity = 4
	GranularityYear  Granularity = 6
)

// Valid reports whether g is one of the stored precisions.
func (g Granularity) Valid() bool {
	return g == GranularityDay || g == GranularityMonth || g == GranularityYear
}

// State of a reading, derived from its dates and finished flag.
type State string

const (
	StateFinished   State = "finished"
	StateInProgress State = "in_progress"
	StateAbandoned  State = "abandoned"
	StateNotStarted State = "not_started"
)

// Reading is one period a publication was read in.
type Reading struct {
	ID               int64       `json:"id"`
	PublicationID    int64       `json:"publication_id"`
	PublicationTitle string      `json:"publication_title"`
	StartDate        *date.Date  `json:"start_date"`
	StartGranularity Granularity `json:"start_granularity"`
	EndDate          *date.Date  `json:"end_date"`
	EndGranularity   Granularity `json:"end_granularity"`
	IsFinished       bool        `json:"is_finished"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// InProgress reports whether the reading has started and has no end date.
// The finished flag is not consulted.
func (reading *Reading) InProgress() bool {
	return reading.StartDate != nil && reading.EndDate == nil
}

/*
State classifies the reading.

  - finished: the flag is set, whatever the dates say
  - in_progress: started, no end date
  - abandoned: ended without being finished
  - not_started: no dates at all
*/
func (reading *Reading) State() State {
	switch {
	case reading.IsFinished:
		return StateFinished
	case reading.InProgress():
		return StateInProgress
	case reading.EndDate != nil:
		return StateAbandoned
	default:
		return StateNotStarted
	}
}

// ReadingInput is the write shape of a [Reading]. Zero granularities default to day.
type ReadingInput struct {
	StartDate        *date.Date  `json:"start_date"`
	StartGranularity Granularity `json:"start_granularity"`
	EndDate          *date.Date  `json:"end_date"`
	EndGranularity   Granularity `json:"end_granularity"`
	IsFinished       bool        `json:"is_finished"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (reading *Reading) Input() ReadingInput {
	return ReadingInput{
		StartDate:        reading.StartDate,
		StartGranularity: reading.StartGranularity,
		EndDate:          reading.EndDate,
		EndGranularity:   reading.EndGranularity,
		IsFinished:       reading.IsFinished,
	}
}
