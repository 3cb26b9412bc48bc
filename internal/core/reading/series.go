// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import "time"

// Series groups publications, e.g. the issues of a magazine.
type Series struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	TitleSort string    `json:"title_sort"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SeriesDetail is a series with its publications in title order.
type SeriesDetail struct {
	*Series
	Publications []*Publication `json:"publications"`
}

// SeriesInput is the write shape of a [Series].
type SeriesInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (series *Series) Input() SeriesInput {
	return SeriesInput{Title: series.Title, URL: series.URL}
}
