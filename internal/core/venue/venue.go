// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"time"

	"github.com/taibuivan/spectator/internal/core/event"
)

// Venue is a place events happen at.
type Venue struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	NameSort  string    `json:"name_sort"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	Address   string    `json:"address"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates are set.
func (venue *Venue) HasLocation() bool {
	return venue.Latitude != nil && venue.Longitude != nil
}

// Detail is a venue with its events, latest first.
//
// GoogleMapsAPIKey is only present when a key is configured and the venue can
// be placed on a map.
type Detail struct {
	*Venue
	Events           []*event.Event `json:"events"`
	GoogleMapsAPIKey string         `json:"google_maps_api_key,omitempty"`
}

// Input is the write shape of a [Venue]. NameSort is always derived.
type Input struct {
	Name      string   `json:"name"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
	Country   string   `json:"country"`
}

// Input returns the current values as a write shape, the base for PATCH bodies.
func (venue *Venue) Input() Input {
	return Input{
		Name:      venue.Name,
		Latitude:  venue.Latitude,
		Longitude: venue.Longitude,
		Address:   venue.Address,
		Country:   venue.Country,
	}
}

// Global field names for validation
const (
	FieldName      = "name"
	FieldLatitude  = "latitude"
	FieldLongitude = "longitude"
	FieldAddress   = "address"
	FieldCountry   = "country"
)
