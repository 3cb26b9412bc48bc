// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package venue

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// EventLister is the part of the event service the venue page needs.
type EventLister interface {
	ListAll(context context.Context, filter event.Filter) ([]*event.Event, error)
}

type Service struct {
	repo    Repository
	events  EventLister
	mapsKey string
	logger  *slog.Logger
}

/*
NewService constructs a venue service.

mapsKey is passed through to venue pages untouched; an empty key hides maps.
*/
func NewService(repo Repository, events EventLister, mapsKey string, logger *slog.Logger) *Service {
	return &Service{
		repo:    repo,
		events:  events,
		mapsKey: mapsKey,
		logger:  logger,
	}
}

func (service *Service) List(context context.Context, limit, offset int) ([]*Venue, int, error) {
	return service.repo.List(context, limit, offset)
}

// Get returns the venue with its events and, when it can be mapped, the maps key.
func (service *Service) Get(context context.Context, id int64) (*Detail, error) {
	venue, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	events, err := service.events.ListAll(context, event.Filter{VenueID: &id})
	if err != nil {
		return nil, err
	}

	detail := &Detail{Venue: venue, Events: events}
	if service.mapsKey != "" && venue.HasLocation() {
		detail.GoogleMapsAPIKey = service.mapsKey
	}
	return detail, nil
}

func (service *Service) Create(context context.Context, input Input) (*Venue, error) {
	venue, err := build(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_created", slog.Int64("venue_id", venue.ID))
	return venue, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Venue, error) {
	venue, err := build(input)
	if err != nil {
		return nil, err
	}
	venue.ID = id

	if err := service.repo.Update(context, venue); err != nil {
		return nil, err
	}

	service.logger.Info("venue_updated", slog.Int64("venue_id", id))
	return venue, nil
}

// Delete removes a venue. Every event held there is deleted with it.
func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("venue_deleted", slog.Int64("venue_id", id))
	return nil
}

func build(input Input) (*Venue, error) {
	name := strings.TrimSpace(input.Name)
	address := strings.TrimSpace(input.Address)
	country := strings.ToUpper(strings.TrimSpace(input.Country))

	validator := &validate.Validator{}
	validator.
		Required(FieldName, name).
		MaxLen(FieldName, name, constants.MaxNameLength).
		MaxLen(FieldAddress, address, constants.MaxNameLength).
		Coordinate(FieldLatitude, input.Latitude, 90).
		Coordinate(FieldLongitude, input.Longitude, 180).
		Country(FieldCountry, country)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Venue{
		Name:      name,
		NameSort:  sortkey.From(name),
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   address,
		Country:   country,
	}, nil
}
