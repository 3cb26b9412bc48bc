// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package event

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/apperr"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// # Reads

// List returns one page of events, with roles loaded for the titled ones.
func (service *Service) List(context context.Context, filter Filter, limit, offset int) ([]*Event, int, error) {
	events, total, err := service.repo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if err := service.attachRoles(context, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// ListAll returns every event matching the filter, latest first.
func (service *Service) ListAll(context context.Context, filter Filter) ([]*Event, error) {
	events, err := service.repo.ListAll(context, filter)
	if err != nil {
		return nil, err
	}

	if err := service.attachRoles(context, events); err != nil {
		return nil, err
	}
	return events, nil
}

// ListTitled returns one page of concerts or misc events in title order.
func (service *Service) ListTitled(context context.Context, kind Kind, limit, offset int) ([]*Event, int, error) {
	if !kind.Titled() {
		return nil, 0, validate.FieldError(FieldKind, "Only concerts and misc events have titles")
	}

	events, total, err := service.repo.ListTitled(context, kind, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	if err := service.attachRoles(context, events); err != nil {
		return nil, 0, err
	}
	return events, total, nil
}

// Counts tallies the events of every kind.
func (service *Service) Counts(context context.Context) (Counts, error) {
	byKind, err := service.repo.CountByKind(context)
	if err != nil {
		return Counts{}, err
	}
	return Tally(byKind), nil
}

func (service *Service) Get(context context.Context, id int64) (*Event, error) {
	return service.repo.FindByID(context, id)
}

// GetOfKind is [Service.Get] restricted to one kind. Events of other kinds are not found.
func (service *Service) GetOfKind(context context.Context, kind Kind, id int64) (*Event, error) {
	event, err := service.repo.FindByID(context, id)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.NotFound(kind.Resource())
		}
		return nil, err
	}

	if event.Kind != kind {
		return nil, apperr.NotFound(kind.Resource())
	}
	return event, nil
}

/*
attachRoles loads the creators of the titled events in a page.

One query per titled kind, whatever the page size.
*/
func (service *Service) attachRoles(context context.Context, events []*Event) error {
	ids := map[Kind][]int64{}
	for _, event := range events {
		if event.Kind.Titled() {
			ids[event.Kind] = append(ids[event.Kind], event.ID)
		}
	}

	for kind, parentIDs := range ids {
		roles, err := service.repo.ListRoles(context, kind, parentIDs)
		if err != nil {
			return err
		}

		for _, event := range events {
			if event.Kind != kind {
				continue
			}
			if found, ok := roles[event.ID]; ok {
				event.titled().Roles = found
			}
			event.refreshTitle()
		}
	}

	return nil
}

// # Writes

func (service *Service) Create(context context.Context, input Input) (*Event, error) {
	event, err := build(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, event, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("event_created",
		slog.Int64("event_id", event.ID),
		slog.String("kind", string(event.Kind)),
	)
	return service.repo.FindByID(context, event.ID)
}

/*
Update rewrites an event.

The kind of an existing event is fixed: moving an event between extension
tables is rejected as a validation error.
*/
func (service *Service) Update(context context.Context, id int64, input Input) (*Event, error) {
	current, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if input.Kind != current.Kind {
		return nil, validate.FieldError(FieldKind, "The kind of an event cannot be changed")
	}

	event, err := build(input)
	if err != nil {
		return nil, err
	}
	event.ID = id

	if err := service.repo.Update(context, event, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("event_updated", slog.Int64("event_id", id))
	return service.repo.FindByID(context, id)
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("event_deleted", slog.Int64("event_id", id))
	return nil
}

// build validates an input and shapes it into an event with its one extension set.
func build(input Input) (*Event, error) {
	title := strings.TrimSpace(input.Title)
	hasMovie := input.MovieID != nil
	hasProduction := input.ProductionID != nil

	validator := &validate.Validator{}
	validator.
		Custom(FieldKind, !input.Kind.Valid(), "Must be one of concert, movie, play, misc").
		Custom(FieldVenueID, input.VenueID <= 0, "Must reference a venue")

	switch input.Kind {
	case KindConcert, KindMisc:
		validator.
			MaxLen(FieldTitle, title, constants.MaxTitleLength).
			Custom(FieldMovieID, hasMovie, "Only movie events reference a movie").
			Custom(FieldProductionID, hasProduction, "Only play events reference a production")
		role.Validate(validator, FieldRoles, input.Roles)

	case KindMovie:
		validator.
			Custom(FieldMovieID, !hasMovie || *input.MovieID <= 0, "Must reference a movie").
			Custom(FieldProductionID, hasProduction, "Only play events reference a production").
			Custom(FieldTitle, title != "", "Movie events take their title from the movie").
			Custom(FieldRoles, len(input.Roles) > 0, "Movie events take their credits from the movie")

	case KindPlay:
		validator.
			Custom(FieldProductionID, !hasProduction || *input.ProductionID <= 0, "Must reference a production").
			Custom(FieldMovieID, hasMovie, "Only movie events reference a movie").
			Custom(FieldTitle, title != "", "Play events take their title from the production").
			Custom(FieldRoles, len(input.Roles) > 0, "Play events take their credits from the production")
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	event := &Event{Kind: input.Kind, Date: input.Date, VenueID: input.VenueID}
	switch input.Kind {
	case KindConcert:
		event.Concert = &Titled{Title: title, Roles: []role.Role{}}
	case KindMisc:
		event.Misc = &Titled{Title: title, Roles: []role.Role{}}
	case KindMovie:
		event.Movie = &MovieRef{MovieID: *input.MovieID}
	case KindPlay:
		event.Production = &ProductionRef{ProductionID: *input.ProductionID}
	}

	return event, nil
}
