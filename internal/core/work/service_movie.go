// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/core/event"
	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// # Movie Lookups

func (service *Service) ListMovies(context context.Context, limit, offset int) ([]*Movie, int, error) {
	return service.movieRepo.List(context, limit, offset)
}

/*
GetMovie returns a movie with every screening of it.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *MovieDetail: the movie, its roles and its events (latest first)
  - error: not found if the movie does not exist
*/
func (service *Service) GetMovie(context context.Context, id int64) (*MovieDetail, error) {
	movie, err := service.movieRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	events, err := service.events.ListAll(context, event.Filter{MovieID: &id})
	if err != nil {
		return nil, err
	}

	return &MovieDetail{Movie: movie, IMDbURL: movie.IMDbURL(), Events: events}, nil
}

// # Movie Management

func (service *Service) CreateMovie(context context.Context, input MovieInput) (*Movie, error) {
	movie, err := buildMovie(input)
	if err != nil {
		return nil, err
	}

	if err := service.movieRepo.Create(context, movie, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("movie_created", slog.Int64("movie_id", movie.ID))
	return movie, nil
}

func (service *Service) UpdateMovie(context context.Context, id int64, input MovieInput) (*Movie, error) {
	movie, err := buildMovie(input)
	if err != nil {
		return nil, err
	}
	movie.ID = id

	if err := service.movieRepo.Update(context, movie, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("movie_updated", slog.Int64("movie_id", id))
	return movie, nil
}

// DeleteMovie removes a movie. Its screenings are deleted with it.
func (service *Service) DeleteMovie(context context.Context, id int64) error {
	if err := service.movieRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("movie_deleted", slog.Int64("movie_id", id))
	return nil
}

func buildMovie(input MovieInput) (*Movie, error) {
	title := strings.TrimSpace(input.Title)
	imdbID := strings.TrimSpace(input.IMDbID)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, title).
		MaxLen(FieldTitle, title, constants.MaxTitleLength).
		IMDbID(FieldIMDbID, imdbID)

	if input.Year != nil {
		validator.Range(FieldYear, *input.Year, 1800, 3000)
	}
	role.Validate(validator, FieldRoles, input.Roles)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Movie{
		Title:     title,
		TitleSort: sortkey.From(title),
		Year:      input.Year,
		IMDbID:    imdbID,
	}, nil
}
