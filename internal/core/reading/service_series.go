// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// # Series Lookups

func (service *Service) ListSeries(context context.Context, limit, offset int) ([]*Series, int, error) {
	return service.seriesRepo.List(context, limit, offset)
}

// GetSeries returns a series with its publications in title order.
func (service *Service) GetSeries(context context.Context, id int64) (*SeriesDetail, error) {
	series, err := service.seriesRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	publications, err := service.publicationRepo.ListBySeries(context, id)
	if err != nil {
		return nil, err
	}
	service.decorate(publications...)

	return &SeriesDetail{Series: series, Publications: publications}, nil
}

// # Series Management

func (service *Service) CreateSeries(context context.Context, input SeriesInput) (*Series, error) {
	series, err := buildSeries(input)
	if err != nil {
		return nil, err
	}

	if err := service.seriesRepo.Create(context, series); err != nil {
		return nil, err
	}

	service.logger.Info("series_created", slog.Int64("series_id", series.ID))
	return series, nil
}

func (service *Service) UpdateSeries(context context.Context, id int64, input SeriesInput) (*Series, error) {
	series, err := buildSeries(input)
	if err != nil {
		return nil, err
	}
	series.ID = id

	if err := service.seriesRepo.Update(context, series); err != nil {
		return nil, err
	}

	service.logger.Info("series_updated", slog.Int64("series_id", id))
	return series, nil
}

// DeleteSeries removes a series. Its publications are kept without one.
func (service *Service) DeleteSeries(context context.Context, id int64) error {
	if err := service.seriesRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("series_deleted", slog.Int64("series_id", id))
	return nil
}

func buildSeries(input SeriesInput) (*Series, error) {
	title := strings.TrimSpace(input.Title)
	link := strings.TrimSpace(input.URL)

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, title).
		MaxLen(FieldTitle, title, constants.MaxTitleLength).
		URL(FieldURL, link).
		MaxLen(FieldURL, link, constants.MaxURLLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Series{Title: title, TitleSort: sortkey.From(title), URL: link}, nil
}
