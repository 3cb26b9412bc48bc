// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"
	"log/slog"

	"github.com/taibuivan/spectator/internal/platform/validate"
)

// # Reading Lookups

// ListReadings returns one page of readings, latest end date first.
func (service *Service) ListReadings(context context.Context, limit, offset int) ([]*Reading, int, error) {
	return service.readingRepo.List(context, limit, offset)
}

func (service *Service) GetReading(context context.Context, id int64) (*Reading, error) {
	return service.readingRepo.FindByID(context, id)
}

// # Reading Management

// CreateReading records a reading of an existing publication.
func (service *Service) CreateReading(context context.Context, publicationID int64, input ReadingInput) (*Reading, error) {
	if _, err := service.publicationRepo.FindByID(context, publicationID); err != nil {
		return nil, err
	}

	reading, err := buildReading(input)
	if err != nil {
		return nil, err
	}
	reading.PublicationID = publicationID

	if err := service.readingRepo.Create(context, reading); err != nil {
		return nil, err
	}

	service.logger.Info("reading_created",
		slog.Int64("reading_id", reading.ID),
		slog.Int64("publication_id", publicationID),
	)
	return service.readingRepo.FindByID(context, reading.ID)
}

func (service *Service) UpdateReading(context context.Context, id int64, input ReadingInput) (*Reading, error) {
	reading, err := buildReading(input)
	if err != nil {
		return nil, err
	}
	reading.ID = id

	if err := service.readingRepo.Update(context, reading); err != nil {
		return nil, err
	}

	service.logger.Info("reading_updated", slog.Int64("reading_id", id))
	return service.readingRepo.FindByID(context, id)
}

func (service *Service) DeleteReading(context context.Context, id int64) error {
	if err := service.readingRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("reading_deleted", slog.Int64("reading_id", id))
	return nil
}

// buildReading defaults missing granularities to day. Dates are not checked against each other.
func buildReading(input ReadingInput) (*Reading, error) {
	start := input.StartGranularity
	if start == 0 {
		start = GranularityDay
	}
	end := input.EndGranularity
	if end == 0 {
		end = GranularityDay
	}

	validator := &validate.Validator{}
	validator.
		Custom(FieldStartGranularity, !start.Valid(), "Must be 3 (day), 4 (month) or 6 (year)").
		Custom(FieldEndGranularity, !end.Valid(), "Must be 3 (day), 4 (month) or 6 (year)")

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Reading{
		StartDate:        input.StartDate,
		StartGranularity: start,
		EndDate:          input.EndDate,
		EndGranularity:   end,
		IsFinished:       input.IsFinished,
	}, nil
}
