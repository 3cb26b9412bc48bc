// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/core/role"
	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
)

// # Publication Lookups

// ListPublications returns one page of publications in title order.
func (service *Service) ListPublications(context context.Context, filter PublicationFilter, limit, offset int) ([]*Publication, int, error) {
	if filter.Kind != "" && !filter.Kind.Valid() {
		return nil, 0, validate.FieldError(FieldKind, "Must be one of book, periodical")
	}

	publications, total, err := service.publicationRepo.List(context, filter, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	service.decorate(publications...)
	return publications, total, nil
}

// GetPublication returns a publication with its readings, earliest first.
func (service *Service) GetPublication(context context.Context, id int64) (*PublicationDetail, error) {
	publication, err := service.publicationRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	readings, err := service.readingRepo.ListByPublication(context, id)
	if err != nil {
		return nil, err
	}

	service.decorate(publication)
	return &PublicationDetail{Publication: publication, Readings: readings}, nil
}

// # Publication Management

func (service *Service) CreatePublication(context context.Context, input PublicationInput) (*Publication, error) {
	publication, err := buildPublication(input)
	if err != nil {
		return nil, err
	}

	if err := service.publicationRepo.Create(context, publication, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("publication_created",
		slog.Int64("publication_id", publication.ID),
		slog.String("kind", string(publication.Kind)),
	)
	service.decorate(publication)
	return publication, nil
}

func (service *Service) UpdatePublication(context context.Context, id int64, input PublicationInput) (*Publication, error) {
	publication, err := buildPublication(input)
	if err != nil {
		return nil, err
	}
	publication.ID = id

	if err := service.publicationRepo.Update(context, publication, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("publication_updated", slog.Int64("publication_id", id))
	service.decorate(publication)
	return publication, nil
}

// DeletePublication removes a publication together with its readings.
func (service *Service) DeletePublication(context context.Context, id int64) error {
	if err := service.publicationRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("publication_deleted", slog.Int64("publication_id", id))
	return nil
}

func buildPublication(input PublicationInput) (*Publication, error) {
	title := strings.TrimSpace(input.Title)
	officialURL := strings.TrimSpace(input.OfficialURL)
	notesURL := strings.TrimSpace(input.NotesURL)
	isbnUK := strings.TrimSpace(input.ISBNUK)
	isbnUS := strings.TrimSpace(input.ISBNUS)

	kind := input.Kind
	if kind == "" {
		kind = KindBook
	}

	validator := &validate.Validator{}
	validator.
		Required(FieldTitle, title).
		MaxLen(FieldTitle, title, constants.MaxTitleLength).
		Custom(FieldKind, !kind.Valid(), "Must be one of book, periodical").
		Custom(FieldSeriesID, input.SeriesID != nil && *input.SeriesID <= 0, "Must reference a series").
		URL(FieldOfficialURL, officialURL).
		MaxLen(FieldOfficialURL, officialURL, constants.MaxURLLength).
		URL(FieldNotesURL, notesURL).
		MaxLen(FieldNotesURL, notesURL, constants.MaxURLLength).
		ISBN(FieldISBNUK, isbnUK).
		ISBN(FieldISBNUS, isbnUS)
	role.Validate(validator, FieldRoles, input.Roles)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Publication{
		Title:       title,
		TitleSort:   sortkey.From(title),
		Kind:        kind,
		SeriesID:    input.SeriesID,
		OfficialURL: officialURL,
		ISBNUK:      isbnUK,
		ISBNUS:      isbnUS,
		NotesURL:    notesURL,
		Roles:       []role.Role{},
	}, nil
}
