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

// # Play Lookups

func (service *Service) ListPlays(context context.Context, limit, offset int) ([]*Play, int, error) {
	return service.playRepo.List(context, limit, offset)
}

// GetPlay returns a play with its productions in title order.
func (service *Service) GetPlay(context context.Context, id int64) (*PlayDetail, error) {
	play, err := service.playRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	productions, err := service.productionRepo.ListByPlay(context, id)
	if err != nil {
		return nil, err
	}

	return &PlayDetail{Play: play, Productions: productions}, nil
}

// # Play Management

func (service *Service) CreatePlay(context context.Context, input PlayInput) (*Play, error) {
	play, err := buildPlay(input)
	if err != nil {
		return nil, err
	}

	if err := service.playRepo.Create(context, play, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("play_created", slog.Int64("play_id", play.ID))
	return play, nil
}

func (service *Service) UpdatePlay(context context.Context, id int64, input PlayInput) (*Play, error) {
	play, err := buildPlay(input)
	if err != nil {
		return nil, err
	}
	play.ID = id

	if err := service.playRepo.Update(context, play, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("play_updated", slog.Int64("play_id", id))
	return play, nil
}

func (service *Service) DeletePlay(context context.Context, id int64) error {
	if err := service.playRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("play_deleted", slog.Int64("play_id", id))
	return nil
}

func buildPlay(input PlayInput) (*Play, error) {
	title := strings.TrimSpace(input.Title)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, constants.MaxTitleLength)
	role.Validate(validator, FieldRoles, input.Roles)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Play{Title: title, TitleSort: sortkey.From(title)}, nil
}

// # Production Lookups

func (service *Service) ListProductions(context context.Context, limit, offset int) ([]*Production, int, error) {
	return service.productionRepo.List(context, limit, offset)
}

/*
GetProduction returns a production with every performance of it.

Returns:
  - *ProductionDetail: the production, its roles and its events (latest first)
  - error: not found if the production does not exist
*/
func (service *Service) GetProduction(context context.Context, id int64) (*ProductionDetail, error) {
	production, err := service.productionRepo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	events, err := service.events.ListAll(context, event.Filter{ProductionID: &id})
	if err != nil {
		return nil, err
	}

	return &ProductionDetail{
		Production:   production,
		DisplayTitle: production.DisplayTitle(),
		Events:       events,
	}, nil
}

// # Production Management

func (service *Service) CreateProduction(context context.Context, input ProductionInput) (*Production, error) {
	production, err := buildProduction(input)
	if err != nil {
		return nil, err
	}

	if err := service.productionRepo.Create(context, production, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("production_created",
		slog.Int64("production_id", production.ID),
		slog.Int64("play_id", production.PlayID),
	)
	return production, nil
}

func (service *Service) UpdateProduction(context context.Context, id int64, input ProductionInput) (*Production, error) {
	production, err := buildProduction(input)
	if err != nil {
		return nil, err
	}
	production.ID = id

	if err := service.productionRepo.Update(context, production, input.Roles); err != nil {
		return nil, err
	}

	service.logger.Info("production_updated", slog.Int64("production_id", id))
	return production, nil
}

func (service *Service) DeleteProduction(context context.Context, id int64) error {
	if err := service.productionRepo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("production_deleted", slog.Int64("production_id", id))
	return nil
}

// buildProduction validates an input. title_sort needs the play's title and is set by the store.
func buildProduction(input ProductionInput) (*Production, error) {
	title := strings.TrimSpace(input.Title)

	validator := &validate.Validator{}
	validator.
		Custom(FieldPlayID, input.PlayID <= 0, "Must reference a play").
		MaxLen(FieldTitle, title, constants.MaxTitleLength)
	role.Validate(validator, FieldRoles, input.Roles)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Production{PlayID: input.PlayID, Title: title}, nil
}
