// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package creator

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/spectator/internal/platform/constants"
	"github.com/taibuivan/spectator/internal/platform/validate"
	"github.com/taibuivan/spectator/pkg/sortkey"
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

func (service *Service) List(context context.Context, limit, offset int) ([]*Creator, int, error) {
	return service.repo.List(context, limit, offset)
}

// Get returns the creator with their credits across every kind.
func (service *Service) Get(context context.Context, id int64) (*Detail, error) {
	creator, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	credits, err := service.repo.ListCredits(context, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Creator: creator, Credits: credits}, nil
}

func (service *Service) Create(context context.Context, input Input) (*Creator, error) {
	creator, err := build(input)
	if err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, creator); err != nil {
		return nil, err
	}

	service.logger.Info("creator_created", slog.Int64("creator_id", creator.ID))
	return creator, nil
}

func (service *Service) Update(context context.Context, id int64, input Input) (*Creator, error) {
	creator, err := build(input)
	if err != nil {
		return nil, err
	}
	creator.ID = id

	if err := service.repo.Update(context, creator); err != nil {
		return nil, err
	}

	service.logger.Info("creator_updated", slog.Int64("creator_id", id))
	return creator, nil
}

func (service *Service) Delete(context context.Context, id int64) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.logger.Warn("creator_deleted", slog.Int64("creator_id", id))
	return nil
}

func build(input Input) (*Creator, error) {
	name := strings.TrimSpace(input.Name)

	validator := &validate.Validator{}
	validator.Required(FieldName, name).MaxLen(FieldName, name, constants.MaxNameLength)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	return &Creator{Name: name, NameSort: sortkey.From(name)}, nil
}
