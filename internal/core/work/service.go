// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package work

import (
	"context"
	"log/slog"

	"github.com/taibuivan/spectator/internal/core/event"
)

// EventLister is the part of the event service that detail pages need.
type EventLister interface {
	ListAll(context context.Context, filter event.Filter) ([]*event.Event, error)
}

// # Service Layer

// Service orchestrates movies, plays and productions.
type Service struct {
	movieRepo      MovieRepository
	playRepo       PlayRepository
	productionRepo ProductionRepository
	events         EventLister
	logger         *slog.Logger
}

// NewService constructs a new [Service] with its repositories and the event lister.
func NewService(movieRepo MovieRepository, playRepo PlayRepository, productionRepo ProductionRepository, events EventLister, logger *slog.Logger) *Service {
	return &Service{
		movieRepo:      movieRepo,
		playRepo:       playRepo,
		productionRepo: productionRepo,
		events:         events,
		logger:         logger,
	}
}
