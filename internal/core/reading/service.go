// Copyright (c) 2026 Spectator. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reading

import (
	"log/slog"
)

// # Service Layer

// Service orchestrates series, publications and readings.
type Service struct {
	seriesRepo      SeriesRepository
	publicationRepo PublicationRepository
	readingRepo     ReadingRepository
	amazon          AmazonTags
	logger          *slog.Logger
}

// NewService constructs a new [Service]. The Amazon tags are only used to decorate shop links.
func NewService(seriesRepo SeriesRepository, publicationRepo PublicationRepository, readingRepo ReadingRepository, amazon AmazonTags, logger *slog.Logger) *Service {
	return &Service{
		seriesRepo:      seriesRepo,
		publicationRepo: publicationRepo,
		readingRepo:     readingRepo,
		amazon:          amazon,
		logger:          logger,
	}
}

// decorate fills the derived link fields of publications.
func (service *Service) decorate(publications ...*Publication) {
	for _, publication := range publications {
		publication.AmazonURLs = service.amazon.URLs(publication)
		publication.HasURLs = hasURLs(publication)
	}
}
