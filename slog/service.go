package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pagesift/pagesift"
)

// Ensure LoggingService implements pagesift.Service.
var _ pagesift.Service = (*LoggingService)(nil)

// LoggingService wraps a Service with request-level logging.
type LoggingService struct {
	next   pagesift.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next pagesift.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Scrape delegates to the wrapped service and logs the outcome.
func (s *LoggingService) Scrape(ctx context.Context, url string) (result *pagesift.Result, err error) {
	defer func(begin time.Time) {
		items := 0
		if result != nil {
			items = result.Len()
		}
		s.logger.Info("scrape",
			"url", url,
			"items", items,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Scrape(ctx, url)
}

// Search delegates to the wrapped service and logs the outcome.
func (s *LoggingService) Search(ctx context.Context, query string) (result *pagesift.Result, err error) {
	defer func(begin time.Time) {
		items := 0
		if result != nil {
			items = result.Len()
		}
		s.logger.Info("search",
			"query", query,
			"items", items,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query)
}
