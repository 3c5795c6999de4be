package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsift/docsift"
)

// Ensure LoggingRobotsService implements docsift.RobotsService.
var _ docsift.RobotsService = (*LoggingRobotsService)(nil)

// LoggingRobotsService wraps a RobotsService with debug logging.
type LoggingRobotsService struct {
	next   docsift.RobotsService
	logger *slog.Logger
}

// NewLoggingRobotsService creates a new LoggingRobotsService.
func NewLoggingRobotsService(next docsift.RobotsService, logger *slog.Logger) *LoggingRobotsService {
	return &LoggingRobotsService{next: next, logger: logger}
}

// RulesForOrigin delegates to the wrapped service and logs the
// operation.
func (s *LoggingRobotsService) RulesForOrigin(ctx context.Context, origin string) (rules *docsift.RobotsRules, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"origin", origin,
			"duration", time.Since(begin),
			"err", err,
		}
		if rules != nil {
			attrs = append(attrs,
				"allows", len(rules.Allows),
				"disallows", len(rules.Disallows),
				"sitemaps", len(rules.Sitemaps),
			)
		}
		s.logger.Debug("robots rules", attrs...)
	}(time.Now())
	return s.next.RulesForOrigin(ctx, origin)
}
