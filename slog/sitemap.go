package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsift/docsift"
)

// Ensure LoggingSitemapService implements docsift.SitemapService.
var _ docsift.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   docsift.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next docsift.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// CollectURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) CollectURLs(ctx context.Context, sitemapURLs []string, origin string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"origin", origin,
			"seeds", len(sitemapURLs),
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CollectURLs(ctx, sitemapURLs, origin)
}
