// Package slog provides logging decorators for docsift services using
// the standard library structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsift/docsift"
)

// Ensure LoggingFetcher implements docsift.Fetcher.
var _ docsift.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   docsift.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next docsift.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (res *docsift.FetchResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		}
		if res != nil {
			attrs = append(attrs,
				"status", res.StatusCode,
				"content_type", res.ContentType,
				"bytes", len(res.Body),
			)
		}
		f.logger.Debug("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
