package mock

import (
	"context"

	"github.com/docsift/docsift"
)

var _ docsift.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of docsift.SitemapService.
type SitemapService struct {
	CollectURLsFn func(ctx context.Context, sitemapURLs []string, origin string) ([]string, error)
}

func (s *SitemapService) CollectURLs(ctx context.Context, sitemapURLs []string, origin string) ([]string, error) {
	return s.CollectURLsFn(ctx, sitemapURLs, origin)
}
