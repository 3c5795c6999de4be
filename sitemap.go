package docsift

import "context"

// SitemapService expands sitemap documents into candidate page URLs.
type SitemapService interface {
	// CollectURLs fetches the seed sitemaps, recursively expands
	// sitemap indexes, and returns the page URLs they reference.
	// Implementations bound the number of sitemap documents fetched
	// and swallow individual fetch failures.
	CollectURLs(ctx context.Context, sitemapURLs []string, origin string) ([]string, error)
}
