package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
	"github.com/docsift/docsift"
)

// MaxSitemapFetches bounds how many distinct sitemap documents one
// CollectURLs call will fetch, including recursively expanded indexes.
const MaxSitemapFetches = 10

// Ensure SitemapService implements docsift.SitemapService.
var _ docsift.SitemapService = (*SitemapService)(nil)

// SitemapService expands sitemap documents into candidate page URLs
// over HTTP. Sitemap indexes are expanded breadth-first; fetch failures
// for individual sitemaps are swallowed and the sitemap skipped.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// CollectURLs fetches the seed sitemaps and returns the page URLs they
// reference. URLs that themselves look like sitemaps (ending in .xml or
// containing "sitemap") are queued for recursive expansion instead of
// being returned.
func (s *SitemapService) CollectURLs(ctx context.Context, sitemapURLs []string, origin string) ([]string, error) {
	base, err := url.Parse(origin)
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "invalid origin %q: %v", origin, err)
	}

	queue := append([]string(nil), sitemapURLs...)
	seen := make(map[string]bool)
	seenPages := make(map[string]bool)
	fetched := 0

	var pages []string
	for len(queue) > 0 && fetched < MaxSitemapFetches {
		if err := ctx.Err(); err != nil {
			return pages, err
		}

		sitemapURL := queue[0]
		queue = queue[1:]
		if seen[sitemapURL] {
			continue
		}
		seen[sitemapURL] = true
		fetched++

		locs, err := s.fetchLocs(ctx, sitemapURL)
		if err != nil {
			continue
		}

		for _, loc := range locs {
			resolved := resolveAgainst(base, loc)
			if resolved == "" {
				continue
			}
			if looksLikeSitemap(resolved) {
				queue = append(queue, resolved)
				continue
			}
			if !seenPages[resolved] {
				seenPages[resolved] = true
				pages = append(pages, resolved)
			}
		}
	}

	return pages, nil
}

// fetchLocs retrieves a sitemap document and returns every <loc> value
// it contains, whether it is a urlset or a sitemapindex.
func (s *SitemapService) fetchLocs(ctx context.Context, sitemapURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, docsift.Errorf(docsift.EINTERNAL, "HTTP %d for %s", resp.StatusCode, sitemapURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, DefaultMaxBodySize))
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(bytes.TrimSpace(body)); err != nil {
		return nil, err
	}

	var locs []string
	for _, el := range doc.FindElements("//loc") {
		if loc := strings.TrimSpace(el.Text()); loc != "" {
			locs = append(locs, loc)
		}
	}
	return locs, nil
}

// resolveAgainst resolves a possibly relative loc value against the
// origin.
func resolveAgainst(base *url.URL, loc string) string {
	ref, err := url.Parse(loc)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}

// looksLikeSitemap classifies a URL as a sitemap document to recurse
// into rather than a candidate page.
func looksLikeSitemap(rawURL string) bool {
	lower := strings.ToLower(rawURL)
	return strings.HasSuffix(lower, ".xml") || strings.Contains(lower, "sitemap")
}
