// Package crawl provides documentation crawling orchestration.
// It coordinates robots policy, sitemap discovery, fetching, content
// extraction and ingestion of documentation pages.
package crawl

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/docsift/docsift"
	"github.com/google/uuid"
)

// Frontier configuration.
const (
	// frontierExpectedURLs is the expected number of URLs for Bloom filter sizing.
	frontierExpectedURLs = 10000
	// frontierFalsePositiveRate is the acceptable false positive rate for deduplication.
	frontierFalsePositiveRate = 0.01
)

// Crawler orchestrates a breadth-first crawl of a documentation site.
// The loop is single-threaded and sequential: one fetch is in flight at
// a time, which keeps the politeness delay and per-origin robots cache
// trivially correct without locking.
type Crawler struct {
	Robots    docsift.RobotsService
	Sitemaps  docsift.SitemapService
	Fetcher   docsift.Fetcher
	Extractor docsift.ContentExtractor
	Manager   docsift.DocumentManager
	Limiter   *DomainLimiter
}

// Run crawls the site described by opts and returns the accumulated
// result. Only a malformed seed URL aborts the run; individual page
// failures are recorded in the result and the loop continues.
func (c *Crawler) Run(ctx context.Context, opts docsift.CrawlOptions) (*docsift.CrawlResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	seedURL, err := NormalizeURL(opts.SeedURL)
	if err != nil {
		return nil, err
	}
	seedOrigin, err := Origin(seedURL)
	if err != nil {
		return nil, err
	}

	result := &docsift.CrawlResult{
		CrawlID: uuid.New().String(),
		Errors:  []docsift.CrawlError{},
	}

	// Robots rules seed both the policy checks and sitemap discovery.
	// The robots service fails open, so an error here means unrestricted.
	seedRules, err := c.Robots.RulesForOrigin(ctx, seedOrigin)
	if err != nil || seedRules == nil {
		seedRules = &docsift.RobotsRules{}
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	frontier.Push(Item{URL: seedURL, Depth: 0})

	// Sitemap-derived URLs enter at depth 1, ahead of link-discovered
	// URLs. They are still subject to same-domain and robots checks at
	// dequeue time. Sitemap failures never block the crawl.
	if len(seedRules.Sitemaps) > 0 && c.Sitemaps != nil {
		if urls, err := c.Sitemaps.CollectURLs(ctx, seedRules.Sitemaps, seedOrigin); err == nil {
			for _, raw := range urls {
				if normalized, err := NormalizeURL(raw); err == nil {
					frontier.Push(Item{URL: normalized, Depth: 1})
				}
			}
		}
	}

	visited := make(map[string]bool)

	for result.PagesIngested < opts.MaxPages {
		item, ok := frontier.Pop()
		if !ok {
			break
		}

		if visited[item.URL] {
			continue
		}
		visited[item.URL] = true

		if opts.SameDomainOnly && !SameDomain(item.URL, seedURL) {
			result.PagesSkipped++
			continue
		}
		if item.Depth > opts.MaxDepth {
			result.PagesSkipped++
			continue
		}
		if !c.pathAllowed(ctx, item.URL) {
			result.PagesSkipped++
			continue
		}

		if c.Limiter != nil {
			if u, err := url.Parse(item.URL); err == nil {
				if err := c.Limiter.Wait(ctx, u.Host); err != nil {
					break
				}
			}
		}

		res, err := c.Fetcher.Fetch(ctx, item.URL)
		if err != nil {
			result.PagesSkipped++
			result.Errors = append(result.Errors, docsift.CrawlError{URL: item.URL, Error: err.Error()})
			continue
		}
		if !res.OK() {
			result.PagesSkipped++
			result.Errors = append(result.Errors, docsift.CrawlError{
				URL:   item.URL,
				Error: docsift.Errorf(docsift.EINTERNAL, "HTTP %d", res.StatusCode).Error(),
			})
			continue
		}
		if !docsift.IsTextContentType(res.ContentType) {
			result.PagesSkipped++
			continue
		}

		extracted, err := c.Extractor.ExtractContent(res.Body, res.ContentType, item.URL)
		if err != nil {
			result.PagesSkipped++
			result.Errors = append(result.Errors, docsift.CrawlError{URL: item.URL, Error: err.Error()})
			continue
		}
		if strings.TrimSpace(extracted.Text) == "" {
			result.PagesSkipped++
			continue
		}

		doc, err := c.Manager.AddDocument(ctx, extracted.Title, extracted.Text, docsift.Metadata{
			"source":       "crawl",
			"crawl_id":     result.CrawlID,
			"source_url":   item.URL,
			"crawl_depth":  item.Depth,
			"fetched_at":   time.Now().UTC().Format(time.RFC3339),
			"content_type": res.ContentType,
			"untrusted":    true,
		})
		if err != nil {
			result.PagesSkipped++
			result.Errors = append(result.Errors, docsift.CrawlError{URL: item.URL, Error: err.Error()})
			continue
		}

		if len(extracted.CodeBlocks) > 0 {
			err := c.Manager.AddCodeBlocks(ctx, doc.ID, extracted.CodeBlocks, docsift.Metadata{
				"crawl_id":   result.CrawlID,
				"source_url": item.URL,
			})
			if err != nil {
				result.Errors = append(result.Errors, docsift.CrawlError{URL: item.URL, Error: err.Error()})
			}
		}

		result.PagesIngested++

		if item.Depth < opts.MaxDepth {
			c.enqueueLinks(frontier, visited, extracted.Links, item.Depth+1, seedURL, opts, result)
		}
	}

	return result, nil
}

// enqueueLinks pushes newly discovered links onto the frontier, subject
// to same-domain filtering and the page budget.
func (c *Crawler) enqueueLinks(frontier *Frontier, visited map[string]bool, links []string, depth int, seedURL string, opts docsift.CrawlOptions, result *docsift.CrawlResult) {
	for _, link := range links {
		if result.PagesIngested >= opts.MaxPages {
			return
		}
		normalized, err := NormalizeURL(link)
		if err != nil {
			continue
		}
		if visited[normalized] {
			continue
		}
		if opts.SameDomainOnly && !SameDomain(normalized, seedURL) {
			continue
		}
		frontier.Push(Item{URL: normalized, Depth: depth})
	}
}

// pathAllowed checks the URL against its origin's robots rules.
// The robots service memoizes per origin and fails open.
func (c *Crawler) pathAllowed(ctx context.Context, rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	rules, err := c.Robots.RulesForOrigin(ctx, u.Scheme+"://"+u.Host)
	if err != nil || rules == nil {
		return true
	}
	path := u.Path
	if path == "" {
		path = "/"
	}
	return docsift.IsPathAllowed(path, rules)
}
