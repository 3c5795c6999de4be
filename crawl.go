package docsift

import (
	"net/url"
)

// CrawlOptions configures a single crawl run. Options are immutable for
// the lifetime of the run.
type CrawlOptions struct {
	// SeedURL is the page the crawl starts from. Only http and https
	// schemes are accepted.
	SeedURL string

	// MaxPages caps the number of pages ingested. Must be at least 1.
	MaxPages int

	// MaxDepth caps link traversal depth. The seed is depth 0; 0 means
	// crawl the seed page only.
	MaxDepth int

	// SameDomainOnly restricts the crawl to the seed URL's host.
	SameDomainOnly bool
}

// Validate returns an error if the options cannot start a crawl.
// An invalid seed URL is the only fatal configuration error; it aborts
// the run before any network I/O.
func (o *CrawlOptions) Validate() error {
	u, err := url.Parse(o.SeedURL)
	if err != nil {
		return Errorf(EINVALID, "invalid seed URL %q: %v", o.SeedURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return Errorf(EINVALID, "seed URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return Errorf(EINVALID, "seed URL %q has no host", o.SeedURL)
	}
	if o.MaxPages < 1 {
		return Errorf(EINVALID, "max pages must be at least 1")
	}
	if o.MaxDepth < 0 {
		return Errorf(EINVALID, "max depth must not be negative")
	}
	return nil
}

// CrawlError records a page that failed during a crawl. Individual page
// failures never abort the run.
type CrawlError struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// CrawlResult is the sole return value of a crawl run.
type CrawlResult struct {
	// CrawlID identifies the run. Every document and code block
	// produced by the run carries it, enabling bulk deletion by
	// session later.
	CrawlID string `json:"crawl_id"`

	PagesIngested int          `json:"pages_ingested"`
	PagesSkipped  int          `json:"pages_skipped"`
	Errors        []CrawlError `json:"errors"`
}
