// Package http provides HTTP-backed implementations of the docsift
// fetching, robots and sitemap services.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/docsift/docsift"
)

// Default resource bounds for page fetches.
const (
	// DefaultFetchTimeout is the per-request timeout.
	DefaultFetchTimeout = 15 * time.Second

	// DefaultMaxBodySize caps how many response bytes are read.
	DefaultMaxBodySize = 5 << 20 // 5 MiB

	userAgent = "docsift/1.0 (+https://github.com/docsift/docsift)"
)

// Ensure Fetcher implements docsift.Fetcher at compile time.
var _ docsift.Fetcher = (*Fetcher)(nil)

// Fetcher issues bounded, timed HTTP GET requests. Responses larger
// than the configured cap are aborted mid-read and surface as ETOOLARGE
// errors; non-2xx statuses are returned to the caller, not treated as
// errors.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	maxSize int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets the response size cap in bytes.
// Defaults to DefaultMaxBodySize.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxSize = n
	}
}

// WithClient sets the underlying HTTP client.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new bounded Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		maxSize: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Fetch retrieves the response for the given URL. The request is
// canceled once the timeout elapses; the body read aborts the moment
// the cumulative byte count crosses the size cap.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*docsift.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "creating request for %s: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// Refuse declared-oversized responses before reading the body.
	if resp.ContentLength > f.maxSize {
		return nil, docsift.Errorf(docsift.ETOOLARGE,
			"response exceeded max size of %d bytes (Content-Length %d)", f.maxSize, resp.ContentLength)
	}

	// Read one byte past the cap so an at-the-limit body is
	// distinguishable from an oversized one.
	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > f.maxSize {
		return nil, docsift.Errorf(docsift.ETOOLARGE,
			"response exceeded max size of %d bytes", f.maxSize)
	}

	return &docsift.FetchResult{
		StatusCode:  resp.StatusCode,
		ContentType: mediaType(resp.Header.Get("Content-Type")),
		Body:        body,
	}, nil
}

// mediaType strips parameters from a Content-Type header value.
func mediaType(contentType string) string {
	ct := contentType
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = ct[:idx]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
