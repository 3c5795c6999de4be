package docsift

import (
	"context"
	"strings"
)

// FetchResult holds one HTTP response read by a Fetcher.
type FetchResult struct {
	// StatusCode is the HTTP status of the response.
	StatusCode int

	// ContentType is the media type of the response, without
	// parameters (e.g. "text/html").
	ContentType string

	// Body is the full response body, bounded by the fetcher's size
	// cap.
	Body []byte
}

// OK reports whether the response status is in the 2xx range.
func (r *FetchResult) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher issues bounded, timed HTTP GET requests.
//
// Implementations enforce a per-request timeout and a maximum response
// size; an oversized response surfaces as an ETOOLARGE error. An
// optional fixed politeness delay is inserted before each fetch after
// the first.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// textContentTypes are the non-text/* media types the crawler treats as
// textual.
var textContentTypes = map[string]bool{
	"application/json":      true,
	"application/xml":       true,
	"application/xhtml+xml": true,
	"application/rss+xml":   true,
	"application/atom+xml":  true,
}

// IsTextContentType reports whether a media type carries textual
// content the crawler can ingest. Pages with any other type are
// silently skipped.
func IsTextContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	if strings.HasPrefix(ct, "text/") {
		return true
	}
	return textContentTypes[ct]
}

// IsHTMLContentType reports whether a media type is HTML or XHTML.
// Only HTML pages yield links and code blocks.
func IsHTMLContentType(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(ct, ";"); idx != -1 {
		ct = strings.TrimSpace(ct[:idx])
	}
	return ct == "text/html" || ct == "application/xhtml+xml"
}
