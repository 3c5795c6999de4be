package crawl

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/docsift/docsift"
)

var reDuplicateSlashes = regexp.MustCompile(`/{2,}`)

// NormalizeURL canonicalizes a URL for dedup and comparison: the
// fragment is dropped, duplicate path slashes collapse, the trailing
// slash is stripped, the host is case-folded and loses its "www."
// prefix. Normalization is idempotent.
func NormalizeURL(rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", docsift.Errorf(docsift.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", docsift.Errorf(docsift.EINVALID, "unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return "", docsift.Errorf(docsift.EINVALID, "URL %q has no host", rawURL)
	}

	u.Fragment = ""
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.TrimPrefix(strings.ToLower(u.Host), "www.")

	path := reDuplicateSlashes.ReplaceAllString(u.Path, "/")
	path = strings.TrimSuffix(path, "/")
	u.Path = path
	// RawPath holds the pre-escaped form; clear it so Path wins.
	u.RawPath = ""

	return u.String(), nil
}

// SameDomain reports whether two normalized URLs share a host.
func SameDomain(a, b string) bool {
	ua, err := url.Parse(a)
	if err != nil {
		return false
	}
	ub, err := url.Parse(b)
	if err != nil {
		return false
	}
	return ua.Host == ub.Host
}

// Origin returns the scheme://host[:port] part of a URL, the unit at
// which robots.txt is cached.
func Origin(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", docsift.Errorf(docsift.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return u.Scheme + "://" + u.Host, nil
}
