// Package mock provides hand-written mocks for docsift interfaces.
package mock

import (
	"context"

	"github.com/docsift/docsift"
)

var _ docsift.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of docsift.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*docsift.FetchResult, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*docsift.FetchResult, error) {
	return f.FetchFn(ctx, url)
}
