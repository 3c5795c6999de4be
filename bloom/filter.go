// Package bloom provides probabilistic URL dedup for the crawl
// frontier.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// Filter tracks URLs that have been queued or visited. False positives
// cause an unseen URL to be skipped; false negatives cannot occur, so a
// URL is never crawled twice because of the filter.
type Filter struct {
	f *bloom.BloomFilter
}

// NewFilter creates a filter sized for n expected URLs at the given
// false positive rate.
func NewFilter(n uint, fpRate float64) *Filter {
	return &Filter{f: bloom.NewWithEstimates(n, fpRate)}
}

// Add marks a URL as seen.
func (f *Filter) Add(url string) {
	f.f.AddString(url)
}

// Has reports whether the URL might have been seen before.
func (f *Filter) Has(url string) bool {
	return f.f.TestString(url)
}
