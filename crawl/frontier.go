package crawl

import (
	"sync"

	"github.com/docsift/docsift/bloom"
)

// Item is one entry in the crawl frontier: a normalized URL and the
// depth at which it was discovered.
type Item struct {
	URL   string
	Depth int
}

// Frontier is an in-memory BFS queue with Bloom filter deduplication.
// Push refuses URLs that have already been queued, so every URL enters
// the frontier at most once per run. It is safe for concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []Item
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewFilter(n, fpRate)}
}

// Push adds an item to the back of the queue. Returns false if the URL
// has already been seen.
func (f *Frontier) Push(item Item) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Has(item.URL) {
		return false
	}
	f.seen.Add(item.URL)
	f.queue = append(f.queue, item)
	return true
}

// Pop removes and returns the item at the front of the queue. The bool
// result is false if the frontier is empty.
func (f *Frontier) Pop() (Item, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return Item{}, false
	}
	item := f.queue[0]
	f.queue = f.queue[1:]
	return item, true
}

// Len returns the number of queued items.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been queued or processed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Has(url)
}
