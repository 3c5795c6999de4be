package crawl

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DomainLimiter enforces the politeness delay as a per-domain token
// bucket. The first request to a domain proceeds immediately; each
// subsequent request waits until the configured delay has elapsed.
// A zero delay disables waiting entirely.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	delay    time.Duration
}

// NewDomainLimiter creates a limiter that spaces requests to each
// domain by the given delay.
func NewDomainLimiter(delay time.Duration) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		delay:    delay,
	}
}

// Wait blocks until the domain's rate limit allows another request.
// Returns an error only if the context is canceled first.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.delay <= 0 {
		return ctx.Err()
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(d.delay), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}
