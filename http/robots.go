package http

import (
	"context"
	"io"
	"net/http"
	"sync"

	"github.com/docsift/docsift"
	"golang.org/x/sync/singleflight"
)

// maxRobotsSize caps how much of a robots.txt file is read.
const maxRobotsSize = 512 << 10 // 512 KiB

// Ensure RobotsService implements docsift.RobotsService.
var _ docsift.RobotsService = (*RobotsService)(nil)

// RobotsService fetches and parses robots.txt per origin, memoizing the
// result for its own lifetime. Create one instance per crawl run.
//
// The service fails open: any fetch failure or non-200 status yields
// empty rules, never an error. Concurrent callers for the same origin
// share a single fetch.
type RobotsService struct {
	client *http.Client

	mu    sync.Mutex
	cache map[string]*docsift.RobotsRules
	group singleflight.Group
}

// NewRobotsService creates a new RobotsService with the given HTTP
// client. If client is nil, http.DefaultClient is used.
func NewRobotsService(client *http.Client) *RobotsService {
	if client == nil {
		client = http.DefaultClient
	}
	return &RobotsService{
		client: client,
		cache:  make(map[string]*docsift.RobotsRules),
	}
}

// RulesForOrigin returns the robots rules for an origin, fetching
// {origin}/robots.txt on first use.
func (s *RobotsService) RulesForOrigin(ctx context.Context, origin string) (*docsift.RobotsRules, error) {
	s.mu.Lock()
	if rules, ok := s.cache[origin]; ok {
		s.mu.Unlock()
		return rules, nil
	}
	s.mu.Unlock()

	v, _, _ := s.group.Do(origin, func() (any, error) {
		rules := s.fetchRules(ctx, origin)
		s.mu.Lock()
		s.cache[origin] = rules
		s.mu.Unlock()
		return rules, nil
	})

	rules, _ := v.(*docsift.RobotsRules)
	return rules, nil
}

// fetchRules retrieves and parses robots.txt, returning empty rules on
// any failure.
func (s *RobotsService) fetchRules(ctx context.Context, origin string) *docsift.RobotsRules {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, origin+"/robots.txt", nil)
	if err != nil {
		return &docsift.RobotsRules{}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return &docsift.RobotsRules{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &docsift.RobotsRules{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxRobotsSize))
	if err != nil {
		return &docsift.RobotsRules{}
	}

	return docsift.ParseRobotsTxt(string(body))
}
