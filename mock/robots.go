package mock

import (
	"context"

	"github.com/docsift/docsift"
)

var _ docsift.RobotsService = (*RobotsService)(nil)

// RobotsService is a mock implementation of docsift.RobotsService.
type RobotsService struct {
	RulesForOriginFn func(ctx context.Context, origin string) (*docsift.RobotsRules, error)
}

func (s *RobotsService) RulesForOrigin(ctx context.Context, origin string) (*docsift.RobotsRules, error) {
	return s.RulesForOriginFn(ctx, origin)
}
