package docsift

import (
	"context"
	"strings"
)

// RobotsRules holds the crawl policy parsed from one origin's
// robots.txt. One instance exists per origin for the duration of a
// crawl; it is immutable after parsing.
type RobotsRules struct {
	Allows    []string
	Disallows []string
	Sitemaps  []string
}

// RobotsService resolves crawl policy per origin. Implementations cache
// rules for the lifetime of one crawl run and fail open: a robots.txt
// that cannot be fetched yields empty rules, not an error.
type RobotsService interface {
	// RulesForOrigin returns the robots rules for an origin
	// (scheme://host[:port]).
	RulesForOrigin(ctx context.Context, origin string) (*RobotsRules, error)
}

// ParseRobotsTxt parses robots.txt content. Only rules grouped under
// "User-agent: *" are honored; groups for specific agents are ignored.
// Sitemap directives are collected regardless of grouping.
func ParseRobotsTxt(content string) *RobotsRules {
	rules := &RobotsRules{}

	inStarGroup := false
	for _, line := range strings.Split(content, "\n") {
		// Strip comments and surrounding whitespace.
		if idx := strings.Index(line, "#"); idx != -1 {
			line = line[:idx]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		field, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		field = strings.ToLower(strings.TrimSpace(field))
		value = strings.TrimSpace(value)

		switch field {
		case "user-agent":
			inStarGroup = value == "*"
		case "sitemap":
			// Sitemap URLs contain a colon, so re-split with the
			// original casing preserved.
			if raw := strings.TrimSpace(line[len("sitemap:"):]); raw != "" {
				rules.Sitemaps = append(rules.Sitemaps, raw)
			}
		case "allow":
			if inStarGroup && value != "" {
				rules.Allows = append(rules.Allows, value)
			}
		case "disallow":
			if inStarGroup && value != "" {
				rules.Disallows = append(rules.Disallows, value)
			}
		}
	}

	return rules
}

// IsPathAllowed reports whether a path may be crawled under the given
// rules. For every rule, the literal prefix (text before the first '*')
// is matched against the path; the rule with the longest matched prefix
// wins. Allow rules are evaluated first with a strict > comparison, so
// an allow and a disallow of equal length resolve to allow. No matching
// rule means the path is allowed.
func IsPathAllowed(path string, rules *RobotsRules) bool {
	if rules == nil {
		return true
	}

	bestLen := -1
	allowed := true

	for _, rule := range rules.Allows {
		if n, ok := matchedPrefixLen(path, rule); ok && n > bestLen {
			bestLen = n
			allowed = true
		}
	}
	for _, rule := range rules.Disallows {
		if n, ok := matchedPrefixLen(path, rule); ok && n > bestLen {
			bestLen = n
			allowed = false
		}
	}

	return allowed
}

// matchedPrefixLen returns the length of the rule's literal prefix (the
// text before the first wildcard) when the path starts with it.
func matchedPrefixLen(path, rule string) (int, bool) {
	prefix := rule
	if idx := strings.Index(rule, "*"); idx != -1 {
		prefix = rule[:idx]
	}
	if !strings.HasPrefix(path, prefix) {
		return 0, false
	}
	return len(prefix), true
}
