package docsift_test

import (
	"testing"

	"github.com/docsift/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRobotsTxt(t *testing.T) {
	t.Parallel()

	t.Run("collects rules from wildcard group only", func(t *testing.T) {
		t.Parallel()

		rules := docsift.ParseRobotsTxt(`
User-agent: *
Disallow: /private
Allow: /private/docs

User-agent: Googlebot
Disallow: /googlebot-only
`)

		assert.Equal(t, []string{"/private/docs"}, rules.Allows)
		assert.Equal(t, []string{"/private"}, rules.Disallows)
	})

	t.Run("collects sitemaps regardless of group", func(t *testing.T) {
		t.Parallel()

		rules := docsift.ParseRobotsTxt(`
User-agent: SpecialBot
Sitemap: https://example.com/sitemap-a.xml

User-agent: *
Disallow: /tmp
Sitemap: https://example.com/sitemap-b.xml
`)

		assert.Equal(t, []string{
			"https://example.com/sitemap-a.xml",
			"https://example.com/sitemap-b.xml",
		}, rules.Sitemaps)
		assert.Equal(t, []string{"/tmp"}, rules.Disallows)
	})

	t.Run("strips comments and blank lines", func(t *testing.T) {
		t.Parallel()

		rules := docsift.ParseRobotsTxt(`
# Full-line comment
User-agent: *
Disallow: /secret  # trailing comment
`)

		require.Len(t, rules.Disallows, 1)
		assert.Equal(t, "/secret", rules.Disallows[0])
	})

	t.Run("returns empty rules for empty content", func(t *testing.T) {
		t.Parallel()

		rules := docsift.ParseRobotsTxt("")
		assert.Empty(t, rules.Allows)
		assert.Empty(t, rules.Disallows)
		assert.Empty(t, rules.Sitemaps)
	})

	t.Run("is case-insensitive on field names", func(t *testing.T) {
		t.Parallel()

		rules := docsift.ParseRobotsTxt("USER-AGENT: *\nDISALLOW: /a\nALLOW: /b\n")
		assert.Equal(t, []string{"/a"}, rules.Disallows)
		assert.Equal(t, []string{"/b"}, rules.Allows)
	})
}

func TestIsPathAllowed(t *testing.T) {
	t.Parallel()

	t.Run("no matching rule means allowed", func(t *testing.T) {
		t.Parallel()

		rules := &docsift.RobotsRules{Disallows: []string{"/private"}}
		assert.True(t, docsift.IsPathAllowed("/docs/intro", rules))
	})

	t.Run("disallow prefix blocks path", func(t *testing.T) {
		t.Parallel()

		rules := &docsift.RobotsRules{Disallows: []string{"/private"}}
		assert.False(t, docsift.IsPathAllowed("/private/keys", rules))
	})

	t.Run("longer match wins", func(t *testing.T) {
		t.Parallel()

		rules := &docsift.RobotsRules{
			Allows:    []string{"/docs/public"},
			Disallows: []string{"/docs"},
		}
		assert.True(t, docsift.IsPathAllowed("/docs/public/intro", rules))
		assert.False(t, docsift.IsPathAllowed("/docs/internal", rules))
	})

	t.Run("allow wins equal-length ties", func(t *testing.T) {
		t.Parallel()

		rules := &docsift.RobotsRules{
			Allows:    []string{"/docs"},
			Disallows: []string{"/docs"},
		}
		assert.True(t, docsift.IsPathAllowed("/docs/x", rules))
	})

	t.Run("wildcard rules match on literal prefix", func(t *testing.T) {
		t.Parallel()

		rules := &docsift.RobotsRules{Disallows: []string{"/search*results"}}
		assert.False(t, docsift.IsPathAllowed("/search/anything", rules))
		assert.True(t, docsift.IsPathAllowed("/sea", rules))
	})

	t.Run("nil rules allow everything", func(t *testing.T) {
		t.Parallel()

		assert.True(t, docsift.IsPathAllowed("/anything", nil))
	})
}
