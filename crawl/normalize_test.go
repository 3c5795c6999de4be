package crawl_test

import (
	"testing"

	"github.com/docsift/docsift"
	"github.com/docsift/docsift/crawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeURL(t *testing.T) {
	t.Parallel()

	t.Run("strips fragments", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeURL("https://ex.com/docs#section-2")
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/docs", got)
	})

	t.Run("collapses duplicate path slashes", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeURL("https://ex.com/docs//guide///intro")
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/docs/guide/intro", got)
	})

	t.Run("strips trailing slash", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeURL("https://ex.com/docs/")
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/docs", got)
	})

	t.Run("case-folds host and strips www", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeURL("https://WWW.Example.COM/Docs")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/Docs", got)
	})

	t.Run("preserves query strings", func(t *testing.T) {
		t.Parallel()

		got, err := crawl.NormalizeURL("https://ex.com/search?q=crawler")
		require.NoError(t, err)
		assert.Equal(t, "https://ex.com/search?q=crawler", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		inputs := []string{
			"https://WWW.Ex.com//docs//a/#frag",
			"http://ex.com/",
			"https://ex.com/a/b/c?x=1#y",
		}
		for _, input := range inputs {
			once, err := crawl.NormalizeURL(input)
			require.NoError(t, err)
			twice, err := crawl.NormalizeURL(once)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "input %q", input)
		}
	})

	t.Run("rejects unsupported schemes", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.NormalizeURL("mailto:docs@ex.com")
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))

		_, err = crawl.NormalizeURL("ftp://ex.com/file")
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})

	t.Run("rejects URLs without a host", func(t *testing.T) {
		t.Parallel()

		_, err := crawl.NormalizeURL("/relative/path")
		assert.Equal(t, docsift.EINVALID, docsift.ErrorCode(err))
	})
}

func TestSameDomain(t *testing.T) {
	t.Parallel()

	assert.True(t, crawl.SameDomain("https://ex.com/a", "https://ex.com/b"))
	assert.False(t, crawl.SameDomain("https://ex.com/a", "https://other.com/a"))
	assert.False(t, crawl.SameDomain("https://docs.ex.com/a", "https://ex.com/a"))
}

func TestOrigin(t *testing.T) {
	t.Parallel()

	got, err := crawl.Origin("https://ex.com:8443/docs/intro?q=1")
	require.NoError(t, err)
	assert.Equal(t, "https://ex.com:8443", got)
}
