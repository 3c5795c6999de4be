package docsift_test

import (
	"testing"

	"github.com/docsift/docsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeLanguageTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		tag  string
		want string
	}{
		{"js", "javascript"},
		{"ts", "typescript"},
		{"py", "python"},
		{"C++", "cpp"},
		{"c#", "csharp"},
		{"bash", "shell"},
		{"sh", "shell"},
		{"yml", "yaml"},
		{"md", "markdown"},
		{"Go", "go"},
		{"rust", "rust"},
		{"", "unknown"},
		{"   ", "unknown"},
		{"SomethingElse", "somethingelse"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, docsift.NormalizeLanguageTag(tt.tag), "tag %q", tt.tag)
	}
}

func TestExtractCodeBlocks(t *testing.T) {
	t.Parallel()

	t.Run("standard pre code with language class", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-python">print("hi")</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com/docs")

		require.Len(t, blocks, 1)
		assert.Equal(t, "python", blocks[0].Language)
		assert.Equal(t, `print("hi")`, blocks[0].Content)
		assert.Equal(t, 0, blocks[0].BlockIndex)
		assert.Equal(t, "https://ex.com/docs", blocks[0].SourceURL)
		assert.NotEmpty(t, blocks[0].BlockID)
		assert.Empty(t, blocks[0].DocumentID)
	})

	t.Run("bare class token is used as language", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="rb">puts :hi</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "ruby", blocks[0].Language)
	})

	t.Run("plain pre code yields unknown language", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>SELECT 1;</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "unknown", blocks[0].Language)
		assert.Equal(t, "SELECT 1;", blocks[0].Content)
	})

	t.Run("known language replaces unknown duplicate in place", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code>x</code></pre><pre><code class="language-js">x</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "javascript", blocks[0].Language)
		assert.Equal(t, "x", blocks[0].Content)
		assert.Equal(t, 0, blocks[0].BlockIndex)
	})

	t.Run("unknown duplicate of known content is dropped", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-js">x</code></pre><pre><code>x</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "javascript", blocks[0].Language)
	})

	t.Run("identical content in two known languages keeps both", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-js">f()</code></pre><pre><code class="language-ts">f()</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 2)
		assert.Equal(t, "javascript", blocks[0].Language)
		assert.Equal(t, "typescript", blocks[1].Language)
	})

	t.Run("tabbed container groups variants under one block ID", func(t *testing.T) {
		t.Parallel()

		html := `<div class="code-tabs">
			<pre data-lang="python">client.get()</pre>
			<pre data-lang="js">client.get();</pre>
			<pre data-lang="go">client.Get()</pre>
		</div>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 3)
		groupID := blocks[0].BlockID
		for _, b := range blocks {
			assert.Equal(t, groupID, b.BlockID)
			assert.Equal(t, true, b.Metadata["is_variant"])
			assert.Equal(t, 3, b.Metadata["variant_count"])
		}
		assert.Equal(t, "python", blocks[0].Language)
		assert.Equal(t, "javascript", blocks[1].Language)
		assert.Equal(t, "go", blocks[2].Language)
	})

	t.Run("data-language attribute strategy", func(t *testing.T) {
		t.Parallel()

		html := `<pre data-language="rust">fn main() {}</pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "rust", blocks[0].Language)
		assert.Equal(t, "fn main() {}", blocks[0].Content)
	})

	t.Run("data-lang attribute strategy outside containers", func(t *testing.T) {
		t.Parallel()

		html := `<pre data-lang="yml">key: value</pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "yaml", blocks[0].Language)
	})

	t.Run("strips highlight markup and decodes entities", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-go"><span class="kw">if</span> a &lt; b {</code></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 1)
		assert.Equal(t, "if a < b {", blocks[0].Content)
	})

	t.Run("discards empty code bodies", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-js">   </code></pre><pre data-language="go"></pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		assert.Empty(t, blocks)
	})

	t.Run("block index follows first emission order", func(t *testing.T) {
		t.Parallel()

		html := `<pre><code class="language-js">a</code></pre>` +
			`<pre><code class="language-py">b</code></pre>` +
			`<pre data-language="rust">c</pre>`
		blocks := docsift.ExtractCodeBlocks(html, "https://ex.com")

		require.Len(t, blocks, 3)
		for i, b := range blocks {
			assert.Equal(t, i, b.BlockIndex)
		}
		assert.Equal(t, "javascript", blocks[0].Language)
		assert.Equal(t, "python", blocks[1].Language)
		assert.Equal(t, "rust", blocks[2].Language)
	})

	t.Run("returns nothing for HTML without code", func(t *testing.T) {
		t.Parallel()

		blocks := docsift.ExtractCodeBlocks("<p>prose only</p>", "https://ex.com")
		assert.Empty(t, blocks)
	})
}
