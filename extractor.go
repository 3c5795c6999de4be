package docsift

// ExtractResult holds the content extracted from a fetched page.
type ExtractResult struct {
	// Title is the page title, falling back to the last URL path
	// segment or the hostname when the page has none.
	Title string

	// Text is the page reduced to readable plain text.
	Text string

	// Links are the outbound links discovered on the page, resolved to
	// absolute URLs. Only HTML pages yield links.
	Links []string

	// CodeBlocks are the source-code snippets found on the page. Only
	// HTML pages yield code blocks.
	CodeBlocks []*CodeBlock
}

// ContentExtractor converts raw page bytes into normalized text, a
// title, outbound links and code blocks. Non-HTML content types pass
// the body through as text with no links or code blocks.
type ContentExtractor interface {
	ExtractContent(body []byte, contentType, baseURL string) (*ExtractResult, error)
}
