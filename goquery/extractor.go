// Package goquery provides a DOM-based implementation of
// docsift.ContentExtractor.
package goquery

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/docsift/docsift"
	"golang.org/x/net/html"
)

// Ensure Extractor implements docsift.ContentExtractor at compile time.
var _ docsift.ContentExtractor = (*Extractor)(nil)

// Extractor converts page bytes into normalized plain text, a title and
// outbound links. HTML pages additionally yield code blocks; other
// textual content types pass through unmodified.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// nonContentSelector matches regions stripped before text extraction.
const nonContentSelector = "script, style, title, nav, header, footer, aside"

// blockTags are elements whose end produces a line break in the
// extracted text.
var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "dd": true,
	"div": true, "dl": true, "dt": true, "fieldset": true, "figure": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true, "li": true, "main": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}

var (
	reSpaceRuns   = regexp.MustCompile(`[ \t]+`)
	reLineEdges   = regexp.MustCompile(`(?m)^[ \t]+|[ \t]+$`)
	reNewlineRuns = regexp.MustCompile(`\n{3,}`)
)

// ExtractContent converts page bytes into an ExtractResult. For
// non-HTML content types the raw body becomes the text and no links or
// code blocks are produced.
func (e *Extractor) ExtractContent(body []byte, contentType, baseURL string) (*docsift.ExtractResult, error) {
	if !docsift.IsHTMLContentType(contentType) {
		return &docsift.ExtractResult{
			Title: titleFromURL(baseURL),
			Text:  string(body),
		}, nil
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "parsing HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = titleFromURL(baseURL)
	}

	// Links come off the DOM before pruning: navigation regions hold
	// most of the traversal-relevant links.
	links := extractLinks(doc, baseURL)

	doc.Find(nonContentSelector).Remove()
	doc.Find("[style]").Each(func(_ int, sel *goquery.Selection) {
		if style, ok := sel.Attr("style"); ok && isHiddenStyle(style) {
			sel.Remove()
		}
	})

	var sb strings.Builder
	for _, node := range doc.Selection.Nodes {
		renderText(&sb, node)
	}

	return &docsift.ExtractResult{
		Title:      title,
		Text:       normalizeWhitespace(sb.String()),
		Links:      links,
		CodeBlocks: docsift.ExtractCodeBlocks(string(body), baseURL),
	}, nil
}

// renderText walks the DOM collecting text content, emitting a line
// break after each block-level element and for <br>.
func renderText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "br" {
			sb.WriteByte('\n')
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		renderText(sb, c)
	}
	if n.Type == html.ElementNode && blockTags[n.Data] {
		sb.WriteByte('\n')
	}
}

// normalizeWhitespace collapses runs of spaces and tabs to one space,
// trims line edges, and collapses runs of three or more newlines to
// two.
func normalizeWhitespace(text string) string {
	text = reSpaceRuns.ReplaceAllString(text, " ")
	text = reLineEdges.ReplaceAllString(text, "")
	text = reNewlineRuns.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// extractLinks returns every href on the page resolved against the base
// URL, excluding fragment-only, mailto:, tel:, javascript: and data:
// targets. Invalid URLs are dropped.
func extractLinks(doc *goquery.Document, baseURL string) []string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil
	}

	var links []string
	doc.Find("[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok {
			return
		}
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") || isNonHTTPLink(href) {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, base.ResolveReference(ref).String())
	})
	return links
}

// isNonHTTPLink reports whether the href targets a non-crawlable
// scheme.
func isNonHTTPLink(href string) bool {
	lower := strings.ToLower(href)
	for _, prefix := range []string{"mailto:", "tel:", "javascript:", "data:"} {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// isHiddenStyle reports whether an inline style hides the element.
func isHiddenStyle(style string) bool {
	s := strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(s, "display:none") || strings.Contains(s, "visibility:hidden")
}

// titleFromURL derives a title from the last non-empty path segment,
// falling back to the hostname.
func titleFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	segments := strings.Split(u.Path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return u.Hostname()
}
