package docsift

import (
	"crypto/sha256"
	"encoding/hex"
	"html"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// languageAliases maps common shorthand language tags to canonical
// names. Unmapped non-empty tags are lower-cased as-is.
var languageAliases = map[string]string{
	"js":         "javascript",
	"jsx":        "javascript",
	"ts":         "typescript",
	"tsx":        "typescript",
	"py":         "python",
	"py3":        "python",
	"rb":         "ruby",
	"golang":     "go",
	"c#":         "csharp",
	"cs":         "csharp",
	"c++":        "cpp",
	"bash":       "shell",
	"sh":         "shell",
	"zsh":        "shell",
	"shell-session": "shell",
	"console":    "shell",
	"yml":        "yaml",
	"md":         "markdown",
	"rs":         "rust",
	"kt":         "kotlin",
	"docker":     "dockerfile",
	"ps1":        "powershell",
	"objc":       "objectivec",
	"objective-c": "objectivec",
	"html+django": "html",
	"plain":      "plaintext",
	"txt":        "plaintext",
}

// NormalizeLanguageTag canonicalizes a language tag extracted from
// HTML. Empty or whitespace-only tags become "unknown".
func NormalizeLanguageTag(tag string) string {
	t := strings.ToLower(strings.TrimSpace(tag))
	if t == "" {
		return "unknown"
	}
	if canonical, ok := languageAliases[t]; ok {
		return canonical
	}
	return t
}

// Regexes for the five extraction strategies. Matching is
// case-insensitive and spans newlines; contents are cleaned afterwards.
var (
	rePreCode      = regexp.MustCompile(`(?is)<pre[^>]*>\s*<code([^>]*)>(.*?)</code>\s*</pre>`)
	reClassAttr    = regexp.MustCompile(`(?is)class\s*=\s*"([^"]*)"`)
	reLangClass    = regexp.MustCompile(`(?i)(?:language|lang)-([A-Za-z0-9#+._-]+)`)
	reTabContainer = regexp.MustCompile(`(?is)<(?:div|section)[^>]*class\s*=\s*"[^"]*tabs?[^"]*"[^>]*>(.*?)</(?:div|section)>`)
	reDataLangTag  = regexp.MustCompile(`(?is)<(?:pre|code|div)[^>]*\bdata-lang\s*=\s*"([^"]*)"[^>]*>(.*?)</(?:pre|code|div)>`)
	reDataLanguage = regexp.MustCompile(`(?is)<pre[^>]*\bdata-language\s*=\s*"([^"]*)"[^>]*>(.*?)</pre>`)
	reDataLangPre  = regexp.MustCompile(`(?is)<pre[^>]*\bdata-lang\s*=\s*"([^"]*)"[^>]*>(.*?)</pre>`)
	reAnyTag       = regexp.MustCompile(`(?s)<[^>]+>`)
)

// ExtractCodeBlocks runs five independent pattern strategies over raw
// HTML and merges their results into a deduplicated, ordered list.
// BlockIndex reflects the order of first emission; DocumentID is left
// empty for the ingestion sink to populate.
func ExtractCodeBlocks(rawHTML, sourceURL string) []*CodeBlock {
	var candidates []*CodeBlock
	candidates = append(candidates, extractPreCodeBlocks(rawHTML, sourceURL)...)
	candidates = append(candidates, extractTabbedBlocks(rawHTML, sourceURL)...)
	candidates = append(candidates, extractAttrBlocks(rawHTML, sourceURL, reDataLanguage, "data-language")...)
	candidates = append(candidates, extractAttrBlocks(rawHTML, sourceURL, reDataLangPre, "data-lang")...)
	return mergeCodeBlocks(candidates)
}

// extractPreCodeBlocks handles the standard and plain strategies:
// <pre><code class="[language-]X"> yields language X, a class-less
// <pre><code> yields "unknown".
func extractPreCodeBlocks(rawHTML, sourceURL string) []*CodeBlock {
	var blocks []*CodeBlock
	for _, m := range rePreCode.FindAllStringSubmatch(rawHTML, -1) {
		attrs, body := m[1], m[2]

		tag := ""
		strategy := "pre_code_plain"
		if cm := reClassAttr.FindStringSubmatch(attrs); cm != nil {
			strategy = "pre_code_class"
			if lm := reLangClass.FindStringSubmatch(cm[1]); lm != nil {
				tag = lm[1]
			} else if fields := strings.Fields(cm[1]); len(fields) > 0 {
				tag = fields[0]
			}
		}

		content := cleanCodeContent(body)
		if content == "" {
			continue
		}
		blocks = append(blocks, newCodeBlock(content, tag, sourceURL, strategy))
	}
	return blocks
}

// extractTabbedBlocks handles containers whose class contains "tab" or
// "tabs" and whose children carry data-lang attributes. All language
// variants found in one container share a synthetic block ID.
func extractTabbedBlocks(rawHTML, sourceURL string) []*CodeBlock {
	var blocks []*CodeBlock
	for _, cm := range reTabContainer.FindAllStringSubmatch(rawHTML, -1) {
		containerBody := cm[1]

		var variants []*CodeBlock
		for _, m := range reDataLangTag.FindAllStringSubmatch(containerBody, -1) {
			content := cleanCodeContent(m[2])
			if content == "" {
				continue
			}
			variants = append(variants, newCodeBlock(content, m[1], sourceURL, "tabbed"))
		}
		if len(variants) == 0 {
			continue
		}

		groupID := uuid.New().String()
		for _, v := range variants {
			v.BlockID = groupID
			v.Metadata["is_variant"] = true
			v.Metadata["variant_count"] = len(variants)
		}
		blocks = append(blocks, variants...)
	}
	return blocks
}

// extractAttrBlocks handles <pre> elements that carry the language in
// an attribute (data-language or data-lang).
func extractAttrBlocks(rawHTML, sourceURL string, re *regexp.Regexp, strategy string) []*CodeBlock {
	var blocks []*CodeBlock
	for _, m := range re.FindAllStringSubmatch(rawHTML, -1) {
		content := cleanCodeContent(m[2])
		if content == "" {
			continue
		}
		blocks = append(blocks, newCodeBlock(content, m[1], sourceURL, strategy))
	}
	return blocks
}

func newCodeBlock(content, tag, sourceURL, strategy string) *CodeBlock {
	return &CodeBlock{
		BlockID:   uuid.New().String(),
		Language:  NormalizeLanguageTag(tag),
		Content:   content,
		SourceURL: sourceURL,
		Metadata:  Metadata{"strategy": strategy},
	}
}

// cleanCodeContent strips markup (syntax-highlighting spans and the
// like), decodes HTML entities and trims the result.
func cleanCodeContent(body string) string {
	text := reAnyTag.ReplaceAllString(body, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

// contentHash returns the 16-hex-character SHA-256 prefix that keys
// code block deduplication.
func contentHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])[:16]
}

// mergeCodeBlocks deduplicates strategy results while preserving first
// emission order. An "unknown" block is dropped whenever its content
// was seen before under any language; a known-language block is dropped
// only when the identical (hash, language) pair was emitted, and it
// replaces a previously emitted "unknown" block with the same content
// in place.
func mergeCodeBlocks(candidates []*CodeBlock) []*CodeBlock {
	var merged []*CodeBlock
	byHash := make(map[string]int)     // content hash -> index of first emission
	seenPair := make(map[string]bool)  // hash|language pairs already emitted

	for _, block := range candidates {
		hash := contentHash(block.Content)
		pair := hash + "|" + block.Language

		if block.Language == "unknown" {
			if _, ok := byHash[hash]; ok {
				continue
			}
		} else {
			if seenPair[pair] {
				continue
			}
			if idx, ok := byHash[hash]; ok && merged[idx].Language == "unknown" {
				block.BlockIndex = merged[idx].BlockIndex
				merged[idx] = block
				seenPair[pair] = true
				continue
			}
		}

		block.BlockIndex = len(merged)
		if _, ok := byHash[hash]; !ok {
			byHash[hash] = len(merged)
		}
		seenPair[pair] = true
		merged = append(merged, block)
	}

	return merged
}
