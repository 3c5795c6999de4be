package docsift

import (
	"context"
	"time"
)

// Metadata holds free-form key/value annotations attached to documents
// and code blocks at ingestion time.
type Metadata map[string]any

// Document represents an ingested documentation page.
type Document struct {
	ID          string    `json:"id"`
	SourceURL   string    `json:"source_url"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"content_hash"`
	CrawlID     string    `json:"crawl_id"`
	Metadata    Metadata  `json:"metadata,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if d.Content == "" {
		return Errorf(EINVALID, "document content required")
	}
	return nil
}

// CodeBlock represents one source-code snippet extracted from a page.
// BlockID groups language variants of the same logical snippet (e.g.
// tabbed examples); DocumentID is populated by the ingestion sink, not
// the extractor.
type CodeBlock struct {
	ID         string   `json:"id"`
	DocumentID string   `json:"document_id"`
	BlockID    string   `json:"block_id"`
	BlockIndex int      `json:"block_index"`
	Language   string   `json:"language"`
	Content    string   `json:"content"`
	Metadata   Metadata `json:"metadata,omitempty"`
	SourceURL  string   `json:"source_url"`
}

// DocumentManager is the ingestion sink the crawler feeds. It is the
// boundary to the search index: storage, embedding and ranking live
// behind it.
type DocumentManager interface {
	// AddDocument ingests a page and returns the stored document with
	// its assigned ID.
	AddDocument(ctx context.Context, title, text string, metadata Metadata) (*Document, error)

	// AddCodeBlocks attaches extracted code blocks to a previously
	// ingested document.
	AddCodeBlocks(ctx context.Context, documentID string, blocks []*CodeBlock, metadata Metadata) error
}
