package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/docsift/docsift"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docsift.DocumentManager = (*DocumentManager)(nil)

// DocumentManager implements docsift.DocumentManager using SQLite.
type DocumentManager struct {
	db *DB
}

// NewDocumentManager creates a new DocumentManager.
func NewDocumentManager(db *DB) *DocumentManager {
	return &DocumentManager{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// AddDocument ingests a page, assigning it an ID, a content hash and a
// fetch timestamp. The crawl_id and source_url metadata keys, when
// present, are promoted to columns so sessions can be listed and
// deleted efficiently.
func (m *DocumentManager) AddDocument(ctx context.Context, title, text string, metadata docsift.Metadata) (*docsift.Document, error) {
	doc := &docsift.Document{
		ID:          uuid.New().String(),
		Title:       title,
		Content:     text,
		ContentHash: hashContent(text),
		Metadata:    metadata,
		FetchedAt:   time.Now().UTC(),
	}
	if v, ok := metadata["crawl_id"].(string); ok {
		doc.CrawlID = v
	}
	if v, ok := metadata["source_url"].(string); ok {
		doc.SourceURL = v
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	meta, err := json.Marshal(metadata)
	if err != nil {
		return nil, docsift.Errorf(docsift.EINVALID, "encoding metadata: %v", err)
	}

	_, err = m.db.ExecContext(ctx, `
		INSERT INTO documents (id, crawl_id, source_url, title, content, content_hash, metadata, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, doc.ID, doc.CrawlID, doc.SourceURL, doc.Title, doc.Content, doc.ContentHash,
		string(meta), doc.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return nil, err
	}

	return doc, nil
}

// AddCodeBlocks attaches extracted code blocks to a document, assigning
// each an ID and preserving block order. The insert is transactional:
// either all blocks land or none do.
func (m *DocumentManager) AddCodeBlocks(ctx context.Context, documentID string, blocks []*docsift.CodeBlock, metadata docsift.Metadata) error {
	if len(blocks) == 0 {
		return nil
	}

	tx, err := m.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, block := range blocks {
		block.ID = uuid.New().String()
		block.DocumentID = documentID

		merged := docsift.Metadata{}
		for k, v := range block.Metadata {
			merged[k] = v
		}
		for k, v := range metadata {
			merged[k] = v
		}
		meta, err := json.Marshal(merged)
		if err != nil {
			return docsift.Errorf(docsift.EINVALID, "encoding metadata: %v", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO code_blocks (id, document_id, block_id, block_index, language, content, metadata, source_url)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, block.ID, block.DocumentID, block.BlockID, block.BlockIndex,
			block.Language, block.Content, string(meta), block.SourceURL)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// FindDocumentsByCrawlID returns the documents ingested by one crawl
// session, in ingestion order.
func (m *DocumentManager) FindDocumentsByCrawlID(ctx context.Context, crawlID string) ([]*docsift.Document, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, crawl_id, source_url, title, content, content_hash, metadata, fetched_at
		FROM documents
		WHERE crawl_id = ?
		ORDER BY fetched_at, id
	`, crawlID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []*docsift.Document
	for rows.Next() {
		var doc docsift.Document
		var meta, fetchedAt string
		if err := rows.Scan(&doc.ID, &doc.CrawlID, &doc.SourceURL, &doc.Title,
			&doc.Content, &doc.ContentHash, &meta, &fetchedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(meta), &doc.Metadata); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339, fetchedAt)
		if err != nil {
			return nil, err
		}
		doc.FetchedAt = t
		docs = append(docs, &doc)
	}
	return docs, rows.Err()
}

// DeleteByCrawlID removes every document and code block produced by one
// crawl session. Returns the number of documents deleted.
func (m *DocumentManager) DeleteByCrawlID(ctx context.Context, crawlID string) (int, error) {
	res, err := m.db.ExecContext(ctx, `DELETE FROM documents WHERE crawl_id = ?`, crawlID)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
