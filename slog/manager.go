package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/docsift/docsift"
)

// Ensure LoggingDocumentManager implements docsift.DocumentManager.
var _ docsift.DocumentManager = (*LoggingDocumentManager)(nil)

// LoggingDocumentManager wraps a DocumentManager with info logging.
type LoggingDocumentManager struct {
	next   docsift.DocumentManager
	logger *slog.Logger
}

// NewLoggingDocumentManager creates a new LoggingDocumentManager.
func NewLoggingDocumentManager(next docsift.DocumentManager, logger *slog.Logger) *LoggingDocumentManager {
	return &LoggingDocumentManager{next: next, logger: logger}
}

// AddDocument delegates to the wrapped manager and logs the operation.
func (m *LoggingDocumentManager) AddDocument(ctx context.Context, title, text string, metadata docsift.Metadata) (doc *docsift.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"title", title,
			"bytes", len(text),
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs, "id", doc.ID)
		}
		m.logger.Info("document ingested", attrs...)
	}(time.Now())
	return m.next.AddDocument(ctx, title, text, metadata)
}

// AddCodeBlocks delegates to the wrapped manager and logs the
// operation.
func (m *LoggingDocumentManager) AddCodeBlocks(ctx context.Context, documentID string, blocks []*docsift.CodeBlock, metadata docsift.Metadata) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("code blocks ingested",
			"document_id", documentID,
			"count", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.AddCodeBlocks(ctx, documentID, blocks, metadata)
}
