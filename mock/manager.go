package mock

import (
	"context"

	"github.com/docsift/docsift"
)

var _ docsift.DocumentManager = (*DocumentManager)(nil)

// DocumentManager is a mock implementation of docsift.DocumentManager.
type DocumentManager struct {
	AddDocumentFn   func(ctx context.Context, title, text string, metadata docsift.Metadata) (*docsift.Document, error)
	AddCodeBlocksFn func(ctx context.Context, documentID string, blocks []*docsift.CodeBlock, metadata docsift.Metadata) error
}

func (m *DocumentManager) AddDocument(ctx context.Context, title, text string, metadata docsift.Metadata) (*docsift.Document, error) {
	return m.AddDocumentFn(ctx, title, text, metadata)
}

func (m *DocumentManager) AddCodeBlocks(ctx context.Context, documentID string, blocks []*docsift.CodeBlock, metadata docsift.Metadata) error {
	return m.AddCodeBlocksFn(ctx, documentID, blocks, metadata)
}
