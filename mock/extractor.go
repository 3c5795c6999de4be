package mock

import "github.com/docsift/docsift"

var _ docsift.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of docsift.ContentExtractor.
type ContentExtractor struct {
	ExtractContentFn func(body []byte, contentType, baseURL string) (*docsift.ExtractResult, error)
}

func (e *ContentExtractor) ExtractContent(body []byte, contentType, baseURL string) (*docsift.ExtractResult, error) {
	return e.ExtractContentFn(body, contentType, baseURL)
}
