package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of webrag.Embedder.
type Embedder struct {
	EmbedDocumentsFn func(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQueryFn     func(ctx context.Context, text string) ([]float32, error)
	ModelFn          func() string
}

func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return e.EmbedDocumentsFn(ctx, texts)
}

func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedQueryFn(ctx, text)
}

func (e *Embedder) Model() string {
	if e.ModelFn == nil {
		return "mock-embedding-model"
	}
	return e.ModelFn()
}
