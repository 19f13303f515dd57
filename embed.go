package webrag

import "context"

// Embedder generates vector embeddings from text. The output dimension is
// a property of the configured model and must match the vector index.
type Embedder interface {
	// EmbedDocuments embeds a batch of chunk texts for ingestion.
	// Authentication or quota failures return EUNAUTHORIZED and the
	// batch produces no partial results.
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)

	// EmbedQuery embeds a search query with the same model used for
	// ingestion.
	EmbedQuery(ctx context.Context, text string) ([]float32, error)

	// Model returns the name of the embedding model in use.
	Model() string
}
