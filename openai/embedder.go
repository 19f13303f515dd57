package openai

import (
	"context"
	"sort"

	webrag "github.com/GH05TCREW/WebRAG"
	openai "github.com/sashabaranov/go-openai"
)

// Ensure Embedder implements webrag.Embedder at compile time.
var _ webrag.Embedder = (*Embedder)(nil)

// Embedder generates embeddings with the OpenAI embeddings API. The
// same model must embed documents and queries or their vectors are not
// comparable.
type Embedder struct {
	client *openai.Client
	model  string
}

// NewEmbedder creates an Embedder using the given client and model.
func NewEmbedder(client *openai.Client, model string) *Embedder {
	return &Embedder{client: client, model: model}
}

// EmbedDocuments embeds a batch of chunk texts in a single API call.
// The batch produces no partial results: any failure drops it whole.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, webrag.Errorf(webrag.EINVALID, "at least one text required")
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, mapError(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, webrag.Errorf(webrag.EINTERNAL, "expected %d embeddings, got %d", len(texts), len(resp.Data))
	}

	// The API documents response order by index; sort in case.
	sort.Slice(resp.Data, func(i, j int) bool {
		return resp.Data[i].Index < resp.Data[j].Index
	})

	embeddings := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		embeddings[i] = d.Embedding
	}
	return embeddings, nil
}

// EmbedQuery embeds a search query.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, webrag.Errorf(webrag.EINVALID, "text required")
	}

	embeddings, err := e.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return embeddings[0], nil
}

// Model returns the name of the embedding model in use.
func (e *Embedder) Model() string {
	return e.model
}
