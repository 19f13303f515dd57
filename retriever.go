package webrag

import "context"

// RetrievalResult is one ranked passage handed to the answer generator.
type RetrievalResult struct {
	Content string  `json:"content"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Domain  string  `json:"domain"`
	Score   float64 `json:"score"`
}

// SourceRef is a deduplicated per-URL citation derived from retrieval
// results: one entry per source URL, first occurrence wins.
type SourceRef struct {
	URL    string  `json:"url"`
	Title  string  `json:"title"`
	Domain string  `json:"domain"`
	Score  float64 `json:"score"` // score of the best-ranked chunk
}

// Retriever answers queries against the vector index using the same
// embedding provider that populated it.
type Retriever struct {
	Embedder Embedder
	Index    VectorIndex
}

// Retrieve embeds the query, searches the index, and returns the ranked
// chunks together with per-URL source citations.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int) ([]RetrievalResult, []SourceRef, error) {
	if query == "" {
		return nil, nil, Errorf(EINVALID, "query required")
	}
	if topK <= 0 {
		return nil, nil, Errorf(EINVALID, "topK must be positive, got %d", topK)
	}

	embedding, err := r.Embedder.EmbedQuery(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	matches, err := r.Index.Search(ctx, embedding, SearchOptions{TopK: topK})
	if err != nil {
		return nil, nil, err
	}

	results := make([]RetrievalResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, RetrievalResult{
			Content: m.Chunk.Text,
			Title:   m.Title,
			URL:     m.Chunk.SourceURL,
			Domain:  m.Domain,
			Score:   m.Score,
		})
	}

	return results, DedupeSources(results), nil
}

// DedupeSources reduces retrieval results to one citation per source URL,
// preserving rank order. The first (best-ranked) occurrence wins.
func DedupeSources(results []RetrievalResult) []SourceRef {
	seen := make(map[string]bool)
	var refs []SourceRef
	for _, res := range results {
		if seen[res.URL] {
			continue
		}
		seen[res.URL] = true
		refs = append(refs, SourceRef{
			URL:    res.URL,
			Title:  res.Title,
			Domain: res.Domain,
			Score:  res.Score,
		})
	}
	return refs
}
