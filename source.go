package webrag

import (
	"context"
	"time"
)

// IndexedSource is the aggregate metadata kept per indexed URL.
// One entry exists per normalized URL; it is replaced wholesale on
// re-index and removed on deletion.
type IndexedSource struct {
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Domain      string    `json:"domain"`
	ChunkCount  int       `json:"chunkCount"`
	ContentHash string    `json:"contentHash"`
	IndexedAt   time.Time `json:"indexedAt"`
}

// IndexRequest carries one source's chunks and their embeddings into the
// vector index. Chunks and Embeddings are parallel slices.
type IndexRequest struct {
	URL        string
	Title      string
	Domain     string
	Chunks     []string
	Embeddings [][]float32
	// Indices are the sequence indices of Chunks within the source.
	// When nil, Chunks are assumed to start at index 0.
	Indices  []int
	Metadata PageMetadata
	// ContentHash identifies the extracted text the chunks came from.
	ContentHash string
	// TotalChunks is the chunk count for the source, which may exceed
	// len(Chunks) when already-stored chunks were skipped upstream.
	TotalChunks int
}

// IndexResult reports the outcome of an Add call.
type IndexResult struct {
	// Added is the number of chunks newly persisted. Chunks whose
	// deterministic id already existed are skipped and not counted.
	Added int

	// Skipped is the number of chunks skipped as already indexed.
	Skipped int
}

// Match is a similarity search hit.
type Match struct {
	Chunk  *Chunk  `json:"chunk"`
	Title  string  `json:"title"`
	Domain string  `json:"domain"`
	Score  float64 `json:"score"` // cosine similarity, 1 - cosine distance
}

// SearchOptions configures a similarity search.
type SearchOptions struct {
	// TopK caps the number of results. The effective count is
	// min(TopK, total indexed chunks).
	TopK int

	// Domain, when set, restricts matches to chunks from that domain.
	Domain string
}

// VectorIndex stores (chunk, embedding, metadata) tuples and supports
// similarity search, per-source deletion, and existence checks.
//
// All stored vectors share a single dimension. An embedding whose
// dimension differs from the stored one (the result of switching
// embedding models) is a consistency violation: the index resets itself
// fully before accepting new vectors, and a mixed-dimension state is
// never queryable.
type VectorIndex interface {
	// Add persists the request's chunks, skipping ids that already
	// exist, and replaces the IndexedSource aggregate for the URL.
	// Calling Add twice with unchanged content is a no-op after the
	// first call. No partial writes survive a failure.
	Add(ctx context.Context, req IndexRequest) (*IndexResult, error)

	// Search returns up to opts.TopK chunks ranked by cosine
	// similarity to the query embedding.
	Search(ctx context.Context, embedding []float32, opts SearchOptions) ([]Match, error)

	// MissingChunks reports which sequence indices in [0, total) are
	// not yet stored for the URL, so callers can avoid re-embedding
	// chunks that already exist.
	MissingChunks(ctx context.Context, url string, total int) ([]int, error)

	// Sources lists all IndexedSource entries, newest first.
	Sources(ctx context.Context) ([]*IndexedSource, error)

	// Count returns the total number of stored chunks.
	Count(ctx context.Context) (int, error)

	// DeleteSource removes every chunk for the URL and its
	// IndexedSource entry. Deleting an unknown URL is a no-op.
	DeleteSource(ctx context.Context, url string) error

	// DeleteAll clears every chunk and all IndexedSource entries.
	DeleteAll(ctx context.Context) error
}

// DomainSummary aggregates indexed sources per domain.
type DomainSummary struct {
	Domain      string           `json:"domain"`
	Sources     []*IndexedSource `json:"sources"`
	TotalChunks int              `json:"totalChunks"`
	LastIndexed time.Time        `json:"lastIndexed"`
}

// SummarizeDomains rolls up indexed sources by domain, preserving the
// input order of first appearance per domain.
func SummarizeDomains(sources []*IndexedSource) []*DomainSummary {
	byDomain := make(map[string]*DomainSummary)
	var order []string

	for _, src := range sources {
		sum, ok := byDomain[src.Domain]
		if !ok {
			sum = &DomainSummary{Domain: src.Domain}
			byDomain[src.Domain] = sum
			order = append(order, src.Domain)
		}
		sum.Sources = append(sum.Sources, src)
		sum.TotalChunks += src.ChunkCount
		if src.IndexedAt.After(sum.LastIndexed) {
			sum.LastIndexed = src.IndexedAt
		}
	}

	summaries := make([]*DomainSummary, 0, len(order))
	for _, domain := range order {
		summaries = append(summaries, byDomain[domain])
	}
	return summaries
}
