package crawl_test

import (
	"context"
	"strings"
	"testing"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/crawl"
	"github.com/GH05TCREW/WebRAG/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newIngestor wires an Ingestor over a fake site with a recording index.
// The embedder returns a fixed-dimension vector per text.
func newIngestor(s site, index *mock.VectorIndex) *crawl.Ingestor {
	return &crawl.Ingestor{
		Validator: &mock.URLValidator{
			ValidateFn: func(ctx context.Context, rawURL string) (string, error) {
				if strings.Contains(rawURL, "invalid") {
					return "", webrag.Errorf(webrag.EINVALID, "invalid URL format: %q", rawURL)
				}
				return rawURL, nil
			},
		},
		Crawler: newSiteCrawler(s),
		Splitter: &mock.Splitter{
			SplitFn: func(text string) []string {
				return strings.Split(text, "|")
			},
		},
		Embedder: &mock.Embedder{
			EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
				out := make([][]float32, len(texts))
				for i := range texts {
					out[i] = []float32{1, 0, 0}
				}
				return out, nil
			},
		},
		Index: index,
	}
}

// allMissing reports every chunk index as not yet stored.
func allMissing(ctx context.Context, url string, total int) ([]int, error) {
	missing := make([]int, total)
	for i := range missing {
		missing[i] = i
	}
	return missing, nil
}

func TestIngestor_indexes_crawled_pages(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/a": {text: "alpha|beta", links: []string{"https://example.com/b"}},
		"https://example.com/b": {text: "gamma"},
	}

	var requests []webrag.IndexRequest
	index := &mock.VectorIndex{
		MissingChunksFn: allMissing,
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			requests = append(requests, req)
			return &webrag.IndexResult{Added: len(req.Chunks)}, nil
		},
	}

	result, err := newIngestor(s, index).Ingest(context.Background(),
		[]string{"https://example.com/a"},
		crawl.Options{MaxPages: 10, MaxDepth: 2}, nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.PagesCrawled)
	assert.Equal(t, 0, result.PagesFailed)
	assert.Equal(t, 3, result.ChunksAdded)

	require.Len(t, requests, 2)
	assert.Equal(t, "https://example.com/a", requests[0].URL)
	assert.Equal(t, []string{"alpha", "beta"}, requests[0].Chunks)
	assert.Equal(t, "example.com", requests[0].Domain)
	assert.Equal(t, 2, requests[0].TotalChunks)
	assert.NotEmpty(t, requests[0].ContentHash)
}

func TestIngestor_skips_already_indexed_chunks(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/a": {text: "alpha|beta|gamma"},
	}

	var embedded []string
	index := &mock.VectorIndex{
		// Only the middle chunk is missing.
		MissingChunksFn: func(ctx context.Context, url string, total int) ([]int, error) {
			return []int{1}, nil
		},
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			embedded = req.Chunks
			assert.Equal(t, []int{1}, req.Indices)
			return &webrag.IndexResult{Added: 1}, nil
		},
	}

	ing := newIngestor(s, index)
	result, err := ing.Ingest(context.Background(),
		[]string{"https://example.com/a"},
		crawl.Options{MaxPages: 10, MaxDepth: 1}, nil)

	require.NoError(t, err)
	assert.Equal(t, []string{"beta"}, embedded, "only the missing chunk should be embedded")
	assert.Equal(t, 1, result.ChunksAdded)
	assert.Equal(t, 2, result.ChunksSkipped)
}

func TestIngestor_fully_indexed_source_skips_embedding(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/a": {text: "alpha|beta"},
	}

	index := &mock.VectorIndex{
		MissingChunksFn: func(ctx context.Context, url string, total int) ([]int, error) {
			return nil, nil
		},
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			t.Fatal("Add should not be called when nothing is missing")
			return nil, nil
		},
	}

	ing := newIngestor(s, index)
	ing.Embedder = &mock.Embedder{
		EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			t.Fatal("embedding should not be called when nothing is missing")
			return nil, nil
		},
	}

	result, err := ing.Ingest(context.Background(),
		[]string{"https://example.com/a"},
		crawl.Options{MaxPages: 10, MaxDepth: 1}, nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.ChunksAdded)
	assert.Equal(t, 2, result.ChunksSkipped)
}

func TestIngestor_invalid_seed_is_partial_failure(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/good": {text: "alpha"},
	}

	index := &mock.VectorIndex{
		MissingChunksFn: allMissing,
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			return &webrag.IndexResult{Added: len(req.Chunks)}, nil
		},
	}

	result, err := newIngestor(s, index).Ingest(context.Background(),
		[]string{"https://example.com/good", "not-a-url-invalid"},
		crawl.Options{MaxPages: 10, MaxDepth: 1}, nil)

	require.NoError(t, err)
	assert.Equal(t, 1, result.PagesCrawled)
	assert.Equal(t, 1, result.PagesFailed)
	require.Len(t, result.Failures, 1)
	assert.Equal(t, "not-a-url-invalid", result.Failures[0].URL)
}

func TestIngestor_embedding_auth_error_aborts(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/a": {text: "alpha"},
		"https://example.com/b": {text: "beta"},
	}

	index := &mock.VectorIndex{
		MissingChunksFn: allMissing,
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			t.Fatal("Add should not run after an embedding auth failure")
			return nil, nil
		},
	}

	ing := newIngestor(s, index)
	ing.Embedder = &mock.Embedder{
		EmbedDocumentsFn: func(ctx context.Context, texts []string) ([][]float32, error) {
			return nil, webrag.Errorf(webrag.EUNAUTHORIZED, "invalid API key")
		},
	}

	_, err := ing.Ingest(context.Background(),
		[]string{"https://example.com/a", "https://example.com/b"},
		crawl.Options{MaxPages: 10, MaxDepth: 1}, nil)

	assert.Equal(t, webrag.EUNAUTHORIZED, webrag.ErrorCode(err))
}

func TestIngestor_requires_seeds(t *testing.T) {
	t.Parallel()

	ing := newIngestor(site{}, &mock.VectorIndex{})

	_, err := ing.Ingest(context.Background(), nil, crawl.Options{MaxPages: 10, MaxDepth: 1}, nil)
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))
}

func TestIngestor_progress_includes_embedding_checkpoint(t *testing.T) {
	t.Parallel()

	s := site{
		"https://example.com/a": {text: "alpha"},
	}

	index := &mock.VectorIndex{
		MissingChunksFn: allMissing,
		AddFn: func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
			return &webrag.IndexResult{Added: len(req.Chunks)}, nil
		},
	}

	var types []crawl.ProgressType
	_, err := newIngestor(s, index).Ingest(context.Background(),
		[]string{"https://example.com/a"},
		crawl.Options{MaxPages: 10, MaxDepth: 1},
		func(event crawl.ProgressEvent) { types = append(types, event.Type) })

	require.NoError(t, err)
	assert.Equal(t, []crawl.ProgressType{
		crawl.ProgressFetching,
		crawl.ProgressFetched,
		crawl.ProgressEmbedded,
		crawl.ProgressFinished,
	}, types)
}
