package sqlite_test

import (
	"context"
	"testing"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedRequest(url string, chunks []string, embeddings [][]float32) webrag.IndexRequest {
	return webrag.IndexRequest{
		URL:         url,
		Title:       "Title of " + url,
		Domain:      webrag.Domain(url),
		Chunks:      chunks,
		Embeddings:  embeddings,
		ContentHash: "hash-" + url,
		TotalChunks: len(chunks),
	}
}

func TestChunkID_deterministic(t *testing.T) {
	t.Parallel()

	a := sqlite.ChunkID("https://example.com/page", 0)
	b := sqlite.ChunkID("https://example.com/page", 0)
	assert.Equal(t, a, b)

	assert.NotEqual(t, a, sqlite.ChunkID("https://example.com/page", 1))
	assert.NotEqual(t, a, sqlite.ChunkID("https://example.com/other", 0))
}

func TestVectorIndex_Add_and_Search(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	res, err := index.Add(ctx, seedRequest("https://example.com/a",
		[]string{"about dogs", "about cats"},
		[][]float32{{1, 0, 0}, {0, 1, 0}}))
	require.NoError(t, err)
	assert.Equal(t, 2, res.Added)
	assert.Equal(t, 0, res.Skipped)

	matches, err := index.Search(ctx, []float32{1, 0, 0}, webrag.SearchOptions{TopK: 1})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "about dogs", matches[0].Chunk.Text)
	assert.Equal(t, "https://example.com/a", matches[0].Chunk.SourceURL)
	assert.Equal(t, "example.com", matches[0].Domain)
	assert.InDelta(t, 1.0, matches[0].Score, 1e-6)
}

func TestVectorIndex_Add_is_idempotent(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	req := seedRequest("https://example.com/a",
		[]string{"alpha", "beta"},
		[][]float32{{1, 0}, {0, 1}})

	first, err := index.Add(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Added)

	second, err := index.Add(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Added)
	assert.Equal(t, 2, second.Skipped)

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestVectorIndex_Search_respects_topk_and_order(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a",
		[]string{"exact", "close", "far"},
		[][]float32{{1, 0}, {0.9, 0.1}, {0, 1}}))
	require.NoError(t, err)

	matches, err := index.Search(ctx, []float32{1, 0}, webrag.SearchOptions{TopK: 2})
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "exact", matches[0].Chunk.Text)
	assert.Equal(t, "close", matches[1].Chunk.Text)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestVectorIndex_Search_filters_by_domain(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://a.com/page", []string{"from a"}, [][]float32{{1, 0}}))
	require.NoError(t, err)
	_, err = index.Add(ctx, seedRequest("https://b.com/page", []string{"from b"}, [][]float32{{1, 0}}))
	require.NoError(t, err)

	matches, err := index.Search(ctx, []float32{1, 0}, webrag.SearchOptions{TopK: 10, Domain: "b.com"})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "from b", matches[0].Chunk.Text)
}

func TestVectorIndex_Search_empty_index(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))

	matches, err := index.Search(context.Background(), []float32{1, 0}, webrag.SearchOptions{TopK: 5})
	require.NoError(t, err)
	assert.Empty(t, matches)
}

func TestVectorIndex_dimension_change_resets_on_add(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a", []string{"old"}, [][]float32{{1, 0}}))
	require.NoError(t, err)

	// A three-dimensional vector arrives after a model switch.
	_, err = index.Add(ctx, seedRequest("https://example.com/b", []string{"new"}, [][]float32{{1, 0, 0}}))
	require.NoError(t, err)

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count, "old-dimension chunks must be gone")

	sources, err := index.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "https://example.com/b", sources[0].URL)

	matches, err := index.Search(ctx, []float32{1, 0, 0}, webrag.SearchOptions{TopK: 5})
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "new", matches[0].Chunk.Text)
}

func TestVectorIndex_dimension_change_resets_on_search(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a", []string{"old"}, [][]float32{{1, 0}}))
	require.NoError(t, err)

	matches, err := index.Search(ctx, []float32{1, 0, 0}, webrag.SearchOptions{TopK: 5})
	require.NoError(t, err)
	assert.Empty(t, matches)

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count, "mismatched query dimension must reset the index")
}

func TestVectorIndex_MissingChunks(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	url := "https://example.com/a"

	missing, err := index.MissingChunks(ctx, url, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, missing)

	_, err = index.Add(ctx, webrag.IndexRequest{
		URL:         url,
		Domain:      "example.com",
		Chunks:      []string{"zero", "two"},
		Embeddings:  [][]float32{{1, 0}, {0, 1}},
		Indices:     []int{0, 2},
		TotalChunks: 3,
	})
	require.NoError(t, err)

	missing, err = index.MissingChunks(ctx, url, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, missing)
}

func TestVectorIndex_Sources_newest_first(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a", []string{"a"}, [][]float32{{1, 0}}))
	require.NoError(t, err)
	_, err = index.Add(ctx, seedRequest("https://example.com/b", []string{"b"}, [][]float32{{0, 1}}))
	require.NoError(t, err)

	sources, err := index.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, 1, sources[0].ChunkCount)
	assert.False(t, sources[0].IndexedAt.Before(sources[1].IndexedAt))
}

func TestVectorIndex_DeleteSource(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a", []string{"a"}, [][]float32{{1, 0}}))
	require.NoError(t, err)
	_, err = index.Add(ctx, seedRequest("https://example.com/b", []string{"b"}, [][]float32{{0, 1}}))
	require.NoError(t, err)

	require.NoError(t, index.DeleteSource(ctx, "https://example.com/a"))

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	sources, err := index.Sources(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "https://example.com/b", sources[0].URL)

	// Unknown URLs delete nothing and return no error.
	require.NoError(t, index.DeleteSource(ctx, "https://example.com/unknown"))
}

func TestVectorIndex_DeleteAll(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))
	ctx := context.Background()

	_, err := index.Add(ctx, seedRequest("https://example.com/a", []string{"a"}, [][]float32{{1, 0}}))
	require.NoError(t, err)

	require.NoError(t, index.DeleteAll(ctx))

	count, err := index.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	// The dimension is forgotten too, so any model may be used next.
	_, err = index.Add(ctx, seedRequest("https://example.com/b", []string{"b"}, [][]float32{{1, 0, 0, 0}}))
	require.NoError(t, err)
}

func TestVectorIndex_Add_rejects_mismatched_slices(t *testing.T) {
	t.Parallel()

	index := sqlite.NewVectorIndex(MustOpenDB(t))

	_, err := index.Add(context.Background(), webrag.IndexRequest{
		URL:        "https://example.com/a",
		Chunks:     []string{"a", "b"},
		Embeddings: [][]float32{{1, 0}},
	})
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))
}
