package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.VectorIndex = (*VectorIndex)(nil)

// VectorIndex is a mock implementation of webrag.VectorIndex.
type VectorIndex struct {
	AddFn           func(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error)
	SearchFn        func(ctx context.Context, embedding []float32, opts webrag.SearchOptions) ([]webrag.Match, error)
	MissingChunksFn func(ctx context.Context, url string, total int) ([]int, error)
	SourcesFn       func(ctx context.Context) ([]*webrag.IndexedSource, error)
	CountFn         func(ctx context.Context) (int, error)
	DeleteSourceFn  func(ctx context.Context, url string) error
	DeleteAllFn     func(ctx context.Context) error
}

func (i *VectorIndex) Add(ctx context.Context, req webrag.IndexRequest) (*webrag.IndexResult, error) {
	return i.AddFn(ctx, req)
}

func (i *VectorIndex) Search(ctx context.Context, embedding []float32, opts webrag.SearchOptions) ([]webrag.Match, error) {
	return i.SearchFn(ctx, embedding, opts)
}

func (i *VectorIndex) MissingChunks(ctx context.Context, url string, total int) ([]int, error) {
	return i.MissingChunksFn(ctx, url, total)
}

func (i *VectorIndex) Sources(ctx context.Context) ([]*webrag.IndexedSource, error) {
	return i.SourcesFn(ctx)
}

func (i *VectorIndex) Count(ctx context.Context) (int, error) {
	return i.CountFn(ctx)
}

func (i *VectorIndex) DeleteSource(ctx context.Context, url string) error {
	return i.DeleteSourceFn(ctx, url)
}

func (i *VectorIndex) DeleteAll(ctx context.Context) error {
	return i.DeleteAllFn(ctx)
}
