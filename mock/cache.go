package mock

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

var _ webrag.PageCache = (*PageCache)(nil)

// PageCache is a mock implementation of webrag.PageCache.
type PageCache struct {
	GetFn func(ctx context.Context, url string) (*webrag.Page, error)
	PutFn func(ctx context.Context, page *webrag.Page) error
}

func (c *PageCache) Get(ctx context.Context, url string) (*webrag.Page, error) {
	return c.GetFn(ctx, url)
}

func (c *PageCache) Put(ctx context.Context, page *webrag.Page) error {
	return c.PutFn(ctx, page)
}
