// Package fs provides a file-based cache of extracted pages.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/cespare/xxhash/v2"
	webrag "github.com/GH05TCREW/WebRAG"
)

// DefaultFreshness is how long a cached page is served before the URL
// is fetched again.
const DefaultFreshness = 24 * time.Hour

// unsafeFilenameRe matches characters stripped from domain names when
// building cache filenames.
var unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// Ensure PageCache implements webrag.PageCache at compile time.
var _ webrag.PageCache = (*PageCache)(nil)

// PageCache stores extracted pages as JSON files, one per URL, keyed by
// domain and URL hash. Entries older than the freshness window are
// treated as absent and overwritten on the next fetch.
type PageCache struct {
	baseDir   string
	freshness time.Duration
}

// Option configures a PageCache.
type Option func(*PageCache)

// WithFreshness overrides the freshness window.
// Defaults to DefaultFreshness if not specified.
func WithFreshness(d time.Duration) Option {
	return func(c *PageCache) {
		c.freshness = d
	}
}

// NewPageCache creates a PageCache rooted at baseDir. The directory is
// created on first Put.
func NewPageCache(baseDir string, opts ...Option) *PageCache {
	c := &PageCache{
		baseDir:   baseDir,
		freshness: DefaultFreshness,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached page for the URL, or ENOTFOUND when no fresh
// entry exists. A corrupt cache file is treated as a miss.
func (c *PageCache) Get(ctx context.Context, url string) (*webrag.Page, error) {
	data, err := os.ReadFile(c.pathFor(url))
	if err != nil {
		return nil, webrag.Errorf(webrag.ENOTFOUND, "no cached page for %s", url)
	}

	var page webrag.Page
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, webrag.Errorf(webrag.ENOTFOUND, "no cached page for %s", url)
	}

	if time.Since(page.FetchedAt) > c.freshness {
		return nil, webrag.Errorf(webrag.ENOTFOUND, "cached page for %s is stale", url)
	}

	return &page, nil
}

// Put stores a page, replacing any previous entry for its URL.
func (c *PageCache) Put(ctx context.Context, page *webrag.Page) error {
	if page.URL == "" {
		return webrag.Errorf(webrag.EINVALID, "page URL required")
	}

	if err := os.MkdirAll(c.baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(page, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(c.pathFor(page.URL), data, 0644)
}

// pathFor builds the cache file path for a URL: the sanitized domain
// keeps files greppable, the URL hash makes them unique.
func (c *PageCache) pathFor(url string) string {
	domain := unsafeFilenameRe.ReplaceAllString(webrag.Domain(url), "_")
	if domain == "" {
		domain = "unknown"
	}
	name := fmt.Sprintf("%s_%016x.json", domain, xxhash.Sum64String(url))
	return filepath.Join(c.baseDir, name)
}
