package webrag

import (
	"context"
	"time"
)

// Page represents the extracted content of a single fetched web page.
// Pages are immutable once produced; re-fetching a URL supersedes the
// previous Page rather than mutating it.
type Page struct {
	URL         string       `json:"url"` // canonical, unique key
	Title       string       `json:"title"`
	Text        string       `json:"text"`
	Metadata    PageMetadata `json:"metadata"`
	FetchedAt   time.Time    `json:"fetchedAt"`
	ContentHash string       `json:"contentHash"`
}

// PageMetadata holds descriptive metadata extracted from the page head.
type PageMetadata struct {
	Description string `json:"description,omitempty"`
	Author      string `json:"author,omitempty"`
	Language    string `json:"language,omitempty"`
	ContentType string `json:"contentType,omitempty"`
}

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response body.
	// Non-HTML responses return EUNSUPPORTED; network errors and HTTP
	// failures return EUNREACHABLE. The context bounds the request; no
	// fetch blocks past its timeout.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// PageCache stores extracted pages keyed by URL so recently scraped
// pages are not re-fetched. Entries expire after a freshness window.
type PageCache interface {
	// Get returns the cached page for the URL, or ENOTFOUND if no
	// fresh entry exists.
	Get(ctx context.Context, url string) (*Page, error)

	// Put stores a page, replacing any previous entry for its URL.
	Put(ctx context.Context, page *Page) error
}

// ExtractResult holds the output of content extraction for one page.
type ExtractResult struct {
	// Title is the best title candidate, "Untitled" when none qualifies.
	Title string

	// Text is the main content as normalized plain text with
	// boilerplate removed.
	Text string

	// Metadata is descriptive metadata from meta tags.
	Metadata PageMetadata

	// Links are internal links discovered on the page, normalized and
	// restricted to the page's registrable domain.
	Links []string
}

// Extractor isolates the main textual content of an HTML page.
//
// Extraction applies an ordered heuristic cascade and never fails hard: a
// page whose content cannot be located degrades through successively
// coarser fallbacks, and a parse failure yields an empty Text which
// callers treat as an extraction failure.
type Extractor interface {
	Extract(html string, sourceURL string) (*ExtractResult, error)
}

// Converter converts clean HTML into normalized plain text.
// Link text is preserved; images are dropped.
type Converter interface {
	Convert(html string) (string, error)
}
