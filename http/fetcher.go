// Package http provides HTTP-based implementations of webrag.Fetcher and
// webrag.URLValidator for fetching and probing static pages.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	webrag "github.com/GH05TCREW/WebRAG"
)

// DefaultFetchTimeout bounds each HTTP request so no fetch blocks
// indefinitely.
const DefaultFetchTimeout = 15 * time.Second

// userAgent identifies the crawler to origin servers.
const userAgent = "Mozilla/5.0 (compatible; webrag/2.0; +https://github.com/GH05TCREW/WebRAG)"

// htmlContentTypes are the content types accepted for processing.
var htmlContentTypes = []string{"text/html", "application/xhtml+xml", "text/plain"}

// Ensure Fetcher implements webrag.Fetcher at compile time.
var _ webrag.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// JavaScript-rendered pages are out of scope; whatever the server returns
// is what gets extracted.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", webrag.Errorf(webrag.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", webrag.Errorf(webrag.EUNREACHABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", webrag.Errorf(webrag.EUNREACHABLE, "fetch %s: HTTP %d", url, resp.StatusCode)
	}

	if ct := resp.Header.Get("Content-Type"); !isHTMLContentType(ct) {
		return "", webrag.Errorf(webrag.EUNSUPPORTED, "fetch %s: unsupported content type %q", url, ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", webrag.Errorf(webrag.EUNREACHABLE, "fetch %s: reading body: %v", url, err)
	}

	return string(body), nil
}

// isHTMLContentType reports whether the content type is processable.
// An absent header is treated as HTML, matching common server behavior.
func isHTMLContentType(contentType string) bool {
	if contentType == "" {
		return true
	}
	ct := strings.ToLower(contentType)
	for _, valid := range htmlContentTypes {
		if strings.Contains(ct, valid) {
			return true
		}
	}
	return false
}
