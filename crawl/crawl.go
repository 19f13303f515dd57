// Package crawl provides bounded breadth-first site crawling and the
// ingestion pipeline that turns crawled pages into indexed chunks.
package crawl

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	webrag "github.com/GH05TCREW/WebRAG"
)

// Frontier sizing for crawl deduplication.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Options bound a crawl.
type Options struct {
	// MaxPages is the hard cap on pages processed per crawl. URLs beyond
	// the cap are dropped in discovery-insertion order, best effort.
	MaxPages int

	// MaxDepth limits link following. Depth 1 crawls the seed URLs only;
	// each followed link adds one level.
	MaxDepth int
}

// Failure records a URL that could not be processed and why.
type Failure struct {
	URL string
	Err error
}

// Result holds the outcome of a crawl.
type Result struct {
	Pages  []*webrag.Page
	Failed []Failure
}

// ProgressType indicates the kind of progress event.
type ProgressType int

const (
	// ProgressFetching fires before a URL is fetched.
	ProgressFetching ProgressType = iota
	// ProgressFetched fires after a page is fetched and extracted.
	ProgressFetched
	// ProgressEmbedded fires after a source's chunks are embedded and
	// indexed.
	ProgressEmbedded
	// ProgressFailed fires when a URL cannot be processed.
	ProgressFailed
	// ProgressFinished fires once at the end of an operation.
	ProgressFinished
)

// ProgressEvent reports progress during crawling and ingestion.
type ProgressEvent struct {
	Type      ProgressType
	URL       string
	Depth     int
	Completed int
	Total     int
	Error     error
}

// ProgressFunc is a synchronous, observational callback for progress
// events. It must not block; errors it observes are already recorded.
type ProgressFunc func(event ProgressEvent)

// Crawler walks a site breadth-first from seed URLs, fetching pages and
// extracting their content and internal links. Crawling is sequential:
// the per-domain rate limit dominates throughput, so worker concurrency
// would buy nothing but frontier contention.
type Crawler struct {
	Fetcher   webrag.Fetcher
	Extractor webrag.Extractor

	// Cache, when set, serves recently scraped pages without re-fetching.
	// Cached pages do not contribute links to the frontier.
	Cache webrag.PageCache

	// Limiter, when set, enforces per-domain politeness.
	Limiter *DomainLimiter

	// RetryDelays overrides the fetch retry backoff. Defaults to
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// Crawl processes seed URLs breadth-first up to opts.MaxPages and
// opts.MaxDepth. Individual page failures are recorded in the result,
// not returned as errors; the error return is reserved for invalid
// options and context cancellation.
func (c *Crawler) Crawl(ctx context.Context, seeds []string, opts Options, progress ProgressFunc) (*Result, error) {
	if opts.MaxPages < 1 {
		return nil, webrag.Errorf(webrag.EINVALID, "max pages must be at least 1")
	}
	if opts.MaxDepth < 1 {
		return nil, webrag.Errorf(webrag.EINVALID, "max depth must be at least 1")
	}

	frontier := NewFrontier(frontierExpectedURLs, frontierFalsePositiveRate)
	for _, seed := range seeds {
		frontier.Push(webrag.NormalizeURL(seed), 1)
	}

	var result Result
	processed := 0

	for processed < opts.MaxPages {
		url, depth, ok := frontier.Pop()
		if !ok {
			break
		}
		if err := ctx.Err(); err != nil {
			return &result, err
		}
		processed++

		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFetching,
				URL:       url,
				Depth:     depth,
				Completed: processed - 1,
				Total:     crawlTotal(processed, frontier.Len(), opts.MaxPages),
			})
		}

		page, links, err := c.processURL(ctx, url, depth, opts)
		if err != nil {
			result.Failed = append(result.Failed, Failure{URL: url, Err: err})
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: url, Depth: depth, Error: err})
			}
			continue
		}

		for _, link := range links {
			frontier.Push(link, depth+1)
		}

		result.Pages = append(result.Pages, page)
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressFetched,
				URL:       url,
				Depth:     depth,
				Completed: processed,
				Total:     crawlTotal(processed, frontier.Len(), opts.MaxPages),
			})
		}
	}

	return &result, nil
}

// processURL produces the page for one URL, serving it from the cache
// when fresh and otherwise fetching, extracting, and caching it. Links
// are only discovered on the fetch path.
func (c *Crawler) processURL(ctx context.Context, url string, depth int, opts Options) (*webrag.Page, []string, error) {
	if c.Cache != nil {
		if page, err := c.Cache.Get(ctx, url); err == nil {
			return page, nil, nil
		}
	}

	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx, webrag.Domain(url)); err != nil {
			return nil, nil, err
		}
	}

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, url, c.Fetcher.Fetch, nil, delays)
	if err != nil {
		return nil, nil, err
	}

	extracted, err := c.Extractor.Extract(html, url)
	if err != nil {
		return nil, nil, err
	}
	if extracted.Text == "" {
		return nil, nil, webrag.Errorf(webrag.EEXTRACT, "no content extracted from %s", url)
	}

	page := &webrag.Page{
		URL:         url,
		Title:       extracted.Title,
		Text:        extracted.Text,
		Metadata:    extracted.Metadata,
		FetchedAt:   time.Now().UTC(),
		ContentHash: ContentHash(extracted.Text),
	}

	if c.Cache != nil {
		// Cache failures only cost a future re-fetch.
		_ = c.Cache.Put(ctx, page)
	}

	// Links one past the depth limit would never be crawled.
	if depth >= opts.MaxDepth {
		return page, nil, nil
	}
	return page, extracted.Links, nil
}

// crawlTotal estimates the number of pages a crawl will process, for
// progress reporting only.
func crawlTotal(processed, queued, maxPages int) int {
	total := processed + queued
	if total > maxPages {
		return maxPages
	}
	return total
}

// ContentHash computes a stable hash of extracted text using xxhash.
func ContentHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}
