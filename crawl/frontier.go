package crawl

import (
	"sync"

	"github.com/GH05TCREW/WebRAG/bloom"
)

// Frontier is an in-memory breadth-first crawl queue with Bloom filter
// deduplication. URLs are popped in discovery-insertion order, which is
// also the truncation order when a crawl hits its page cap.
// It is safe for concurrent use by multiple goroutines.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.Filter
	queue []queuedURL
}

type queuedURL struct {
	url   string
	depth int
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate for deduplication.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{
		seen: bloom.NewFilter(n, fpRate),
	}
}

// Push enqueues a normalized URL at the given crawl depth.
// Returns false if the URL has already been seen.
func (f *Frontier) Push(url string, depth int) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.seen.Test(url) {
		return false
	}
	f.seen.Add(url)

	f.queue = append(f.queue, queuedURL{url: url, depth: depth})
	return true
}

// Pop returns the next URL and its depth in insertion order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, int, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", 0, false
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next.url, next.depth, true
}

// Len returns the number of URLs waiting in the queue.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been queued or processed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Test(url)
}
