package slog

import (
	"context"
	"log/slog"
	"time"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Ensure LoggingIndex implements webrag.VectorIndex.
var _ webrag.VectorIndex = (*LoggingIndex)(nil)

// LoggingIndex wraps a VectorIndex with logging on the write paths and
// on search.
type LoggingIndex struct {
	next   webrag.VectorIndex
	logger *slog.Logger
}

// NewLoggingIndex creates a new LoggingIndex.
func NewLoggingIndex(next webrag.VectorIndex, logger *slog.Logger) *LoggingIndex {
	return &LoggingIndex{next: next, logger: logger}
}

// Add delegates to the wrapped index and logs the outcome.
func (i *LoggingIndex) Add(ctx context.Context, req webrag.IndexRequest) (res *webrag.IndexResult, err error) {
	defer func(begin time.Time) {
		added, skipped := 0, 0
		if res != nil {
			added, skipped = res.Added, res.Skipped
		}
		i.logger.Info("index add",
			"url", req.URL,
			"added", added,
			"skipped", skipped,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Add(ctx, req)
}

// Search delegates to the wrapped index and logs the operation.
func (i *LoggingIndex) Search(ctx context.Context, embedding []float32, opts webrag.SearchOptions) (matches []webrag.Match, err error) {
	defer func(begin time.Time) {
		i.logger.Info("index search",
			"topK", opts.TopK,
			"domain", opts.Domain,
			"matches", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.Search(ctx, embedding, opts)
}

// MissingChunks delegates to the wrapped index.
func (i *LoggingIndex) MissingChunks(ctx context.Context, url string, total int) ([]int, error) {
	return i.next.MissingChunks(ctx, url, total)
}

// Sources delegates to the wrapped index.
func (i *LoggingIndex) Sources(ctx context.Context) ([]*webrag.IndexedSource, error) {
	return i.next.Sources(ctx)
}

// Count delegates to the wrapped index.
func (i *LoggingIndex) Count(ctx context.Context) (int, error) {
	return i.next.Count(ctx)
}

// DeleteSource delegates to the wrapped index and logs the deletion.
func (i *LoggingIndex) DeleteSource(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index delete source",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.DeleteSource(ctx, url)
}

// DeleteAll delegates to the wrapped index and logs the reset.
func (i *LoggingIndex) DeleteAll(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		i.logger.Info("index delete all",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return i.next.DeleteAll(ctx)
}
