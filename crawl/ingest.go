package crawl

import (
	"context"

	webrag "github.com/GH05TCREW/WebRAG"
)

// IngestResult reports the outcome of an ingestion run. Ingestion
// succeeds partially: a failed URL is recorded and skipped without
// aborting the rest of the batch.
type IngestResult struct {
	PagesCrawled  int
	PagesFailed   int
	ChunksAdded   int
	ChunksSkipped int
	Failures      []Failure
}

// Ingestor runs the full acquisition pipeline: validate seed URLs,
// crawl, split extracted text into chunks, embed the chunks that are
// not yet stored, and add them to the vector index.
type Ingestor struct {
	Validator webrag.URLValidator
	Crawler   *Crawler
	Splitter  webrag.Splitter
	Embedder  webrag.Embedder
	Index     webrag.VectorIndex
}

// Ingest acquires and indexes content starting from the seed URLs.
// Embedding provider errors abort the run: unlike per-URL fetch or
// extraction failures, they would fail for every remaining source too.
func (in *Ingestor) Ingest(ctx context.Context, seeds []string, opts Options, progress ProgressFunc) (*IngestResult, error) {
	if len(seeds) == 0 {
		return nil, webrag.Errorf(webrag.EINVALID, "at least one URL required")
	}

	var result IngestResult

	valid := make([]string, 0, len(seeds))
	for _, seed := range seeds {
		canonical, err := in.Validator.Validate(ctx, seed)
		if err != nil {
			result.PagesFailed++
			result.Failures = append(result.Failures, Failure{URL: seed, Err: err})
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: seed, Error: err})
			}
			continue
		}
		valid = append(valid, canonical)
	}
	if len(valid) == 0 {
		return &result, nil
	}

	crawled, err := in.Crawler.Crawl(ctx, valid, opts, progress)
	if err != nil {
		return &result, err
	}
	result.PagesCrawled = len(crawled.Pages)
	result.PagesFailed += len(crawled.Failed)
	result.Failures = append(result.Failures, crawled.Failed...)

	for i, page := range crawled.Pages {
		added, skipped, err := in.indexPage(ctx, page)
		if err != nil {
			if webrag.ErrorCode(err) == webrag.EUNAUTHORIZED {
				return &result, err
			}
			result.PagesFailed++
			result.Failures = append(result.Failures, Failure{URL: page.URL, Err: err})
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, URL: page.URL, Error: err})
			}
			continue
		}
		result.ChunksAdded += added
		result.ChunksSkipped += skipped
		if progress != nil {
			progress(ProgressEvent{
				Type:      ProgressEmbedded,
				URL:       page.URL,
				Completed: i + 1,
				Total:     len(crawled.Pages),
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: result.PagesCrawled,
			Total:     result.PagesCrawled,
		})
	}

	return &result, nil
}

// indexPage splits one page into chunks, embeds the ones the index does
// not hold yet, and adds them.
func (in *Ingestor) indexPage(ctx context.Context, page *webrag.Page) (added, skipped int, err error) {
	chunks := in.Splitter.Split(page.Text)
	if len(chunks) == 0 {
		return 0, 0, webrag.Errorf(webrag.EEXTRACT, "no chunks produced for %s", page.URL)
	}

	missing, err := in.Index.MissingChunks(ctx, page.URL, len(chunks))
	if err != nil {
		return 0, 0, err
	}
	if len(missing) == 0 {
		return 0, len(chunks), nil
	}

	texts := make([]string, len(missing))
	for i, idx := range missing {
		texts[i] = chunks[idx]
	}

	embeddings, err := in.Embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, 0, err
	}

	res, err := in.Index.Add(ctx, webrag.IndexRequest{
		URL:         page.URL,
		Title:       page.Title,
		Domain:      webrag.Domain(page.URL),
		Chunks:      texts,
		Embeddings:  embeddings,
		Indices:     missing,
		Metadata:    page.Metadata,
		ContentHash: page.ContentHash,
		TotalChunks: len(chunks),
	})
	if err != nil {
		return 0, 0, err
	}

	return res.Added, res.Skipped + len(chunks) - len(missing), nil
}
