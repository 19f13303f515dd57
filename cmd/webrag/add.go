package main

import (
	"fmt"
	"os"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/crawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	seeds := append([]string(nil), c.URLs...)
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.File, err)
			return err
		}
		seeds = append(seeds, webrag.ExtractURLs(string(data))...)
	}
	if len(seeds) == 0 {
		return webrag.Errorf(webrag.EINVALID, "at least one URL required (pass URLs or --file)")
	}

	opts := crawl.Options{
		MaxPages: deps.Config.MaxPagesPerDomain,
		MaxDepth: deps.Config.MaxCrawlDepth,
	}
	if c.MaxPages > 0 {
		opts.MaxPages = c.MaxPages
	}
	if c.MaxDepth > 0 {
		opts.MaxDepth = c.MaxDepth
	}

	progress := func(event crawl.ProgressEvent) {
		switch event.Type {
		case crawl.ProgressFetching:
			fmt.Fprintf(deps.Stdout, "  fetch %s (depth %d)\n", event.URL, event.Depth)
		case crawl.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.URL, webrag.ErrorMessage(event.Error))
		case crawl.ProgressEmbedded:
			fmt.Fprintf(deps.Stdout, "  indexed %s (%d/%d)\n", event.URL, event.Completed, event.Total)
		}
	}

	result, err := deps.Ingestor.Ingest(deps.Ctx, seeds, opts, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawled %d pages (%d failed), added %d chunks, skipped %d already indexed\n",
		result.PagesCrawled, result.PagesFailed, result.ChunksAdded, result.ChunksSkipped)
	return nil
}
