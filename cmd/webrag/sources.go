package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the sources command.
func (c *SourcesCmd) Run(deps *Dependencies) error {
	sources, err := deps.Index.Sources(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}
	if len(sources) == 0 {
		fmt.Fprintln(deps.Stdout, "No sources indexed. Use 'webrag add' to index content.")
		return nil
	}

	if c.ByDomain {
		for _, sum := range webrag.SummarizeDomains(sources) {
			fmt.Fprintf(deps.Stdout, "%s (%d sources, %d chunks, last indexed %s)\n",
				sum.Domain, len(sum.Sources), sum.TotalChunks, sum.LastIndexed.Format("2006-01-02 15:04"))
			for _, src := range sum.Sources {
				fmt.Fprintf(deps.Stdout, "  %s\n", src.URL)
			}
		}
	} else {
		for _, src := range sources {
			title := src.Title
			if title == "" {
				title = "(untitled)"
			}
			fmt.Fprintf(deps.Stdout, "%s\n  %s (%d chunks, indexed %s)\n",
				title, src.URL, src.ChunkCount, src.IndexedAt.Format("2006-01-02 15:04"))
		}
	}

	count, err := deps.Index.Count(deps.Ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "\n%d sources, %d chunks total\n", len(sources), count)
	return nil
}
