package main

import (
	"fmt"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Run executes the "config get" command.
func (c *ConfigGetCmd) Run(deps *Dependencies) error {
	cfg, err := deps.Configs.Load(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "embedding_model      %s\n", cfg.EmbeddingModel)
	fmt.Fprintf(deps.Stdout, "chat_model           %s\n", cfg.ChatModel)
	fmt.Fprintf(deps.Stdout, "temperature          %g\n", cfg.Temperature)
	fmt.Fprintf(deps.Stdout, "max_pages_per_domain %d\n", cfg.MaxPagesPerDomain)
	fmt.Fprintf(deps.Stdout, "max_crawl_depth      %d\n", cfg.MaxCrawlDepth)
	fmt.Fprintf(deps.Stdout, "chunk_size           %d\n", cfg.ChunkSize)
	fmt.Fprintf(deps.Stdout, "chunk_overlap        %d\n", cfg.ChunkOverlap)
	fmt.Fprintf(deps.Stdout, "top_k_results        %d\n", cfg.TopKResults)
	return nil
}

// Run executes the "config set" command.
func (c *ConfigSetCmd) Run(deps *Dependencies) error {
	if _, err := deps.Configs.Set(deps.Ctx, c.Key, c.Value); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", webrag.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%s = %s\n", c.Key, c.Value)
	return nil
}
