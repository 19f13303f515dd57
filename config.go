package webrag

import "context"

// Config holds the recognized tunable options. Each is independently
// settable and persisted across restarts by a ConfigService.
type Config struct {
	EmbeddingModel    string  `json:"embedding_model"`
	ChatModel         string  `json:"chat_model"`
	Temperature       float64 `json:"temperature"`
	MaxPagesPerDomain int     `json:"max_pages_per_domain"`
	MaxCrawlDepth     int     `json:"max_crawl_depth"`
	ChunkSize         int     `json:"chunk_size"`
	ChunkOverlap      int     `json:"chunk_overlap"`
	TopKResults       int     `json:"top_k_results"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		EmbeddingModel:    "text-embedding-3-large",
		ChatModel:         "gpt-4o-mini",
		Temperature:       0.7,
		MaxPagesPerDomain: 50,
		MaxCrawlDepth:     2,
		ChunkSize:         1000,
		ChunkOverlap:      200,
		TopKResults:       5,
	}
}

// Validate returns an error if any option is out of range.
func (c *Config) Validate() error {
	if c.MaxPagesPerDomain < 1 {
		return Errorf(EINVALID, "max_pages_per_domain must be at least 1")
	}
	if c.MaxCrawlDepth < 1 {
		return Errorf(EINVALID, "max_crawl_depth must be at least 1")
	}
	if c.ChunkSize < 1 {
		return Errorf(EINVALID, "chunk_size must be at least 1")
	}
	if c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return Errorf(EINVALID, "chunk_overlap must be in [0, chunk_size)")
	}
	if c.TopKResults < 1 {
		return Errorf(EINVALID, "top_k_results must be at least 1")
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return Errorf(EINVALID, "temperature must be in [0, 2]")
	}
	return nil
}

// ConfigService loads and persists configuration.
type ConfigService interface {
	// Load returns the stored configuration merged over defaults, so
	// options never saved still have values.
	Load(ctx context.Context) (Config, error)

	// Save persists the full configuration.
	Save(ctx context.Context, cfg Config) error

	// Set updates a single option by its key (e.g. "chunk_size") and
	// persists the result. Unknown keys return EINVALID.
	Set(ctx context.Context, key, value string) (Config, error)
}
