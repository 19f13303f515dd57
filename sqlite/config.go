package sqlite

import (
	"context"
	"strconv"

	webrag "github.com/GH05TCREW/WebRAG"
)

// Compile-time interface verification.
var _ webrag.ConfigService = (*ConfigService)(nil)

// ConfigService persists configuration options in the settings table,
// one row per option. Options never saved fall back to defaults on Load.
type ConfigService struct {
	db *DB
}

// NewConfigService creates a new ConfigService.
func NewConfigService(db *DB) *ConfigService {
	return &ConfigService{db: db}
}

// Load returns the stored configuration merged over defaults.
func (s *ConfigService) Load(ctx context.Context) (webrag.Config, error) {
	cfg := webrag.DefaultConfig()

	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM settings`)
	if err != nil {
		return cfg, err
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return cfg, err
		}
		// Unknown keys from older versions are ignored on load.
		_ = applyOption(&cfg, key, value)
	}
	return cfg, rows.Err()
}

// Save persists the full configuration.
func (s *ConfigService) Save(ctx context.Context, cfg webrag.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for key, value := range map[string]string{
		"embedding_model":      cfg.EmbeddingModel,
		"chat_model":           cfg.ChatModel,
		"temperature":          strconv.FormatFloat(cfg.Temperature, 'g', -1, 64),
		"max_pages_per_domain": strconv.Itoa(cfg.MaxPagesPerDomain),
		"max_crawl_depth":      strconv.Itoa(cfg.MaxCrawlDepth),
		"chunk_size":           strconv.Itoa(cfg.ChunkSize),
		"chunk_overlap":        strconv.Itoa(cfg.ChunkOverlap),
		"top_k_results":        strconv.Itoa(cfg.TopKResults),
	} {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, key, value)
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Set updates a single option by key and persists the result.
// Unknown keys and unparseable values return EINVALID.
func (s *ConfigService) Set(ctx context.Context, key, value string) (webrag.Config, error) {
	cfg, err := s.Load(ctx)
	if err != nil {
		return cfg, err
	}
	if err := applyOption(&cfg, key, value); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, s.Save(ctx, cfg)
}

// applyOption sets one configuration field from its string form.
func applyOption(cfg *webrag.Config, key, value string) error {
	switch key {
	case "embedding_model":
		cfg.EmbeddingModel = value
	case "chat_model":
		cfg.ChatModel = value
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return webrag.Errorf(webrag.EINVALID, "temperature must be a number, got %q", value)
		}
		cfg.Temperature = f
	case "max_pages_per_domain":
		return applyIntOption(&cfg.MaxPagesPerDomain, key, value)
	case "max_crawl_depth":
		return applyIntOption(&cfg.MaxCrawlDepth, key, value)
	case "chunk_size":
		return applyIntOption(&cfg.ChunkSize, key, value)
	case "chunk_overlap":
		return applyIntOption(&cfg.ChunkOverlap, key, value)
	case "top_k_results":
		return applyIntOption(&cfg.TopKResults, key, value)
	default:
		return webrag.Errorf(webrag.EINVALID, "unknown option %q", key)
	}
	return nil
}

func applyIntOption(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return webrag.Errorf(webrag.EINVALID, "%s must be an integer, got %q", key, value)
	}
	*dst = n
	return nil
}
