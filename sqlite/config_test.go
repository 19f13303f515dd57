package sqlite_test

import (
	"context"
	"testing"

	webrag "github.com/GH05TCREW/WebRAG"
	"github.com/GH05TCREW/WebRAG/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigService_Load_returns_defaults(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewConfigService(MustOpenDB(t))

	cfg, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, webrag.DefaultConfig(), cfg)
}

func TestConfigService_Save_round_trip(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewConfigService(MustOpenDB(t))
	ctx := context.Background()

	cfg := webrag.DefaultConfig()
	cfg.ChunkSize = 500
	cfg.ChunkOverlap = 100
	cfg.ChatModel = "gpt-4o"

	require.NoError(t, svc.Save(ctx, cfg))

	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigService_Set_updates_single_option(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewConfigService(MustOpenDB(t))
	ctx := context.Background()

	cfg, err := svc.Set(ctx, "top_k_results", "8")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.TopKResults)

	// Everything else keeps its default.
	assert.Equal(t, webrag.DefaultConfig().ChunkSize, cfg.ChunkSize)

	// The change survives a reload.
	loaded, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.TopKResults)
}

func TestConfigService_Set_rejects_unknown_key(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewConfigService(MustOpenDB(t))

	_, err := svc.Set(context.Background(), "no_such_option", "1")
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))
}

func TestConfigService_Set_rejects_bad_values(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewConfigService(MustOpenDB(t))
	ctx := context.Background()

	_, err := svc.Set(ctx, "chunk_size", "not-a-number")
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))

	// Overlap must stay below chunk size.
	_, err = svc.Set(ctx, "chunk_overlap", "5000")
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))

	_, err = svc.Set(ctx, "temperature", "3.5")
	assert.Equal(t, webrag.EINVALID, webrag.ErrorCode(err))
}
