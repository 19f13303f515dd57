package main_test

import (
	"bytes"
	"context"
	"testing"

	webrag "github.com/GH05TCREW/WebRAG"
	main "github.com/GH05TCREW/WebRAG/cmd/webrag"
	"github.com/GH05TCREW/WebRAG/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigGetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints all options", func(t *testing.T) {
		t.Parallel()

		configs := &mock.ConfigService{
			LoadFn: func(_ context.Context) (webrag.Config, error) {
				cfg := webrag.DefaultConfig()
				cfg.ChunkSize = 1500
				return cfg, nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Configs: configs,
		}

		cmd := &main.ConfigGetCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "embedding_model")
		assert.Contains(t, stdout.String(), "text-embedding-3-large")
		assert.Contains(t, stdout.String(), "chunk_size")
		assert.Contains(t, stdout.String(), "1500")
		assert.Contains(t, stdout.String(), "top_k_results")
	})

	t.Run("returns error when load fails", func(t *testing.T) {
		t.Parallel()

		configs := &mock.ConfigService{
			LoadFn: func(_ context.Context) (webrag.Config, error) {
				return webrag.Config{}, webrag.Errorf(webrag.EINTERNAL, "database error")
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Configs: configs,
		}

		cmd := &main.ConfigGetCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestConfigSetCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("sets option by key", func(t *testing.T) {
		t.Parallel()

		var setKey, setValue string
		configs := &mock.ConfigService{
			SetFn: func(_ context.Context, key, value string) (webrag.Config, error) {
				setKey, setValue = key, value
				return webrag.DefaultConfig(), nil
			},
		}

		stdout := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Configs: configs,
		}

		cmd := &main.ConfigSetCmd{Key: "chunk_size", Value: "1500"}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "chunk_size", setKey)
		assert.Equal(t, "1500", setValue)
		assert.Contains(t, stdout.String(), "chunk_size = 1500")
	})

	t.Run("returns error for unknown key", func(t *testing.T) {
		t.Parallel()

		configs := &mock.ConfigService{
			SetFn: func(_ context.Context, key, _ string) (webrag.Config, error) {
				return webrag.Config{}, webrag.Errorf(webrag.EINVALID, "unknown option %q", key)
			},
		}

		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Configs: configs,
		}

		cmd := &main.ConfigSetCmd{Key: "bogus", Value: "1"}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
