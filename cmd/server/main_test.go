package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	})

	t.Run("file values are loaded without overriding the environment", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("TASKS_DOTENV_A=from-file\nTASKS_DOTENV_B=from-file\n"), 0o600))

		t.Setenv("TASKS_DOTENV_A", "from-env")
		t.Setenv("TASKS_DOTENV_B", "")
		require.NoError(t, os.Unsetenv("TASKS_DOTENV_B"))

		require.NoError(t, loadDotEnv(path))
		assert.Equal(t, "from-env", os.Getenv("TASKS_DOTENV_A"))
		assert.Equal(t, "from-file", os.Getenv("TASKS_DOTENV_B"))
	})
}

func TestHandleMigrations_UnknownCommand(t *testing.T) {
	t.Parallel()

	err := handleMigrations(context.Background(), nil, "sideways", slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown migration command")
}
