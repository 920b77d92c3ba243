package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darna-inc/darna/internal/shared/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}

func TestInit_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	prev := Logger
	t.Cleanup(func() { Logger = prev })

	require.NoError(t, Init(&config.LoggerConfig{Level: "info", Format: "json", OutputPath: path}, false))

	NewLogger().With("component", "test").Infow("sweep finished", "expired_count", 3)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"sweep finished"`)
	assert.Contains(t, string(data), `"expired_count":3`)
	assert.NotContains(t, string(data), `"source"`)
}
