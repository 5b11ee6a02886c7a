package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Global19/powerquery-parser/config"
)

func TestDefaultIsZeroValue(t *testing.T) {
	got := config.Default()
	assert.Equal(t, "", got.TraceVerbosity)
	assert.False(t, got.NormalizeRenderSpacing)
	assert.False(t, got.ParenthesizeDiagnostics)
}

func TestLoadParsesJSONC(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.jsonc")
	content := `{
		// trace everything while debugging
		"traceVerbosity": "debug",
		"normalizeRenderSpacing": true,
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", got.TraceVerbosity)
	assert.True(t, got.NormalizeRenderSpacing)
	assert.False(t, got.ParenthesizeDiagnostics)
}

func TestLoadMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.jsonc"))
	assert.Error(t, err)
}

func TestLoadDefaultFallsBackWhenAbsent(t *testing.T) {
	got, err := config.LoadDefault(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), got)
}

func TestLoadDefaultReadsPresentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`{"traceVerbosity": "warn"}`), 0o644))

	got, err := config.LoadDefault(dir)
	require.NoError(t, err)
	assert.Equal(t, "warn", got.TraceVerbosity)
}
