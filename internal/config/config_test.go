package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DCQL_CONFIG_YAML", "")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Production)
	assert.Equal(t, 1000, cfg.MaxDocuments)
}

func TestLoad_YAMLOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: trace\nmax_documents: 5\n"), 0o600))
	t.Setenv("DCQL_CONFIG_YAML", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.LogLevel)
	assert.Equal(t, 5, cfg.MaxDocuments)
}

func TestCheck_RejectsInvalidLogLevel(t *testing.T) {
	cfg := &Config{LogLevel: "verbose", MaxDocuments: 1}
	err := Check(cfg)
	assert.Error(t, err)
}

func TestCheck_RejectsNonPositiveMaxDocuments(t *testing.T) {
	cfg := &Config{LogLevel: "info", MaxDocuments: 0}
	err := Check(cfg)
	assert.Error(t, err)
}
