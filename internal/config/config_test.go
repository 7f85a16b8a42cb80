package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "catalog", cfg.CatalogDir)
	assert.Equal(t, "cli", cfg.Output)
	assert.Equal(t, "KRW", cfg.Currency)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"catalog_dir": "/srv/catalogs",
		"output": "json"
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/catalogs", cfg.CatalogDir)
	assert.Equal(t, "json", cfg.Output)
	// untouched keys keep their defaults
	assert.Equal(t, "KRW", cfg.Currency)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("SUBWISE_CURRENCY", "USD")
	t.Setenv("SUBWISE_LOG_LEVEL", "debug")

	cfg := LoadEnv()
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestSetAndGet(t *testing.T) {
	old := Get()
	defer Set(old)

	cfg := Default()
	cfg.Output = "json"
	Set(cfg)
	assert.Equal(t, "json", Get().Output)

	Set(nil)
	assert.Equal(t, cfg, Get())
}
