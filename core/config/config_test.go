package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "steam", cfg.Server.Provider)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Fetch.Concurrency)
	assert.Equal(t, 1000, cfg.Fetch.MinDelayMs)
	assert.Equal(t, 15, cfg.Fetch.MaxRetries)
	assert.Equal(t, "EUR", cfg.Catalog.ReferenceCurrency)
	assert.False(t, cfg.Storage.Enabled)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("FETCH_MAX_RETRIES", "5")
	t.Setenv("CATALOG_REFERENCE_CURRENCY", "USD")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9191", cfg.Server.Port)
	assert.Equal(t, 5, cfg.Fetch.MaxRetries)
	assert.Equal(t, "USD", cfg.Catalog.ReferenceCurrency)
}
