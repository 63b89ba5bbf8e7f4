package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:5000", cfg.ServerURL)
	assert.Zero(t, cfg.TimeoutSeconds)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	original := DefaultConfig()
	original.ServerURL = "https://learn.example.com"
	original.TimeoutSeconds = 30
	require.NoError(t, original.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, original.ServerURL, loaded.ServerURL)
	assert.Equal(t, original.TimeoutSeconds, loaded.TimeoutSeconds)
	assert.Equal(t, original.CookiePath, loaded.CookiePath)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().ServerURL, cfg.ServerURL)
}

func TestLoadEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, DefaultConfig().Save(path))

	t.Setenv("LEARNSPHERE_SERVER_URL", "https://override.example.com")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://override.example.com", loaded.ServerURL)
}

func TestValidateRejectsBadURL(t *testing.T) {
	for _, bad := range []string{"", "localhost:5000", "ftp://host", "://nope"} {
		cfg := DefaultConfig()
		cfg.ServerURL = bad
		assert.Error(t, cfg.Validate(), "server_url %q should be rejected", bad)
	}
}

func TestValidateRejectsNegativeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TimeoutSeconds = -1
	assert.Error(t, cfg.Validate())
}
