package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  backend: bolt\nui:\n  locale: en\n  theme: dark\n"), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.Storage.Backend)
	assert.Equal(t, "en", cfg.UI.Locale)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, 3, cfg.UI.FeedbackSeconds)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"backend", func(c *Config) { c.Storage.Backend = "redis" }},
		{"locale", func(c *Config) { c.UI.Locale = "xx" }},
		{"theme", func(c *Config) { c.UI.Theme = "sepia" }},
		{"feedback", func(c *Config) { c.UI.FeedbackSeconds = 0 }},
		{"date format", func(c *Config) { c.UI.DateFormat = "" }},
		{"log level", func(c *Config) { c.Log.Level = "trace" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadFileRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  feedback_seconds: -1\n"), 0o600))

	_, err := LoadFile(path)
	assert.ErrorContains(t, err, "feedback_seconds")
}

func TestDefaultPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := DefaultConfig()
	p, err := cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "tasks.json", filepath.Base(p))
	assert.Equal(t, "tasklist", filepath.Base(filepath.Dir(p)))

	cfg.Storage.Backend = "bolt"
	p, err = cfg.StoragePath()
	require.NoError(t, err)
	assert.Equal(t, "tasks.db", filepath.Base(p))

	l, err := cfg.LogPath()
	require.NoError(t, err)
	assert.Equal(t, "tasklist.log", filepath.Base(l))
}
