package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, DefaultFetchTimeoutSecs, cfg.FetchTimeoutSecs)
	assert.Equal(t, DefaultMaxContentLength, cfg.MaxContentLength)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.False(t, cfg.ServerMode)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "base_url: https://docs.example.com/\nfetch_timeout_secs: 3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.com/", cfg.BaseURL)
	assert.Equal(t, 3, cfg.FetchTimeoutSecs)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout())
	assert.Equal(t, DefaultMaxContentLength, cfg.MaxContentLength)
	assert.Equal(t, DefaultPort, cfg.Port)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("base_url: [broken"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ZKVERIFY_DOCS_URL", "https://mirror.example.org/")
	t.Setenv("FETCH_TIMEOUT_SECS", "7")
	t.Setenv("MAX_CONTENT_LENGTH", "1234")
	t.Setenv("SERVER_MODE", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	cfg.FromEnv()

	assert.Equal(t, "https://mirror.example.org/", cfg.BaseURL)
	assert.Equal(t, 7, cfg.FetchTimeoutSecs)
	assert.Equal(t, 1234, cfg.MaxContentLength)
	assert.True(t, cfg.ServerMode)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFromEnv_IgnoresUnparseableNumbers(t *testing.T) {
	t.Setenv("FETCH_TIMEOUT_SECS", "soon")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	cfg.FromEnv()

	assert.Equal(t, DefaultFetchTimeoutSecs, cfg.FetchTimeoutSecs)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"relative base URL", func(c *Config) { c.BaseURL = "docs/zkverify" }, true},
		{"zero timeout", func(c *Config) { c.FetchTimeoutSecs = 0 }, true},
		{"negative max length", func(c *Config) { c.MaxContentLength = -1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
