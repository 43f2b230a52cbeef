// Package config holds server settings loaded from an optional YAML file
// with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment
// specifies a value.
const (
	DefaultBaseURL          = "https://docs.zkverify.io/"
	DefaultFetchTimeoutSecs = 10
	DefaultMaxContentLength = 4000
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
)

// Config is the root server configuration.
type Config struct {
	// BaseURL is the documentation origin all remote paths resolve against.
	BaseURL string `yaml:"base_url"`
	// FetchTimeoutSecs bounds every live fetch attempt.
	FetchTimeoutSecs int `yaml:"fetch_timeout_secs"`
	// MaxContentLength caps extracted text, measured in characters.
	MaxContentLength int `yaml:"max_content_length"`
	// Port is the HTTP listen port for health/MCP endpoints.
	Port string `yaml:"port"`
	// ServerMode selects HTTP transport instead of stdio.
	ServerMode bool `yaml:"server_mode"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Load reads a config from path. A missing file returns defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	applyDefaults(cfg)
	return cfg, nil
}

// FromEnv applies environment variable overrides on top of cfg.
func (c *Config) FromEnv() {
	if v := os.Getenv("ZKVERIFY_DOCS_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("FETCH_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.FetchTimeoutSecs = n
		}
	}
	if v := os.Getenv("MAX_CONTENT_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxContentLength = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("SERVER_MODE"); v != "" {
		c.ServerMode = v == "true" || v == "1"
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url %q is not an absolute URL", c.BaseURL)
	}
	if c.FetchTimeoutSecs <= 0 {
		return fmt.Errorf("fetch_timeout_secs must be positive, got %d", c.FetchTimeoutSecs)
	}
	if c.MaxContentLength <= 0 {
		return fmt.Errorf("max_content_length must be positive, got %d", c.MaxContentLength)
	}
	return nil
}

// FetchTimeout returns the fetch timeout as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.FetchTimeoutSecs) * time.Second
}

func defaultConfig() *Config {
	return &Config{
		BaseURL:          DefaultBaseURL,
		FetchTimeoutSecs: DefaultFetchTimeoutSecs,
		MaxContentLength: DefaultMaxContentLength,
		Port:             DefaultPort,
		LogLevel:         DefaultLogLevel,
	}
}

func applyDefaults(cfg *Config) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.FetchTimeoutSecs == 0 {
		cfg.FetchTimeoutSecs = DefaultFetchTimeoutSecs
	}
	if cfg.MaxContentLength == 0 {
		cfg.MaxContentLength = DefaultMaxContentLength
	}
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}
