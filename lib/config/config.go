// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable Load reads.
const EnvConfigPath = "COMMONFOLLOWERS_CONFIG"

// EnvToken is consulted when github.token is empty after expansion.
const EnvToken = "GITHUB_TOKEN"

// CacheBackend selects where conditional-request state is kept.
type CacheBackend string

const (
	// CacheNone disables conditional requests.
	CacheNone CacheBackend = "none"
	// CacheMemory keeps ETags for the life of the process.
	CacheMemory CacheBackend = "memory"
	// CacheFile persists ETags to a compressed file between runs.
	CacheFile CacheBackend = "file"
	// CacheRedis shares ETags between service replicas.
	CacheRedis CacheBackend = "redis"
)

// Config is the master configuration.
type Config struct {
	GitHub GitHubConfig `yaml:"github"`
	Cache  CacheConfig  `yaml:"cache"`
	Viewer ViewerConfig `yaml:"viewer"`
	Server ServerConfig `yaml:"server"`
}

// GitHubConfig configures the API client.
type GitHubConfig struct {
	// BaseURL is the API root. Default: https://api.github.com
	BaseURL string `yaml:"base_url"`

	// Token is a personal access token. Empty means GITHUB_TOKEN, and
	// if that is empty too, anonymous access.
	Token string `yaml:"token"`

	// PerPage is the follower page size, 1..100. Default: 100
	PerPage int `yaml:"per_page"`

	// Timeout bounds each HTTP request. Default: 30s
	Timeout time.Duration `yaml:"timeout"`
}

// CacheConfig configures the ETag store.
type CacheConfig struct {
	// Backend is one of none, memory, file, redis. Default: memory
	Backend CacheBackend `yaml:"backend"`

	// Path is the cache file for the file backend.
	// Default: ${HOME}/.cache/common-followers/etags.cbor.zst
	Path string `yaml:"path"`

	// RedisAddress is host:port for the redis backend.
	// Default: localhost:6379
	RedisAddress string `yaml:"redis_address"`

	// TTL is how long a cached response stays eligible for
	// revalidation. Default: 24h
	TTL time.Duration `yaml:"ttl"`
}

// ViewerConfig configures the terminal UI.
type ViewerConfig struct {
	// Debounce is the quiet period after the last edit of the second
	// username before it is applied. Default: 1s
	Debounce time.Duration `yaml:"debounce"`
}

// ServerConfig configures the HTTP service.
type ServerConfig struct {
	// Listen is the service listen address. Default: :8080
	Listen string `yaml:"listen"`
}

// Default returns the configuration used as the base before a file is
// decoded over it.
func Default() *Config {
	return &Config{
		GitHub: GitHubConfig{
			BaseURL: "https://api.github.com",
			Token:   "",
			PerPage: 100,
			Timeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend:      CacheMemory,
			Path:         filepath.Join("${HOME}", ".cache", "common-followers", "etags.cbor.zst"),
			RedisAddress: "localhost:6379",
			TTL:          24 * time.Hour,
		},
		Viewer: ViewerConfig{
			Debounce: time.Second,
		},
		Server: ServerConfig{
			Listen: ":8080",
		},
	}
}

// Load loads the file named by COMMONFOLLOWERS_CONFIG, or returns the
// defaults (with variables expanded) when it is unset.
func Load() (*Config, error) {
	path := os.Getenv(EnvConfigPath)
	if path == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, cfg.Validate()
	}
	return LoadFile(path)
}

// LoadFile loads configuration from a specific file path. Fields the
// file omits keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	cfg.expandVariables()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns and
// applies the GITHUB_TOKEN fallback.
func (c *Config) expandVariables() {
	c.GitHub.Token = expandVars(c.GitHub.Token)
	if c.GitHub.Token == "" {
		c.GitHub.Token = os.Getenv(EnvToken)
	}
	c.Cache.Path = expandVars(c.Cache.Path)
	c.Cache.RedisAddress = expandVars(c.Cache.RedisAddress)
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if value := os.Getenv(parts[1]); value != "" {
			return value
		}
		return parts[2]
	})
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.GitHub.PerPage < 1 || c.GitHub.PerPage > 100 {
		errs = append(errs, fmt.Errorf("github.per_page must be between 1 and 100, got %d", c.GitHub.PerPage))
	}
	if c.GitHub.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("github.timeout must be positive, got %s", c.GitHub.Timeout))
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory:
	case CacheFile:
		if c.Cache.Path == "" {
			errs = append(errs, errors.New("cache.path is required for the file backend"))
		}
	case CacheRedis:
		if c.Cache.RedisAddress == "" {
			errs = append(errs, errors.New("cache.redis_address is required for the redis backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("cache.backend must be one of none, memory, file, redis, got %q", c.Cache.Backend))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, fmt.Errorf("cache.ttl must be positive, got %s", c.Cache.TTL))
	}

	if c.Viewer.Debounce < 0 {
		errs = append(errs, fmt.Errorf("viewer.debounce must not be negative, got %s", c.Viewer.Debounce))
	}
	if c.Server.Listen == "" {
		errs = append(errs, errors.New("server.listen is required"))
	}

	return errors.Join(errs...)
}
