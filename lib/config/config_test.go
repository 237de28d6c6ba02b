// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "common-followers.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.GitHub.BaseURL != "https://api.github.com" {
		t.Errorf("expected base_url=https://api.github.com, got %s", cfg.GitHub.BaseURL)
	}
	if cfg.GitHub.PerPage != 100 {
		t.Errorf("expected per_page=100, got %d", cfg.GitHub.PerPage)
	}
	if cfg.Viewer.Debounce != time.Second {
		t.Errorf("expected debounce=1s, got %s", cfg.Viewer.Debounce)
	}
	if cfg.Cache.Backend != CacheMemory {
		t.Errorf("expected backend=memory, got %s", cfg.Cache.Backend)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_WithoutConfigUsesDefaults(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	t.Setenv(EnvToken, "ghp_fromenv")
	t.Setenv("HOME", "/home/tester")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GitHub.Token != "ghp_fromenv" {
		t.Errorf("token should fall back to GITHUB_TOKEN, got %q", cfg.GitHub.Token)
	}
	if cfg.Cache.Path != "/home/tester/.cache/common-followers/etags.cbor.zst" {
		t.Errorf("cache path not expanded: %q", cfg.Cache.Path)
	}
}

func TestLoad_FromEnvironmentVariable(t *testing.T) {
	path := writeConfig(t, `
github:
  per_page: 50
  timeout: 5s
viewer:
  debounce: 250ms
`)
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.GitHub.PerPage != 50 {
		t.Errorf("expected per_page=50, got %d", cfg.GitHub.PerPage)
	}
	if cfg.GitHub.Timeout != 5*time.Second {
		t.Errorf("expected timeout=5s, got %s", cfg.GitHub.Timeout)
	}
	if cfg.Viewer.Debounce != 250*time.Millisecond {
		t.Errorf("expected debounce=250ms, got %s", cfg.Viewer.Debounce)
	}
	// Omitted sections keep their defaults.
	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected listen=:8080, got %s", cfg.Server.Listen)
	}
}

func TestLoadFile_VariableExpansion(t *testing.T) {
	t.Setenv("CF_TEST_TOKEN", "ghp_expanded")
	t.Setenv("CF_TEST_REDIS", "")

	path := writeConfig(t, `
github:
  token: ${CF_TEST_TOKEN}
cache:
  backend: redis
  redis_address: ${CF_TEST_REDIS:-cache.internal:6380}
`)

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if cfg.GitHub.Token != "ghp_expanded" {
		t.Errorf("token = %q, want ghp_expanded", cfg.GitHub.Token)
	}
	if cfg.Cache.RedisAddress != "cache.internal:6380" {
		t.Errorf("redis_address = %q, want default from pattern", cfg.Cache.RedisAddress)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Malformed(t *testing.T) {
	path := writeConfig(t, "github: [not, a, map")
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"per_page too large", func(c *Config) { c.GitHub.PerPage = 101 }, "github.per_page"},
		{"per_page zero", func(c *Config) { c.GitHub.PerPage = 0 }, "github.per_page"},
		{"timeout", func(c *Config) { c.GitHub.Timeout = 0 }, "github.timeout"},
		{"backend", func(c *Config) { c.Cache.Backend = "memcached" }, "cache.backend"},
		{"file path", func(c *Config) { c.Cache.Backend = CacheFile; c.Cache.Path = "" }, "cache.path"},
		{"redis address", func(c *Config) { c.Cache.Backend = CacheRedis; c.Cache.RedisAddress = "" }, "cache.redis_address"},
		{"ttl", func(c *Config) { c.Cache.TTL = -time.Hour }, "cache.ttl"},
		{"debounce", func(c *Config) { c.Viewer.Debounce = -time.Second }, "viewer.debounce"},
		{"listen", func(c *Config) { c.Server.Listen = "" }, "server.listen"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg := Default()
			test.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("error %q should mention %q", err, test.wantErr)
			}
		})
	}
}

func TestValidate_ReportsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.GitHub.PerPage = 0
	cfg.Server.Listen = ""

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"github.per_page", "server.listen"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
}
