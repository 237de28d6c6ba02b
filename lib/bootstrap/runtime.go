// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package bootstrap

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/bureau-foundation/commonfollowers/lib/clock"
	"github.com/bureau-foundation/commonfollowers/lib/config"
	"github.com/bureau-foundation/commonfollowers/lib/followers"
	"github.com/bureau-foundation/commonfollowers/lib/github"
	"github.com/bureau-foundation/commonfollowers/lib/httpcache"
	"github.com/bureau-foundation/commonfollowers/lib/version"
)

// Options carries process-level dependencies that do not belong in
// the configuration file.
type Options struct {
	// Binary names the program in the User-Agent header.
	Binary string

	// UserAgent overrides the User-Agent derived from Binary.
	UserAgent string

	// Clock defaults to clock.Real().
	Clock clock.Clock

	// Logger defaults to slog.Default().
	Logger *slog.Logger

	// Transport replaces the HTTP transport, for tests.
	Transport http.RoundTripper
}

// Runtime is the assembled set of shared components.
type Runtime struct {
	Client  *github.Client
	Fetcher followers.Fetcher

	closeStore func() error
}

// Start builds a Runtime from cfg.
func Start(cfg *config.Config, options Options) (*Runtime, error) {
	clk := options.Clock
	if clk == nil {
		clk = clock.Real()
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	userAgent := options.UserAgent
	if userAgent == "" && options.Binary != "" {
		userAgent = version.UserAgent(options.Binary)
	}

	store, closeStore, err := httpcache.Open(cfg.Cache, clk, logger)
	if err != nil {
		return nil, fmt.Errorf("opening etag cache: %w", err)
	}

	client, err := github.NewClient(github.Config{
		BaseURL:   cfg.GitHub.BaseURL,
		Token:     cfg.GitHub.Token,
		UserAgent: userAgent,
		HTTPClient: &http.Client{
			Timeout:   cfg.GitHub.Timeout,
			Transport: options.Transport,
		},
		Clock:     clk,
		Logger:    logger,
		ETagStore: store,
	})
	if err != nil {
		closeStore()
		return nil, err
	}

	logger.Debug("runtime started",
		"base_url", cfg.GitHub.BaseURL,
		"authenticated", cfg.GitHub.Token != "",
		"cache", string(cfg.Cache.Backend),
	)

	return &Runtime{
		Client:     client,
		Fetcher:    followers.NewGitHubFetcher(client, cfg.GitHub.PerPage, logger),
		closeStore: closeStore,
	}, nil
}

// Close releases the ETag store. A file-backed store is written here.
func (runtime *Runtime) Close() error {
	return runtime.closeStore()
}
