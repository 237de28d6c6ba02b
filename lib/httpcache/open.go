// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package httpcache

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/bureau-foundation/commonfollowers/lib/clock"
	"github.com/bureau-foundation/commonfollowers/lib/config"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// Open builds the ETag store selected by cfg. The returned close
// function flushes and releases the store and is never nil.
func Open(cfg config.CacheConfig, clk clock.Clock, logger *slog.Logger) (github.ETagStore, func() error, error) {
	options := Options{TTL: cfg.TTL, Clock: clk, Logger: logger}
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.CacheNone:
		return github.NoETagStore(), noop, nil
	case config.CacheMemory, "":
		return github.NewMemoryETagStore(), noop, nil
	case config.CacheFile:
		store, err := OpenFile(cfg.Path, options)
		if err != nil {
			return nil, noop, err
		}
		return store, store.Close, nil
	case config.CacheRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})
		return NewRedisStore(client, options), client.Close, nil
	default:
		return nil, noop, fmt.Errorf("httpcache: unknown backend %q", cfg.Backend)
	}
}
