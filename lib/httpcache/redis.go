// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package httpcache

import (
	"context"
	"encoding/hex"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/commonfollowers/lib/codec"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "commonfollowers:etag:"

// redisTimeout bounds each Redis round trip. ETagStore has no context
// parameter, and a slow cache must not hold up the API request it is
// meant to speed up.
const redisTimeout = 2 * time.Second

// RedisStore is an ETag store shared through Redis. Entries expire
// server-side after the configured TTL.
type RedisStore struct {
	client  *redis.Client
	options Options
}

var _ github.ETagStore = (*RedisStore)(nil)

// NewRedisStore wraps an existing client. The caller owns the client
// and closes it.
func NewRedisStore(client *redis.Client, options Options) *RedisStore {
	return &RedisStore{client: client, options: options.withDefaults()}
}

// Key returns the Redis key for a request URL. URLs are hashed so keys
// have a fixed length regardless of query strings.
func Key(url string) string {
	sum := blake3.Sum256([]byte(url))
	return KeyPrefix + hex.EncodeToString(sum[:])
}

// Get fetches and decodes the entry for url. Any Redis or decode error
// is logged and reported as a miss.
func (store *RedisStore) Get(url string) (github.CachedResponse, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := store.client.Get(ctx, Key(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return github.CachedResponse{}, false
	}
	if err != nil {
		store.options.Logger.Warn("etag cache read failed", "url", url, "error", err)
		return github.CachedResponse{}, false
	}

	var cached entry
	if err := codec.Unmarshal(data, &cached); err != nil {
		store.options.Logger.Warn("etag cache entry undecodable", "url", url, "error", err)
		return github.CachedResponse{}, false
	}
	return cached.response(), true
}

// Put stores response with the configured TTL. Failures are logged.
func (store *RedisStore) Put(url string, response github.CachedResponse) {
	if response.ETag == "" {
		return
	}
	data, err := codec.Marshal(newEntry(response, store.options.Clock.Now()))
	if err != nil {
		store.options.Logger.Warn("etag cache entry unencodable", "url", url, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	if err := store.client.Set(ctx, Key(url), data, store.options.TTL).Err(); err != nil {
		store.options.Logger.Warn("etag cache write failed", "url", url, "error", err)
	}
}
