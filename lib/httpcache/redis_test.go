// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package httpcache

import (
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bureau-foundation/commonfollowers/lib/clock"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

func TestKey(t *testing.T) {
	key := Key(followersURL)
	if !strings.HasPrefix(key, KeyPrefix) {
		t.Fatalf("key %q missing prefix", key)
	}
	// blake3-256 hex digest.
	if digest := strings.TrimPrefix(key, KeyPrefix); len(digest) != 64 {
		t.Errorf("digest length = %d, want 64", len(digest))
	}
	if Key(followersURL) != key {
		t.Error("Key is not stable")
	}
	if Key(followersURL+"&page=2") == key {
		t.Error("distinct URLs produced the same key")
	}
}

func TestRedisStore_UnreachableDegradesToMiss(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 200 * time.Millisecond,
	})
	defer client.Close()

	store := NewRedisStore(client, testOptions(clock.Fake(epoch)))

	store.Put(followersURL, github.CachedResponse{ETag: `"v1"`, Body: []byte("[]")})
	if _, ok := store.Get(followersURL); ok {
		t.Fatal("unreachable redis should report a miss")
	}
}
