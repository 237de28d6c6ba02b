// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package httpcache

import (
	"log/slog"
	"time"

	"github.com/bureau-foundation/commonfollowers/lib/clock"
	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// DefaultTTL is used when Options.TTL is zero.
const DefaultTTL = 24 * time.Hour

// Options configures a store.
type Options struct {
	// TTL is how long an entry stays eligible for revalidation.
	TTL time.Duration

	// Clock stamps and expires entries. Defaults to clock.Real().
	Clock clock.Clock

	// Logger receives degraded-storage warnings. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

func (options Options) withDefaults() Options {
	if options.TTL <= 0 {
		options.TTL = DefaultTTL
	}
	if options.Clock == nil {
		options.Clock = clock.Real()
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}
	return options
}

// entry is the stored form of a cached response.
type entry struct {
	ETag     string    `cbor:"etag"`
	Link     string    `cbor:"link,omitempty"`
	Body     []byte    `cbor:"body"`
	StoredAt time.Time `cbor:"stored_at"`
}

func newEntry(response github.CachedResponse, now time.Time) entry {
	return entry{
		ETag:     response.ETag,
		Link:     response.Link,
		Body:     response.Body,
		StoredAt: now,
	}
}

func (e entry) response() github.CachedResponse {
	return github.CachedResponse{ETag: e.ETag, Link: e.Link, Body: e.Body}
}

func (e entry) expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.StoredAt) >= ttl
}
