// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package httpcache provides persistent and shared implementations of
// [github.ETagStore].
//
// A [FileStore] keeps a zstd-compressed CBOR snapshot on disk so that a
// second run of the CLI can revalidate follower pages with
// If-None-Match instead of spending rate limit on full responses. A
// [RedisStore] shares the same state between replicas of the HTTP
// service. [Open] picks a store from a [config.CacheConfig].
//
// Both stores treat their backing storage as best-effort: a corrupt
// snapshot or an unreachable Redis degrades to cache misses and is
// logged, never returned to the caller.
package httpcache
