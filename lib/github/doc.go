// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package github provides a typed client for the read-only corner of
// the GitHub REST API that follower lookups need.
//
// The client works anonymously or with a personal access token. It
// tracks rate limits from X-RateLimit-* headers and backs off once when
// GitHub rejects a request for exceeding them, follows RFC 5988 Link
// headers for pagination, and sends conditional requests using ETags
// held in a pluggable [ETagStore]. A 304 Not Modified answer does not
// count against the rate limit, which matters for anonymous callers who
// get 60 requests an hour.
//
// All requests are made over HTTPS. The client refuses non-HTTPS base
// URLs.
package github
