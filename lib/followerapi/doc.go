// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package followerapi serves common-follower queries over HTTP.
//
// Routes:
//
//	GET /api/v1/common-followers?first=A&second=B
//	GET /healthz
//
// Every response carries an X-Request-ID header, taken from the request
// when the caller supplies one and generated otherwise, and every
// request is logged through slog.
package followerapi
