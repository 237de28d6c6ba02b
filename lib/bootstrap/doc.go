// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package bootstrap assembles the runtime shared by the CLI and the
// HTTP service from a loaded [config.Config]: the ETag store, the
// GitHub client with its per-request timeout, and the follower
// fetcher.
//
// Both binaries call [Start] after loading configuration and defer the
// returned Runtime's Close, which flushes a file-backed cache or
// closes a Redis connection.
package bootstrap
