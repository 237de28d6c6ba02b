// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the CBOR and zstd configuration shared by the
// on-disk and Redis response caches.
//
// JSON is used for everything a user or another program sees: the
// GitHub API, the HTTP service, and --json output. CBOR is used for
// cache state that only this program reads back. The encoder uses Core
// Deterministic Encoding (RFC 8949 §4.2), so the same entry always
// produces identical bytes.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// [Compress] and [Decompress] wrap a process-wide zstd encoder and
// decoder for snapshot files.
package codec
