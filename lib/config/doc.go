// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads YAML configuration for the common-followers
// binaries.
//
// Configuration comes from a single file named either by the
// COMMONFOLLOWERS_CONFIG environment variable (via [Load]) or a
// --config flag (via [LoadFile]). There is no ~/.config discovery and
// no automatic file search. When neither names a file, [Load] returns
// [Default].
//
// After decoding, ${VAR} and ${VAR:-default} patterns are expanded in
// the token, cache path, and Redis address. A token left empty falls
// back to GITHUB_TOKEN so anonymous users and token users need no file
// at all.
//
// Key exports:
//
//   - [Config] -- master struct with GitHub, Cache, Viewer, Server
//   - [Default] -- defaults applied before the file is decoded
//   - [Load] and [LoadFile] -- the two entry points for loading
package config
