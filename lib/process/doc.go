// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package process holds entrypoint helpers shared by the binaries:
// reporting a fatal startup error before the structured logger exists,
// and mapping returned errors onto process exit codes.
package process
