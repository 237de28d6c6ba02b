// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package followers finds the accounts that follow both of two GitHub
// users.
//
// A [Fetcher] retrieves one user's complete follower list. [Intersect]
// keeps the followers of the first list whose login also appears in the
// second, in the first list's order. [Common] runs both fetches
// concurrently and intersects the results.
//
// Every fetch failure, whether GitHub answered 404 or the network
// dropped, is reported as [ErrUserNotFound]. The underlying cause stays
// reachable through errors.Unwrap for logging.
package followers
