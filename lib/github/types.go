// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "time"

// User is a GitHub account as it appears in follower listings.
type User struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
	Type      string `json:"type"` // "User" or "Organization"
}

// RateLimit is a snapshot of the most recent rate limit headers.
type RateLimit struct {
	// Known is false until a response carrying rate limit headers has
	// been seen.
	Known     bool
	Limit     int
	Remaining int
	Reset     time.Time
}
