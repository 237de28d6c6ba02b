// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followers

// Intersect returns every element of a whose login also appears in b,
// in a's order. Logins compare as exact strings. Duplicates in a are
// kept. The result is never nil.
func Intersect(a, b []Follower) []Follower {
	common := []Follower{}
	if len(a) == 0 || len(b) == 0 {
		return common
	}

	inB := make(map[string]struct{}, len(b))
	for _, follower := range b {
		inB[follower.Login] = struct{}{}
	}

	for _, follower := range a {
		if _, ok := inB[follower.Login]; ok {
			common = append(common, follower)
		}
	}
	return common
}
