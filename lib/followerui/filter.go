// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import (
	"sort"
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

// fuzzyResult is the score and matched rune positions of one login.
// Score is zero when the pattern does not match.
type fuzzyResult struct {
	Score     int
	Positions []int
}

// fuzzyMatch scores text against pattern with fzf's V2 algorithm.
// Matching is case-insensitive: both sides are lowercased so the
// algorithm's case-insensitive path sees consistent input.
func fuzzyMatch(text string, pattern []rune, slab *util.Slab) fuzzyResult {
	if len(pattern) == 0 {
		return fuzzyResult{}
	}
	lowered := []rune(strings.ToLower(string(pattern)))
	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, lowered, true, slab)
	if result.Start < 0 || result.Score <= 0 {
		return fuzzyResult{}
	}
	matched := fuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = append([]int(nil), (*positions)...)
		sort.Ints(matched.Positions)
	}
	return matched
}

// filterMatch is one follower that passed the filter.
type filterMatch struct {
	Follower  followers.Follower
	Positions []int
	score     int
}

// filterFollowers returns the followers whose login matches query,
// best score first. Ties keep list order. An empty query returns every
// follower unchanged.
func filterFollowers(list []followers.Follower, query string, slab *util.Slab) []filterMatch {
	query = strings.TrimSpace(query)
	matches := make([]filterMatch, 0, len(list))
	if query == "" {
		for _, follower := range list {
			matches = append(matches, filterMatch{Follower: follower})
		}
		return matches
	}

	pattern := []rune(query)
	for _, follower := range list {
		result := fuzzyMatch(follower.Login, pattern, slab)
		if result.Score <= 0 {
			continue
		}
		matches = append(matches, filterMatch{
			Follower:  follower,
			Positions: result.Positions,
			score:     result.Score,
		})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})
	return matches
}
