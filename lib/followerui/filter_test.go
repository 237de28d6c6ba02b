// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import (
	"testing"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := fuzzyMatch("octocat", []rune("cat"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) != 3 {
		t.Errorf("positions = %v, want 3 entries", result.Positions)
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	result := fuzzyMatch("mojombo", []rune("mjb"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous match")
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := fuzzyMatch("DefUnkt", []rune("defunkt"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := fuzzyMatch("octocat", []rune("xyz"), nil)
	if result.Score != 0 || len(result.Positions) != 0 {
		t.Errorf("expected no match, got %+v", result)
	}
}

func TestFilterFollowers(t *testing.T) {
	list := []followers.Follower{
		{Login: "bob"},
		{Login: "alice"},
		{Login: "albert"},
		{Login: "carol"},
	}

	t.Run("empty query keeps everything in order", func(t *testing.T) {
		matches := filterFollowers(list, "  ", nil)
		if len(matches) != len(list) {
			t.Fatalf("got %d matches, want %d", len(matches), len(list))
		}
		for index, match := range matches {
			if match.Follower.Login != list[index].Login {
				t.Errorf("match[%d] = %s, want %s", index, match.Follower.Login, list[index].Login)
			}
		}
	})

	t.Run("query narrows best first", func(t *testing.T) {
		matches := filterFollowers(list, "al", nil)
		var logins []string
		for _, match := range matches {
			logins = append(logins, match.Follower.Login)
			if len(match.Positions) == 0 {
				t.Errorf("%s: missing highlight positions", match.Follower.Login)
			}
		}
		// carol matches a...l with a gap and ranks below the prefixes.
		want := []string{"alice", "albert", "carol"}
		if len(logins) != len(want) {
			t.Fatalf("got %v, want %v", logins, want)
		}
		for index := range want {
			if logins[index] != want[index] {
				t.Errorf("match[%d] = %s, want %s", index, logins[index], want[index])
			}
		}
		if matches[2].score >= matches[1].score {
			t.Errorf("carol score %d should be below albert %d", matches[2].score, matches[1].score)
		}
	})

	t.Run("prefix query", func(t *testing.T) {
		matches := filterFollowers(list, "ali", nil)
		if len(matches) != 1 || matches[0].Follower.Login != "alice" {
			t.Errorf("got %v, want only alice", matches)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if matches := filterFollowers(list, "zzz", nil); len(matches) != 0 {
			t.Errorf("got %v, want none", matches)
		}
	})
}

func TestHighlightPositions(t *testing.T) {
	brackets := func(parts ...string) string { return "[" + parts[0] + "]" }
	if got := highlightPositions("alice", []int{0, 2}, brackets); got != "[a]l[i]ce" {
		t.Errorf("got %q", got)
	}
	if got := highlightPositions("alice", nil, brackets); got != "alice" {
		t.Errorf("got %q", got)
	}
}
