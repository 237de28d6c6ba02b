// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import "testing"

func TestParseLinkNext(t *testing.T) {
	const base = "https://api.github.com/user/583231/followers"
	tests := []struct {
		name     string
		header   string
		expected string
	}{
		{
			name:     "empty header",
			header:   "",
			expected: "",
		},
		{
			name:     "next and last",
			header:   `<` + base + `?per_page=100&page=2>; rel="next", <` + base + `?per_page=100&page=9>; rel="last"`,
			expected: base + "?per_page=100&page=2",
		},
		{
			name:     "last page carries only prev and first",
			header:   `<` + base + `?page=8>; rel="prev", <` + base + `?page=1>; rel="first"`,
			expected: "",
		},
		{
			name:     "next listed after prev",
			header:   `<` + base + `?page=1>; rel="prev", <` + base + `?page=3>; rel="next", <` + base + `?page=5>; rel="last", <` + base + `?page=1>; rel="first"`,
			expected: base + "?page=3",
		},
		{
			name:     "malformed part skipped",
			header:   `garbage, <` + base + `?page=2>; rel="next"`,
			expected: base + "?page=2",
		},
		{
			name:     "missing angle brackets",
			header:   base + `?page=2; rel="next"`,
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := parseLinkNext(test.header)
			if got != test.expected {
				t.Errorf("got %q, want %q", got, test.expected)
			}
		})
	}
}
