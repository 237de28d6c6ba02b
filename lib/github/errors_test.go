// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"testing"
)

func TestAPIError_Error(t *testing.T) {
	err := &APIError{StatusCode: 404, Message: "Not Found"}
	if got, want := err.Error(), "github: HTTP 404: Not Found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		notFound    bool
		rateLimited bool
	}{
		{
			name:     "404",
			err:      &APIError{StatusCode: 404, Message: "Not Found"},
			notFound: true,
		},
		{
			name:     "wrapped 404",
			err:      fmt.Errorf("listing followers: %w", &APIError{StatusCode: 404}),
			notFound: true,
		},
		{
			name:        "primary rate limit",
			err:         &APIError{StatusCode: 403, Message: "API rate limit exceeded for 192.0.2.1."},
			rateLimited: true,
		},
		{
			name:        "secondary rate limit",
			err:         &APIError{StatusCode: 429, Message: "slow down"},
			rateLimited: true,
		},
		{
			name: "permission 403",
			err:  &APIError{StatusCode: 403, Message: "Resource not accessible"},
		},
		{
			name: "plain error",
			err:  fmt.Errorf("connection refused"),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsNotFound(test.err); got != test.notFound {
				t.Errorf("IsNotFound = %v, want %v", got, test.notFound)
			}
			if got := IsRateLimited(test.err); got != test.rateLimited {
				t.Errorf("IsRateLimited = %v, want %v", got, test.rateLimited)
			}
		})
	}
}

func TestParseAPIErrorFromBody(t *testing.T) {
	apiError := parseAPIErrorFromBody(500, []byte("upstream exploded"))
	if apiError.Message != "upstream exploded" {
		t.Errorf("non-JSON body should become the message, got %q", apiError.Message)
	}

	apiError = parseAPIErrorFromBody(404, []byte(`{"message":"Not Found","documentation_url":"https://docs.github.com/rest"}`))
	if apiError.Message != "Not Found" || apiError.DocumentationURL != "https://docs.github.com/rest" {
		t.Errorf("unexpected parse: %+v", apiError)
	}
}
