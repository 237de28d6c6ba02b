// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// PageIterator lazily fetches pages of results from a paginated GitHub
// API endpoint. Each call to Next fetches the next page and returns the
// items. Returns nil, nil when all pages have been consumed.
//
// The iterator is not safe for concurrent use.
type PageIterator[T any] struct {
	client  *Client
	nextURL string
	done    bool
	pages   int
}

// Next fetches the next page of results. Returns nil, nil when no more
// pages are available. An empty page returns a non-nil empty slice so
// callers can tell it apart from exhaustion.
func (iterator *PageIterator[T]) Next(ctx context.Context) ([]T, error) {
	if iterator.done || iterator.nextURL == "" {
		return nil, nil
	}

	body, link, err := iterator.client.fetch(ctx, iterator.nextURL)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := json.Unmarshal(body, &items); err != nil {
		return nil, fmt.Errorf("github: decoding page %d: %w", iterator.pages+1, err)
	}
	iterator.pages++

	iterator.nextURL = parseLinkNext(link)
	if iterator.nextURL == "" {
		iterator.done = true
	}

	return items, nil
}

// Pages returns the number of pages fetched so far.
func (iterator *PageIterator[T]) Pages() int {
	return iterator.pages
}

// Collect fetches all remaining pages and returns all items
// concatenated in page order. On error the items gathered so far are
// returned alongside it.
func (iterator *PageIterator[T]) Collect(ctx context.Context) ([]T, error) {
	all := []T{}
	for {
		items, err := iterator.Next(ctx)
		if err != nil {
			return all, err
		}
		if items == nil {
			return all, nil
		}
		all = append(all, items...)
	}
}

// parseLinkNext extracts the URL with rel="next" from an RFC 5988 Link
// header. Returns empty string if no next link is present.
//
// Format: <https://api.github.com/...?page=2>; rel="next", <...>; rel="last"
func parseLinkNext(header string) string {
	if header == "" {
		return ""
	}

	for _, part := range strings.Split(header, ",") {
		segments := strings.SplitN(strings.TrimSpace(part), ";", 2)
		if len(segments) != 2 {
			continue
		}

		urlPart := strings.TrimSpace(segments[0])
		if !strings.Contains(segments[1], `rel="next"`) {
			continue
		}

		if strings.HasPrefix(urlPart, "<") && strings.HasSuffix(urlPart, ">") {
			return urlPart[1 : len(urlPart)-1]
		}
	}

	return ""
}
