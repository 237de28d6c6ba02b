// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followers

import (
	"context"
	"log/slog"
	"strings"

	"github.com/bureau-foundation/commonfollowers/lib/github"
)

// Fetcher retrieves the complete follower list of one user.
//
// Implementations return an error satisfying errors.Is(err,
// ErrUserNotFound) for any upstream failure, and ctx.Err() when the
// context was cancelled.
type Fetcher interface {
	FetchAll(ctx context.Context, username string) ([]Follower, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, username string) ([]Follower, error)

// FetchAll calls function(ctx, username).
func (function FetcherFunc) FetchAll(ctx context.Context, username string) ([]Follower, error) {
	return function(ctx, username)
}

// GitHubFetcher pages through GET /users/{username}/followers.
type GitHubFetcher struct {
	client  *github.Client
	perPage int
	logger  *slog.Logger
}

// NewGitHubFetcher returns a Fetcher backed by client. perPage values
// outside 1..100 fall back to 100, the largest page GitHub serves.
// A nil logger uses slog.Default().
func NewGitHubFetcher(client *github.Client, perPage int, logger *slog.Logger) *GitHubFetcher {
	if perPage <= 0 || perPage > github.MaxPerPage {
		perPage = github.MaxPerPage
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GitHubFetcher{client: client, perPage: perPage, logger: logger}
}

// FetchAll returns every follower of username, concatenated across
// pages in the order GitHub serves them. The first failing page aborts
// the fetch; nothing partial is returned.
func (fetcher *GitHubFetcher) FetchAll(ctx context.Context, username string) ([]Follower, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &UserNotFoundError{Username: username}
	}

	iterator := fetcher.client.ListFollowers(username, github.ListFollowersOptions{PerPage: fetcher.perPage})
	users, err := iterator.Collect(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		fetcher.logger.Warn("fetching followers failed",
			"username", username,
			"pages", iterator.Pages(),
			"not_found", github.IsNotFound(err),
			"rate_limited", github.IsRateLimited(err),
			"error", err,
		)
		return nil, &UserNotFoundError{Username: username, Err: err}
	}

	fetcher.logger.Debug("fetched followers",
		"username", username,
		"count", len(users),
		"pages", iterator.Pages(),
	)
	return fromGitHub(users), nil
}
