// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followers

import "context"

// NoCommonMessage is shown when both users exist but share no
// followers. It is a successful outcome, not an error.
const NoCommonMessage = "No common followers found"

// Result is the outcome of a successful Common query.
type Result struct {
	First             string
	Second            string
	FollowersOfFirst  []Follower
	FollowersOfSecond []Follower

	// Common is Intersect(FollowersOfFirst, FollowersOfSecond).
	Common []Follower
}

// Common fetches the followers of first and second concurrently and
// intersects them. Both fetches must succeed. The first failure cancels
// the other fetch and is returned as is; the other's result is
// discarded.
func Common(ctx context.Context, fetcher Fetcher, first, second string) (Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type outcome struct {
		index     int
		followers []Follower
		err       error
	}

	usernames := [2]string{first, second}
	outcomes := make(chan outcome, len(usernames))
	for index, username := range usernames {
		go func() {
			followers, err := fetcher.FetchAll(ctx, username)
			outcomes <- outcome{index: index, followers: followers, err: err}
		}()
	}

	var lists [2][]Follower
	for range usernames {
		result := <-outcomes
		if result.err != nil {
			return Result{}, result.err
		}
		lists[result.index] = result.followers
	}

	return Result{
		First:             first,
		Second:            second,
		FollowersOfFirst:  lists[0],
		FollowersOfSecond: lists[1],
		Common:            Intersect(lists[0], lists[1]),
	}, nil
}
