// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followers

import "github.com/bureau-foundation/commonfollowers/lib/github"

// Follower is an account that follows some user. Login is its identity.
type Follower struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url,omitempty"`
}

// fromGitHub converts API users to followers, preserving order.
func fromGitHub(users []github.User) []Follower {
	result := make([]Follower, len(users))
	for index, user := range users {
		result[index] = Follower{
			Login:     user.Login,
			AvatarURL: user.AvatarURL,
			HTMLURL:   user.HTMLURL,
		}
	}
	return result
}

// Logins returns the login of each follower, in order.
func Logins(list []Follower) []string {
	logins := make([]string, len(list))
	for index, follower := range list {
		logins[index] = follower.Login
	}
	return logins
}
