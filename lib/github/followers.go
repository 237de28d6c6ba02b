// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package github

import (
	"fmt"
	"net/url"
)

// MaxPerPage is the largest page size GitHub accepts on list endpoints.
const MaxPerPage = 100

// ListFollowersOptions controls pagination for ListFollowers.
type ListFollowersOptions struct {
	PerPage int // results per page (max 100, default 30)
}

func (options ListFollowersOptions) queryParams() string {
	if options.PerPage <= 0 {
		return ""
	}
	perPage := options.PerPage
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}
	return fmt.Sprintf("per_page=%d", perPage)
}

// ListFollowers returns a paginated iterator over the accounts that
// follow username. The username is path-escaped; no request is made
// until the iterator's Next or Collect is called.
func (client *Client) ListFollowers(username string, options ListFollowersOptions) *PageIterator[User] {
	path := fmt.Sprintf("/users/%s/followers", url.PathEscape(username))
	if query := options.queryParams(); query != "" {
		path += "?" + query
	}
	return list[User](client, path)
}
