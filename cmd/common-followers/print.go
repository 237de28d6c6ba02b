// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"github.com/bureau-foundation/commonfollowers/lib/followerapi"
	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

type printConfig struct {
	stdout  io.Writer
	stderr  *termenv.Output
	fetcher followers.Fetcher
	first   string
	second  string
	json    bool
}

// printCommon runs one query and writes the result. An empty
// intersection is a success: text mode notes it on stderr so stdout
// stays a clean list, JSON mode emits count 0.
func printCommon(ctx context.Context, config printConfig) error {
	result, err := followers.Common(ctx, config.fetcher, config.first, config.second)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return followers.ErrUserNotFound
	}

	if config.json {
		encoder := json.NewEncoder(config.stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(followerapi.NewCommonResponse(result))
	}

	if len(result.Common) == 0 {
		fmt.Fprintln(config.stderr, config.stderr.String(followers.NoCommonMessage).Faint())
		return nil
	}
	for _, follower := range result.Common {
		if _, err := fmt.Fprintln(config.stdout, follower.Login); err != nil {
			return err
		}
	}
	return nil
}
