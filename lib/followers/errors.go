// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followers

import (
	"errors"
	"fmt"
)

// NotFoundMessage is the user-facing text for every fetch failure.
const NotFoundMessage = "User not found"

// ErrUserNotFound matches any fetch failure via errors.Is.
var ErrUserNotFound = errors.New(NotFoundMessage)

// UserNotFoundError reports that the followers of Username could not be
// fetched. Err is the upstream cause.
type UserNotFoundError struct {
	Username string
	Err      error
}

func (err *UserNotFoundError) Error() string {
	if err.Err == nil {
		return fmt.Sprintf("user %q not found", err.Username)
	}
	return fmt.Sprintf("user %q not found: %v", err.Username, err.Err)
}

// Is makes errors.Is(err, ErrUserNotFound) true.
func (err *UserNotFoundError) Is(target error) bool {
	return target == ErrUserNotFound
}

func (err *UserNotFoundError) Unwrap() error {
	return err.Err
}
