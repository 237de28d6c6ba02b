// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package followerui implements the interactive common-followers
// viewer as a bubbletea application.
//
// The package is split along the I/O boundary:
//
//   - [Controller] is a pure state machine (Idle, Loading, Success,
//     Error) driven by username changes and fetch completions. It
//     assigns a generation to each fetch cycle and drops completions
//     from older generations.
//   - [Model] is the bubbletea model. It owns two textinput fields, a
//     spinner, the debounce timer for the second username, and the
//     context of the in-flight fetch, translating key presses into
//     Controller calls and Controller requests into tea.Cmds.
//
// The result list supports scrolling and an fzf-scored filter over
// follower logins.
package followerui
