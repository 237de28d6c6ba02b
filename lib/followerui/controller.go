// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package followerui

import (
	"strings"

	"github.com/bureau-foundation/commonfollowers/lib/followers"
)

// Phase is the controller's top-level state.
type Phase int

const (
	// PhaseIdle means at least one username is empty. Nothing is shown.
	PhaseIdle Phase = iota
	// PhaseLoading means a fetch cycle is in flight.
	PhaseLoading
	// PhaseSuccess means both fetches resolved. The result may be empty.
	PhaseSuccess
	// PhaseError means either fetch failed.
	PhaseError
)

// String returns the phase name.
func (phase Phase) String() string {
	switch phase {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "unknown"
	}
}

// Request describes a fetch cycle the caller must start. The
// completion must be reported back with the same Generation.
type Request struct {
	Generation uint64
	First      string
	Second     string
}

// Controller tracks the two applied usernames and the state of the
// current fetch cycle. It performs no I/O and is not safe for
// concurrent use; the bubbletea Update loop owns it.
//
// Every change of either username starts a new generation. Leaving
// Idle requires both names to be non-empty; a completion is applied
// only if its generation is still current.
type Controller struct {
	first      string
	second     string
	phase      Phase
	generation uint64
	common     []followers.Follower
}

// SetFirst applies a new first username. It returns a Request when the
// change starts a fetch cycle. A value equal to the applied one after
// trimming changes nothing, including the generation.
func (controller *Controller) SetFirst(username string) (Request, bool) {
	username = strings.TrimSpace(username)
	if username == controller.first {
		return Request{}, false
	}
	controller.first = username
	return controller.restart()
}

// SetSecond applies a new second username. The Model debounces edits
// before calling this.
func (controller *Controller) SetSecond(username string) (Request, bool) {
	username = strings.TrimSpace(username)
	if username == controller.second {
		return Request{}, false
	}
	controller.second = username
	return controller.restart()
}

func (controller *Controller) restart() (Request, bool) {
	controller.generation++
	controller.common = nil

	if controller.first == "" || controller.second == "" {
		controller.phase = PhaseIdle
		return Request{}, false
	}

	controller.phase = PhaseLoading
	return Request{
		Generation: controller.generation,
		First:      controller.first,
		Second:     controller.second,
	}, true
}

// Complete applies the outcome of a fetch cycle. Completions whose
// generation is not current are ignored and Complete returns false.
// Any error moves to PhaseError.
func (controller *Controller) Complete(generation uint64, common []followers.Follower, err error) bool {
	if generation != controller.generation || controller.phase != PhaseLoading {
		return false
	}
	if err != nil {
		controller.phase = PhaseError
		controller.common = nil
		return true
	}
	if common == nil {
		common = []followers.Follower{}
	}
	controller.phase = PhaseSuccess
	controller.common = common
	return true
}

// Phase returns the current state.
func (controller *Controller) Phase() Phase { return controller.phase }

// Loading reports whether a fetch cycle is in flight.
func (controller *Controller) Loading() bool { return controller.phase == PhaseLoading }

// Generation returns the current fetch generation.
func (controller *Controller) Generation() uint64 { return controller.generation }

// First returns the applied first username.
func (controller *Controller) First() string { return controller.first }

// Second returns the applied second username.
func (controller *Controller) Second() string { return controller.second }

// Common returns the result list. It is nil outside PhaseSuccess.
func (controller *Controller) Common() []followers.Follower { return controller.common }

// Message returns the status text for the current phase: the
// not-found message on error, the empty-result message on an empty
// success, and "" otherwise.
func (controller *Controller) Message() string {
	switch controller.phase {
	case PhaseError:
		return followers.NotFoundMessage
	case PhaseSuccess:
		if len(controller.common) == 0 {
			return followers.NoCommonMessage
		}
	}
	return ""
}
