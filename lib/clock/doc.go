// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time source.
//
// The GitHub client waits out rate-limit windows, the response cache
// expires entries by age, and the HTTP service times requests. All of
// them take a [Clock] instead of calling the time package directly, so
// tests can substitute [Fake] and drive time with [FakeClock.Advance].
//
// A goroutine blocked in After registers a pending waiter. Tests call
// [FakeClock.WaitForTimers] before advancing so the advance cannot race
// the registration:
//
//	fakeClock := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	go client.ListFollowers(ctx, "octocat", options).Collect(ctx)
//	fakeClock.WaitForTimers(1)
//	fakeClock.Advance(time.Minute)
package clock
