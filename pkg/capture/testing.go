// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"testing"

	"github.com/google/streamscope/internal/engine"
)

// Start takes ownership of the channels for the remainder of tb's test.
// The returned scope is already active. When the test and its subtests
// finish, deferred output is settled against tb.Failed (a failed test
// counts as the failure outcome) and the channels are restored. Errors
// flushing deferred output are reported through tb.Errorf.
func Start(tb testing.TB, channels ...Channel) *Scope {
	tb.Helper()
	s := New(channels...)
	s.enter()
	tb.Cleanup(func() {
		outcome := engine.Success
		if tb.Failed() {
			outcome = engine.Failure
		}
		if err := s.finish(outcome); err != nil {
			tb.Errorf("capture: %v", err)
		}
	})
	return s
}
