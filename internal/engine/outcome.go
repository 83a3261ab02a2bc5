// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/pkg/errors"

// Outcome is the terminal status of the code a scope wrapped, known
// only after the body has fully finished.
type Outcome int

const (
	// Success means the body completed normally.
	Success Outcome = iota
	// Failure means the body returned an error, panicked, or failed the
	// surrounding test.
	Failure
)

// String returns the outcome name for diagnostics.
func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Resolve settles the sink's deferred bytes now that the outcome is
// known: Failure flushes them to the sink's real target in original
// write order, Success discards them. The buffer is emptied either way,
// so resolution happens at most once per sink.
func (s *Sink) Resolve(o Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer s.deferred.Reset()
	if o == Failure && s.deferred.Len() > 0 {
		if _, err := s.forward.Write(s.deferred.Bytes()); err != nil {
			return errors.Wrap(err, "flushing deferred output")
		}
	}
	return nil
}
