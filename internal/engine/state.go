// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package engine implements the per-write capture state machine: every
// byte sequence written during a scope is logged, discarded, deferred,
// or forwarded according to the flag values in force at the moment of
// the write.
package engine

import (
	"bytes"
	"strings"
	"sync"

	"github.com/google/streamscope/internal/platform"
)

// State is the capture configuration and log record shared by every
// sink of one scope. Flags may be toggled at any point while the scope
// is active, including from inside the code under observation. A toggle
// affects only subsequent writes; bytes already routed are never
// reclassified.
type State struct {
	mu            sync.Mutex
	muted         bool
	muteOnSuccess bool
	logEnabled    bool
	log           bytes.Buffer
}

// NewState returns a State with all flags off and an empty log record.
func NewState() *State {
	return &State{}
}

// route is the real-output decision for one write.
type route int

const (
	// routeForward sends the bytes to the sink's real target now.
	routeForward route = iota
	// routeDiscard drops the bytes permanently.
	routeDiscard
	// routeDefer buffers the bytes until the outcome is known.
	routeDefer
)

// observe records p in the log when logging is enabled and returns the
// real-output route for it, both under the flags current at this write.
// Muting wins over deferral, and neither suppresses logging.
func (s *State) observe(p []byte) route {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.logEnabled {
		s.log.Write(p)
	}
	switch {
	case s.muted:
		return routeDiscard
	case s.muteOnSuccess:
		return routeDefer
	default:
		return routeForward
	}
}

// Mute suppresses real output permanently, starting with the next
// write. Writes routed before the call are unaffected.
func (s *State) Mute() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muted = true
}

// MuteOnSuccess defers real output starting with the next write: the
// deferred bytes are discarded if the scope's body succeeds and flushed
// to the real target if it fails. Writes already forwarded or discarded
// are not reclaimed.
func (s *State) MuteOnSuccess() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.muteOnSuccess = true
}

// EnableLog starts recording writes into the log. Only writes after the
// call are recorded.
func (s *State) EnableLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logEnabled = true
}

// ClearLog resets the log record to empty. No other state is affected.
func (s *State) ClearLog() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log.Reset()
}

// Log returns the log record decoded as text, verbatim.
func (s *State) Log() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.log.String()
}

// NormalizedLog returns the log record with every occurrence of the
// platform line-separator sequence replaced by "\n". The separator is
// read at call time, not capture time, because it is test-controlled
// configuration.
func (s *State) NormalizedLog() string {
	return strings.ReplaceAll(s.Log(), platform.LineSeparator(), "\n")
}
