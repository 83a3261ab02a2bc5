// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"bytes"
	"io"
	"sync"
)

// Sink is the write target installed on a channel for the duration of a
// scope. Every write is routed through the scope's shared State; bytes
// that survive classification are forwarded to the real target the
// channel held before the scope began. Each sink keeps its own deferred
// buffer so that a scope spanning several channels flushes every
// stream's bytes back to that stream's own target.
type Sink struct {
	state   *State
	forward io.Writer

	mu       sync.Mutex
	deferred bytes.Buffer
}

// NewSink returns a Sink that classifies writes against state and
// forwards surviving bytes to forward.
func NewSink(state *State, forward io.Writer) *Sink {
	return &Sink{state: state, forward: forward}
}

// Write implements io.Writer. Logged, discarded, and deferred writes
// always report full success; only an immediate forward surfaces the
// real target's result.
func (s *Sink) Write(p []byte) (int, error) {
	switch s.state.observe(p) {
	case routeDiscard:
		return len(p), nil
	case routeDefer:
		s.mu.Lock()
		defer s.mu.Unlock()
		s.deferred.Write(p)
		return len(p), nil
	default:
		return s.forward.Write(p)
	}
}

// Target returns the real target captured at scope entry.
func (s *Sink) Target() io.Writer {
	return s.forward
}
