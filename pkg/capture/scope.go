// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"errors"
	"log"
	"sync"

	"github.com/google/streamscope/internal/engine"
)

type phase int

const (
	phaseIdle phase = iota
	phaseActive
	phaseDone
)

// Scope owns a set of channels for one bounded stretch of execution. A
// scope is single-use: it runs exactly one body (Run) or spans exactly
// one test (Start), then restores its channels and cannot be reused.
//
// The mutators Mute, MuteOnSuccess, EnableLog, and ClearLog are valid
// only while the scope is active and apply from the moment of the call,
// never retroactively. Log and NormalizedLog stay readable after the
// scope finished.
//
// A scope must be entered and finished on one goroutine. Writes to the
// covered channels may come from any goroutine the body starts.
type Scope struct {
	mu       sync.Mutex
	phase    phase
	state    *engine.State
	channels []Channel
	sinks    []*engine.Sink
}

// New returns an idle scope over the given channels. The scope takes
// ownership of the channels when Run is called.
func New(channels ...Channel) *Scope {
	if len(channels) == 0 {
		panic("capture: New requires at least one channel")
	}
	for _, ch := range channels {
		if ch == nil {
			panic("capture: New requires non-nil channels")
		}
	}
	return &Scope{state: engine.NewState(), channels: channels}
}

// Run installs the scope's sinks, executes body exactly once, settles
// deferred output against the body's outcome, and restores every
// channel. The outcome is a failure iff body returned a non-nil error
// or panicked. A panic is re-raised unchanged once the channels are
// restored.
//
// The returned error carries the body's error and, if flushing deferred
// output to a real target failed, that error as well; errors.Is reaches
// both. In the panic path a flush error cannot ride on the panic value,
// so it is reported on the standard logger after restoration.
func (s *Scope) Run(body func() error) (err error) {
	s.enter()
	panicked := true
	var bodyErr error
	defer func() {
		outcome := engine.Success
		if panicked || bodyErr != nil {
			outcome = engine.Failure
		}
		flushErr := s.finish(outcome)
		if panicked {
			if flushErr != nil {
				log.Printf("capture: %v", flushErr)
			}
			return
		}
		switch {
		case flushErr == nil:
			err = bodyErr
		case bodyErr == nil:
			err = flushErr
		default:
			err = errors.Join(bodyErr, flushErr)
		}
	}()
	bodyErr = body()
	panicked = false
	return nil
}

// enter takes ownership of every channel: it records the current target
// and installs an intercepting sink forwarding to it.
func (s *Scope) enter() {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case phaseActive:
		panic("capture: scope is already active")
	case phaseDone:
		panic("capture: scope cannot be reused after it finished")
	}
	for _, ch := range s.channels {
		sink := engine.NewSink(s.state, ch.Current())
		ch.Install(sink)
		s.sinks = append(s.sinks, sink)
	}
	s.phase = phaseActive
}

// finish settles every sink's deferred output against the outcome, then
// restores every channel to the target its sink recorded at entry, in
// reverse installation order. Restoration runs even when a flush fails
// or panics. A second finish is a no-op.
func (s *Scope) finish(outcome engine.Outcome) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != phaseActive {
		return nil
	}
	s.phase = phaseDone
	defer func() {
		for i := len(s.sinks) - 1; i >= 0; i-- {
			s.channels[i].Restore(s.sinks[i].Target())
		}
	}()
	var flushErr error
	for _, sink := range s.sinks {
		if err := sink.Resolve(outcome); err != nil && flushErr == nil {
			flushErr = err
		}
	}
	return flushErr
}

func (s *Scope) ensureActive(op string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.phase {
	case phaseIdle:
		panic("capture: " + op + " called before the scope was started")
	case phaseDone:
		panic("capture: " + op + " called after the scope finished")
	}
}

// Mute suppresses all subsequent writes to the covered channels for the
// rest of the scope, regardless of outcome. Writes made before the call
// are unaffected.
func (s *Scope) Mute() {
	s.ensureActive("Mute")
	s.state.Mute()
}

// MuteOnSuccess withholds subsequent writes until the scope's outcome
// is known: they are discarded on success and written to the channels'
// real targets, in original order, on failure.
func (s *Scope) MuteOnSuccess() {
	s.ensureActive("MuteOnSuccess")
	s.state.MuteOnSuccess()
}

// EnableLog starts recording subsequent writes to the covered channels.
// Recording is independent of muting: muted writes still reach the log.
func (s *Scope) EnableLog() {
	s.ensureActive("EnableLog")
	s.state.EnableLog()
}

// ClearLog discards the recorded log. Mute and logging settings keep
// their values.
func (s *Scope) ClearLog() {
	s.ensureActive("ClearLog")
	s.state.ClearLog()
}

// Log returns everything recorded since EnableLog (or the last
// ClearLog), byte for byte. Writes to all covered channels appear in
// one record in write order. Log may be called after the scope
// finished.
func (s *Scope) Log() string {
	return s.state.Log()
}

// NormalizedLog returns Log with every occurrence of the platform line
// separator replaced by "\n". The separator is read when NormalizedLog
// is called.
func (s *Scope) NormalizedLog() string {
	return s.state.NormalizedLog()
}
