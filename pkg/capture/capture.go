// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package capture gives a test scope temporary ownership of process-wide
// output channels.
//
// A Scope substitutes an intercepting writer for each channel it covers,
// classifies every write made while the scope is active, and restores
// the channels' original targets when the scope ends, no matter whether
// the enclosed body returned, failed, or panicked. While active, a scope
// can suppress output permanently (Mute), suppress it only for
// successful runs (MuteOnSuccess), and record it for assertions
// (EnableLog, Log, NormalizedLog).
//
// Channels are anything with a swappable write target: the logical
// standard streams in package stdio, application-defined streams, or a
// standard-library *log.Logger via the Logger adapter.
//
// Use Run for a programmatic scope; the scope is active while the body
// runs, so the body configures it:
//
//	scope := capture.New(stdio.Stderr)
//	err := scope.Run(func() error {
//		scope.Mute()
//		...
//	})
//
// or Start inside a test, which returns an already active scope, ties it
// to the test lifecycle, and treats a failed test as the failure
// outcome:
//
//	scope := capture.Start(t, stdio.Stderr)
//	scope.EnableLog()
package capture

import (
	"io"
	"log"
)

// Channel is a process-wide output channel whose target can be swapped
// for the duration of a scope. Implementations must hand back the exact
// previous target from Install and accept it in Restore. At most one
// scope may hold a channel at a time; holds nest strictly last-in
// first-out.
type Channel interface {
	// Current returns the channel's active target.
	Current() io.Writer
	// Install replaces the channel's target with w and returns the
	// target it replaced.
	Install(w io.Writer) (previous io.Writer)
	// Restore sets the channel's target back to previous.
	Restore(previous io.Writer)
}

// Logger adapts l into a Channel so that a scope can capture everything
// the logger prints. Logger(log.Default()) covers the global log
// package output.
func Logger(l *log.Logger) Channel {
	if l == nil {
		panic("capture: Logger requires a non-nil logger")
	}
	return loggerChannel{l}
}

type loggerChannel struct {
	l *log.Logger
}

func (c loggerChannel) Current() io.Writer {
	return c.l.Writer()
}

func (c loggerChannel) Install(w io.Writer) (previous io.Writer) {
	previous = c.l.Writer()
	c.l.SetOutput(w)
	return previous
}

func (c loggerChannel) Restore(previous io.Writer) {
	c.l.SetOutput(previous)
}
