// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package stdio provides process-wide logical output streams.
//
// A Stream is a stable io.Writer handle whose underlying target can be
// swapped and later restored. Code that holds a Stream keeps writing to
// whatever target is currently installed, which lets a test scope take
// ownership of a stream without touching the writers spread across the
// program. Stdout and Stderr are the package-level streams backing the
// process's standard output and standard error.
package stdio

import (
	"io"
	"os"

	"github.com/google/streamscope/internal/platform"
	"github.com/google/streamscope/internal/registry"
)

// Stream is a named logical output stream. Writes delegate to the
// currently installed target, so a Stream reference stays valid across
// target substitutions.
type Stream struct {
	name string
	reg  *registry.Registry[io.Writer]
}

// Stdout and Stderr are the logical standard streams. Their default
// targets are os.Stdout and os.Stderr.
var (
	Stdout = NewStream("stdout", os.Stdout)
	Stderr = NewStream("stderr", os.Stderr)
)

// NewStream returns a stream named name writing to target.
func NewStream(name string, target io.Writer) *Stream {
	if target == nil {
		panic("stdio: NewStream requires a non-nil target")
	}
	return &Stream{name: name, reg: registry.New(target)}
}

// Name returns the stream's name.
func (s *Stream) Name() string {
	return s.name
}

// Write forwards p to the stream's current target.
func (s *Stream) Write(p []byte) (int, error) {
	return s.reg.Current().Write(p)
}

// Current returns the stream's current target.
func (s *Stream) Current() io.Writer {
	return s.reg.Current()
}

// Install replaces the stream's target with w and returns the target it
// replaced, which the caller must later pass to Restore.
func (s *Stream) Install(w io.Writer) (previous io.Writer) {
	return s.reg.Install(w)
}

// Restore sets the stream's target back to previous.
func (s *Stream) Restore(previous io.Writer) {
	s.reg.Restore(previous)
}

// LineSeparator returns the line separator text written between lines
// on this platform.
func LineSeparator() string {
	return platform.LineSeparator()
}

// SetLineSeparator overrides the platform line separator and returns a
// function restoring the prior value.
func SetLineSeparator(s string) (restore func()) {
	return platform.SetLineSeparator(s)
}
