// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package platform exposes process-wide text conventions that tests may
// override.
package platform

import (
	"runtime"

	"github.com/google/streamscope/internal/registry"
)

var lineSeparator = registry.New(defaultLineSeparator())

func defaultLineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// LineSeparator returns the line-separator sequence currently configured
// for the process. It defaults per operating system and is read fresh on
// every call, so an override is visible to callers immediately.
func LineSeparator() string {
	return lineSeparator.Current()
}

// SetLineSeparator overrides the process line separator and returns a
// function that restores the previous value. Intended for tests that
// exercise foreign line endings.
func SetLineSeparator(s string) (restore func()) {
	previous := lineSeparator.Install(s)
	return func() { lineSeparator.Restore(previous) }
}
