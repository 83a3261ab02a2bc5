// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package platform

import (
	"runtime"
	"testing"
)

func TestLineSeparatorDefault(t *testing.T) {
	want := "\n"
	if runtime.GOOS == "windows" {
		want = "\r\n"
	}
	if got := LineSeparator(); got != want {
		t.Errorf("LineSeparator() = %q, want %q", got, want)
	}
}

func TestSetLineSeparator(t *testing.T) {
	original := LineSeparator()
	restore := SetLineSeparator("\r\n")
	if got := LineSeparator(); got != "\r\n" {
		t.Errorf("LineSeparator() after override = %q, want %q", got, "\r\n")
	}
	restore()
	if got := LineSeparator(); got != original {
		t.Errorf("LineSeparator() after restore = %q, want %q", got, original)
	}
}

func TestSetLineSeparatorNests(t *testing.T) {
	original := LineSeparator()
	restoreOuter := SetLineSeparator("\r\n")
	restoreInner := SetLineSeparator("\r")

	if got := LineSeparator(); got != "\r" {
		t.Errorf("LineSeparator() = %q, want %q", got, "\r")
	}
	restoreInner()
	if got := LineSeparator(); got != "\r\n" {
		t.Errorf("LineSeparator() after inner restore = %q, want %q", got, "\r\n")
	}
	restoreOuter()
	if got := LineSeparator(); got != original {
		t.Errorf("LineSeparator() after outer restore = %q, want %q", got, original)
	}
}
