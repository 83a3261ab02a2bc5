// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

package registry

import (
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryCurrent(t *testing.T) {
	r := New("initial")
	if got := r.Current(); got != "initial" {
		t.Errorf("Current() = %q, want %q", got, "initial")
	}
	// Reads have no side effects.
	if got := r.Current(); got != "initial" {
		t.Errorf("Current() after Current() = %q, want %q", got, "initial")
	}
}

func TestRegistryInstallReturnsPrevious(t *testing.T) {
	r := New("original")
	if prev := r.Install("replacement"); prev != "original" {
		t.Errorf("Install() returned %q, want %q", prev, "original")
	}
	if got := r.Current(); got != "replacement" {
		t.Errorf("Current() = %q, want %q", got, "replacement")
	}
}

func TestRegistryRestore(t *testing.T) {
	r := New("original")
	prev := r.Install("replacement")
	r.Restore(prev)
	if got := r.Current(); got != "original" {
		t.Errorf("Current() after Restore = %q, want %q", got, "original")
	}
}

func TestRegistryRestoreIsIdempotent(t *testing.T) {
	r := New("original")
	prev := r.Install("replacement")
	r.Restore(prev)
	r.Restore(prev)
	if got := r.Current(); got != "original" {
		t.Errorf("Current() after double Restore = %q, want %q", got, "original")
	}
}

func TestRegistryNestsLIFO(t *testing.T) {
	r := New("base")

	outer := r.Install("outer")
	inner := r.Install("inner")

	var order []string
	order = append(order, r.Current())
	r.Restore(inner)
	order = append(order, r.Current())
	r.Restore(outer)
	order = append(order, r.Current())

	want := []string{"inner", "outer", "base"}
	if diff := cmp.Diff(want, order); diff != "" {
		t.Errorf("nested restore order (-want +got):\n%s", diff)
	}
}

func TestRegistryRestoreOverwritesInterveningInstall(t *testing.T) {
	// A scope's restore puts back exactly the value it retained, even
	// when the wrapped code installed something else and never cleaned
	// up. This mirrors the behavior of restoring a stream that the test
	// body replaced behind the scope's back.
	r := New("original")
	prev := r.Install("scope")
	r.Install("leaked")
	r.Restore(prev)
	if got := r.Current(); got != "original" {
		t.Errorf("Current() = %q, want %q", got, "original")
	}
}

func TestRegistryPointerIdentity(t *testing.T) {
	type target struct{ name string }
	original := &target{name: "original"}
	replacement := &target{name: "replacement"}

	r := New(original)
	prev := r.Install(replacement)
	if prev != original {
		t.Fatalf("Install() returned %p, want %p", prev, original)
	}
	r.Restore(prev)
	if got := r.Current(); got != original {
		t.Errorf("Current() = %p, want the identical original %p", got, original)
	}
}

func TestRegistryConcurrentReads(t *testing.T) {
	r := New(42)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := r.Current(); got != 42 && got != 7 {
					t.Errorf("Current() = %d, want 42 or 7", got)
					return
				}
			}
		}()
	}
	prev := r.Install(7)
	wg.Wait()
	r.Restore(prev)
	if got := r.Current(); got != 42 {
		t.Errorf("Current() after Restore = %d, want 42", got)
	}
}
