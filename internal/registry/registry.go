// Copyright 2026 Google LLC
// SPDX-License-Identifier: Apache-2.0

// Package registry provides single-owner containers for process-wide
// mutable values, so that each underlying global is read and replaced
// in exactly one place.
package registry

import "sync"

// Registry holds the current value of one process-wide setting, such as
// the target of a shared output stream or the platform line separator.
//
// Replacements nest in strict LIFO order: Install over the current
// value, retain what Install returned, and hand it back to Restore when
// the enclosing scope ends. The Registry is safe for concurrent reads
// and writes, but overlapping Install/Restore pairs from concurrent
// scopes are unsupported and leave the registry holding whichever value
// was restored last.
type Registry[T any] struct {
	mu      sync.RWMutex
	current T
}

// New returns a Registry holding initial.
func New[T any](initial T) *Registry[T] {
	return &Registry[T]{current: initial}
}

// Current returns the active value. No side effects.
func (r *Registry[T]) Current() T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// Install replaces the active value and returns the previous one. The
// caller must retain the previous value for Restore.
func (r *Registry[T]) Install(v T) (previous T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	previous = r.current
	r.current = v
	return previous
}

// Restore sets the registry back to previous. Restore pairs 1:1 with
// Install; a repeated Restore with the same value is a no-op.
func (r *Registry[T]) Restore(previous T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = previous
}
