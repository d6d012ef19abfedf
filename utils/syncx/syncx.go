// File: syncx.go
// Title: Generic Synchronized Cell
// Description: Implements Cell, a generic mutex-guarded container that grants
//              exclusive, scoped access to a single wrapped value.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package syncx

import (
	"sync"
)

// Cell wraps a single value of type T behind a mutex. The value must only be
// touched between Acquire and Release (or through the one-shot helpers); the
// zero Cell is valid and holds the zero value of T.
type Cell[T any] struct {
	mu  sync.Mutex
	val T
}

// NewCell creates a cell holding the given initial value, unlocked.
func NewCell[T any](initial T) *Cell[T] {
	return &Cell[T]{val: initial}
}

// Acquire blocks until exclusive access is obtained and returns a pointer to
// the wrapped value. The pointer is only valid until the matching Release;
// callers pair the two with defer so the lock is dropped on every exit path.
func (c *Cell[T]) Acquire() *T {
	c.mu.Lock()
	return &c.val
}

// Release gives back the exclusive access obtained by Acquire.
func (c *Cell[T]) Release() {
	c.mu.Unlock()
}

// Get returns a copy of the wrapped value taken under the lock.
func (c *Cell[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.val
}

// Set replaces the wrapped value under the lock.
func (c *Cell[T]) Set(v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.val = v
}

// With runs f with exclusive access to the wrapped value. The pointer passed
// to f must not be retained after f returns.
func (c *Cell[T]) With(f func(*T)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f(&c.val)
}
