// File: doc.go
// Title: Package Documentation for syncx
// Description: Package syncx provides small synchronization primitives that
//              extend the Go standard library, centered on a generic
//              mutex-guarded value cell.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with the generic Cell type

// Package syncx provides small synchronization primitives for Go.
//
// Package: syncx
// Title: Synchronized Value Cells
// Description: This package implements a generic mutex-guarded value cell
//              that gives exactly one goroutine at a time access to a wrapped
//              value. It carries the locking discipline used throughout the
//              conlog logger: every shared mutable value lives in its own
//              cell, and the cell is the only door to it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Overview
//
// A Cell owns one value of any type together with a sync.Mutex. The wrapped
// value is only ever read or written while the mutex is held. Acquire blocks
// until exclusive access is granted and returns a pointer into the cell;
// Release gives the access back. Pairing the two with defer guarantees the
// unlock on every exit path, including early returns and panics.
//
// For single-step critical sections the Get, Set, and With helpers acquire
// and release in one call.
//
// Usage:
//
//	level := syncx.NewCell(log.LevelInfo)
//
//	// scoped access across several statements
//	min := level.Acquire()
//	defer level.Release()
//	if severity < *min {
//		return
//	}
//
//	// one-shot accessors
//	level.Set(log.LevelWarn)
//	current := level.Get()
package syncx
