// File: timer.go
// Title: Performance Timer
// Description: Provides timing functionality for measuring and logging
//              operation durations through the leveled logger.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	level     Level
	stopped   bool
}

// NewTimer creates and starts a timer for the given operation. Completion is
// logged at debug level unless changed with WithLevel.
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		level:     LevelDebug,
	}
}

// StartTimer creates and starts a new performance timer on this logger
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.Log(t.level, "%s completed in %s", t.operation, elapsed)
	}

	return elapsed
}

// StopWithError stops the timer and logs the failure with the elapsed time
// at error level.
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.Error("%s failed after %s: %v", t.operation, elapsed, err)
	}

	return elapsed
}

// Checkpoint logs an intermediate timing checkpoint without stopping the
// timer.
func (t *Timer) Checkpoint(name string) {
	if t.stopped {
		return
	}

	if t.logger != nil {
		t.logger.Debug("%s checkpoint %q at %s", t.operation, name, t.Elapsed())
	}
}

// Cancel cancels the timer without logging completion
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

// Reset resets the timer to start counting from now
func (t *Timer) Reset() {
	t.startTime = time.Now()
	t.stopped = false
}

// StartTime returns the time when the timer was started
func (t *Timer) StartTime() time.Time {
	return t.startTime
}
