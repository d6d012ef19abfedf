// File: timer_test.go
// Title: Performance Timer Tests
// Description: Tests for timer start/stop semantics, level selection, error
//              logging, checkpoints, and cancellation.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package log

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestTimerStop(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("flush cache")
	elapsed := timer.Stop()

	if elapsed < 0 {
		t.Errorf("Stop() elapsed = %v, want >= 0", elapsed)
	}

	line := buf.String()
	if !strings.Contains(line, "[DEBUG]: flush cache completed in") {
		t.Errorf("Stop() output = %q, want a DEBUG completion line", line)
	}
}

func TestTimerStopTwice(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("op")
	timer.Stop()
	first := buf.Len()

	if elapsed := timer.Stop(); elapsed != 0 {
		t.Errorf("second Stop() = %v, want 0", elapsed)
	}
	if buf.Len() != first {
		t.Error("second Stop() should not log again")
	}
}

func TestTimerWithLevel(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	logger.StartTimer("slow query").WithLevel(LevelWarn).Stop()

	if !strings.Contains(buf.String(), "[WARN]: slow query completed in") {
		t.Errorf("output = %q, want a WARN completion line", buf.String())
	}
}

func TestTimerStopWithError(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("connect")
	timer.StopWithError(errors.New("connection refused"))

	line := buf.String()
	if !strings.Contains(line, "[ERROR]: connect failed after") {
		t.Errorf("output = %q, want an ERROR failure line", line)
	}
	if !strings.Contains(line, "connection refused") {
		t.Errorf("output = %q, want the error message included", line)
	}
}

func TestTimerCheckpoint(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("migration")
	timer.Checkpoint("schema created")

	if !strings.Contains(buf.String(), `migration checkpoint "schema created" at`) {
		t.Errorf("output = %q, want a checkpoint line", buf.String())
	}
	if !timer.IsRunning() {
		t.Error("Checkpoint() should not stop the timer")
	}

	timer.Stop()
	buf.Reset()
	timer.Checkpoint("after stop")
	if buf.Len() != 0 {
		t.Errorf("Checkpoint() after Stop() logged: %q", buf.String())
	}
}

func TestTimerCancel(t *testing.T) {
	logger, buf := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("aborted")
	timer.Cancel()

	if timer.IsRunning() {
		t.Error("Cancel() should stop the timer")
	}
	if timer.Stop() != 0 {
		t.Error("Stop() after Cancel() should return 0")
	}
	if buf.Len() != 0 {
		t.Errorf("canceled timer logged: %q", buf.String())
	}
}

func TestTimerReset(t *testing.T) {
	logger, _ := newBufferLogger(LevelTrace)

	timer := logger.StartTimer("op")
	timer.Cancel()
	before := timer.StartTime()

	time.Sleep(time.Millisecond)
	timer.Reset()

	if !timer.IsRunning() {
		t.Error("Reset() should restart the timer")
	}
	if !timer.StartTime().After(before) {
		t.Error("Reset() should move the start time forward")
	}
}

func TestTimerElapsedGrows(t *testing.T) {
	timer := NewTimer(nil, "detached")

	time.Sleep(time.Millisecond)
	if timer.Elapsed() <= 0 {
		t.Errorf("Elapsed() = %v, want > 0", timer.Elapsed())
	}

	// A timer without a logger must not panic on Stop.
	timer.Stop()
}
