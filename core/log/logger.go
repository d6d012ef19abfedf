// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type: the synchronized write path that
//              filters by level, honors the quiet switch, and emits one
//              timestamped, optionally colored line per call under a single
//              continuous output lock.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with synchronized write path

package log

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/msto63/conlog/core/term"
	"github.com/msto63/conlog/utils/syncx"
	"github.com/msto63/conlog/utils/timex"
)

// Logger is a leveled console logger that any number of goroutines can share.
// The minimum level, the quiet flag, and the output writer each live in their
// own synchronized cell; a log call holds the output cell for the whole line,
// so concurrent calls never interleave their bytes.
//
// A Logger must not be copied after first use.
type Logger struct {
	// Synchronized state
	out   syncx.Cell[io.Writer]
	level syncx.Cell[Level]
	quiet syncx.Cell[bool]

	// Relaxed settings. These are deliberately unsynchronized: a racy read
	// yields at worst a stale color choice, never a corrupted line.
	useColor  bool
	useBright bool

	// Fixed at construction
	colorizer  term.Colorizer
	isTerminal bool
	timeFormat string
}

// Config represents logger configuration
type Config struct {
	// Output is the sink log lines are written to. The logger borrows it and
	// never closes it. Defaults to os.Stderr.
	Output io.Writer

	// Level is the initial minimum level. The zero value is LevelTrace, so
	// everything passes unless narrowed.
	Level Level

	// Quiet suppresses all output while keeping level filtering semantics.
	Quiet bool

	// Color enables colored level tags on interactive terminals.
	Color bool

	// Bright renders colored tags bold/bright.
	Bright bool

	// ForceColor treats Output as an ANSI-capable terminal even when it is
	// not a terminal handle, e.g. when the host pipes through a pager that
	// understands escapes.
	ForceColor bool

	// TimeFormat selects the timestamp representation: empty means raw epoch
	// seconds, otherwise a named or Go reference layout (see utils/timex).
	TimeFormat string
}

// New creates a logger writing to standard error with default configuration:
// minimum level Trace, not quiet, color and brightness enabled.
func New() *Logger {
	return NewWithConfig(Config{
		Output: os.Stderr,
		Level:  DefaultLevel(),
		Color:  true,
		Bright: true,
	})
}

// NewWithConfig creates a logger with the specified configuration. The
// terminal capability of the output is probed exactly once, here, and the
// matching color driver is fixed for the logger's lifetime.
func NewWithConfig(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{
		useColor:   config.Color,
		useBright:  config.Bright,
		timeFormat: config.TimeFormat,
	}
	l.out.Set(out)
	l.level.Set(config.Level)
	l.quiet.Set(config.Quiet)

	if f, ok := out.(*os.File); ok {
		l.colorizer, l.isTerminal = term.Detect(f)
	}
	if config.ForceColor && l.colorizer == nil {
		l.colorizer = term.NewANSI(out)
		l.isTerminal = true
	}

	return l
}

// SetLevel replaces the minimum level; subsequent calls filter against the
// new value.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(level)
}

// GetLevel returns the current minimum level
func (l *Logger) GetLevel() Level {
	return l.level.Get()
}

// SetQuiet suppresses (true) or restores (false) all output. The level gate
// is still evaluated while quiet, so filtering semantics stay consistent.
func (l *Logger) SetQuiet(quiet bool) {
	l.quiet.Set(quiet)
}

// IsQuiet returns whether output is currently suppressed
func (l *Logger) IsQuiet() bool {
	return l.quiet.Get()
}

// SetColor enables or disables colored level tags. Plain assignment, not
// synchronized: see the relaxed-settings note on Logger.
func (l *Logger) SetColor(enabled bool) {
	l.useColor = enabled
}

// SetBright enables or disables bold/bright color rendering. Plain
// assignment, not synchronized: see the relaxed-settings note on Logger.
func (l *Logger) SetBright(bright bool) {
	l.useBright = bright
}

// Log emits one line at the given level if it passes the minimum level and
// the logger is not quiet. The message body is fmt.Sprintf(format, args...).
// Log never returns or raises an error: write failures are discarded and the
// line is simply lost.
func (l *Logger) Log(level Level, format string, args ...interface{}) {
	// Cells are acquired level -> output -> quiet; the deferred releases run
	// in reverse. The output lock spans the whole line.
	min := l.level.Acquire()
	defer l.level.Release()

	if !level.Enabled(*min) {
		return
	}

	out := l.out.Acquire()
	defer l.out.Release()

	quiet := l.quiet.Acquire()
	defer l.quiet.Release()

	if *quiet {
		return
	}

	w := *out
	io.WriteString(w, l.timestamp()+" ")

	if l.useColor && l.isTerminal && l.colorizer != nil {
		l.colorizer.Set(level.Color(), l.useBright)
		io.WriteString(w, "["+level.Label()+"]")
		l.colorizer.Reset()
		io.WriteString(w, ": ")
	} else {
		io.WriteString(w, "["+level.Label()+"]: ")
	}

	fmt.Fprintf(w, format, args...)
	io.WriteString(w, "\n")
}

// Trace logs a trace level message
func (l *Logger) Trace(format string, args ...interface{}) {
	l.Log(LevelTrace, format, args...)
}

// Debug logs a debug level message
func (l *Logger) Debug(format string, args ...interface{}) {
	l.Log(LevelDebug, format, args...)
}

// Info logs an info level message
func (l *Logger) Info(format string, args ...interface{}) {
	l.Log(LevelInfo, format, args...)
}

// Warn logs a warning level message
func (l *Logger) Warn(format string, args ...interface{}) {
	l.Log(LevelWarn, format, args...)
}

// Error logs an error level message
func (l *Logger) Error(format string, args ...interface{}) {
	l.Log(LevelError, format, args...)
}

// Fatal logs a fatal level message. Unlike the standard library, it does not
// terminate the process; Fatal is a severity label, not a control-flow
// trigger.
func (l *Logger) Fatal(format string, args ...interface{}) {
	l.Log(LevelFatal, format, args...)
}

// timestamp renders the current time: raw epoch seconds by default, or the
// configured layout.
func (l *Logger) timestamp() string {
	now := time.Now()
	if l.timeFormat == "" {
		return strconv.FormatInt(now.Unix(), 10)
	}
	return timex.Format(now, l.timeFormat)
}
