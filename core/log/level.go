// File: level.go
// Title: Log Level Definitions
// Description: Defines the ordered severity levels, their display labels,
//              their terminal colors, and parsing from configuration strings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with six ordered levels

package log

import (
	"strings"

	"github.com/msto63/conlog/core/term"
)

// Level represents the severity of a log message. Levels are totally ordered
// by declaration: Trace is the lowest, Fatal the highest.
type Level int

const (
	// LevelTrace is the most verbose level, used for very detailed debugging
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents critical errors. It is a label only: logging at
	// this level never terminates the process.
	LevelFatal
)

// String returns the lowercase string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Label returns the uppercase display name used in the bracketed output tag
func (l Level) Label() string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Color returns the terminal color associated with the level
func (l Level) Color() term.Color {
	switch l {
	case LevelTrace:
		return term.Blue
	case LevelDebug:
		return term.Cyan
	case LevelInfo:
		return term.Green
	case LevelWarn:
		return term.Yellow
	case LevelError:
		return term.Red
	case LevelFatal:
		return term.Magenta
	default:
		return term.Green
	}
}

// Enabled returns true if a message at this level passes the given minimum
// level, i.e. l >= minLevel in declaration order.
func (l Level) Enabled(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info", "information":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return DefaultLevel(), &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// AllLevels returns all available log levels in ascending order
func AllLevels() []Level {
	return []Level{
		LevelTrace,
		LevelDebug,
		LevelInfo,
		LevelWarn,
		LevelError,
		LevelFatal,
	}
}

// DefaultLevel returns the default minimum level for new loggers. Trace means
// every message passes until the host narrows the filter.
func DefaultLevel() Level {
	return LevelTrace
}
