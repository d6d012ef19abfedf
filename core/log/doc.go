// File: doc.go
// Title: Package Documentation for log
// Description: Package log implements the conlog leveled, colorized console
//              logger that multiple goroutines can share safely.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with leveled colorized logging

// Package log provides a thread-safe, leveled, colorized console logger.
//
// Package: log
// Title: conlog Console Logger
// Description: This package implements a synchronous, direct-to-stream logger
//              with six ordered severity levels, an adjustable minimum level,
//              a quiet switch, and per-severity colors applied through the
//              core/term driver when the output is an interactive terminal.
//              The logger is built for external concurrency: any number of
//              goroutines may share one instance, and each emitted line
//              appears contiguously in the output.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Overview
//
// A Logger holds three synchronized cells (minimum level, quiet flag, output
// writer) plus two relaxed color flags. A log call checks the level gate,
// takes the output lock for the whole line, checks the quiet gate, and emits
// timestamp, bracketed level tag (colored on interactive terminals), message
// body, and newline. Write failures are swallowed: logging is best effort
// and never becomes a new source of failure for the host program.
//
// The logger borrows its output stream; it never closes it and has no
// lifecycle beyond construction and use. Fatal is a severity label only —
// it does not terminate the process.
//
// Usage:
//
//	logger := log.New() // stderr, everything passes, color on
//	logger.Info("listening on %s", addr)
//	logger.SetLevel(log.LevelWarn)
//	logger.Debug("dropped: below the minimum level")
//
//	quietable := log.NewWithConfig(log.Config{
//		Output: os.Stdout,
//		Level:  log.LevelInfo,
//		Color:  true,
//		Bright: true,
//	})
//	quietable.SetQuiet(true)
//
//	timer := logger.StartTimer("flush cache")
//	// ... perform the operation
//	timer.Stop()
package log
