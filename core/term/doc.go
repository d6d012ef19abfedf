// File: doc.go
// Title: Package Documentation for term
// Description: Package term implements the terminal color driver used by the
//              conlog logger, covering ANSI-capable terminals and the legacy
//              Windows console attribute API behind one interface.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with ANSI and console drivers

// Package term colors terminal output for the conlog logger.
//
// Package: term
// Title: Terminal Color Driver
// Description: This package decides once, at logger construction, how a given
//              output handle can be colored and hands back a Colorizer that
//              downstream code calls uniformly. On POSIX systems an
//              interactive terminal gets ANSI escape sequences. On Windows the
//              console mode is probed: modern consoles with virtual terminal
//              processing also get ANSI, while legacy consoles fall back to
//              the native attribute API with the default attributes
//              snapshotted for reset.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Overview
//
// The exported surface is small: Color names the six foreground colors the
// logger maps severities to, Colorizer sets and resets the color of an output
// target, Detect probes a file handle and selects the right Colorizer
// implementation, and NewANSI builds an escape-sequence Colorizer for writers
// the host already knows to be ANSI-capable.
//
// Colorizer errors are write errors from the underlying stream or console
// API. Callers in the logging path discard them; colorization is best effort
// and must never fail a log call.
//
// Usage:
//
//	c, interactive := term.Detect(os.Stderr)
//	if interactive {
//		c.Set(term.Yellow, true)
//		fmt.Fprint(os.Stderr, "[WARN]")
//		c.Reset()
//	}
package term
