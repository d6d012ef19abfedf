// File: term_other.go
// Title: Terminal Detection for POSIX Systems
// Description: Implements the terminal probe for non-Windows platforms, where
//              an interactive handle implies ANSI capability.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

//go:build !windows

package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to an interactive terminal.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Detect probes f and returns the Colorizer appropriate for it, along with
// whether f is an interactive terminal. On POSIX systems every interactive
// terminal is treated as ANSI-capable; for non-interactive handles the
// Colorizer is nil and the caller should emit plain text.
func Detect(f *os.File) (Colorizer, bool) {
	if !IsTerminal(f) {
		return nil, false
	}
	return NewANSI(f), true
}
