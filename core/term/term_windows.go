// File: term_windows.go
// Title: Terminal Detection and Console Driver for Windows
// Description: Implements the terminal probe for Windows. Consoles with
//              virtual terminal processing use ANSI escapes; legacy consoles
//              fall back to SetConsoleTextAttribute with the default
//              attributes snapshotted for reset.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

//go:build windows

package term

import (
	"os"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/windows"
)

// foregroundMask covers the foreground attribute bits, including intensity.
const foregroundMask uint16 = windows.FOREGROUND_RED | windows.FOREGROUND_GREEN |
	windows.FOREGROUND_BLUE | windows.FOREGROUND_INTENSITY

// IsTerminal reports whether f is attached to an interactive terminal,
// either a Windows console or a Cygwin/MSYS pty.
func IsTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Detect probes f and returns the Colorizer appropriate for it, along with
// whether f is an interactive terminal. Cygwin/MSYS ptys and consoles that
// accept ENABLE_VIRTUAL_TERMINAL_PROCESSING get the ANSI driver; legacy
// consoles get the native attribute driver.
func Detect(f *os.File) (Colorizer, bool) {
	fd := f.Fd()

	if isatty.IsCygwinTerminal(fd) {
		return NewANSI(f), true
	}
	if !isatty.IsTerminal(fd) {
		return nil, false
	}

	h := windows.Handle(fd)

	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		return nil, false
	}
	if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
		return NewANSI(f), true
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err == nil {
		return NewANSI(f), true
	}

	// Legacy console without VT support: drive it through the attribute API,
	// remembering the current attributes so Reset can restore them.
	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(h, &info); err != nil {
		return nil, false
	}
	return &console{handle: h, defaults: uint16(info.Attributes)}, true
}

// console colors a legacy Windows console through the attribute API instead
// of embedding escape sequences in the stream.
type console struct {
	handle   windows.Handle
	defaults uint16
}

// attribute returns the foreground bits for the color.
func attribute(c Color) uint16 {
	switch c {
	case Blue:
		return windows.FOREGROUND_BLUE
	case Cyan:
		return windows.FOREGROUND_GREEN | windows.FOREGROUND_BLUE
	case Green:
		return windows.FOREGROUND_GREEN
	case Yellow:
		return windows.FOREGROUND_RED | windows.FOREGROUND_GREEN
	case Red:
		return windows.FOREGROUND_RED
	case Magenta:
		return windows.FOREGROUND_RED | windows.FOREGROUND_BLUE
	default:
		return windows.FOREGROUND_RED | windows.FOREGROUND_GREEN | windows.FOREGROUND_BLUE
	}
}

// Set replaces the console's foreground bits, keeping the background from
// the snapshot taken at construction.
func (c *console) Set(col Color, bright bool) error {
	fg := attribute(col)
	if bright {
		fg |= windows.FOREGROUND_INTENSITY
	}
	return windows.SetConsoleTextAttribute(c.handle, c.defaults&^foregroundMask|fg)
}

// Reset restores the attributes captured when the console was detected.
func (c *console) Reset() error {
	return windows.SetConsoleTextAttribute(c.handle, c.defaults)
}
