// File: color.go
// Title: Color Definitions and ANSI Driver
// Description: Defines the Color enumeration, the Colorizer interface, and
//              the ANSI escape-sequence implementation shared by all
//              platforms.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package term

import (
	"io"
)

// Color identifies a terminal foreground color.
type Color int

const (
	// Blue is used for trace output
	Blue Color = iota

	// Cyan is used for debug output
	Cyan

	// Green is used for informational output
	Green

	// Yellow is used for warnings
	Yellow

	// Red is used for errors
	Red

	// Magenta is used for fatal errors
	Magenta
)

// ANSI escape sequences for text attributes
const (
	// ResetSeq restores the terminal's default text attributes
	ResetSeq = "\033[0m"

	// BoldSeq switches to bold/bright rendering
	BoldSeq = "\033[1m"
)

// String returns the string representation of the color
func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Cyan:
		return "cyan"
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Magenta:
		return "magenta"
	default:
		return "unknown"
	}
}

// Sequence returns the SGR escape sequence selecting the color
func (c Color) Sequence() string {
	switch c {
	case Blue:
		return "\033[34m"
	case Cyan:
		return "\033[36m"
	case Green:
		return "\033[32m"
	case Yellow:
		return "\033[33m"
	case Red:
		return "\033[31m"
	case Magenta:
		return "\033[35m"
	default:
		return ResetSeq
	}
}

// Colorizer sets and resets the foreground color of an output target. The
// two calls are meant to bracket a single piece of text; the caller is
// responsible for serializing them with the surrounding writes.
type Colorizer interface {
	// Set switches the target to the given color, optionally bright/bold.
	Set(c Color, bright bool) error

	// Reset restores the target's default text attributes.
	Reset() error
}

// ansi colors a stream by writing SGR escape sequences into it.
type ansi struct {
	w io.Writer
}

// NewANSI returns a Colorizer that embeds ANSI escape sequences in w. Use it
// when the host already knows w reaches an ANSI-capable terminal; Detect
// selects it automatically for interactive handles.
func NewANSI(w io.Writer) Colorizer {
	return &ansi{w: w}
}

// Set writes the color escape, prefixed with the bold escape when bright is
// requested. The two escapes go out in one write so a concurrent writer
// holding its own lock cannot split them.
func (a *ansi) Set(c Color, bright bool) error {
	seq := c.Sequence()
	if bright {
		seq = BoldSeq + seq
	}
	_, err := io.WriteString(a.w, seq)
	return err
}

// Reset writes the SGR reset sequence.
func (a *ansi) Reset() error {
	_, err := io.WriteString(a.w, ResetSeq)
	return err
}
