// File: timex.go
// Title: Timestamp Layouts and Duration Parsing
// Description: Implements named timestamp layouts, layout resolution, and a
//              duration parser that accepts both Go syntax and simple
//              "<number> <unit>" phrases.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Timestamp layouts the logger configuration can name
const (
	// ISO formats
	ISO8601     = "2006-01-02T15:04:05Z07:00"
	ISO8601Date = "2006-01-02"
	ISO8601Time = "15:04:05"

	// Log formats
	LogTimestamp = "2006-01-02 15:04:05.000"
	LogDate      = "2006-01-02"
)

// Format formats t using a named layout or, when the name is unknown, treats
// format as a Go reference layout directly.
func Format(t time.Time, format string) string {
	switch format {
	case "iso8601":
		return t.Format(ISO8601)
	case "iso8601-date":
		return t.Format(ISO8601Date)
	case "iso8601-time":
		return t.Format(ISO8601Time)
	case "log":
		return t.Format(LogTimestamp)
	case "log-date":
		return t.Format(LogDate)
	default:
		return t.Format(format)
	}
}

// ParseDuration parses a duration string. Standard Go syntax ("1s", "500ms")
// is tried first; phrases like "2 seconds" or "1 minute" are accepted as a
// fallback. Negative durations are rejected.
func ParseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("empty duration string")
	}

	if strings.HasPrefix(strings.TrimSpace(value), "-") {
		return 0, fmt.Errorf("negative durations are not supported: %s", value)
	}

	if d, err := time.ParseDuration(value); err == nil {
		return d, nil
	}

	value = strings.ToLower(strings.TrimSpace(value))

	parts := strings.Fields(value)
	if len(parts) == 2 {
		if num, err := strconv.ParseFloat(parts[0], 64); err == nil {
			unit := strings.TrimSuffix(parts[1], "s")

			switch unit {
			case "millisecond", "msec":
				return time.Duration(num * float64(time.Millisecond)), nil
			case "second", "sec":
				return time.Duration(num * float64(time.Second)), nil
			case "minute", "min":
				return time.Duration(num * float64(time.Minute)), nil
			case "hour", "hr":
				return time.Duration(num * float64(time.Hour)), nil
			}
		}
	}

	return 0, fmt.Errorf("unable to parse duration string: %s", value)
}
