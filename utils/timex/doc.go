// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides the time formatting helpers used by the
//              conlog logger: named timestamp layouts and a forgiving
//              duration parser for configuration values.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with layouts and duration parsing

// Package timex provides time formatting helpers for the conlog logger.
//
// Package: timex
// Title: Timestamp Layouts and Duration Parsing
// Description: This package names the timestamp layouts the logger and its
//              configuration understand and resolves them to Go reference
//              layouts. It also parses human-friendly duration strings such
//              as "1s" or "2 seconds" for settings like the config watch
//              interval.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Usage:
//
//	stamp := timex.Format(time.Now(), "iso8601")
//	interval, err := timex.ParseDuration("5 seconds")
package timex
