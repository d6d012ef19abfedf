// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small string helpers the conlog
//              configuration layer relies on, focused on blank detection and
//              defaulting.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with blank-string helpers

// Package stringx provides small string helpers for the conlog module.
//
// Package: stringx
// Title: Blank-String Helpers
// Description: This package implements Unicode-aware blank detection and
//              value defaulting for configuration strings. A string is blank
//              when it is empty or contains only whitespace; configuration
//              code treats blank values as absent.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Usage:
//
//	if stringx.IsBlank(cfg.Output) {
//		cfg.Output = "stderr"
//	}
//	sink := stringx.DefaultIfBlank(cfg.Output, "stderr")
package stringx
