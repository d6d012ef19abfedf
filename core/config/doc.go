// File: doc.go
// Title: Package Documentation for config
// Description: Package config loads conlog logger settings from TOML or YAML
//              files with optional environment-variable overrides and
//              polling-based hot reload.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

// Package config loads logger settings for the conlog module.
//
// Package: config
// Title: Logger Configuration
// Description: This package reads the logger's tunable settings — minimum
//              level, quiet flag, color and brightness, timestamp layout,
//              and output sink — from a TOML or YAML file, with the format
//              auto-detected from the file extension. Values can be
//              overridden through environment variables under a caller-
//              chosen prefix, and a polling watcher can re-apply the file's
//              settings to a live logger when it changes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Overview
//
// A Config is a plain value with defaults from Default(). Load fills it from
// a file, Logger builds a new logger from it, and Apply pushes its settings
// into an existing logger. Watch ties the pieces together for hot reload.
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("conlog.toml", config.Options{
//		EnvPrefix: "MYAPP_LOG",
//	})
//	if err != nil {
//		return err
//	}
//	logger, err := cfg.Logger()
//
// Example conlog.toml:
//
//	level = "info"
//	quiet = false
//	color = true
//	bright = true
//	time_format = "iso8601"
//	output = "stderr"
//	watch_interval = "2s"
package config
