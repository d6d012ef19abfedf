// File: watch.go
// Title: Configuration File Watching
// Description: Implements a polling watcher that re-applies a configuration
//              file's settings to a live logger whenever the file changes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation of polling-based watching

package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/msto63/conlog/core/log"
	"github.com/msto63/conlog/utils/stringx"
	"github.com/msto63/conlog/utils/timex"
)

// defaultWatchInterval is used when the file does not set watch_interval.
const defaultWatchInterval = time.Second

// Watch loads path, applies its settings to logger, and starts a polling
// goroutine that re-applies them whenever the file's modification time
// advances. The poll interval comes from the file's watch_interval key.
// A file that disappears or turns unparsable mid-watch is skipped and the
// last good settings stay in effect.
//
// The returned stop function ends the watching goroutine; calling it more
// than once is safe.
func Watch(path string, logger *log.Logger, options Options) (func(), error) {
	if stringx.IsBlank(path) {
		return nil, fmt.Errorf("file path required for watching")
	}

	cfg, err := LoadWithOptions(path, options)
	if err != nil {
		return nil, err
	}
	if err := cfg.Apply(logger); err != nil {
		return nil, err
	}

	interval := defaultWatchInterval
	if stringx.IsNotBlank(cfg.WatchInterval) {
		d, err := timex.ParseDuration(cfg.WatchInterval)
		if err != nil {
			return nil, fmt.Errorf("invalid watch_interval: %w", err)
		}
		// The ticker needs a positive period; "0s" parses but cannot poll.
		if d <= 0 {
			return nil, fmt.Errorf("invalid watch_interval: must be positive, got %q", cfg.WatchInterval)
		}
		interval = d
	}

	var lastModified time.Time
	if info, err := os.Stat(path); err == nil {
		lastModified = info.ModTime()
	}

	done := make(chan struct{})
	var once sync.Once

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				info, err := os.Stat(path)
				if err != nil {
					// File may be mid-replace; try again next tick.
					continue
				}
				if !info.ModTime().After(lastModified) {
					continue
				}
				lastModified = info.ModTime()

				cfg, err := LoadWithOptions(path, options)
				if err != nil {
					continue
				}
				cfg.Apply(logger)
			}
		}
	}()

	return func() {
		once.Do(func() { close(done) })
	}, nil
}
