// File: config_test.go
// Title: Logger Configuration Tests
// Description: Tests for TOML/YAML loading, format detection, environment
//              overrides, logger construction, and hot reload.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/conlog/core/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Level != "trace" {
		t.Errorf("Default() level = %q, want trace", cfg.Level)
	}
	if !cfg.Color || !cfg.Bright {
		t.Error("Default() should enable color and brightness")
	}
	if cfg.Quiet {
		t.Error("Default() should not be quiet")
	}
	if cfg.Output != "stderr" {
		t.Errorf("Default() output = %q, want stderr", cfg.Output)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "conlog.toml", `
level = "warn"
quiet = true
color = false
bright = false
time_format = "iso8601"
output = "stdout"
watch_interval = "2s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level != "warn" {
		t.Errorf("level = %q, want warn", cfg.Level)
	}
	if !cfg.Quiet || cfg.Color || cfg.Bright {
		t.Errorf("flags = quiet:%v color:%v bright:%v, want true/false/false", cfg.Quiet, cfg.Color, cfg.Bright)
	}
	if cfg.TimeFormat != "iso8601" {
		t.Errorf("time_format = %q, want iso8601", cfg.TimeFormat)
	}
	if cfg.Output != "stdout" {
		t.Errorf("output = %q, want stdout", cfg.Output)
	}
	if cfg.WatchInterval != "2s" {
		t.Errorf("watch_interval = %q, want 2s", cfg.WatchInterval)
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "conlog.yaml", `
level: error
quiet: false
color: true
bright: false
output: stderr
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level != "error" {
		t.Errorf("level = %q, want error", cfg.Level)
	}
	if cfg.Bright {
		t.Error("bright should be false")
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := writeFile(t, "conlog.toml", `level = "info"`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Level != "info" {
		t.Errorf("level = %q, want info", cfg.Level)
	}
	// Untouched keys keep Default() values. The flag defaults are only
	// preserved for keys absent from the file.
	if !cfg.Color || !cfg.Bright {
		t.Error("missing keys should keep defaults (color/bright true)")
	}
	if cfg.Output != "stderr" {
		t.Errorf("output = %q, want default stderr", cfg.Output)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T) error
	}{
		{"blank path", func(t *testing.T) error {
			_, err := Load("  ")
			return err
		}},
		{"missing file", func(t *testing.T) error {
			_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
			return err
		}},
		{"bad toml", func(t *testing.T) error {
			_, err := Load(writeFile(t, "bad.toml", "level = [unterminated"))
			return err
		}},
		{"bad yaml", func(t *testing.T) error {
			_, err := Load(writeFile(t, "bad.yaml", "level: [a, b"))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(t); err == nil {
				t.Error("Load() should fail")
			}
		})
	}
}

func TestFormatOverride(t *testing.T) {
	// YAML content behind a .conf extension parses once the format is forced.
	path := writeFile(t, "logger.conf", "level: debug\n")

	cfg, err := LoadWithOptions(path, Options{Format: FormatYAML})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if cfg.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeFile(t, "conlog.toml", `
level = "info"
quiet = false
color = true
`)

	t.Setenv("CONLOGTEST_LEVEL", "error")
	t.Setenv("CONLOGTEST_QUIET", "true")
	t.Setenv("CONLOGTEST_COLOR", "false")
	t.Setenv("CONLOGTEST_OUTPUT", "stdout")

	cfg, err := LoadWithOptions(path, Options{EnvPrefix: "CONLOGTEST"})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	if cfg.Level != "error" {
		t.Errorf("level = %q, want env override error", cfg.Level)
	}
	if !cfg.Quiet {
		t.Error("quiet should be overridden to true")
	}
	if cfg.Color {
		t.Error("color should be overridden to false")
	}
	if cfg.Output != "stdout" {
		t.Errorf("output = %q, want stdout", cfg.Output)
	}
}

func TestEnvOverridesDisabledWithoutPrefix(t *testing.T) {
	path := writeFile(t, "conlog.toml", `level = "info"`)

	t.Setenv("CONLOGTEST_LEVEL", "error")

	cfg, err := LoadWithOptions(path, Options{})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}
	if cfg.Level != "info" {
		t.Errorf("level = %q, want info (no env prefix set)", cfg.Level)
	}
}

func TestConfigLogger(t *testing.T) {
	cfg := Default()
	cfg.Level = "warn"
	cfg.Quiet = true

	logger, err := cfg.Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	if logger.GetLevel() != log.LevelWarn {
		t.Errorf("built logger level = %v, want %v", logger.GetLevel(), log.LevelWarn)
	}
	if !logger.IsQuiet() {
		t.Error("built logger should be quiet")
	}
}

func TestConfigLoggerErrors(t *testing.T) {
	bad := Default()
	bad.Level = "verbose"
	if _, err := bad.Logger(); err == nil {
		t.Error("Logger() should fail for an unknown level")
	}

	badSink := Default()
	badSink.Output = "syslog"
	if _, err := badSink.Logger(); err == nil {
		t.Error("Logger() should fail for an unknown output")
	}
}

func TestConfigApply(t *testing.T) {
	logger, err := Default().Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	cfg := Default()
	cfg.Level = "error"
	cfg.Quiet = true
	if err := cfg.Apply(logger); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if logger.GetLevel() != log.LevelError {
		t.Errorf("applied level = %v, want %v", logger.GetLevel(), log.LevelError)
	}
	if !logger.IsQuiet() {
		t.Error("applied quiet should be true")
	}

	bad := Default()
	bad.Level = "verbose"
	if err := bad.Apply(logger); err == nil {
		t.Error("Apply() should fail for an unknown level")
	}
}

func TestWatchReload(t *testing.T) {
	path := writeFile(t, "conlog.toml", `
level = "info"
watch_interval = "10ms"
`)

	logger, err := Default().Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	stop, err := Watch(path, logger, Options{})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}
	defer stop()

	if logger.GetLevel() != log.LevelInfo {
		t.Fatalf("initial applied level = %v, want %v", logger.GetLevel(), log.LevelInfo)
	}

	if err := os.WriteFile(path, []byte("level = \"error\"\nwatch_interval = \"10ms\"\n"), 0o644); err != nil {
		t.Fatalf("rewriting config: %v", err)
	}
	// Push the mtime clearly forward; coarse filesystem timestamps would
	// otherwise hide the change from the poller.
	future := time.Now().Add(time.Second)
	if err := os.Chtimes(path, future, future); err != nil {
		t.Fatalf("bumping mtime: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for logger.GetLevel() != log.LevelError {
		if time.Now().After(deadline) {
			t.Fatalf("watcher did not apply the new level, still %v", logger.GetLevel())
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestWatchErrors(t *testing.T) {
	logger, err := Default().Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	if _, err := Watch("", logger, Options{}); err == nil {
		t.Error("Watch() should fail for a blank path")
	}

	bad := writeFile(t, "conlog.toml", "level = \"info\"\nwatch_interval = \"soon\"\n")
	if _, err := Watch(bad, logger, Options{}); err == nil {
		t.Error("Watch() should fail for an invalid interval")
	}
}

func TestWatchRejectsNonPositiveInterval(t *testing.T) {
	logger, err := Default().Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	// These parse as durations but cannot drive a poller; Watch must return
	// an error instead of panicking in the watching goroutine.
	intervals := []string{"0s", "0.0000001 seconds"}
	for _, interval := range intervals {
		t.Run(interval, func(t *testing.T) {
			path := writeFile(t, "conlog.toml", "level = \"info\"\nwatch_interval = \""+interval+"\"\n")
			if _, err := Watch(path, logger, Options{}); err == nil {
				t.Errorf("Watch() should fail for watch_interval %q", interval)
			}
		})
	}
}

func TestWatchStopIdempotent(t *testing.T) {
	path := writeFile(t, "conlog.toml", "level = \"info\"\n")

	logger, err := Default().Logger()
	if err != nil {
		t.Fatalf("Logger() error = %v", err)
	}

	stop, err := Watch(path, logger, Options{})
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	stop()
	stop() // must not panic
}
