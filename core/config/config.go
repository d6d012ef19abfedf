// File: config.go
// Title: Logger Configuration Loading
// Description: Implements the Config type and the loading pipeline: file
//              parsing (TOML or YAML, auto-detected), environment overrides,
//              and construction or reconfiguration of loggers.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with TOML/YAML support

package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/conlog/core/log"
	"github.com/msto63/conlog/utils/stringx"
)

// Format represents the configuration file format
type Format int

const (
	// FormatAuto detects the format from the file extension (default)
	FormatAuto Format = iota

	// FormatTOML forces TOML parsing
	FormatTOML

	// FormatYAML forces YAML parsing
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the logger's tunable settings as they appear in a
// configuration file.
type Config struct {
	Level         string `toml:"level" yaml:"level"`
	Quiet         bool   `toml:"quiet" yaml:"quiet"`
	Color         bool   `toml:"color" yaml:"color"`
	Bright        bool   `toml:"bright" yaml:"bright"`
	TimeFormat    string `toml:"time_format" yaml:"time_format"`
	Output        string `toml:"output" yaml:"output"`
	WatchInterval string `toml:"watch_interval" yaml:"watch_interval"`
}

// Options defines options for loading configuration
type Options struct {
	// Format overrides extension-based detection.
	Format Format

	// EnvPrefix enables environment overrides: with "MYAPP_LOG", the
	// variable MYAPP_LOG_LEVEL overrides the level key, and so on for
	// QUIET, COLOR, BRIGHT, TIME_FORMAT, OUTPUT, and WATCH_INTERVAL.
	// Blank disables overrides.
	EnvPrefix string
}

// Default returns the settings a bare logger starts with: level trace,
// color and brightness on, output stderr.
func Default() Config {
	return Config{
		Level:  log.DefaultLevel().String(),
		Color:  true,
		Bright: true,
		Output: "stderr",
	}
}

// Load loads configuration from a file with default options
func Load(path string) (Config, error) {
	return LoadWithOptions(path, Options{})
}

// LoadWithOptions loads configuration from a file with custom options. Keys
// missing from the file keep their Default() values; environment overrides
// are applied last.
func LoadWithOptions(path string, options Options) (Config, error) {
	cfg := Default()

	if stringx.IsBlank(path) {
		return cfg, fmt.Errorf("config file path cannot be empty")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	if err := parseContent(content, format, &cfg); err != nil {
		return cfg, err
	}

	applyEnv(&cfg, options.EnvPrefix)
	return cfg, nil
}

// detectFormat maps the file extension to a format; TOML is the default.
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parseContent unmarshals content into cfg according to format.
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parsing YAML config: %w", err)
		}
	default:
		if err := toml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("parsing TOML config: %w", err)
		}
	}
	return nil
}

// applyEnv overrides cfg fields from PREFIX_* environment variables.
func applyEnv(cfg *Config, prefix string) {
	if stringx.IsBlank(prefix) {
		return
	}

	lookup := func(key string) (string, bool) {
		return os.LookupEnv(prefix + "_" + key)
	}

	if v, ok := lookup("LEVEL"); ok {
		cfg.Level = v
	}
	if v, ok := lookup("QUIET"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quiet = b
		}
	}
	if v, ok := lookup("COLOR"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Color = b
		}
	}
	if v, ok := lookup("BRIGHT"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Bright = b
		}
	}
	if v, ok := lookup("TIME_FORMAT"); ok {
		cfg.TimeFormat = v
	}
	if v, ok := lookup("OUTPUT"); ok {
		cfg.Output = v
	}
	if v, ok := lookup("WATCH_INTERVAL"); ok {
		cfg.WatchInterval = v
	}
}

// Logger builds a new logger from the settings.
func (c Config) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(stringx.DefaultIfBlank(c.Level, log.DefaultLevel().String()))
	if err != nil {
		return nil, err
	}

	out, err := c.sink()
	if err != nil {
		return nil, err
	}

	return log.NewWithConfig(log.Config{
		Output:     out,
		Level:      level,
		Quiet:      c.Quiet,
		Color:      c.Color,
		Bright:     c.Bright,
		TimeFormat: c.TimeFormat,
	}), nil
}

// Apply pushes the level, quiet, color, and brightness settings into an
// existing logger. The output sink and timestamp layout are fixed at the
// logger's construction and are not touched.
func (c Config) Apply(l *log.Logger) error {
	level, err := log.ParseLevel(stringx.DefaultIfBlank(c.Level, log.DefaultLevel().String()))
	if err != nil {
		return err
	}

	l.SetLevel(level)
	l.SetQuiet(c.Quiet)
	l.SetColor(c.Color)
	l.SetBright(c.Bright)
	return nil
}

// sink resolves the named output stream.
func (c Config) sink() (io.Writer, error) {
	switch strings.ToLower(stringx.DefaultIfBlank(c.Output, "stderr")) {
	case "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	default:
		return nil, fmt.Errorf("unknown output %q: want stderr or stdout", c.Output)
	}
}
