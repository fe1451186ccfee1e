// Package config loads application settings from defaults, an optional TOML file and flags.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/rs/zerolog"
)

// Default values.
const (
	DefaultLogFileName     = "deadline-todo.log"
	DefaultLogLevel        = "info"
	DefaultDateFormat      = "2006-01-02"
	DefaultTimeFormat      = "15:04"
	DefaultCompletedFormat = "2006-01-02 15:04:05"
)

// Config holds the settings for the app. Todos themselves are never configured or stored here.
type Config struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	// Go reference-time layouts used when rendering the list.
	DateFormat      string `toml:"date_format"`
	TimeFormat      string `toml:"time_format"`
	CompletedFormat string `toml:"completed_format"`
}

func setDefaults(cfg *Config) {
	cfg.LogFile = filepath.Join(os.TempDir(), DefaultLogFileName)
	cfg.LogLevel = DefaultLogLevel
	cfg.DateFormat = DefaultDateFormat
	cfg.TimeFormat = DefaultTimeFormat
	cfg.CompletedFormat = DefaultCompletedFormat
}

// Load builds the config: defaults first, then the TOML file named by -config (if any), then the
// remaining flags.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := &Config{}
	setDefaults(cfg)

	configFile := fs.String("config", "", "path to a TOML config file")
	logFile := fs.String("log-file", "", "file to write logs to")
	logLevel := fs.String("log-level", "", "log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, cfg); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", *configFile, err)
		}
	}

	if *logFile != "" {
		cfg.LogFile = *logFile
	}

	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}

	if c.LogFile == "" {
		return fmt.Errorf("log_file must not be empty")
	}

	for name, layout := range map[string]string{
		"date_format":      c.DateFormat,
		"time_format":      c.TimeFormat,
		"completed_format": c.CompletedFormat,
	} {
		if layout == "" {
			return fmt.Errorf("%s must not be empty", name)
		}
	}

	return nil
}

// Level returns the zerolog level named by LogLevel.
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("invalid log_level '%s': %w", c.LogLevel, err)
	}

	return level, nil
}
