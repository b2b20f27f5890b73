package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// Log formats
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// LoggingConfig holds logging configuration. The console and file outputs
// inherit Level and Format unless they set their own.
type LoggingConfig struct {
	Level    string         `yaml:"level"`
	Format   string         `yaml:"format"`
	Dir      string         `yaml:"dir"` // holds vidlist.log and errors.log
	Rotation RotationConfig `yaml:"rotation"`
	Console  OutputConfig   `yaml:"console"`
	File     OutputConfig   `yaml:"file"`
}

// RotationConfig is passed through to lumberjack.
type RotationConfig struct {
	MaxSize    int  `yaml:"max_size"`    // MB
	MaxBackups int  `yaml:"max_backups"` // files
	MaxAge     int  `yaml:"max_age"`     // days
	Compress   bool `yaml:"compress"`
}

// OutputConfig enables one log output and optionally overrides its level
// and format.
type OutputConfig struct {
	Enabled bool   `yaml:"enabled"`
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
}

func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Level:  "info",
		Format: LogFormatText,
		Dir:    "logs",
		Rotation: RotationConfig{
			MaxSize:    100,
			MaxBackups: 10,
			MaxAge:     30,
			Compress:   true,
		},
		Console: OutputConfig{Enabled: true, Level: "info", Format: LogFormatText},
		File:    OutputConfig{Enabled: true, Level: "info", Format: LogFormatText},
	}
}

// ParseLevel parses an slog level name such as "debug" or "WARN".
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return l, nil
}

// SlogLevel returns the parsed output level, or info if it does not parse.
func (o OutputConfig) SlogLevel() slog.Level {
	l, _ := ParseLevel(o.Level)
	return l
}

// ApplyDefaults fills in missing values. A section left entirely empty in
// YAML means the output is enabled with inherited settings.
func (c *LoggingConfig) ApplyDefaults() {
	defaults := DefaultLoggingConfig()
	if c.Level == "" {
		c.Level = defaults.Level
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.Dir == "" {
		c.Dir = defaults.Dir
	}
	if c.Rotation.MaxSize == 0 {
		c.Rotation.MaxSize = defaults.Rotation.MaxSize
	}
	if c.Rotation.MaxBackups == 0 {
		c.Rotation.MaxBackups = defaults.Rotation.MaxBackups
	}
	if c.Rotation.MaxAge == 0 {
		c.Rotation.MaxAge = defaults.Rotation.MaxAge
	}
	c.Console.inherit(c.Level, c.Format)
	c.File.inherit(c.Level, c.Format)
}

func (o *OutputConfig) inherit(level, format string) {
	if *o == (OutputConfig{}) {
		o.Enabled = true
	}
	if o.Level == "" {
		o.Level = level
	}
	if o.Format == "" {
		o.Format = format
	}
}

// ApplyEnvOverrides applies environment variable overrides.
// LOG_LEVEL sets the level of every output.
func (c *LoggingConfig) ApplyEnvOverrides() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Level = val
		c.Console.Level = val
		c.File.Level = val
	}
}

// ResolvePaths resolves a relative log directory against dataDir.
func (c *LoggingConfig) ResolvePaths(_, dataDir string) {
	if c.Dir != "" && !filepath.IsAbs(c.Dir) {
		c.Dir = filepath.Clean(filepath.Join(dataDir, c.Dir))
	}
}

func (c *LoggingConfig) Validate() error {
	if err := validateOutput("logging", c.Level, c.Format); err != nil {
		return err
	}
	outputs := []struct {
		name string
		out  OutputConfig
	}{
		{"logging.console", c.Console},
		{"logging.file", c.File},
	}
	for _, o := range outputs {
		if !o.out.Enabled {
			continue
		}
		if err := validateOutput(o.name, o.out.Level, o.out.Format); err != nil {
			return err
		}
	}
	if c.File.Enabled && c.Dir == "" {
		return fmt.Errorf("logging.dir is required when file logging is enabled")
	}
	return nil
}

// validateOutput checks a level and format pair. Empty values inherit and
// are accepted.
func validateOutput(name, level, format string) error {
	if level != "" {
		if _, err := ParseLevel(level); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	switch format {
	case "", LogFormatText, LogFormatJSON:
		return nil
	default:
		return fmt.Errorf("%s: invalid log format %q (must be text or json)", name, format)
	}
}
