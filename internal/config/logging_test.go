package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestDefaultLoggingConfig(t *testing.T) {
	cfg := DefaultLoggingConfig()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "logs", cfg.Dir)
	assert.Equal(t, 100, cfg.Rotation.MaxSize)
	assert.True(t, cfg.Rotation.Compress)
	assert.True(t, cfg.Console.Enabled)
	assert.True(t, cfg.File.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoggingConfig_YAML(t *testing.T) {
	yamlData := `
level: "debug"
format: "json"
dir: "/var/log/vidlist"
rotation:
  max_size: 50
console:
  enabled: false
`

	var cfg LoggingConfig
	assert.NoError(t, yaml.Unmarshal([]byte(yamlData), &cfg))
	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "/var/log/vidlist", cfg.Dir)
	assert.Equal(t, 50, cfg.Rotation.MaxSize)
	assert.False(t, cfg.Console.Enabled)
}

func TestLoggingConfig_ApplyDefaults(t *testing.T) {
	cfg := &LoggingConfig{
		Level:   "debug",
		Format:  "json",
		Console: OutputConfig{Enabled: true, Level: "warn"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "warn", cfg.Console.Level)
	assert.Equal(t, "json", cfg.Console.Format)
	assert.Equal(t, "logs", cfg.Dir)
	assert.Equal(t, 10, cfg.Rotation.MaxBackups)
	assert.True(t, cfg.File.Enabled)
	assert.Equal(t, "debug", cfg.File.Level)
	assert.Equal(t, "json", cfg.File.Format)
	assert.False(t, cfg.Rotation.Compress)
}

func TestLoggingConfig_ApplyEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	cfg := DefaultLoggingConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "debug", cfg.Level)
	assert.Equal(t, "debug", cfg.Console.Level)
	assert.Equal(t, "debug", cfg.File.Level)
}

func TestLoggingConfig_ResolvePaths(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		expected string
	}{
		{"relative path resolved from data dir", "logs", "/app/logs"},
		{"absolute path unchanged", "/var/log/vidlist", "/var/log/vidlist"},
		{"relative with subdirs", "logs/app", "/app/logs/app"},
		{"empty dir unchanged", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &LoggingConfig{Dir: tt.dir}
			cfg.ResolvePaths("/app/config", "/app")
			assert.Equal(t, tt.expected, cfg.Dir)
		})
	}
}

func TestLoggingConfig_Validate(t *testing.T) {
	valid := LoggingConfig{Level: "info", Format: "text", Dir: "logs"}

	tests := []struct {
		name   string
		mutate func(c *LoggingConfig)
	}{
		{"invalid level", func(c *LoggingConfig) { c.Level = "verbose" }},
		{"invalid format", func(c *LoggingConfig) { c.Format = "xml" }},
		{"invalid console level", func(c *LoggingConfig) { c.Console = OutputConfig{Enabled: true, Level: "bad"} }},
		{"invalid console format", func(c *LoggingConfig) { c.Console = OutputConfig{Enabled: true, Format: "xml"} }},
		{"invalid file level", func(c *LoggingConfig) { c.File = OutputConfig{Enabled: true, Level: "bad"} }},
		{"invalid file format", func(c *LoggingConfig) { c.File = OutputConfig{Enabled: true, Format: "xml"} }},
		{"file without dir", func(c *LoggingConfig) { c.File = OutputConfig{Enabled: true}; c.Dir = "" }},
	}

	assert.NoError(t, valid.Validate())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}

	disabled := valid
	disabled.File = OutputConfig{Enabled: false, Level: "bad"}
	assert.NoError(t, disabled.Validate())

	consoleOnly := valid
	consoleOnly.Dir = ""
	consoleOnly.Console = OutputConfig{Enabled: true}
	assert.NoError(t, consoleOnly.Validate())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"WARN", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			got, err := ParseLevel(tt.level)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}

	assert.Equal(t, slog.LevelDebug, OutputConfig{Level: "debug"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, OutputConfig{Level: "nope"}.SlogLevel())
}
