package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/server"
	storage "github.com/syntrixbase/vidlist/internal/storage/config"
)

// Config holds the application configuration
type Config struct {
	Server  server.Config  `yaml:"server"`
	Storage storage.Config `yaml:"storage"`
	Listing listing.Config `yaml:"listing"`
	Logging LoggingConfig  `yaml:"logging"`
}

// Default returns a config with every section at its defaults.
func Default() *Config {
	return &Config{
		Server:  server.DefaultConfig(),
		Storage: storage.DefaultConfig(),
		Listing: listing.DefaultConfig(),
		Logging: DefaultLoggingConfig(),
	}
}

// LoadConfig loads configuration from configDir and the environment.
// Order: defaults -> config.yml -> config.local.yml -> ApplyEnvOverrides -> ResolvePaths -> Validate
// Relative runtime paths resolve against the parent of configDir.
func LoadConfig(configDir string) (*Config, error) {
	cfg := Default()

	for _, name := range []string{"config.yml", "config.local.yml"} {
		if err := loadFile(filepath.Join(configDir, name), cfg); err != nil {
			return nil, err
		}
	}

	dataDir := filepath.Dir(filepath.Clean(configDir))
	if err := ApplyServiceConfigs(configDir, dataDir,
		&cfg.Server,
		&cfg.Storage,
		&cfg.Listing,
		&cfg.Logging,
	); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// loadFile merges a YAML file into cfg. A missing file is skipped;
// an unreadable or malformed one is reported and skipped.
func loadFile(filename string, cfg *Config) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		slog.Warn("Config: failed to read file", "file", filename, "error", err)
		return nil
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return nil
}
