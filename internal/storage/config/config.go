package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Backend types
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

type Config struct {
	Backend string       `yaml:"backend"` // "mongo", "memory"
	Mongo   MongoConfig  `yaml:"mongo"`
	Memory  MemoryConfig `yaml:"memory"`
}

type MongoConfig struct {
	URI               string        `yaml:"uri"`
	DatabaseName      string        `yaml:"database_name"`
	ContentCollection string        `yaml:"content_collection"`
	ConnectTimeout    time.Duration `yaml:"connect_timeout"`
}

type MemoryConfig struct {
	// SeedFile is an optional YAML fixture loaded at startup.
	SeedFile string `yaml:"seed_file"`
}

func DefaultConfig() Config {
	return Config{
		Backend: BackendMongo,
		Mongo: MongoConfig{
			URI:               "mongodb://localhost:27017",
			DatabaseName:      "vidlist",
			ContentCollection: "videos",
			ConnectTimeout:    10 * time.Second,
		},
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()
	if c.Backend == "" {
		c.Backend = defaults.Backend
	}
	if c.Mongo.URI == "" {
		c.Mongo.URI = defaults.Mongo.URI
	}
	if c.Mongo.DatabaseName == "" {
		c.Mongo.DatabaseName = defaults.Mongo.DatabaseName
	}
	if c.Mongo.ContentCollection == "" {
		c.Mongo.ContentCollection = defaults.Mongo.ContentCollection
	}
	if c.Mongo.ConnectTimeout == 0 {
		c.Mongo.ConnectTimeout = defaults.Mongo.ConnectTimeout
	}
}

// ApplyEnvOverrides applies environment variable overrides.
func (c *Config) ApplyEnvOverrides() {
	if val := os.Getenv("STORAGE_BACKEND"); val != "" {
		c.Backend = val
	}
	if val := os.Getenv("MONGO_URI"); val != "" {
		c.Mongo.URI = val
	}
	if val := os.Getenv("DB_NAME"); val != "" {
		c.Mongo.DatabaseName = val
	}
}

// ResolvePaths resolves the seed file relative to the config directory.
func (c *Config) ResolvePaths(configDir, _ string) {
	if c.Memory.SeedFile != "" && !filepath.IsAbs(c.Memory.SeedFile) {
		c.Memory.SeedFile = filepath.Clean(filepath.Join(configDir, c.Memory.SeedFile))
	}
}

func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("storage.mongo.uri is required")
		}
		if c.Mongo.DatabaseName == "" {
			return fmt.Errorf("storage.mongo.database_name is required")
		}
		if c.Mongo.ContentCollection == "" {
			return fmt.Errorf("storage.mongo.content_collection is required")
		}
	case BackendMemory:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", BackendMongo, BackendMemory, c.Backend)
	}
	return nil
}
