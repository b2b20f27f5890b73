package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, BackendMongo, cfg.Backend)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, "vidlist", cfg.Mongo.DatabaseName)
	assert.Equal(t, "videos", cfg.Mongo.ContentCollection)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ApplyDefaults(t *testing.T) {
	cfg := Config{Backend: BackendMemory, Mongo: MongoConfig{DatabaseName: "custom"}}
	cfg.ApplyDefaults()

	assert.Equal(t, BackendMemory, cfg.Backend)
	assert.Equal(t, "custom", cfg.Mongo.DatabaseName)
	assert.Equal(t, "videos", cfg.Mongo.ContentCollection)
}

func TestConfig_ApplyEnvOverrides(t *testing.T) {
	os.Setenv("MONGO_URI", "mongodb://env:27017")
	os.Setenv("DB_NAME", "envdb")
	os.Setenv("STORAGE_BACKEND", "memory")
	defer func() {
		os.Unsetenv("MONGO_URI")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("STORAGE_BACKEND")
	}()

	cfg := DefaultConfig()
	cfg.ApplyEnvOverrides()

	assert.Equal(t, "mongodb://env:27017", cfg.Mongo.URI)
	assert.Equal(t, "envdb", cfg.Mongo.DatabaseName)
	assert.Equal(t, BackendMemory, cfg.Backend)
}

func TestConfig_ResolvePaths(t *testing.T) {
	cfg := Config{Memory: MemoryConfig{SeedFile: "seed.yml"}}
	cfg.ResolvePaths("config", "data")
	assert.Equal(t, filepath.Join("config", "seed.yml"), cfg.Memory.SeedFile)

	abs := Config{Memory: MemoryConfig{SeedFile: "/etc/vidlist/seed.yml"}}
	abs.ResolvePaths("config", "data")
	assert.Equal(t, "/etc/vidlist/seed.yml", abs.Memory.SeedFile)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    Config
		errMsg string
	}{
		{"unknown backend", Config{Backend: "redis"}, "storage.backend"},
		{"missing uri", Config{Backend: BackendMongo}, "storage.mongo.uri"},
		{"missing database", Config{Backend: BackendMongo, Mongo: MongoConfig{URI: "mongodb://x"}}, "database_name"},
		{"missing collection", Config{Backend: BackendMongo, Mongo: MongoConfig{URI: "mongodb://x", DatabaseName: "db"}}, "content_collection"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}

	assert.NoError(t, (&Config{Backend: BackendMemory}).Validate())
}
