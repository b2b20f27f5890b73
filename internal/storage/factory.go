package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/storage/config"
	"github.com/syntrixbase/vidlist/internal/storage/memory"
	"github.com/syntrixbase/vidlist/internal/storage/mongo"
)

// Backend is an executor that owns a connection.
type Backend interface {
	listing.Executor

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}

// IndexManager is implemented by backends that manage their own indexes.
type IndexManager interface {
	EnsureIndexes(ctx context.Context) error
	EnsureSearchIndex(ctx context.Context, name string, paths []string) (bool, error)
}

// Dependency injection for testing
var newMongoBackend = func(ctx context.Context, cfg config.MongoConfig) (Backend, error) {
	return mongo.NewBackend(ctx, cfg)
}

// Open creates the backend selected by cfg.Backend.
func Open(ctx context.Context, cfg config.Config) (Backend, error) {
	switch cfg.Backend {
	case config.BackendMongo:
		b, err := newMongoBackend(ctx, cfg.Mongo)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo backend: %w", err)
		}
		slog.Info("Storage: connected to mongo", "database", cfg.Mongo.DatabaseName, "collection", cfg.Mongo.ContentCollection)
		return b, nil

	case config.BackendMemory:
		s := memory.NewStore()
		if cfg.Memory.SeedFile != "" {
			if err := s.LoadSeedFile(cfg.Memory.SeedFile); err != nil {
				return nil, err
			}
		}
		slog.Info("Storage: using in-memory store", "videos", s.Len())
		return s, nil
	}

	return nil, fmt.Errorf("unsupported backend type: %s", cfg.Backend)
}
