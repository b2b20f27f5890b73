package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/syntrixbase/vidlist/internal/config"
	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/server"
	"github.com/syntrixbase/vidlist/internal/storage"
	storagecfg "github.com/syntrixbase/vidlist/internal/storage/config"
)

// Dependency injection for testing
var openBackend = func(ctx context.Context, cfg storagecfg.Config) (storage.Backend, error) {
	return storage.Open(ctx, cfg)
}

// Manager owns the process-wide components: the storage backend, the
// listing service and the HTTP server that exposes it.
type Manager struct {
	cfg    *config.Config
	logger *slog.Logger

	backend storage.Backend
	listing listing.Service
	server  server.Service

	mu      sync.Mutex
	started bool
}

func NewManager(cfg *config.Config, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}

	return &Manager{
		cfg:    cfg,
		logger: logger,
	}
}

// Listing returns the listing service. It is nil before Init.
func (m *Manager) Listing() listing.Service {
	return m.listing
}
