package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/syntrixbase/vidlist/internal/gateway"
	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/server"
	"github.com/syntrixbase/vidlist/internal/storage"
)

// Init opens storage and registers the API routes. It must be called once
// before Start or EnsureIndexes.
func (m *Manager) Init(ctx context.Context) error {
	if m.backend != nil {
		return errors.New("manager already initialized")
	}

	backend, err := openBackend(ctx, m.cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	m.backend = backend

	m.listing = listing.NewService(m.cfg.Listing, backend, m.logger)
	m.server = server.New(m.cfg.Server, m.logger)
	gateway.NewServer(m.listing).RegisterRoutes(m.server.HTTPMux())

	m.logger.Info("Services initialized",
		"backend", m.cfg.Storage.Backend,
		"default_limit", m.cfg.Listing.DefaultLimit,
		"max_limit", m.cfg.Listing.MaxLimit,
	)
	return nil
}

// EnsureIndexes creates the secondary indexes and, when withSearch is set,
// the full-text search index. Backends without indexes are skipped.
func (m *Manager) EnsureIndexes(ctx context.Context, withSearch bool) error {
	if m.backend == nil {
		return errors.New("manager not initialized")
	}

	im, ok := m.backend.(storage.IndexManager)
	if !ok {
		m.logger.Info("Storage backend has no indexes to manage", "backend", m.cfg.Storage.Backend)
		return nil
	}

	if err := im.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	m.logger.Info("Secondary indexes ready")

	if !withSearch {
		return nil
	}

	created, err := im.EnsureSearchIndex(ctx, m.cfg.Listing.SearchIndex, m.cfg.Listing.SearchPaths)
	if err != nil {
		return err
	}
	m.logger.Info("Search index ready", "name", m.cfg.Listing.SearchIndex, "created", created)
	return nil
}
