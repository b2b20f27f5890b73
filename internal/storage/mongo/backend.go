package mongo

import (
	"context"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/internal/storage/config"
)

// Backend bundles the connection and the content executor.
type Backend struct {
	listing.Executor
	provider   *Provider
	collection string
}

// NewBackend connects using the storage config.
func NewBackend(ctx context.Context, cfg config.MongoConfig) (*Backend, error) {
	provider, err := NewProvider(ctx, cfg.URI, cfg.DatabaseName, cfg.ConnectTimeout)
	if err != nil {
		return nil, err
	}
	return &Backend{
		Executor:   NewContentStore(provider.Database(), cfg.ContentCollection),
		provider:   provider,
		collection: cfg.ContentCollection,
	}, nil
}

// EnsureIndexes creates the secondary indexes on the content collection.
func (b *Backend) EnsureIndexes(ctx context.Context) error {
	return EnsureIndexes(ctx, b.provider.Database().Collection(b.collection))
}

// EnsureSearchIndex creates the full-text index used by search stages.
func (b *Backend) EnsureSearchIndex(ctx context.Context, name string, paths []string) (bool, error) {
	return EnsureSearchIndex(ctx, b.provider.Database().Collection(b.collection), name, paths)
}

func (b *Backend) Close(ctx context.Context) error {
	return b.provider.Close(ctx)
}
