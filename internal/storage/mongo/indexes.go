package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// EnsureIndexes creates the secondary indexes the listing pipeline relies on.
func EnsureIndexes(ctx context.Context, coll *mongo.Collection) error {
	_, err := coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: model.FieldOwner, Value: 1}}},
		{Keys: bson.D{{Key: model.FieldPublished, Value: 1}, {Key: model.FieldCreatedAt, Value: -1}}},
	})
	return err
}

// SearchIndexDefinition returns the Atlas Search mapping for the given text fields.
func SearchIndexDefinition(paths []string) bson.D {
	fields := bson.D{}
	for _, p := range paths {
		fields = append(fields, bson.E{Key: p, Value: bson.D{{Key: "type", Value: "string"}}})
	}
	return bson.D{{Key: "mappings", Value: bson.D{
		{Key: "dynamic", Value: false},
		{Key: "fields", Value: fields},
	}}}
}

// EnsureSearchIndex creates the named Atlas Search index unless it already exists.
// It requires an Atlas deployment (or a local Atlas image).
func EnsureSearchIndex(ctx context.Context, coll *mongo.Collection, name string, paths []string) (bool, error) {
	cursor, err := coll.SearchIndexes().List(ctx, options.SearchIndexes().SetName(name))
	if err != nil {
		return false, fmt.Errorf("failed to list search indexes: %w", err)
	}
	var existing []bson.M
	if err := cursor.All(ctx, &existing); err != nil {
		return false, fmt.Errorf("failed to read search indexes: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	_, err = coll.SearchIndexes().CreateOne(ctx, mongo.SearchIndexModel{
		Definition: SearchIndexDefinition(paths),
		Options:    options.SearchIndexes().SetName(name),
	})
	if err != nil {
		return false, fmt.Errorf("failed to create search index %q: %w", name, err)
	}
	return true, nil
}
