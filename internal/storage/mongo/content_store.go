package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/pkg/model"
)

type contentStore struct {
	db         *mongo.Database
	collection string
}

// NewContentStore returns an executor that runs listing pipelines as a
// single aggregation on the given collection.
func NewContentStore(db *mongo.Database, collection string) listing.Executor {
	return &contentStore{
		db:         db,
		collection: collection,
	}
}

type facetResult struct {
	Metadata []struct {
		Total int64 `bson:"total"`
	} `bson:"metadata"`
	Items []model.ListedItem `bson:"items"`
}

func (s *contentStore) Execute(ctx context.Context, p listing.Pipeline, w listing.Window) (listing.Page, error) {
	stages, err := translatePipeline(p)
	if err != nil {
		return listing.Page{}, err
	}
	stages = append(stages, facetStage(w))

	cursor, err := s.db.Collection(s.collection).Aggregate(ctx, stages)
	if err != nil {
		return listing.Page{}, model.WrapError(err)
	}
	defer cursor.Close(ctx)

	var results []facetResult
	if err := cursor.All(ctx, &results); err != nil {
		return listing.Page{}, model.WrapError(err)
	}

	page := listing.Page{Items: []model.ListedItem{}}
	if len(results) == 0 {
		return page, nil
	}
	if results[0].Items != nil {
		page.Items = results[0].Items
	}
	if len(results[0].Metadata) > 0 {
		page.Total = results[0].Metadata[0].Total
	}
	return page, nil
}
