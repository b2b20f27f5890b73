package mongo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syntrixbase/vidlist/internal/listing"
)

func TestTranslatePipeline_Full(t *testing.T) {
	owner := primitive.NewObjectID()
	q := listing.QuerySpec{
		Page:       1,
		Limit:      10,
		SearchTerm: "tutorial",
		OwnerID:    &owner,
		Sort:       &listing.SortSpec{Field: "views", Direction: listing.Ascending},
	}

	got, err := translatePipeline(listing.BuildPipeline(q, listing.DefaultConfig().PipelineOptions()))
	require.NoError(t, err)

	want := mongo.Pipeline{
		{{Key: "$search", Value: bson.D{
			{Key: "index", Value: "search-videos"},
			{Key: "text", Value: bson.D{
				{Key: "query", Value: "tutorial"},
				{Key: "path", Value: bson.A{"title", "description"}},
			}},
		}}},
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}},
		{{Key: "$sort", Value: bson.D{{Key: "views", Value: 1}, {Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "users"},
			{Key: "localField", Value: "owner"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "username", Value: 1}, {Key: "avatar", Value: 1}}}},
			}},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
	}
	assert.Equal(t, want, got)
}

func TestTranslatePipeline_DefaultSort(t *testing.T) {
	got, err := translatePipeline(listing.BuildPipeline(listing.QuerySpec{Page: 1, Limit: 10}, listing.DefaultConfig().PipelineOptions()))
	require.NoError(t, err)

	require.Len(t, got, 4)
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}}, got[0])
	assert.Equal(t, bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}}}, got[1])
}

func TestTranslateStage_SortByID(t *testing.T) {
	docs, err := translateStage(listing.SortStage{Field: "_id", Direction: listing.Descending})
	require.NoError(t, err)
	assert.Equal(t, []bson.D{{{Key: "$sort", Value: bson.D{{Key: "_id", Value: -1}}}}}, docs)
}

func TestTranslateStage_JoinWithoutFlatten(t *testing.T) {
	join := listing.OwnerJoin("users")
	join.Flatten = false
	join.Projection = listing.ProjectionStage{}

	docs, err := translateStage(join)
	require.NoError(t, err)

	require.Len(t, docs, 1)
	assert.Equal(t, "$lookup", docs[0][0].Key)
	assert.Len(t, docs[0][0].Value.(bson.D), 4)
}

func TestTranslateStage_Projection(t *testing.T) {
	docs, err := translateStage(listing.ProjectionStage{Fields: []string{"title"}})
	require.NoError(t, err)
	assert.Equal(t, []bson.D{{{Key: "$project", Value: bson.D{{Key: "title", Value: 1}}}}}, docs)
}

func TestTranslatePipeline_SearchNotFirst(t *testing.T) {
	_, err := translatePipeline(listing.Pipeline{listing.PublishedFilterStage{}, listing.SearchStage{Query: "x"}})
	assert.Error(t, err)
}

func TestFacetStage(t *testing.T) {
	got := facetStage(listing.Window{Skip: 20, Limit: 10})

	want := bson.D{{Key: "$facet", Value: bson.D{
		{Key: "metadata", Value: bson.A{bson.D{{Key: "$count", Value: "total"}}}},
		{Key: "items", Value: bson.A{
			bson.D{{Key: "$skip", Value: int64(20)}},
			bson.D{{Key: "$limit", Value: int64(10)}},
		}},
	}}}
	assert.Equal(t, want, got)
}

func TestSearchIndexDefinition(t *testing.T) {
	def := SearchIndexDefinition([]string{"title", "description"})

	want := bson.D{{Key: "mappings", Value: bson.D{
		{Key: "dynamic", Value: false},
		{Key: "fields", Value: bson.D{
			{Key: "title", Value: bson.D{{Key: "type", Value: "string"}}},
			{Key: "description", Value: bson.D{{Key: "type", Value: "string"}}},
		}},
	}}}
	assert.Equal(t, want, def)
}
