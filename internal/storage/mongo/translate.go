package mongo

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// Facet output fields
const (
	facetItems    = "items"
	facetMetadata = "metadata"
	facetTotal    = "total"
)

// translatePipeline converts a listing pipeline into aggregation stages.
func translatePipeline(p listing.Pipeline) (mongo.Pipeline, error) {
	out := mongo.Pipeline{}
	for i, stage := range p {
		if _, ok := stage.(listing.SearchStage); ok && i != 0 {
			return nil, fmt.Errorf("mongo: $search must be the first stage")
		}
		docs, err := translateStage(stage)
		if err != nil {
			return nil, err
		}
		out = append(out, docs...)
	}
	return out, nil
}

func translateStage(stage listing.Stage) ([]bson.D, error) {
	switch st := stage.(type) {
	case listing.SearchStage:
		return []bson.D{{{Key: "$search", Value: bson.D{
			{Key: "index", Value: st.Index},
			{Key: "text", Value: bson.D{
				{Key: "query", Value: st.Query},
				{Key: "path", Value: stringsToArray(st.Paths)},
			}},
		}}}}, nil

	case listing.OwnerFilterStage:
		return []bson.D{{{Key: "$match", Value: bson.D{{Key: model.FieldOwner, Value: st.OwnerID}}}}}, nil

	case listing.PublishedFilterStage:
		return []bson.D{{{Key: "$match", Value: bson.D{{Key: model.FieldPublished, Value: true}}}}}, nil

	case listing.SortStage:
		sign := st.Direction.Sign()
		keys := bson.D{{Key: st.Field, Value: sign}}
		if st.Field != model.FieldID {
			keys = append(keys, bson.E{Key: model.FieldID, Value: sign})
		}
		return []bson.D{{{Key: "$sort", Value: keys}}}, nil

	case listing.ProjectionStage:
		return []bson.D{projectStage(st)}, nil

	case listing.JoinStage:
		lookup := bson.D{
			{Key: "from", Value: st.From},
			{Key: "localField", Value: st.LocalField},
			{Key: "foreignField", Value: st.ForeignField},
			{Key: "as", Value: st.As},
		}
		if len(st.Projection.Fields) > 0 {
			lookup = append(lookup, bson.E{Key: "pipeline", Value: bson.A{projectStage(st.Projection)}})
		}
		docs := []bson.D{{{Key: "$lookup", Value: lookup}}}
		if st.Flatten {
			// Without preserveNullAndEmptyArrays, $unwind drops items that matched nothing.
			docs = append(docs, bson.D{{Key: "$unwind", Value: "$" + st.As}})
		}
		return docs, nil

	default:
		return nil, fmt.Errorf("mongo: unsupported stage %s", stage.Kind())
	}
}

func projectStage(st listing.ProjectionStage) bson.D {
	fields := bson.D{}
	for _, f := range st.Fields {
		fields = append(fields, bson.E{Key: f, Value: 1})
	}
	return bson.D{{Key: "$project", Value: fields}}
}

// facetStage slices the window and counts the full match in the same pass.
func facetStage(w listing.Window) bson.D {
	items := bson.A{bson.D{{Key: "$skip", Value: w.Skip}}}
	if w.Limit > 0 {
		items = append(items, bson.D{{Key: "$limit", Value: w.Limit}})
	}
	return bson.D{{Key: "$facet", Value: bson.D{
		{Key: facetMetadata, Value: bson.A{bson.D{{Key: "$count", Value: facetTotal}}}},
		{Key: facetItems, Value: items},
	}}}
}

func stringsToArray(values []string) bson.A {
	out := make(bson.A, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
