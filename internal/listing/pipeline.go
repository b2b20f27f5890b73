package listing

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// StageKind names a pipeline stage variant.
type StageKind string

const (
	KindSearch          StageKind = "search"
	KindOwnerFilter     StageKind = "owner_filter"
	KindPublishedFilter StageKind = "published_filter"
	KindSort            StageKind = "sort"
	KindJoin            StageKind = "join"
	KindProjection      StageKind = "projection"
)

// Stage is one step of a retrieval pipeline. The set of variants is closed.
type Stage interface {
	Kind() StageKind
	stage()
}

// SearchStage runs a full-text query against a named index.
// Stores require it to be the first stage.
type SearchStage struct {
	Index string
	Query string
	Paths []string
}

// OwnerFilterStage keeps items whose owner reference equals OwnerID.
type OwnerFilterStage struct {
	OwnerID primitive.ObjectID
}

// PublishedFilterStage keeps published items only.
type PublishedFilterStage struct{}

// SortStage orders items by Field, then by id in the same direction.
type SortStage struct {
	Field     string
	Direction Direction
}

// ProjectionStage limits a document to the listed fields (plus its id).
type ProjectionStage struct {
	Fields []string
}

// JoinStage looks up the related document for each item.
// With Flatten set the relation is embedded as a single value and items
// without a match are dropped.
type JoinStage struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Projection   ProjectionStage
	Flatten      bool
}

func (SearchStage) Kind() StageKind          { return KindSearch }
func (OwnerFilterStage) Kind() StageKind     { return KindOwnerFilter }
func (PublishedFilterStage) Kind() StageKind { return KindPublishedFilter }
func (SortStage) Kind() StageKind            { return KindSort }
func (ProjectionStage) Kind() StageKind      { return KindProjection }
func (JoinStage) Kind() StageKind            { return KindJoin }

func (SearchStage) stage()          {}
func (OwnerFilterStage) stage()     {}
func (PublishedFilterStage) stage() {}
func (SortStage) stage()            {}
func (ProjectionStage) stage()      {}
func (JoinStage) stage()            {}

// Pipeline is an ordered sequence of stages.
type Pipeline []Stage

// Kinds lists the stage kinds in order.
func (p Pipeline) Kinds() []StageKind {
	kinds := make([]StageKind, len(p))
	for i, s := range p {
		kinds[i] = s.Kind()
	}
	return kinds
}

// String joins the stage kinds in order, for logging.
func (p Pipeline) String() string {
	kinds := make([]string, len(p))
	for i, s := range p {
		kinds[i] = string(s.Kind())
	}
	return strings.Join(kinds, ",")
}

// DefaultSort is applied when the request carries no sort override.
var DefaultSort = SortStage{Field: model.FieldCreatedAt, Direction: Descending}

// PipelineOptions carries store names the builder needs.
type PipelineOptions struct {
	SearchIndex     string
	SearchPaths     []string
	OwnerCollection string
}

// BuildPipeline assembles the listing pipeline for q. Order is fixed:
// search, owner filter, published filter, sort, owner join.
func BuildPipeline(q QuerySpec, opts PipelineOptions) Pipeline {
	p := make(Pipeline, 0, 5)

	if q.SearchTerm != "" {
		p = append(p, SearchStage{
			Index: opts.SearchIndex,
			Query: q.SearchTerm,
			Paths: append([]string(nil), opts.SearchPaths...),
		})
	}

	if q.OwnerID != nil {
		p = append(p, OwnerFilterStage{OwnerID: *q.OwnerID})
	}

	p = append(p, PublishedFilterStage{})

	sort := DefaultSort
	if q.Sort != nil {
		sort = SortStage{Field: q.Sort.Field, Direction: q.Sort.Direction}
	}
	p = append(p, sort)

	p = append(p, OwnerJoin(opts.OwnerCollection))

	return p
}
