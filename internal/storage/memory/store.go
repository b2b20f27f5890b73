package memory

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syntrixbase/vidlist/internal/listing"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// Store keeps videos and owners in memory and evaluates listing pipelines
// in process. It is used for development and tests.
type Store struct {
	mu     sync.RWMutex
	items  []model.ContentItem
	owners map[primitive.ObjectID]model.Owner
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		owners: make(map[primitive.ObjectID]model.Owner),
	}
}

// PutOwner inserts or replaces an owner.
func (s *Store) PutOwner(o model.Owner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.owners[o.ID] = o
}

// PutItem inserts or replaces a video.
func (s *Store) PutItem(item model.ContentItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == item.ID {
			s.items[i] = item
			return
		}
	}
	s.items = append(s.items, item)
}

// Len returns the number of stored videos.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Close is a no-op.
func (s *Store) Close(_ context.Context) error { return nil }

// Execute evaluates p over a snapshot of the store.
func (s *Store) Execute(ctx context.Context, p listing.Pipeline, w listing.Window) (listing.Page, error) {
	if err := ctx.Err(); err != nil {
		return listing.Page{}, err
	}
	if w.Skip < 0 || w.Limit < 0 {
		return listing.Page{}, fmt.Errorf("memory: invalid window skip=%d limit=%d", w.Skip, w.Limit)
	}

	s.mu.RLock()
	items := make([]model.ContentItem, len(s.items))
	copy(items, s.items)
	owners := make(map[primitive.ObjectID]model.Owner, len(s.owners))
	for id, o := range s.owners {
		owners[id] = o
	}
	s.mu.RUnlock()

	var listed []model.ListedItem
	joined := false

	for i, stage := range p {
		if joined {
			if _, ok := stage.(listing.ProjectionStage); ok {
				continue
			}
			return listing.Page{}, fmt.Errorf("memory: %s stage after join is not supported", stage.Kind())
		}

		switch st := stage.(type) {
		case listing.SearchStage:
			if i != 0 {
				return listing.Page{}, fmt.Errorf("memory: search must be the first stage")
			}
			items = search(items, st)
		case listing.OwnerFilterStage:
			items = filter(items, func(c model.ContentItem) bool { return c.Owner == st.OwnerID })
		case listing.PublishedFilterStage:
			items = filter(items, func(c model.ContentItem) bool { return c.IsPublished })
		case listing.SortStage:
			if err := sortItems(items, st); err != nil {
				return listing.Page{}, err
			}
		case listing.JoinStage:
			listed = st.Apply(items, func(id primitive.ObjectID) (model.Owner, bool) {
				o, ok := owners[id]
				return o, ok
			})
			joined = true
		case listing.ProjectionStage:
			// Top-level projections only narrow owner summaries, which exist after a join.
		default:
			return listing.Page{}, fmt.Errorf("memory: unsupported stage %s", stage.Kind())
		}
	}

	if !joined {
		listed = make([]model.ListedItem, len(items))
		for i, c := range items {
			listed[i] = c.Listed(model.OwnerSummary{ID: c.Owner})
		}
	}

	return listing.Page{Items: window(listed, w), Total: int64(len(listed))}, nil
}

func filter(items []model.ContentItem, keep func(model.ContentItem) bool) []model.ContentItem {
	out := items[:0]
	for _, c := range items {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func sortItems(items []model.ContentItem, st listing.SortStage) error {
	cmp, err := comparator(st.Field)
	if err != nil {
		return err
	}
	sign := st.Direction.Sign()
	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if c == 0 {
			c = bytes.Compare(items[i].ID[:], items[j].ID[:])
		}
		return c*sign < 0
	})
	return nil
}

func comparator(field string) (func(a, b model.ContentItem) int, error) {
	switch field {
	case model.FieldViews:
		return func(a, b model.ContentItem) int { return compareOrdered(a.Views, b.Views) }, nil
	case model.FieldDuration:
		return func(a, b model.ContentItem) int { return compareOrdered(a.Duration, b.Duration) }, nil
	case model.FieldCreatedAt:
		return func(a, b model.ContentItem) int { return a.CreatedAt.Compare(b.CreatedAt) }, nil
	case model.FieldUpdatedAt:
		return func(a, b model.ContentItem) int { return a.UpdatedAt.Compare(b.UpdatedAt) }, nil
	case model.FieldTitle:
		return func(a, b model.ContentItem) int { return compareOrdered(a.Title, b.Title) }, nil
	case model.FieldID:
		return func(a, b model.ContentItem) int { return 0 }, nil
	default:
		return nil, fmt.Errorf("memory: cannot sort by %q", field)
	}
}

func compareOrdered[T int64 | float64 | string](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func window(items []model.ListedItem, w listing.Window) []model.ListedItem {
	if w.Skip >= int64(len(items)) {
		return []model.ListedItem{}
	}
	end := int64(len(items))
	if w.Limit > 0 && w.Skip+w.Limit < end {
		end = w.Skip + w.Limit
	}
	return items[w.Skip:end]
}
