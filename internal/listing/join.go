package listing

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// OwnerJoin returns the join that replaces each item's owner reference
// with the owner's username and avatar.
//
// The relation is flattened, so an item whose owner cannot be resolved
// is dropped from the result (and from the total count).
func OwnerJoin(ownerCollection string) JoinStage {
	return JoinStage{
		From:         ownerCollection,
		LocalField:   model.FieldOwner,
		ForeignField: model.FieldID,
		As:           model.FieldOwner,
		Projection: ProjectionStage{
			Fields: []string{model.FieldUsername, model.FieldAvatar},
		},
		Flatten: true,
	}
}

// OwnerLookup resolves an owner by id.
type OwnerLookup func(id primitive.ObjectID) (model.Owner, bool)

// Apply performs the join in process for stores that evaluate pipelines
// themselves. Unresolved owners drop the item when Flatten is set and
// leave a bare reference otherwise.
func (j JoinStage) Apply(items []model.ContentItem, lookup OwnerLookup) []model.ListedItem {
	out := make([]model.ListedItem, 0, len(items))
	for _, item := range items {
		owner, ok := lookup(item.Owner)
		if !ok {
			if j.Flatten {
				continue
			}
			out = append(out, item.Listed(model.OwnerSummary{ID: item.Owner}))
			continue
		}
		out = append(out, item.Listed(j.Projection.project(owner)))
	}
	return out
}

// project narrows the owner summary to the projected fields.
// An empty projection keeps the full summary.
func (p ProjectionStage) project(owner model.Owner) model.OwnerSummary {
	full := owner.Summary()
	if len(p.Fields) == 0 {
		return full
	}
	summary := model.OwnerSummary{ID: full.ID}
	for _, f := range p.Fields {
		switch f {
		case model.FieldUsername:
			summary.Username = full.Username
		case model.FieldAvatar:
			summary.Avatar = full.Avatar
		}
	}
	return summary
}
