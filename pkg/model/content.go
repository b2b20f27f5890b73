package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Collection field names shared by the pipeline builder and the stores.
const (
	FieldID          = "_id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldOwner       = "owner"
	FieldPublished   = "isPublished"
	FieldViews       = "views"
	FieldDuration    = "duration"
	FieldCreatedAt   = "createdAt"
	FieldUpdatedAt   = "updatedAt"

	FieldUsername = "username"
	FieldAvatar   = "avatar"
)

// ContentItem is a stored video.
// Owner references an Owner by id; it is never embedded at rest.
type ContentItem struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Views       int64              `json:"views" bson:"views"`
	Duration    float64            `json:"duration" bson:"duration"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Owner is the account a ContentItem belongs to.
type Owner struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Email    string             `json:"email,omitempty" bson:"email,omitempty"`
	FullName string             `json:"fullName,omitempty" bson:"fullName,omitempty"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}

// OwnerSummary is the owner projection embedded in listed items.
type OwnerSummary struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id"`
	Username string             `json:"username" bson:"username"`
	Avatar   string             `json:"avatar,omitempty" bson:"avatar,omitempty"`
}

// Summary projects the owner down to the fields exposed by listings.
func (o Owner) Summary() OwnerSummary {
	return OwnerSummary{ID: o.ID, Username: o.Username, Avatar: o.Avatar}
}

// ListedItem is a ContentItem with its owner reference replaced by the owner summary.
type ListedItem struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	Owner       OwnerSummary       `json:"owner" bson:"owner"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Views       int64              `json:"views" bson:"views"`
	Duration    float64            `json:"duration" bson:"duration"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Listed embeds the owner summary into a copy of the item.
func (c ContentItem) Listed(owner OwnerSummary) ListedItem {
	return ListedItem{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Owner:       owner,
		IsPublished: c.IsPublished,
		Views:       c.Views,
		Duration:    c.Duration,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
