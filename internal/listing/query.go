package listing

import (
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// RawParams are the listing parameters as they arrive on the query string.
// Every field is optional. Query/SearchTerm and UserID/OwnerID are aliases;
// the first non-empty one wins.
type RawParams struct {
	Page       string `schema:"page"`
	Limit      string `schema:"limit"`
	Query      string `schema:"query"`
	SearchTerm string `schema:"searchTerm"`
	UserID     string `schema:"userId"`
	OwnerID    string `schema:"ownerId"`
	SortBy     string `schema:"sortBy"`
	SortType   string `schema:"sortType"`
}

// Direction is a sort direction.
type Direction int

const (
	Descending Direction = iota
	Ascending
)

// AscendingToken is the only sortType value that selects ascending order.
const AscendingToken = "asc"

// ParseDirection maps a sortType token to a Direction.
// "asc" is ascending; every other token, including empty, is descending.
func ParseDirection(token string) Direction {
	if token == AscendingToken {
		return Ascending
	}
	return Descending
}

// Sign returns 1 for ascending and -1 for descending.
func (d Direction) Sign() int {
	if d == Ascending {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}

// SortSpec is a client-requested sort override.
type SortSpec struct {
	Field     string
	Direction Direction
}

// QuerySpec is a validated listing request.
type QuerySpec struct {
	Page       int
	Limit      int
	SearchTerm string
	OwnerID    *primitive.ObjectID
	// Sort is nil unless both sortBy and sortType were supplied.
	Sort *SortSpec
}

// Validator turns RawParams into a QuerySpec.
//
// page and limit are defaulted, never rejected: non-numeric or non-positive
// values fall back to 1 and the configured default limit, and limits above
// the configured maximum are clamped. A malformed owner id or an unknown
// sort field is a *model.ValidationError.
type Validator struct {
	defaultLimit int
	maxLimit     int
	sortable     map[string]bool
}

// NewValidator creates a Validator from the listing config.
func NewValidator(cfg Config) *Validator {
	sortable := make(map[string]bool, len(cfg.SortableFields))
	for _, f := range cfg.SortableFields {
		sortable[f] = true
	}
	return &Validator{
		defaultLimit: cfg.DefaultLimit,
		maxLimit:     cfg.MaxLimit,
		sortable:     sortable,
	}
}

// Validate normalizes and validates the raw parameters.
func (v *Validator) Validate(p RawParams) (QuerySpec, error) {
	q := QuerySpec{
		Page:       parsePositive(p.Page, 1),
		Limit:      parsePositive(p.Limit, v.defaultLimit),
		SearchTerm: strings.TrimSpace(firstNonEmpty(p.Query, p.SearchTerm)),
	}
	if v.maxLimit > 0 && q.Limit > v.maxLimit {
		q.Limit = v.maxLimit
	}
	if maxPage := MaxPage(q.Limit); q.Page > maxPage {
		q.Page = maxPage
	}

	ownerKey, ownerID := "userId", p.UserID
	if ownerID == "" {
		ownerKey, ownerID = "ownerId", p.OwnerID
	}
	if ownerID = strings.TrimSpace(ownerID); ownerID != "" {
		oid, err := primitive.ObjectIDFromHex(ownerID)
		if err != nil {
			return QuerySpec{}, model.NewValidationError(ownerKey, "not a valid object id")
		}
		q.OwnerID = &oid
	}

	if p.SortBy != "" && !v.sortable[p.SortBy] {
		return QuerySpec{}, model.NewValidationError("sortBy", "unsupported sort field "+strconv.Quote(p.SortBy))
	}
	if p.SortBy != "" && p.SortType != "" {
		q.Sort = &SortSpec{Field: p.SortBy, Direction: ParseDirection(p.SortType)}
	}

	return q, nil
}

func parsePositive(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
