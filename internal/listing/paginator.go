package listing

import (
	"context"
	"fmt"
	"math"

	"github.com/syntrixbase/vidlist/pkg/model"
)

// Window is the slice of the ordered result a page covers.
type Window struct {
	Skip  int64
	Limit int64
}

// WindowFor returns the window of the given 1-based page.
// The skip saturates at math.MaxInt64 instead of wrapping.
func WindowFor(page, limit int) Window {
	return Window{Skip: skipFor(page, limit), Limit: int64(limit)}
}

// MaxPage is the largest page whose first item offset fits in an int64.
func MaxPage(limit int) int {
	if limit < 1 {
		limit = 1
	}
	return int(math.MaxInt64 / int64(limit))
}

func skipFor(page, limit int) int64 {
	if page <= 1 || limit <= 0 {
		return 0
	}
	p, l := int64(page-1), int64(limit)
	if p > math.MaxInt64/l {
		return math.MaxInt64
	}
	return p * l
}

// Page is what an Executor returns: the items inside the window and the
// number of items the pipeline matched before slicing.
type Page struct {
	Items []model.ListedItem
	Total int64
}

// Executor runs a pipeline against a store in a single call.
type Executor interface {
	Execute(ctx context.Context, p Pipeline, w Window) (Page, error)
}

// PaginatedResult is a page of listed items with its metadata.
type PaginatedResult struct {
	Docs          []model.ListedItem `json:"docs"`
	TotalDocs     int64              `json:"totalDocs"`
	Limit         int                `json:"limit"`
	Page          int                `json:"page"`
	TotalPages    int                `json:"totalPages"`
	PagingCounter int64              `json:"pagingCounter"`
	HasPrevPage   bool               `json:"hasPrevPage"`
	HasNextPage   bool               `json:"hasNextPage"`
	PrevPage      *int               `json:"prevPage"`
	NextPage      *int               `json:"nextPage"`
}

// NewPaginatedResult computes the page metadata. limit must be at least 1.
func NewPaginatedResult(docs []model.ListedItem, totalDocs int64, page, limit int) PaginatedResult {
	totalPages := int(totalDocs / int64(limit))
	if totalDocs%int64(limit) != 0 {
		totalPages++
	}

	if docs == nil {
		docs = []model.ListedItem{}
	}

	r := PaginatedResult{
		Docs:          docs,
		TotalDocs:     totalDocs,
		Limit:         limit,
		Page:          page,
		TotalPages:    totalPages,
		PagingCounter: pagingCounter(page, limit),
		HasPrevPage:   page > 1,
		HasNextPage:   page < totalPages,
	}
	if r.HasPrevPage {
		prev := page - 1
		r.PrevPage = &prev
	}
	if r.HasNextPage {
		next := page + 1
		r.NextPage = &next
	}
	return r
}

func pagingCounter(page, limit int) int64 {
	skip := skipFor(page, limit)
	if skip == math.MaxInt64 {
		return skip
	}
	return skip + 1
}

// Paginator executes pipelines one page at a time.
type Paginator struct {
	exec Executor
}

// NewPaginator creates a Paginator over the given executor.
func NewPaginator(exec Executor) *Paginator {
	return &Paginator{exec: exec}
}

// Paginate runs p and returns the requested page.
// A page past the end is empty, not an error.
func (pg *Paginator) Paginate(ctx context.Context, p Pipeline, page, limit int) (*PaginatedResult, error) {
	res, err := pg.exec.Execute(ctx, p, WindowFor(page, limit))
	if err != nil {
		if model.IsCanceled(err) {
			return nil, model.WrapError(err)
		}
		return nil, fmt.Errorf("%w: %w", model.ErrStoreExecution, err)
	}

	out := NewPaginatedResult(res.Items, res.Total, page, limit)
	return &out, nil
}
