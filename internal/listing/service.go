package listing

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/syntrixbase/vidlist/internal/metrics"
	"github.com/syntrixbase/vidlist/internal/reqlog"
	"github.com/syntrixbase/vidlist/pkg/model"
)

// Service lists published content.
type Service interface {
	// List validates the request, builds its pipeline and returns one page.
	List(ctx context.Context, params RawParams) (*PaginatedResult, error)
}

type service struct {
	validator *Validator
	opts      PipelineOptions
	paginator *Paginator
	logger    *slog.Logger
}

// NewService wires the validator, builder and paginator together.
func NewService(cfg Config, exec Executor, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		validator: NewValidator(cfg),
		opts:      cfg.PipelineOptions(),
		paginator: NewPaginator(exec),
		logger:    logger.With("component", "listing"),
	}
}

func (s *service) List(ctx context.Context, params RawParams) (*PaginatedResult, error) {
	start := time.Now()

	q, err := s.validator.Validate(params)
	if err != nil {
		s.observe(ctx, metrics.OutcomeInvalid, false, start, 0)
		return nil, err
	}

	p := BuildPipeline(q, s.opts)
	s.logger.Debug("Listing: pipeline built",
		"stages", p.Kinds(),
		"page", q.Page,
		"limit", q.Limit,
	)
	reqlog.Add(ctx, "stages", p.String())

	res, err := s.paginator.Paginate(ctx, p, q.Page, q.Limit)
	search := q.SearchTerm != ""
	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, model.ErrCanceled) {
			outcome = metrics.OutcomeCanceled
		}
		s.observe(ctx, outcome, search, start, 0)
		return nil, err
	}

	s.observe(ctx, metrics.OutcomeOK, search, start, len(res.Docs))
	return res, nil
}

// observe records the outcome in metrics and on the request's access log.
func (s *service) observe(ctx context.Context, outcome string, search bool, start time.Time, docs int) {
	metrics.ObserveListing(outcome, search, time.Since(start), docs)
	reqlog.Add(ctx, "outcome", outcome, "search", search, "docs", docs)
}
