package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/syntrixbase/vidlist/internal/gateway/rest"
	"github.com/syntrixbase/vidlist/internal/listing"
)

// Server is a route registrar for the API layer.
// It registers the REST routes and the metrics endpoint on a given ServeMux.
type Server struct {
	rest     *rest.Handler
	gatherer prometheus.Gatherer
}

// ServerOption is a function that configures a Server.
type ServerOption func(*Server)

// WithGatherer serves metrics from g instead of the default registry.
func WithGatherer(g prometheus.Gatherer) ServerOption {
	return func(s *Server) {
		s.gatherer = g
	}
}

// NewServer creates a new API Server (route registrar).
func NewServer(svc listing.Service, opts ...ServerOption) *Server {
	s := &Server{
		rest:     rest.NewHandler(svc),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterRoutes registers all API routes to the given ServeMux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	s.rest.RegisterRoutes(mux)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
}
