package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Listing outcomes
const (
	OutcomeOK       = "ok"
	OutcomeInvalid  = "invalid"
	OutcomeCanceled = "canceled"
	OutcomeError    = "error"
)

var (
	ListingRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vidlist_listing_requests_total",
		Help: "The total number of listing requests by outcome",
	}, []string{"outcome"})

	ListingLatency = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "vidlist_listing_latency_seconds",
		Help:    "The latency of listing requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"search"})

	ListingDocs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "vidlist_listing_docs",
		Help:    "The number of docs returned per listing page",
		Buckets: []float64{0, 1, 5, 10, 20, 50, 100},
	})
)

func init() {
	prometheus.MustRegister(ListingRequests)
	prometheus.MustRegister(ListingLatency)
	prometheus.MustRegister(ListingDocs)
}

// ObserveListing records one finished listing request.
func ObserveListing(outcome string, search bool, elapsed time.Duration, docs int) {
	ListingRequests.WithLabelValues(outcome).Inc()
	label := "false"
	if search {
		label = "true"
	}
	ListingLatency.WithLabelValues(label).Observe(elapsed.Seconds())
	if outcome == OutcomeOK {
		ListingDocs.Observe(float64(docs))
	}
}
