package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// LookupsTotal tracks all discovery requests issued.
	LookupsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_discovery_lookups_total",
		Help: "Total number of discovery service requests",
	})

	// MissesTotal tracks candidate identifiers with no upstream record.
	MissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_discovery_misses_total",
		Help: "Total number of not-found discovery responses",
	})

	// SearchesTotal tracks full-text search queries issued.
	SearchesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_discovery_searches_total",
		Help: "Total number of full-text search queries",
	})

	// ErrorsTotal tracks transient discovery failures.
	ErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_discovery_errors_total",
		Help: "Total number of discovery service failures",
	})

	// RequestDurationSeconds tracks discovery request latency.
	RequestDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "updown_discovery_request_duration_seconds",
		Help:    "Duration of discovery service requests",
		Buckets: prometheus.DefBuckets,
	})
)
