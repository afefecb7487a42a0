package resolver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ResolutionsTotal tracks completed resolutions by outcome.
	ResolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "updown_resolver_resolutions_total",
		Help: "Total number of completed resolutions by outcome",
	}, []string{"outcome"})

	// ResolutionDurationSeconds tracks end-to-end resolution latency.
	ResolutionDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "updown_resolver_resolution_duration_seconds",
		Help:    "End-to-end duration of resolution calls",
		Buckets: prometheus.DefBuckets,
	})
)
