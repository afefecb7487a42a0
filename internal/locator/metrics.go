package locator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CandidatesTriedTotal tracks candidate identifiers and queries tried.
	CandidatesTriedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_locator_candidates_tried_total",
		Help: "Total number of candidate identifiers and queries tried",
	})

	// ValidationRejectsTotal tracks records rejected by the validator.
	ValidationRejectsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_locator_validation_rejects_total",
		Help: "Total number of records rejected by the market validator",
	})

	// CandidateLookupDurationSeconds tracks per-candidate lookup latency.
	CandidateLookupDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "updown_locator_candidate_lookup_duration_seconds",
		Help:    "Duration of per-candidate discovery lookups",
		Buckets: prometheus.DefBuckets,
	})
)
