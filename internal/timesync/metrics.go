package timesync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncErrorsTotal tracks failed time service calls.
	SyncErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_timesync_errors_total",
		Help: "Total number of failed time service calls",
	})

	// SyncDurationSeconds tracks time service call latency.
	SyncDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "updown_timesync_duration_seconds",
		Help:    "Duration of time service requests",
		Buckets: prometheus.DefBuckets,
	})
)
