package pricing

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// BatchCallsTotal tracks batch midpoint requests.
	BatchCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_pricing_batch_calls_total",
		Help: "Total number of batch midpoint requests",
	})

	// SingleCallsTotal tracks per-token midpoint requests.
	SingleCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_pricing_single_calls_total",
		Help: "Total number of per-token midpoint requests",
	})

	// FallbackCallsTotal tracks per-token fallbacks after a batch call
	// failed or returned partial data.
	FallbackCallsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_pricing_fallback_calls_total",
		Help: "Total number of per-token fallbacks after batch misses",
	})

	// UnavailablePricesTotal tracks token prices degraded to null.
	UnavailablePricesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_pricing_unavailable_prices_total",
		Help: "Total number of token prices degraded to unavailable",
	})

	// ErrorsTotal tracks transient pricing failures.
	ErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "updown_pricing_errors_total",
		Help: "Total number of pricing service failures",
	})

	// RequestDurationSeconds tracks pricing request latency.
	RequestDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "updown_pricing_request_duration_seconds",
		Help:    "Duration of pricing service requests",
		Buckets: prometheus.DefBuckets,
	})
)
