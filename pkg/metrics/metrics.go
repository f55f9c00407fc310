package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mediastat"

var (
	LibrariesCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "libraries_collected_total",
			Help:      "Libraries visited by a collection run, by outcome (processed, skipped, failed)",
		},
		[]string{"server", "outcome"},
	)

	ItemsFetched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_fetched_total",
			Help:      "Library items fetched from media servers",
		},
		[]string{"server"},
	)

	SampledLibraries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sampled_libraries_total",
			Help:      "Libraries whose statistics were extrapolated from a sample",
		},
		[]string{"server"},
	)

	CollectionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collection_duration_seconds",
			Help:      "Duration of a statistics collection run for one server",
			Buckets:   prometheus.ExponentialBuckets(0.5, 2, 12),
		},
		[]string{"server"},
	)

	SnapshotsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "snapshots_created_total",
			Help:      "Daily library snapshots written",
		},
		[]string{"server"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_state",
			Help:      "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "circuit_breaker_requests_total",
			Help:      "Requests through a circuit breaker by result (success, failure, rejected)",
		},
		[]string{"name", "result"},
	)
)
