package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for portal lookups and reconciliation.
type Metrics struct {
	// Adapter call latency by source and outcome code
	LookupLatency *prometheus.HistogramVec

	// Adapter results by source and outcome ("ok" or an error code)
	LookupOutcome *prometheus.CounterVec

	// Cache lookups by scope ("doris", ..., "unified") and result
	CacheLookups *prometheus.CounterVec

	// Number of sources contributing to each merged record
	MergeContributors prometheus.Histogram

	// Unified request latency
	UnifiedLatency prometheus.Histogram

	// Circuit breaker transitions by source
	BreakerTransitions *prometheus.CounterVec
}

// New creates a new Metrics instance with all registry metrics registered.
func New() *Metrics {
	return &Metrics{
		LookupLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "proplink_portal_lookup_duration_seconds",
			Help:    "Duration of portal adapter calls by source",
			Buckets: []float64{0.005, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 20},
		}, []string{"source"}),

		LookupOutcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proplink_portal_lookups_total",
			Help: "Total portal adapter calls by source and outcome",
		}, []string{"source", "outcome"}),

		CacheLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proplink_cache_lookups_total",
			Help: "Response cache lookups by scope and result",
		}, []string{"scope", "result"}),

		MergeContributors: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "proplink_merge_contributors",
			Help:    "Number of portals contributing to a merged record",
			Buckets: []float64{0, 1, 2, 3, 4},
		}),

		UnifiedLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "proplink_unified_duration_seconds",
			Help:    "Duration of unified cross-portal lookups",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),

		BreakerTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "proplink_portal_breaker_transitions_total",
			Help: "Circuit breaker state changes by source",
		}, []string{"source", "state"}),
	}
}

// ObserveLookup records one adapter call.
func (m *Metrics) ObserveLookup(source, outcome string, d time.Duration) {
	if m != nil {
		m.LookupLatency.WithLabelValues(source).Observe(d.Seconds())
		m.LookupOutcome.WithLabelValues(source, outcome).Inc()
	}
}

// ObserveCache records a cache hit or miss.
func (m *Metrics) ObserveCache(scope string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(scope, result).Inc()
}

// ObserveMerge records how many sources contributed to a merge.
func (m *Metrics) ObserveMerge(contributors int) {
	if m != nil {
		m.MergeContributors.Observe(float64(contributors))
	}
}

// ObserveUnified records the total unified request duration.
func (m *Metrics) ObserveUnified(d time.Duration) {
	if m != nil {
		m.UnifiedLatency.Observe(d.Seconds())
	}
}

// IncrementBreaker records a breaker transition.
func (m *Metrics) IncrementBreaker(source, state string) {
	if m != nil {
		m.BreakerTransitions.WithLabelValues(source, state).Inc()
	}
}
