// Package metrics provides Prometheus instrumentation for gopermit components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for gopermit components.
type Registry struct {
	// Permit Pool Metrics
	PermitAcquires      *prometheus.CounterVec
	PermitGrants        *prometheus.CounterVec
	PermitCancellations *prometheus.CounterVec
	AcquireWaitTime     *prometheus.HistogramVec
	PermitsAvailable    *prometheus.GaugeVec
	PermitsInUse        *prometheus.GaugeVec
	WaitersQueued       *prometheus.GaugeVec

	// Replenisher Metrics
	ReplenishTicks  *prometheus.CounterVec
	PermitsRestored *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by gopermit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Permit Pool Metrics
		PermitAcquires: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "acquires_total",
				Help:      "Total number of permit acquisition attempts",
			},
			[]string{"limiter_name"},
		),

		PermitGrants: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "grants_total",
				Help:      "Total number of permits granted, split by fast and queued path",
			},
			[]string{"limiter_name", "path"},
		),

		PermitCancellations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "cancellations_total",
				Help:      "Total number of acquisitions abandoned while queued",
			},
			[]string{"limiter_name"},
		),

		AcquireWaitTime: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "wait_duration_seconds",
				Help:      "Time spent waiting for a permit grant",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"limiter_name"},
		),

		PermitsAvailable: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "available",
				Help:      "Number of permits currently available",
			},
			[]string{"limiter_name"},
		),

		PermitsInUse: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "in_use",
				Help:      "Number of permits currently held by callers",
			},
			[]string{"limiter_name"},
		),

		WaitersQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "gopermit",
				Subsystem: "permits",
				Name:      "waiters_queued",
				Help:      "Number of callers queued for a permit",
			},
			[]string{"limiter_name"},
		),

		// Replenisher Metrics
		ReplenishTicks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "replenish",
				Name:      "ticks_total",
				Help:      "Total number of replenishment ticks fired",
			},
			[]string{"replenisher_name"},
		),

		PermitsRestored: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "gopermit",
				Subsystem: "replenish",
				Name:      "permits_restored_total",
				Help:      "Total number of permits restored to their pools",
			},
			[]string{"replenisher_name"},
		),
	}
}
