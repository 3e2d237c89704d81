package fifo

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/gopermit/pkg/metrics"
)

// MetricsLimiter wraps a fifo Limiter with Prometheus metrics collection.
type MetricsLimiter struct {
	limiter  Limiter
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new FIFO limiter with metrics enabled.
func NewWithMetrics(capacity int, name string) (Limiter, error) {
	// Use a separate registry per metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{
		Capacity:         capacity,
		InitialAvailable: -1,
	}, name, config)
}

// NewWithConfigAndMetrics creates a new FIFO limiter with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) (Limiter, error) {
	baseLimiter, err := NewWithConfigSafe(config)
	if err != nil {
		return nil, err
	}

	if !metricsConfig.Enabled {
		return baseLimiter, nil
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	ml := &MetricsLimiter{
		limiter:  baseLimiter,
		name:     name,
		registry: registry,
		enabled:  true,
	}

	ml.updateMetrics()

	return ml, nil
}

// updateMetrics refreshes the state gauges.
func (ml *MetricsLimiter) updateMetrics() {
	if !ml.enabled {
		return
	}

	ml.registry.PermitsAvailable.WithLabelValues(ml.name).Set(float64(ml.limiter.Available()))
	ml.registry.PermitsInUse.WithLabelValues(ml.name).Set(float64(ml.limiter.InUse()))
	ml.registry.WaitersQueued.WithLabelValues(ml.name).Set(float64(ml.limiter.Waiting()))
}

// Acquire obtains one permit, blocking in arrival order when none is free.
func (ml *MetricsLimiter) Acquire(ctx context.Context) error {
	if !ml.enabled {
		return ml.limiter.Acquire(ctx)
	}

	ml.registry.PermitAcquires.WithLabelValues(ml.name).Inc()

	// Fast grants are labeled separately from queued ones.
	if ml.limiter.TryAcquire() {
		ml.registry.PermitGrants.WithLabelValues(ml.name, "fast").Inc()
		ml.updateMetrics()
		return nil
	}

	start := time.Now()
	ml.registry.WaitersQueued.WithLabelValues(ml.name).Inc()

	err := ml.limiter.Acquire(ctx)

	ml.registry.WaitersQueued.WithLabelValues(ml.name).Dec()
	ml.registry.AcquireWaitTime.WithLabelValues(ml.name).Observe(time.Since(start).Seconds())

	if err != nil {
		ml.registry.PermitCancellations.WithLabelValues(ml.name).Inc()
	} else {
		ml.registry.PermitGrants.WithLabelValues(ml.name, "queued").Inc()
	}

	ml.updateMetrics()
	return err
}

// TryAcquire obtains one permit without blocking.
func (ml *MetricsLimiter) TryAcquire() bool {
	acquired := ml.limiter.TryAcquire()

	if ml.enabled {
		ml.registry.PermitAcquires.WithLabelValues(ml.name).Inc()
		if acquired {
			ml.registry.PermitGrants.WithLabelValues(ml.name, "fast").Inc()
		}
		ml.updateMetrics()
	}

	return acquired
}

// Release returns one permit to the pool.
func (ml *MetricsLimiter) Release() {
	ml.limiter.Release()

	if ml.enabled {
		ml.updateMetrics()
	}
}

// Restore releases up to n held permits back to the pool.
func (ml *MetricsLimiter) Restore(n int) int {
	restored := ml.limiter.Restore(n)

	if ml.enabled {
		ml.updateMetrics()
	}

	return restored
}

// Capacity returns the fixed size of the permit pool.
func (ml *MetricsLimiter) Capacity() int {
	return ml.limiter.Capacity()
}

// Available returns the number of permits currently free.
func (ml *MetricsLimiter) Available() int {
	return ml.limiter.Available()
}

// InUse returns the number of permits currently held by callers.
func (ml *MetricsLimiter) InUse() int {
	return ml.limiter.InUse()
}

// Waiting returns the number of callers queued for a permit.
func (ml *MetricsLimiter) Waiting() int {
	return ml.limiter.Waiting()
}

// EnableMetrics enables metrics collection.
func (ml *MetricsLimiter) EnableMetrics(config metrics.Config) error {
	ml.enabled = config.Enabled

	if config.Registry != nil {
		ml.registry = metrics.NewRegistry(config.Registry)
	}

	if ml.enabled {
		ml.updateMetrics()
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (ml *MetricsLimiter) DisableMetrics() {
	ml.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (ml *MetricsLimiter) MetricsEnabled() bool {
	return ml.enabled
}
