package replenish

import (
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	gperrors "github.com/vnykmshr/gopermit/pkg/common/errors"
	"github.com/vnykmshr/gopermit/pkg/common/validation"
	"github.com/vnykmshr/gopermit/pkg/limit/fifo"
	"github.com/vnykmshr/gopermit/pkg/metrics"
)

// Replenisher periodically restores outstanding permits to a permit pool.
type Replenisher interface {
	// Start launches the tick loop. Starting a running replenisher is a no-op.
	// A stopped replenisher cannot be restarted: Start returns an error
	// wrapping errors.ErrClosed.
	Start() error

	// Stop terminates the tick loop and returns a channel that is closed
	// once the loop has exited. Stopping a stopped replenisher is a no-op.
	Stop() <-chan struct{}
}

// Config holds configuration for creating a Replenisher.
type Config struct {
	// Limiter is the permit pool to replenish. Required.
	Limiter fifo.Limiter

	// Interval restores permits every fixed duration.
	// Exactly one of Interval and CronExpr must be set.
	Interval time.Duration

	// CronExpr restores permits on a cron schedule with second granularity,
	// e.g. "0 * * * * *" for the top of every minute. Descriptors such as
	// "@every 1s" are also accepted.
	CronExpr string

	// Amount is the number of permits restored per tick.
	// Zero or negative means all outstanding permits (fixed-window semantics).
	Amount int

	// Location is the time zone for cron schedules. Defaults to time.Local.
	Location *time.Location

	// Name labels this replenisher in metrics. Defaults to "default".
	Name string

	// Metrics configures optional Prometheus instrumentation.
	Metrics metrics.Config
}

type replenisher struct {
	limiter  fifo.Limiter
	interval time.Duration
	schedule cron.Schedule
	location *time.Location
	amount   int

	name     string
	registry *metrics.Registry

	mu       sync.Mutex
	running  bool
	stopped  bool
	stop     chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// cronParser matches second-granularity cron fields plus descriptors.
var cronParser = cron.NewParser(
	cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// NewSafe creates a new Replenisher with validation that returns an error
// instead of panicking.
func NewSafe(config Config) (Replenisher, error) {
	if config.Limiter == nil {
		return nil, validation.ValidateNotNil("replenish", "limiter", nil)
	}

	hasInterval := config.Interval != 0
	hasCron := config.CronExpr != ""
	if hasInterval == hasCron {
		return nil, gperrors.NewValidationError("replenish", "schedule", config.Interval,
			"exactly one of Interval and CronExpr must be set").
			WithHint("use Interval for fixed periods, CronExpr for calendar schedules")
	}

	r := &replenisher{
		limiter:  config.Limiter,
		amount:   config.Amount,
		location: config.Location,
		name:     config.Name,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if hasInterval {
		if err := validation.ValidatePositiveDuration("replenish", "interval", config.Interval); err != nil {
			return nil, err
		}
		r.interval = config.Interval
	} else {
		schedule, err := cronParser.Parse(config.CronExpr)
		if err != nil {
			return nil, gperrors.NewValidationError("replenish", "cron", config.CronExpr,
				"invalid cron expression").
				WithHint(err.Error())
		}
		r.schedule = schedule
	}

	if r.location == nil {
		r.location = time.Local
	}
	if r.name == "" {
		r.name = "default"
	}

	if config.Metrics.Enabled {
		r.registry = metrics.DefaultRegistry
		if config.Metrics.Registry != nil {
			r.registry = metrics.NewRegistry(config.Metrics.Registry)
		}
	}

	return r, nil
}

// Start launches the tick loop. Once Stop has been called the replenisher
// is spent and Start reports it closed.
func (r *replenisher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return gperrors.NewOperationError("replenish", "Start", gperrors.ErrClosed)
	}
	if r.running {
		return nil
	}
	r.running = true

	go r.run()
	return nil
}

// Stop terminates the tick loop.
func (r *replenisher) Stop() <-chan struct{} {
	r.mu.Lock()
	running := r.running
	r.stopped = true
	r.mu.Unlock()

	if !running {
		// Never started: nothing to wait for.
		closed := make(chan struct{})
		close(closed)
		return closed
	}

	r.stopOnce.Do(func() {
		close(r.stop)
	})
	return r.done
}

// run drives ticks until stopped.
func (r *replenisher) run() {
	defer close(r.done)

	if r.schedule != nil {
		r.runCron()
		return
	}

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.restore()
		}
	}
}

// runCron sleeps until each scheduled activation.
func (r *replenisher) runCron() {
	for {
		now := time.Now().In(r.location)
		timer := time.NewTimer(time.Until(r.schedule.Next(now)))

		select {
		case <-r.stop:
			timer.Stop()
			return
		case <-timer.C:
			r.restore()
		}
	}
}

// restore hands outstanding permits back to the pool.
func (r *replenisher) restore() {
	n := r.amount
	if n <= 0 {
		// Fixed-window semantics: the whole budget comes back each tick.
		n = r.limiter.Capacity()
	}

	restored := r.limiter.Restore(n)

	if r.registry != nil {
		r.registry.ReplenishTicks.WithLabelValues(r.name).Inc()
		r.registry.PermitsRestored.WithLabelValues(r.name).Add(float64(restored))
	}
}
