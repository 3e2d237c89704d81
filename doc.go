/*
Package gopermit provides fair concurrency limiting for Go applications
built around a fixed-size permit pool with strict FIFO handoff.

Core Limiting (pkg/limit):
  - fifo: Bounded permit pool that grants permits to waiters in arrival order
  - replenish: Interval and cron driven restoration of outstanding permits

Supporting Packages:
  - metrics: Prometheus instrumentation for limiters and replenishers
  - common/errors: Shared error types and classification helpers
  - common/validation: Configuration validation helpers

Example usage:

	import (
		"github.com/vnykmshr/gopermit/pkg/limit/fifo"
	)

	limiter, _ := fifo.NewSafe(10) // at most 10 concurrent operations

	if err := limiter.Acquire(ctx); err != nil {
		return err // context canceled while waiting
	}
	defer limiter.Release()
*/
package gopermit
