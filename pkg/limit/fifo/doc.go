/*
Package fifo provides a bounded-concurrency permit pool with FIFO fairness.

The limiter owns a fixed number of permits. Acquire takes a permit when one
is free and otherwise queues the caller; Release hands the freed permit
directly to the head of the queue, so permits are granted to waiters in
strict arrival order. A plain counting semaphore cannot make that promise:
when the counter bounces through the free pool, a newly arriving caller can
steal the permit ahead of callers that have been waiting longer.

Basic usage:

	limiter, err := fifo.NewSafe(10) // allow 10 concurrent operations
	if err != nil {
		log.Fatal(err)
	}

	if err := limiter.Acquire(ctx); err != nil {
		return err // canceled or timed out while waiting
	}
	defer limiter.Release()
	// Do work

Fairness:

Among queued callers, grants happen in enqueue order. A caller that cancels
while queued never receives a grant and never delays the callers behind it.
TryAcquire only succeeds when a permit is free, and a permit is only free
when no caller is queued, so the non-blocking path cannot overtake waiters.

Cancellation:

Acquire observes its context. Cancellation while queued removes the caller
from contention without consuming a permit and returns the context error.
If a grant and a cancellation race, the grant wins and Acquire returns nil;
the caller owns the permit and must release it.

Misuse:

Calling Release more times than Acquire succeeded is a programming error
and panics rather than silently growing the pool. Use Restore for refill
policies that must never over-release:

	restored := limiter.Restore(5) // recycle up to 5 held permits

Use Cases:

  - Database connection limiting
  - Protecting slow backends from request bursts
  - Bounding goroutine fan-out with predictable ordering
  - Fixed-window request budgets (together with pkg/limit/replenish)

State Inspection:

	capacity := limiter.Capacity()   // pool size
	available := limiter.Available() // free permits
	inUse := limiter.InUse()         // held permits
	waiting := limiter.Waiting()     // queued callers

Thread Safety:

All operations are safe for concurrent use. A single mutex guards the
counters and the wait queue; Acquire is the only operation that blocks,
and it blocks without holding the mutex.
*/
package fifo
