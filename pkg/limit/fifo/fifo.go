package fifo

import (
	"context"

	gpcontext "github.com/vnykmshr/gopermit/pkg/common/context"
)

// Acquire obtains one permit, blocking in arrival order when none is free.
func (l *fifoLimiter) Acquire(ctx context.Context) error {
	// Check if context is already canceled before touching the pool.
	if gpcontext.IsCanceled(ctx) {
		return ctx.Err()
	}

	l.mu.Lock()

	// Fast path: a free permit implies an empty queue, take it directly.
	if l.available > 0 {
		l.available--
		l.inUse++
		l.mu.Unlock()
		return nil
	}

	// Slow path: join the tail of the queue and wait for a handoff.
	w := &waiter{ready: make(chan struct{})}
	l.queue.PushBack(w)
	l.mu.Unlock()

	select {
	case <-w.ready:
		return nil
	case <-ctx.Done():
		l.mu.Lock()
		if w.state == waiterGranted {
			// The handoff won the race; the permit is ours despite the
			// canceled context.
			l.mu.Unlock()
			return nil
		}
		// Drop the record from the queue immediately so saturated pools do
		// not accumulate dead waiters. Removing a middle element does not
		// reorder the remaining live waiters.
		w.state = waiterCancelled
		l.removeLocked(w)
		l.mu.Unlock()
		return ctx.Err()
	}
}

// TryAcquire obtains one permit without blocking.
func (l *fifoLimiter) TryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.available > 0 {
		l.available--
		l.inUse++
		return true
	}
	return false
}

// Release returns one permit to the pool, handing it to the head waiter
// when one is queued.
func (l *fifoLimiter) Release() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.inUse == 0 {
		panic("fifo: released more permits than acquired")
	}

	if l.grantNextLocked() {
		// Ownership transferred directly; the permit never re-entered the
		// free pool, so a concurrent Acquire cannot steal it.
		return
	}

	l.inUse--
	l.available++
}

// Restore releases up to n held permits back to the pool and returns the
// number actually restored.
func (l *fifoLimiter) Restore(n int) int {
	if n <= 0 {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	restored := 0
	for restored < n && l.inUse > 0 {
		if !l.grantNextLocked() {
			l.inUse--
			l.available++
		}
		restored++
	}
	return restored
}

// Capacity returns the fixed size of the permit pool.
func (l *fifoLimiter) Capacity() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.capacity
}

// Available returns the number of permits currently free.
func (l *fifoLimiter) Available() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.available
}

// InUse returns the number of permits currently held by callers.
func (l *fifoLimiter) InUse() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inUse
}

// Waiting returns the number of live callers queued for a permit.
func (l *fifoLimiter) Waiting() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	waiting := 0
	for i := 0; i < l.queue.Len(); i++ {
		if l.queue.At(i).state == waiterQueued {
			waiting++
		}
	}
	return waiting
}

// grantNextLocked hands the permit being released to the first live waiter.
// It reports whether a handoff happened. Must be called with l.mu held.
func (l *fifoLimiter) grantNextLocked() bool {
	for l.queue.Len() > 0 {
		w := l.queue.PopFront()
		if w.state == waiterCancelled {
			// Cancelled records are removed eagerly; skip any that slip
			// through.
			continue
		}
		w.state = waiterGranted
		close(w.ready)
		return true
	}
	return false
}

// removeLocked deletes the waiter's record from the queue.
// Must be called with l.mu held.
func (l *fifoLimiter) removeLocked(w *waiter) {
	if idx := l.queue.Index(func(queued *waiter) bool { return queued == w }); idx >= 0 {
		l.queue.Remove(idx)
	}
}
