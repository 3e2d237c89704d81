package fifo

import (
	"context"
	"sync"

	"github.com/gammazero/deque"

	"github.com/vnykmshr/gopermit/pkg/common/validation"
)

// Limiter is a fixed-capacity permit pool with a FIFO wait queue.
// Holding a permit is the right to perform one unit of throttled work;
// the number of permits in circulation never exceeds the capacity.
type Limiter interface {
	// Acquire obtains one permit, blocking in arrival order behind earlier
	// callers when none is free. It returns nil once the permit is owned by
	// the caller, or the context error if ctx is canceled while waiting.
	// A caller that received an error holds nothing and must not Release.
	Acquire(ctx context.Context) error

	// TryAcquire obtains one permit without blocking.
	// It returns true if a permit was free, false otherwise. It never
	// overtakes queued callers: a permit is only free when the queue is empty.
	TryAcquire() bool

	// Release returns one permit to the pool. If callers are queued, the
	// permit is handed directly to the head of the queue instead of being
	// returned to the free pool. Release never blocks.
	// It panics if more permits are released than were acquired.
	Release()

	// Restore releases up to n held permits back to the pool, honoring the
	// same FIFO handoff as Release, and returns the number actually
	// restored. Unlike Release it never panics; restoring from an idle pool
	// restores nothing. It exists as the extension point for refill
	// policies such as pkg/limit/replenish.
	Restore(n int) int

	// Capacity returns the fixed size of the permit pool.
	Capacity() int

	// Available returns the number of permits currently free.
	Available() int

	// InUse returns the number of permits currently held by callers.
	InUse() int

	// Waiting returns the number of callers queued for a permit.
	Waiting() int
}

// Config holds configuration options for creating a new fifo Limiter.
type Config struct {
	// Capacity is the fixed number of permits in the pool. Must be positive.
	Capacity int

	// InitialAvailable is the initial number of free permits.
	// If negative or greater than Capacity, defaults to Capacity.
	// A value below Capacity starts the pool with permits already "held",
	// which is useful for pools that are filled by a replenisher.
	InitialAvailable int
}

// waiter represents one caller queued for a permit. Its state is mutated
// only while holding the limiter mutex.
type waiter struct {
	ready chan struct{} // closed when the permit is handed over
	state waiterState
}

type waiterState int

const (
	waiterQueued waiterState = iota
	waiterGranted
	waiterCancelled
)

// fifoLimiter implements Limiter with an ordered queue of waiter handles
// guarded by a single mutex.
type fifoLimiter struct {
	mu        sync.Mutex
	capacity  int
	available int
	inUse     int
	queue     deque.Deque[*waiter]
}

// NewSafe creates a new FIFO limiter with validation that returns an error
// instead of panicking. This is the recommended constructor for production use.
func NewSafe(capacity int) (Limiter, error) {
	return NewWithConfigSafe(Config{
		Capacity:         capacity,
		InitialAvailable: -1, // Use capacity as default
	})
}

// NewWithConfigSafe creates a new FIFO limiter from a Config with validation
// that returns an error instead of panicking.
func NewWithConfigSafe(config Config) (Limiter, error) {
	if err := validation.ValidatePositive("fifo", "capacity", config.Capacity); err != nil {
		return nil, err
	}

	initialAvailable := config.InitialAvailable
	if config.InitialAvailable < 0 || config.InitialAvailable > config.Capacity {
		initialAvailable = config.Capacity
	}

	return &fifoLimiter{
		capacity:  config.Capacity,
		available: initialAvailable,
		inUse:     config.Capacity - initialAvailable,
	}, nil
}
