package fifo

import (
	"context"
	"fmt"
	"testing"
	"time"
)

// mustNewSafe creates a new limiter or panics on error (for benchmarks only)
func mustNewSafe(capacity int) Limiter {
	limiter, err := NewSafe(capacity)
	if err != nil {
		panic(err)
	}
	return limiter
}

// BenchmarkTryAcquire measures the non-blocking path
func BenchmarkTryAcquire(b *testing.B) {
	limiter := mustNewSafe(1000) // High capacity to avoid refusals

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.TryAcquire() {
				limiter.Release()
			}
		}
	})
}

// BenchmarkAcquireFastPath measures Acquire calls that never queue
func BenchmarkAcquireFastPath(b *testing.B) {
	limiter := mustNewSafe(1000)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.Acquire(ctx) == nil {
				limiter.Release()
			}
		}
	})
}

// BenchmarkHighContention measures throughput with a small pool
func BenchmarkHighContention(b *testing.B) {
	limiter := mustNewSafe(10)
	ctx := context.Background()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if limiter.Acquire(ctx) == nil {
				limiter.Release()
			}
		}
	})
}

// BenchmarkHandoff measures the queued wakeup path
func BenchmarkHandoff(b *testing.B) {
	limiter := mustNewSafe(1)

	// Fill the pool
	limiter.TryAcquire()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		done := make(chan struct{})
		go func() {
			_ = limiter.Acquire(context.Background())
			limiter.Release()
			close(done)
		}()

		// Brief pause to let the waiter queue
		time.Sleep(time.Microsecond)

		limiter.Release()
		<-done

		// Re-acquire for the next iteration
		limiter.TryAcquire()
	}
}

// BenchmarkCancellation measures abandoning a queued acquisition
func BenchmarkCancellation(b *testing.B) {
	limiter := mustNewSafe(1)

	// Fill the pool
	limiter.TryAcquire()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan error, 1)
		go func() {
			done <- limiter.Acquire(ctx)
		}()

		cancel()
		<-done
	}
}

// BenchmarkMemoryAllocation measures allocation on the fast path
func BenchmarkMemoryAllocation(b *testing.B) {
	b.ReportAllocs()

	limiter := mustNewSafe(100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if limiter.TryAcquire() {
			limiter.Release()
		}
	}
}

// BenchmarkCapacityScaling measures performance at different pool sizes
func BenchmarkCapacityScaling(b *testing.B) {
	capacities := []int{1, 10, 100, 1000}

	for _, capacity := range capacities {
		b.Run(fmt.Sprintf("Capacity-%d", capacity), func(b *testing.B) {
			limiter := mustNewSafe(capacity)

			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				for pb.Next() {
					if limiter.TryAcquire() {
						limiter.Release()
					}
				}
			})
		})
	}
}
