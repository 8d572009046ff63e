package combined_test

import (
	"runtime"
	"testing"

	ring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/spscqueue/internal/cancel"
	"github.com/randomizedcoder/spscqueue/internal/queue"
)

// ============================================================================
// RingQueue vs go-lock-free-ring
// ============================================================================
//
// KEY DIFFERENCE:
// - RingQueue: SPSC with cached cursors and a slack slot
// - go-lock-free-ring: MPSC (Multi-Producer, Single-Consumer) with sharding
//
// With one shard the sharded ring degenerates to a single-producer ring,
// which makes it the closest third-party comparison.

var sinkAny any

// BenchmarkLFR_SPSC_RingQueue - our SPSC, 1 producer, 1 consumer
func BenchmarkLFR_SPSC_RingQueue(b *testing.B) {
	q := queue.MustNew[int](1024)
	stop := cancel.NewAtomic()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for !stop.Done() {
			if p := q.Front(); p != nil {
				sinkInt = *p
				q.Pop()
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !q.TryPush(i) {
			runtime.Gosched()
		}
	}
	b.StopTimer()
	stop.Cancel()
	<-done
}

// BenchmarkLFR_SPSC_ShardedRing1 - go-lock-free-ring with 1 shard
func BenchmarkLFR_SPSC_ShardedRing1(b *testing.B) {
	r, err := ring.NewShardedRing(1024, 1)
	if err != nil {
		b.Fatalf("NewShardedRing: %v", err)
	}
	stop := cancel.NewAtomic()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for !stop.Done() {
			if v, ok := r.TryRead(); ok {
				sinkAny = v
			}
		}
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !r.Write(0, i) {
			runtime.Gosched()
		}
	}
	b.StopTimer()
	stop.Cancel()
	<-done
}

// BenchmarkLFR_SPSC_RingQueue_Any - RingQueue carrying interface values,
// matching the boxing cost go-lock-free-ring pays on every Write
func BenchmarkLFR_SPSC_RingQueue_Any(b *testing.B) {
	q := queue.MustNew[any](1024)
	stop := cancel.NewAtomic()
	done := make(chan struct{})

	go func() {
		defer close(done)
		for !stop.Done() {
			if p := q.Front(); p != nil {
				sinkAny = *p
				q.Pop()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for !q.TryPush(i) {
			runtime.Gosched()
		}
	}
	b.StopTimer()
	stop.Cancel()
	<-done
}
