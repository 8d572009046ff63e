package combined_test

import (
	"context"
	"runtime"
	"testing"
	"time"

	"github.com/randomizedcoder/spscqueue/internal/cancel"
	"github.com/randomizedcoder/spscqueue/internal/queue"
	"github.com/randomizedcoder/spscqueue/internal/tick"
)

// Sink variables
var sinkInt int
var sinkBool bool

const benchInterval = time.Hour

// ============================================================================
// Consumer hot loop: cancel + tick + Front/Pop
// ============================================================================

func benchmarkConsumerLoop(b *testing.B, c cancel.Canceler, t tick.Ticker, q queue.Queue[int]) {
	// Pre-fill queue
	for i := 0; i < q.Cap(); i++ {
		q.TryPush(i)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var cancelled, ticked bool
	for i := 0; i < b.N; i++ {
		cancelled = c.Done()
		ticked = t.Tick()
		val = *q.Front()
		q.Pop()
		q.TryPush(val) // Recycle
	}
	sinkInt = val
	sinkBool = cancelled || ticked
}

// BenchmarkCombined_ConsumerLoop_Standard uses the standard library
// pieces: context cancellation and a channel queue.
func BenchmarkCombined_ConsumerLoop_Standard(b *testing.B) {
	benchmarkConsumerLoop(b,
		cancel.NewContext(context.Background()),
		tick.NewAtomicTicker(benchInterval),
		queue.NewChannel[int](1024))
}

// BenchmarkCombined_ConsumerLoop_Optimized is the loop cmd/spscqueue runs.
func BenchmarkCombined_ConsumerLoop_Optimized(b *testing.B) {
	benchmarkConsumerLoop(b,
		cancel.NewAtomic(),
		tick.NewBatch(benchInterval, 1024),
		queue.MustNew[int](1024))
}

// ============================================================================
// Pipeline benchmarks (producer/consumer)
// ============================================================================

func benchmarkPipeline(b *testing.B, q queue.Queue[int]) {
	stop := cancel.NewAtomic()
	consumerDone := make(chan struct{})

	// Consumer goroutine (single consumer - SPSC contract)
	go func() {
		defer close(consumerDone)
		for !stop.Done() {
			if q.Front() != nil {
				q.Pop()
			}
		}
	}()

	b.ReportAllocs()
	b.ResetTimer()

	// Producer (single producer - SPSC contract)
	for i := 0; i < b.N; i++ {
		for !q.TryPush(i) {
			runtime.Gosched()
		}
	}

	b.StopTimer()
	stop.Cancel()
	<-consumerDone
}

// BenchmarkPipeline_Channel benchmarks a 2-goroutine SPSC pipeline
// using buffered channels.
func BenchmarkPipeline_Channel(b *testing.B) {
	benchmarkPipeline(b, queue.NewChannel[int](1024))
}

// BenchmarkPipeline_RingQueue benchmarks the same pipeline on RingQueue.
func BenchmarkPipeline_RingQueue(b *testing.B) {
	benchmarkPipeline(b, queue.MustNew[int](1024))
}

// BenchmarkPipeline_RingQueue_Small forces constant wrap-around and
// cursor cache refreshes.
func BenchmarkPipeline_RingQueue_Small(b *testing.B) {
	benchmarkPipeline(b, queue.MustNew[int](10))
}
