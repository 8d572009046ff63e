// Command spscbench measures two-goroutine pipeline throughput for
// RingQueue, a buffered channel, and go-lock-free-ring with one shard.
//
// Usage:
//
//	go run ./cmd/spscbench -n 10000000 -size 1024
//	go run ./cmd/spscbench -n 10000000 -size 1024 -producer-cpu 2 -consumer-cpu 3
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	ring "github.com/randomizedcoder/go-lock-free-ring"
	"github.com/rs/zerolog"

	"github.com/randomizedcoder/spscqueue/internal/affinity"
	"github.com/randomizedcoder/spscqueue/internal/queue"
)

type pins struct {
	producer int
	consumer int
}

// pipeline is one implementation under test: push and pop report whether
// they moved an item.
type pipeline struct {
	name string
	push func(int) bool
	pop  func() bool
}

func main() {
	iterations := flag.Int("n", 10_000_000, "number of items per pipeline")
	size := flag.Int("size", 1024, "queue size")
	producerCPU := flag.Int("producer-cpu", -1, "pin the producer to this CPU (-1: no pinning)")
	consumerCPU := flag.Int("consumer-cpu", -1, "pin the consumer to this CPU (-1: no pinning)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	pipelines, err := newPipelines(*size)
	if err != nil {
		log.Fatal().Err(err).Msg("setup failed")
	}

	fmt.Printf("Benchmarking SPSC pipelines (%d items, size=%d, GOMAXPROCS=%d)\n",
		*iterations, *size, runtime.GOMAXPROCS(0))
	fmt.Println("─────────────────────────────────────────────────")

	p := pins{producer: *producerCPU, consumer: *consumerCPU}
	results := make([]time.Duration, len(pipelines))
	for i, pl := range pipelines {
		results[i] = measure(*iterations, pl, p, log)
	}

	// Results, relative to the channel baseline
	fmt.Printf("\nResults (one push + one pop per item):\n")
	baseline := float64(results[0].Nanoseconds()) / float64(*iterations)
	for i, pl := range pipelines {
		perOp := float64(results[i].Nanoseconds()) / float64(*iterations)
		fmt.Printf("  %-22s %12v  %8.2f ns/op  %6.2fx  %8.2f M/s\n",
			pl.name, results[i], perOp, baseline/perOp, 1000/perOp)
	}
}

func newPipelines(size int) ([]pipeline, error) {
	ch := queue.NewChannel[int](size)
	rq, err := queue.New[int](size)
	if err != nil {
		return nil, err
	}
	// go-lock-free-ring wants at least one slot per shard.
	lfr, err := ring.NewShardedRing(uint64(max(size, 1)), 1)
	if err != nil {
		return nil, fmt.Errorf("go-lock-free-ring: %w", err)
	}

	return []pipeline{
		{"Channel", ch.TryPush, popFront[int](ch)},
		{"RingQueue", rq.TryPush, popFront[int](rq)},
		{"ShardedRing(1 shard)",
			func(v int) bool { return lfr.Write(0, v) },
			func() bool { _, ok := lfr.TryRead(); return ok }},
	}, nil
}

func popFront[T any](q queue.Queue[T]) func() bool {
	return func() bool {
		if q.Front() == nil {
			return false
		}
		q.Pop()
		return true
	}
}

// measure runs n items through pl with the producer and consumer on their
// own goroutines, pinned if requested. Both sides yield when they cannot
// make progress, the same way the pipeline benchmarks do.
func measure(n int, pl pipeline, p pins, log zerolog.Logger) time.Duration {
	var wg sync.WaitGroup
	wg.Add(2)

	start := time.Now()
	go func() {
		defer wg.Done()
		pin(p.consumer, pl.name, "consumer", log)
		for got := 0; got < n; {
			if pl.pop() {
				got++
				continue
			}
			runtime.Gosched()
		}
	}()
	go func() {
		defer wg.Done()
		pin(p.producer, pl.name, "producer", log)
		for i := 0; i < n; i++ {
			for !pl.push(i) {
				runtime.Gosched()
			}
		}
	}()
	wg.Wait()

	return time.Since(start)
}

func pin(cpu int, name, role string, log zerolog.Logger) {
	if cpu < 0 {
		return
	}
	if err := affinity.Pin(cpu); err != nil {
		log.Warn().Err(err).Str("pipeline", name).Str("role", role).Int("cpu", cpu).
			Msg("pinning failed, running unpinned")
	}
}
