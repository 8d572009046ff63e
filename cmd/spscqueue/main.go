// Command spscqueue hands a stream of integers from one producer goroutine
// to one consumer goroutine through a shared RingQueue, logging every push
// and pop.
//
// The consumer checks that values arrive in order and, when -report is set,
// logs the queue's occupancy periodically. Ctrl-C stops both sides; values
// still queued at that point are drained by Close.
//
// Usage:
//
//	go run ./cmd/spscqueue -n 10 -capacity 10
//	go run ./cmd/spscqueue -n 10000000 -capacity 1024 -log-level info -producer-cpu 2 -consumer-cpu 3
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/randomizedcoder/spscqueue/internal/affinity"
	"github.com/randomizedcoder/spscqueue/internal/cancel"
	"github.com/randomizedcoder/spscqueue/internal/queue"
	"github.com/randomizedcoder/spscqueue/internal/tick"
)

var errOutOfOrder = errors.New("spscqueue: value out of order")

type config struct {
	count       int
	capacity    int
	producerCPU int
	consumerCPU int
	report      time.Duration
	reportEvery int
	logLevel    string
}

type result struct {
	pushed   int
	popped   int
	dropped  int
	duration time.Duration
}

func main() {
	var cfg config
	flag.IntVar(&cfg.count, "n", 10, "number of values to push")
	flag.IntVar(&cfg.capacity, "capacity", 10, "queue capacity")
	flag.IntVar(&cfg.producerCPU, "producer-cpu", -1, "pin the producer to this CPU (-1: no pinning)")
	flag.IntVar(&cfg.consumerCPU, "consumer-cpu", -1, "pin the consumer to this CPU (-1: no pinning)")
	flag.DurationVar(&cfg.report, "report", 0, "occupancy report interval (0: off)")
	flag.IntVar(&cfg.reportEvery, "report-every", 1024, "read the clock every N consumer iterations (0: use a time.Ticker channel)")
	flag.StringVar(&cfg.logLevel, "log-level", "debug", "log level (debug logs every push and pop)")
	flag.Parse()

	log, err := newLogger(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	sig := cancel.NewSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer sig.Cancel()

	res, err := run(cfg, sig, log)
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		os.Exit(1)
	}

	ev := log.Info().
		Int("pushed", res.pushed).
		Int("popped", res.popped).
		Int("dropped", res.dropped).
		Dur("elapsed", res.duration)
	if res.popped > 0 {
		ev = ev.Float64("ns_per_item", float64(res.duration.Nanoseconds())/float64(res.popped))
	}
	ev.Msg("done")
}

func newLogger(level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid -log-level %q: %w", level, err)
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

// run creates the queue once and shares it between a producer and a
// consumer goroutine until the consumer has seen cfg.count values or stop
// fires.
func run(cfg config, stop cancel.Canceler, log zerolog.Logger) (result, error) {
	var res result
	if cfg.count < 0 {
		return res, fmt.Errorf("invalid -n %d", cfg.count)
	}
	if cfg.capacity < 1 {
		log.Warn().Int("capacity", cfg.capacity).Msg("capacity below 1, using 1")
	}

	q, err := queue.New[int](cfg.capacity)
	if err != nil {
		return res, fmt.Errorf("create queue: %w", err)
	}
	log.Debug().Int("capacity", q.Cap()).Msg("queue created")

	// finished is set by the producer once it has pushed its last value.
	// abandoned is set by the consumer when it stops reading, with its
	// error as the cause.
	finished := cancel.NewAtomic()
	abandoned := cancel.NewAtomic()

	var wg sync.WaitGroup
	var consumeErr error
	start := time.Now()

	wg.Add(2)
	go func() {
		defer wg.Done()
		defer finished.Cancel()
		pin(cfg.producerCPU, "producer", log)
		res.pushed = produce(q, cfg.count, stop, abandoned, log)
	}()
	go func() {
		defer wg.Done()
		pin(cfg.consumerCPU, "consumer", log)
		res.popped, consumeErr = consume(q, cfg, stop, finished, log)
		abandoned.CancelCause(consumeErr)
	}()
	wg.Wait()
	res.duration = time.Since(start)

	res.dropped = q.Len()
	q.Close()

	return res, consumeErr
}

func pin(cpu int, role string, log zerolog.Logger) {
	if cpu < 0 {
		return
	}
	if err := affinity.Pin(cpu); err != nil {
		log.Warn().Err(err).Str("role", role).Int("cpu", cpu).Msg("pinning failed, running unpinned")
		return
	}
	log.Debug().Str("role", role).Int("cpu", cpu).Msg("pinned")
}

// produce pushes 0..count-1. It retries TryPush rather than calling Push,
// so a stalled or departed consumer cannot keep it from noticing stop, and
// it yields between attempts so the consumer can run on the same P.
func produce(q *queue.RingQueue[int], count int, stop, abandoned cancel.Canceler, log zerolog.Logger) int {
	for i := 0; i < count; i++ {
		for {
			if stop.Done() || abandoned.Done() {
				log.Warn().
					Int("next", i).
					AnErr("stop", stop.Err()).
					AnErr("consumer", abandoned.Err()).
					Msg("producer interrupted")
				return i
			}
			if q.TryPush(i) {
				break
			}
			runtime.Gosched()
		}
		log.Debug().Int("value", i).Msg("push")
	}
	return count
}

func consume(q *queue.RingQueue[int], cfg config, stop, finished cancel.Canceler, log zerolog.Logger) (int, error) {
	var ticker tick.Ticker
	if cfg.report > 0 {
		ticker = tick.New(cfg.report, cfg.reportEvery)
		defer ticker.Stop()
	}

	expected := 0
	for expected < cfg.count {
		if ticker != nil && ticker.Tick() {
			log.Info().
				Int("len", q.Len()).
				Bool("empty", q.Empty()).
				Int("received", expected).
				Uint64("report", ticker.Fired()).
				Msg("occupancy")
		}

		p := q.Front()
		if p == nil {
			if stop.Done() {
				log.Warn().Int("received", expected).Msg("consumer interrupted")
				return expected, nil
			}
			// The producer gave up early and everything it pushed is consumed.
			if finished.Done() && q.Empty() {
				return expected, nil
			}
			runtime.Gosched()
			continue
		}

		v := *p
		q.Pop()
		if v != expected {
			return expected, fmt.Errorf("%w: expected %d, got %d", errOutOfOrder, expected, v)
		}
		log.Debug().Int("value", v).Msg("pop")
		expected++
	}
	return expected, nil
}
