package tick

import "time"

// BatchTicker reads the clock only every N calls to Tick.
//
// With every=1024 a consumer draining ten million items per second looks at
// the clock about ten thousand times per second, and a report can be late by
// at most 1024 iterations. BatchTicker is not safe for concurrent use; give
// each goroutine its own.
type BatchTicker struct {
	interval time.Duration
	every    int
	count    int
	fired    uint64
	lastTick time.Time
}

// NewBatch creates a BatchTicker that checks time every N operations.
// Values of every below 1 are raised to 1.
func NewBatch(interval time.Duration, every int) *BatchTicker {
	if every < 1 {
		every = 1
	}
	return &BatchTicker{
		interval: interval,
		every:    every,
		lastTick: time.Now(),
	}
}

// Tick returns true if the interval has elapsed. Calls that are not a
// multiple of every return false without reading the clock.
func (b *BatchTicker) Tick() bool {
	b.count++
	if b.count < b.every {
		return false
	}
	b.count = 0

	now := time.Now()
	if now.Sub(b.lastTick) < b.interval {
		return false
	}
	b.lastTick = now
	b.fired++
	return true
}

// Reset clears the call counter and starts a new interval from now.
func (b *BatchTicker) Reset() {
	b.count = 0
	b.lastTick = time.Now()
}

// Stop is a no-op; BatchTicker holds no timer.
func (b *BatchTicker) Stop() {}

// Fired returns how many times Tick has returned true.
func (b *BatchTicker) Fired() uint64 {
	return b.fired
}

// Every returns the batch size.
func (b *BatchTicker) Every() int {
	return b.every
}

// Interval returns the ticker's interval.
func (b *BatchTicker) Interval() time.Duration {
	return b.interval
}
