// Package tick provides cheap periodic triggers for spin loops.
//
// A queue consumer that polls Front millions of times per second cannot
// afford a clock read on every iteration just to find out whether it is
// time to report occupancy. The Ticker implementations here trade accuracy
// for cost:
//   - StdTicker: a time.Ticker channel, one select per call
//   - AtomicTicker: a monotonic clock read and an atomic load per call
//   - BatchTicker: a counter increment per call, a clock read every N
package tick

import "time"

// Ticker signals when a time interval has elapsed.
//
// Tick is non-blocking and is meant to be called on every loop iteration.
type Ticker interface {
	// Tick returns true if the interval has elapsed since the last tick.
	Tick() bool

	// Reset starts a new interval from now.
	Reset()

	// Stop releases any timer held by the ticker.
	Stop()

	// Interval returns the configured interval.
	Interval() time.Duration

	// Fired returns how many times Tick has returned true.
	Fired() uint64
}

// New returns a Ticker firing every interval:
//   - every <= 0: StdTicker
//   - every == 1: AtomicTicker, the clock is read on each call
//   - every > 1: BatchTicker, the clock is read on every Nth call
func New(interval time.Duration, every int) Ticker {
	switch {
	case every <= 0:
		return NewTicker(interval)
	case every == 1:
		return NewAtomicTicker(interval)
	default:
		return NewBatch(interval, every)
	}
}
