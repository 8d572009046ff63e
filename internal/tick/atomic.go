package tick

import (
	"sync/atomic"
	"time"
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the runtime's monotonic clock in nanoseconds without
// building a time.Time.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64

// AtomicTicker keeps the deadline of the next tick in an atomic and
// compares runtime.nanotime against it.
//
// Several goroutines may poll the same ticker (a producer and a consumer
// sharing one report schedule). Whoever moves the deadline forward wins the
// tick, so each interval fires once.
type AtomicTicker struct {
	interval int64 // nanoseconds
	deadline atomic.Int64
	fired    atomic.Uint64
}

// NewAtomicTicker creates an AtomicTicker whose first tick is due one
// interval from now.
func NewAtomicTicker(interval time.Duration) *AtomicTicker {
	t := &AtomicTicker{
		interval: int64(interval),
	}
	t.deadline.Store(nanotime() + t.interval)
	return t
}

// Tick returns true once the deadline has passed, and schedules the next
// one an interval after now. Missed intervals are not replayed.
func (a *AtomicTicker) Tick() bool {
	due := a.deadline.Load()
	now := nanotime()
	if now < due {
		return false
	}
	if !a.deadline.CompareAndSwap(due, now+a.interval) {
		return false
	}
	a.fired.Add(1)
	return true
}

// Reset pushes the deadline to one interval from now.
func (a *AtomicTicker) Reset() {
	a.deadline.Store(nanotime() + a.interval)
}

// Stop is a no-op; AtomicTicker holds no timer.
func (a *AtomicTicker) Stop() {}

// Interval returns the ticker's interval.
func (a *AtomicTicker) Interval() time.Duration {
	return time.Duration(a.interval)
}

// Fired returns how many times Tick has returned true.
func (a *AtomicTicker) Fired() uint64 {
	return a.fired.Load()
}
