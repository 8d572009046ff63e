package tick

import (
	"sync/atomic"
	"time"
)

// StdTicker polls a time.Ticker channel.
//
// It reads no clock itself, so it is the cheapest choice when the loop
// spends most of its time yielding. A slow poller sees at most one pending
// tick: time.Ticker drops the ones it could not deliver.
type StdTicker struct {
	ticker   *time.Ticker
	interval time.Duration
	fired    atomic.Uint64
}

// NewTicker creates a StdTicker with the specified interval.
// Intervals below one nanosecond are raised to one.
func NewTicker(interval time.Duration) *StdTicker {
	if interval <= 0 {
		interval = time.Nanosecond
	}
	return &StdTicker{
		ticker:   time.NewTicker(interval),
		interval: interval,
	}
}

// Tick reports whether a tick is pending on the channel.
func (t *StdTicker) Tick() bool {
	select {
	case <-t.ticker.C:
		t.fired.Add(1)
		return true
	default:
		return false
	}
}

// Reset discards a pending tick and restarts the interval from now.
func (t *StdTicker) Reset() {
	t.ticker.Reset(t.interval)
	select {
	case <-t.ticker.C:
	default:
	}
}

// Stop stops the underlying time.Ticker.
func (t *StdTicker) Stop() {
	t.ticker.Stop()
}

// Interval returns the ticker's interval.
func (t *StdTicker) Interval() time.Duration {
	return t.interval
}

// Fired returns how many ticks have been consumed.
func (t *StdTicker) Fired() uint64 {
	return t.fired.Load()
}
