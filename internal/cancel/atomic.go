package cancel

import (
	"context"
	"sync/atomic"
)

// AtomicCanceler keeps its cancellation cause behind an atomic pointer.
//
// Done() is a single atomic load, so it can be checked on every
// iteration of a producer or consumer spin loop. The pointer is nil until
// the first Cancel or CancelCause, and later calls never replace it.
type AtomicCanceler struct {
	cause atomic.Pointer[error]
}

// NewAtomic creates a new AtomicCanceler.
func NewAtomic() *AtomicCanceler {
	return &AtomicCanceler{}
}

// Done returns true if cancellation has been triggered.
func (a *AtomicCanceler) Done() bool {
	return a.cause.Load() != nil
}

// Cancel triggers cancellation with context.Canceled as the cause.
func (a *AtomicCanceler) Cancel() {
	a.CancelCause(nil)
}

// CancelCause triggers cancellation with err as the cause unless the
// canceler has already fired.
func (a *AtomicCanceler) CancelCause(err error) {
	if err == nil {
		err = context.Canceled
	}
	a.cause.CompareAndSwap(nil, &err)
}

// Err returns the cancellation cause, or nil if not cancelled.
func (a *AtomicCanceler) Err() error {
	if p := a.cause.Load(); p != nil {
		return *p
	}
	return nil
}

// Reset clears the cause so the canceler can be reused between pipeline
// runs. Not safe to call while a worker may still be polling Done().
func (a *AtomicCanceler) Reset() {
	a.cause.Store(nil)
}
