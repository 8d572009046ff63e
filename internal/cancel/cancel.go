// Package cancel provides cancellation signals that can be polled from a
// spin loop.
//
// RingQueue has no cancellation of its own: a producer spinning in Push can
// only be released by the consumer. Callers that need to give up layer a
// Canceler on top and spin on TryPush instead:
//
//	for !q.TryPush(v) {
//		if c.Done() {
//			return c.Err()
//		}
//		runtime.Gosched()
//	}
//
// A Canceler also carries the reason it fired, so the side of a queue that
// gives up can tell the other side why.
//
// Two implementations are provided:
//   - ContextCanceler: context.Context based, optionally tied to OS signals
//   - AtomicCanceler: a single atomic pointer, cheapest to poll
package cancel

// Canceler provides cancellation signaling to workers.
//
// Implementations must be safe for concurrent use:
//   - Multiple goroutines may call Done() and Err() concurrently
//   - Cancel() and CancelCause() may be called concurrently with Done()
type Canceler interface {
	// Done returns true if cancellation has been triggered.
	Done() bool

	// Cancel triggers cancellation with context.Canceled as the cause.
	// Safe to call multiple times.
	Cancel()

	// CancelCause triggers cancellation with err as the cause. Only the
	// first cause is kept; a nil err means context.Canceled.
	CancelCause(err error)

	// Err returns nil until cancellation, then the cause.
	Err() error
}
