package queue

// Option configures a RingQueue.
type Option[T any] func(*options[T])

type options[T any] struct {
	release func(*T)
}

// WithRelease registers fn as the teardown hook for queued elements.
//
// fn runs exactly once per element: when the consumer pops it, or when Close
// drains it. It runs on the consumer side (or in Close) and must not panic.
func WithRelease[T any](fn func(*T)) Option[T] {
	return func(o *options[T]) {
		o.release = fn
	}
}
