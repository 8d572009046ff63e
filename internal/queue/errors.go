package queue

import "errors"

var (
	// ErrAllocation is returned by New when the slot array cannot be allocated.
	ErrAllocation = errors.New("queue: cannot allocate ring storage")

	// ErrEmptyPop is the panic value of Pop on an empty queue.
	ErrEmptyPop = errors.New("queue: Pop on empty queue, call Front first")

	// ErrClosed is the panic value of any producer or consumer call after Close.
	ErrClosed = errors.New("queue: use of closed queue")
)
