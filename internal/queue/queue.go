// Package queue provides a bounded lock-free SPSC (single-producer
// single-consumer) FIFO queue and a channel-backed baseline.
//
// This package offers two implementations of the Queue interface:
//   - RingQueue: cache-line padded ring buffer with cached cursors
//   - ChannelQueue: standard library approach using a buffered channel
//
// # RingQueue Safety (IMPORTANT)
//
// RingQueue is a Single-Producer Single-Consumer queue.
// It is NOT safe for multiple goroutines to push, or multiple goroutines
// to consume, concurrently. There are no runtime guards: a second producer
// or consumer corrupts the queue silently.
//
// Correct usage:
//   - Exactly ONE goroutine calls Push/TryPush/Emplace/TryEmplace
//   - Exactly ONE goroutine calls Front/Pop
//   - Pop only after Front returned a non-nil element
//
// # Snapshots
//
// Len and Empty load the two cursors independently. Under concurrent use they
// return a snapshot that may be stale by the time it is read; they are
// diagnostics, not synchronization.
package queue

// Queue is a bounded single-producer single-consumer FIFO queue.
//
// Producer side: Push, TryPush. Consumer side: Front, Pop.
// Len, Cap and Empty may be called from either side.
type Queue[T any] interface {
	// Push adds an item, spinning until there is room.
	Push(T)

	// TryPush adds an item.
	// Returns false if the queue is full.
	TryPush(T) bool

	// Front returns the next item without removing it.
	// Returns nil if the queue is empty.
	Front() *T

	// Pop removes the item returned by the last Front.
	// Panics if the queue is empty.
	Pop()

	// Len returns a snapshot of the number of queued items.
	Len() int

	// Cap returns the number of items the queue can hold.
	Cap() int

	// Empty reports whether the queue held no items at the time of the call.
	Empty() bool
}
