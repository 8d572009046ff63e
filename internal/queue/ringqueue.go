package queue

import (
	"fmt"
	"unsafe"
)

// RingQueue is a bounded lock-free SPSC (Single-Producer Single-Consumer) queue.
//
// WARNING: This queue is NOT safe for multiple producers or multiple consumers.
// Using it incorrectly will cause data races and undefined behavior.
//
// The ring holds one more slot than the requested capacity. The slack slot
// keeps "empty" (writeIndex == readIndex) and "full" (writeIndex+1 ==
// readIndex) distinct, so no shared element counter is needed.
//
// Each side keeps a private copy of the other side's cursor and only reloads
// the shared one when the copy says the queue is full (producer) or empty
// (consumer). In steady state this keeps cross-core traffic to the two
// release stores.
//
// A RingQueue must not be copied after first use.
type RingQueue[T any] struct {
	// Read-only after New.
	capacity uint64 // Requested capacity + 1
	padding  int    // Unused slots before and after the ring
	slots    []T
	release  func(*T)

	cursors
}

// New creates a RingQueue that holds up to capacity items.
//
// Capacities below 1 are raised to 1. The slot array is allocated once, with
// a cache line of unused slots on each side so the first and last slots do
// not share a line with neighbouring heap objects. New returns an error
// wrapping ErrAllocation if that array is larger than the runtime can
// allocate.
func New[T any](capacity int, opts ...Option[T]) (*RingQueue[T], error) {
	var zero T
	elemSize := unsafe.Sizeof(zero)
	padding := slotPadding(elemSize)
	size := ringSize(capacity, padding)

	total := size + 2*padding
	if elemSize > 0 && uint64(total) > maxAllocBytes()/uint64(elemSize) {
		return nil, fmt.Errorf("%w: %d slots of %d bytes", ErrAllocation, total, elemSize)
	}

	var o options[T]
	for _, opt := range opts {
		opt(&o)
	}

	return &RingQueue[T]{
		capacity: uint64(size),
		padding:  padding,
		slots:    make([]T, total),
		release:  o.release,
	}, nil
}

// MustNew is like New but panics if the queue cannot be allocated.
func MustNew[T any](capacity int, opts ...Option[T]) *RingQueue[T] {
	q, err := New(capacity, opts...)
	if err != nil {
		panic(err)
	}
	return q
}

// Push adds an item to the queue, busy-spinning while the queue is full.
//
// There is no backoff, timeout or cancellation: Push returns only once the
// consumer frees a slot. Callers that need a bounded wait should loop on
// TryPush instead.
//
// SPSC CONTRACT: Only ONE goroutine may push.
func (q *RingQueue[T]) Push(v T) {
	w, next := q.reserve()
	q.slots[int(w)+q.padding] = v
	q.writeIndex.Store(next)
}

// Emplace is like Push but lets fn build the item directly in its slot,
// which avoids copying large values. The slot holds the zero value when fn
// is called.
func (q *RingQueue[T]) Emplace(fn func(slot *T)) {
	w, next := q.reserve()
	fn(&q.slots[int(w)+q.padding])
	q.writeIndex.Store(next)
}

// TryPush adds an item to the queue.
// Returns false if the queue is full.
//
// SPSC CONTRACT: Only ONE goroutine may push.
func (q *RingQueue[T]) TryPush(v T) bool {
	w, next, ok := q.tryReserve()
	if !ok {
		return false
	}
	q.slots[int(w)+q.padding] = v
	q.writeIndex.Store(next)
	return true
}

// TryEmplace is the non-blocking form of Emplace.
// Returns false, without calling fn, if the queue is full.
func (q *RingQueue[T]) TryEmplace(fn func(slot *T)) bool {
	w, next, ok := q.tryReserve()
	if !ok {
		return false
	}
	fn(&q.slots[int(w)+q.padding])
	q.writeIndex.Store(next)
	return true
}

// reserve returns the producer's current write index and its successor,
// spinning until the slot it names is free.
func (q *RingQueue[T]) reserve() (w, next uint64) {
	q.mustOpen()

	// Only the producer stores writeIndex.
	w = q.writeIndex.Load()
	next = w + 1
	if next == q.capacity {
		next = 0
	}

	for next == q.readIndexCache {
		q.readIndexCache = q.readIndex.Load()
	}
	return w, next
}

func (q *RingQueue[T]) tryReserve() (w, next uint64, ok bool) {
	q.mustOpen()

	w = q.writeIndex.Load()
	next = w + 1
	if next == q.capacity {
		next = 0
	}

	if next == q.readIndexCache {
		q.readIndexCache = q.readIndex.Load()
		if next == q.readIndexCache {
			return 0, 0, false
		}
	}
	return w, next, true
}

// Front returns a pointer to the next item without removing it.
// Returns nil if the queue is empty.
//
// The pointer stays valid until the following Pop.
//
// SPSC CONTRACT: Only ONE goroutine may consume.
func (q *RingQueue[T]) Front() *T {
	q.mustOpen()

	// Only the consumer stores readIndex.
	r := q.readIndex.Load()
	if r == q.writeIndexCache {
		q.writeIndexCache = q.writeIndex.Load()
		if q.writeIndexCache == r {
			return nil
		}
	}
	return &q.slots[int(r)+q.padding]
}

// Pop removes the item returned by the last Front, running the release
// hook on it and clearing the slot.
//
// Pop panics with ErrEmptyPop if the queue is empty.
//
// SPSC CONTRACT: Only ONE goroutine may consume.
func (q *RingQueue[T]) Pop() {
	q.mustOpen()

	r := q.readIndex.Load()
	if r == q.writeIndexCache {
		q.writeIndexCache = q.writeIndex.Load()
		if q.writeIndexCache == r {
			panic(ErrEmptyPop)
		}
	}

	slot := &q.slots[int(r)+q.padding]
	if q.release != nil {
		q.release(slot)
	}
	var zero T
	*slot = zero // Drop references so the GC can reclaim them

	next := r + 1
	if next == q.capacity {
		next = 0
	}
	q.readIndex.Store(next)
}

// Len returns the number of items in the queue.
// This is a snapshot of two independent loads and may be stale.
func (q *RingQueue[T]) Len() int {
	w := q.writeIndex.Load()
	r := q.readIndex.Load()
	if w < r {
		w += q.capacity
	}
	return int(w - r)
}

// Empty reports whether the queue is empty.
// Same snapshot caveat as Len.
func (q *RingQueue[T]) Empty() bool {
	return q.writeIndex.Load() == q.readIndex.Load()
}

// Cap returns the capacity requested at construction.
func (q *RingQueue[T]) Cap() int {
	return int(q.capacity - 1)
}

// Close pops every remaining item, running the release hook on each exactly
// once, and drops the slot array.
//
// Close must only be called once both the producer and the consumer are done
// with the queue. It is safe on a queue that was never used and calling it
// again is a no-op. Any push or consume after Close panics with ErrClosed.
func (q *RingQueue[T]) Close() {
	if q.slots == nil {
		return
	}
	for q.Front() != nil {
		q.Pop()
	}
	q.slots = nil
}

func (q *RingQueue[T]) mustOpen() {
	if q.slots == nil {
		panic(ErrClosed)
	}
}
