package queue

import "sync/atomic"

// ChannelQueue wraps a buffered channel as a Queue.
//
// This is the standard library approach, kept as a baseline for RingQueue.
// TryPush and Front are non-blocking selects; Push is a plain channel send,
// so a full ChannelQueue parks the producer instead of spinning.
//
// A channel has no peek, so Front receives into a lookahead slot owned by
// the consumer. While an item is held there the queue can briefly contain
// Cap()+1 items.
type ChannelQueue[T any] struct {
	ch   chan T
	head T
	held atomic.Bool
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	if size < 1 {
		size = 1
	}
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Push adds an item to the queue, blocking while the channel is full.
func (q *ChannelQueue[T]) Push(v T) {
	q.ch <- v
}

// TryPush adds an item to the queue.
// Returns false if the queue is full (non-blocking).
func (q *ChannelQueue[T]) TryPush(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Front returns the next item without removing it.
// Returns nil if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Front() *T {
	if q.held.Load() {
		return &q.head
	}
	select {
	case v := <-q.ch:
		q.head = v
		q.held.Store(true)
		return &q.head
	default:
		return nil
	}
}

// Pop removes the item returned by Front.
// Panics with ErrEmptyPop if the queue is empty.
func (q *ChannelQueue[T]) Pop() {
	if !q.held.Load() && q.Front() == nil {
		panic(ErrEmptyPop)
	}
	var zero T
	q.head = zero
	q.held.Store(false)
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	n := len(q.ch)
	if q.held.Load() {
		n++
	}
	return n
}

// Cap returns the capacity of the channel buffer.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}

// Empty reports whether the queue is empty.
func (q *ChannelQueue[T]) Empty() bool {
	return q.Len() == 0
}
