package queue

import "unsafe"

// CacheLineSize exposes cacheLineSize to the external tests.
const CacheLineSize = cacheLineSize

// CursorOffsets returns the byte offsets of the four cursor fields.
func CursorOffsets() (write, read, writeCache, readCache uintptr) {
	var c cursors
	return unsafe.Offsetof(c.writeIndex), unsafe.Offsetof(c.readIndex),
		unsafe.Offsetof(c.writeIndexCache), unsafe.Offsetof(c.readIndexCache)
}

// SlotPadding exposes slotPadding.
func SlotPadding(elemSize uintptr) int { return slotPadding(elemSize) }

// RingSize exposes ringSize.
func RingSize(requested, padding int) int { return ringSize(requested, padding) }

// Slots returns the full slot array, padding included.
func (q *RingQueue[T]) Slots() []T { return q.slots }

// Padding returns the number of unused slots on each side of the ring.
func (q *RingQueue[T]) Padding() int { return q.padding }
