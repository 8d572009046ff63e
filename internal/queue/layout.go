package queue

import (
	"math"
	"math/bits"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// cacheLineSize is the destructive interference size for the target
// architecture (64 on amd64, 128 on arm64, 256 on s390x).
const cacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// cursors is the mutable state shared by the producer and the consumer.
// Each field sits alone on its own cache line so a store by one side never
// invalidates the line the other side is polling.
type cursors struct {
	_ cpu.CacheLinePad

	writeIndex atomic.Uint64 // Written by producer, read by consumer

	_ cpu.CacheLinePad

	readIndex atomic.Uint64 // Written by consumer, read by producer

	_ cpu.CacheLinePad

	writeIndexCache uint64 // Consumer-private copy of writeIndex

	_ cpu.CacheLinePad

	readIndexCache uint64 // Producer-private copy of readIndex

	_ cpu.CacheLinePad
}

var layout cursors

// The array lengths below go negative, and the build fails, if two cursors
// ever end up closer than one cache line apart.
var (
	_ [unsafe.Offsetof(layout.readIndex) - unsafe.Offsetof(layout.writeIndex) - cacheLineSize]struct{}
	_ [unsafe.Offsetof(layout.writeIndexCache) - unsafe.Offsetof(layout.readIndex) - cacheLineSize]struct{}
	_ [unsafe.Offsetof(layout.readIndexCache) - unsafe.Offsetof(layout.writeIndexCache) - cacheLineSize]struct{}
	_ [unsafe.Sizeof(layout) - 5*cacheLineSize]struct{}
)

// slotPadding returns how many elements of elemSize bytes cover one cache
// line. Zero-sized elements count as one byte.
func slotPadding(elemSize uintptr) int {
	if elemSize == 0 {
		elemSize = 1
	}
	return int((cacheLineSize-1)/elemSize + 1)
}

// maxAllocBytes is the largest heap object the runtime can hand out.
func maxAllocBytes() uint64 {
	if bits.UintSize == 32 {
		return math.MaxInt32
	}
	return 1 << 47
}

// ringSize returns the internal (slack-inclusive) capacity for a requested
// capacity, capped so that internal+2*padding never overflows int.
func ringSize(requested, padding int) int {
	if requested < 1 {
		requested = 1
	}
	limit := math.MaxInt - 2*padding
	if requested >= limit {
		return limit
	}
	return requested + 1
}
