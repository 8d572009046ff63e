package queue_test

import (
	"testing"

	"github.com/randomizedcoder/spscqueue/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_Channel_PushPop_Direct(b *testing.B) {
	q := queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_RingQueue_PushPop_Direct(b *testing.B) {
	q := queue.MustNew[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_Channel_PushPop_Interface(b *testing.B) {
	var q queue.Queue[int] = queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_RingQueue_PushPop_Interface(b *testing.B) {
	var q queue.Queue[int] = queue.MustNew[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}

// Push-only benchmarks

func BenchmarkQueue_Channel_TryPush(b *testing.B) {
	q := queue.NewChannel[int](b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.TryPush(i)
	}
	sinkBool = ok
}

func BenchmarkQueue_RingQueue_TryPush(b *testing.B) {
	q := queue.MustNew[int](b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.TryPush(i)
	}
	sinkBool = ok
}

// Emplace keeps large values out of the call frame

type bigRecord struct {
	seq  int
	data [240]byte
}

func BenchmarkQueue_RingQueue_Push_Big(b *testing.B) {
	q := queue.MustNew[bigRecord](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var rec bigRecord
	for i := 0; i < b.N; i++ {
		rec.seq = i
		q.Push(rec)
		sinkInt = q.Front().seq
		q.Pop()
	}
}

func BenchmarkQueue_RingQueue_Emplace_Big(b *testing.B) {
	q := queue.MustNew[bigRecord](1024)
	seq := 0
	fill := func(r *bigRecord) { r.seq = seq }
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		seq = i
		q.Emplace(fill)
		sinkInt = q.Front().seq
		q.Pop()
	}
}

// Different queue sizes

func BenchmarkQueue_Channel_PushPop_Size64(b *testing.B) {
	q := queue.NewChannel[int](64)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}

func BenchmarkQueue_RingQueue_PushPop_Size64(b *testing.B) {
	q := queue.MustNew[int](64)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	for i := 0; i < b.N; i++ {
		q.TryPush(i)
		val = *q.Front()
		q.Pop()
	}
	sinkInt = val
}
