package list_test

import (
	"testing"

	"github.com/hasbyte1/go-persistent-list/list"
)

// makeInts creates a List[int] of size n for benchmarks.
func makeInts(n int) list.List[int] {
	items := make([]int, n)
	for i := range items {
		items[i] = i + 1
	}
	return list.From(items)
}

func BenchmarkPrepend(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Prepend(0)
	}
}

func BenchmarkDrop(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Drop(5_000)
	}
}

func BenchmarkFilter(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Filter(func(n int) bool { return n%2 == 0 })
	}
}

func BenchmarkMapFunc(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Map(l, func(n int) int { return n * 2 })
	}
}

func BenchmarkFold(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Fold(0, func(a, n int) int { return a + n })
	}
}

func BenchmarkSort(b *testing.B) {
	l := makeInts(10_000).Reverse()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		list.Sort(l)
	}
}

func BenchmarkReverse(b *testing.B) {
	l := makeInts(10_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Reverse()
	}
}

func BenchmarkConcat(b *testing.B) {
	x := makeInts(5_000)
	y := makeInts(5_000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Concat(y)
	}
}
