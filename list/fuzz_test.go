package list_test

import (
	"testing"

	"github.com/hasbyte1/go-persistent-list/list"
)

// FuzzListLaws drives the core algebraic laws with arbitrary element data
// and split points. None of these operations may panic, and every law must
// hold for every input.
//
// Run with: go test -fuzz=FuzzListLaws ./list/
func FuzzListLaws(f *testing.F) {
	f.Add([]byte{}, uint(0))
	f.Add([]byte{1}, uint(1))
	f.Add([]byte{3, 1, 2}, uint(2))
	f.Add([]byte{5, 4, 3, 2, 1, 0}, uint(99))

	f.Fuzz(func(t *testing.T, data []byte, n uint) {
		l := list.From(data)
		k := int(n % uint(len(data)+1))

		if !list.Equal(l.Reverse().Reverse(), l) {
			t.Fatal("reverse is not an involution")
		}
		if !list.Equal(l.Take(k).Concat(l.Drop(k)), l) {
			t.Fatalf("take(%d) ++ drop(%d) != original", k, k)
		}
		if l.Filter(isOddByte).Len()+l.FilterNot(isOddByte).Len() != l.Len() {
			t.Fatal("filter partition sizes do not add up")
		}
		sorted := list.Sort(l)
		if sorted.Len() != l.Len() {
			t.Fatal("sort changed the length")
		}
		if !list.Equal(list.Sort(sorted), sorted) {
			t.Fatal("sort is not idempotent")
		}
		if !list.Equal(l, list.From(data)) {
			t.Fatal("source list was observably mutated")
		}
	})
}

func isOddByte(b byte) bool { return b%2 == 1 }
