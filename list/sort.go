package list

import (
	"cmp"
	"sort"
)

// Sorted returns a new list with the elements sorted in ascending order, as
// determined by the given less function. The sort is not guaranteed to be
// stable; use [List.SortedStable] when equal elements must keep their
// relative order.
//
// The elements are buffered, sorted, and rebuilt into a fresh chain:
// O(n log n) time, O(n) space. The receiver is unchanged.
func (l List[T]) Sorted(less func(a, b T) bool) List[T] {
	buf := l.sortBuffer()
	sort.Slice(buf, func(i, j int) bool { return less(buf[i], buf[j]) })
	return List[T]{head: fromBuffer(buf, nil), size: l.size}
}

// SortedStable is like [List.Sorted], but equal elements appear in the same
// order in the sorted list as in the original.
func (l List[T]) SortedStable(less func(a, b T) bool) List[T] {
	buf := l.sortBuffer()
	sort.SliceStable(buf, func(i, j int) bool { return less(buf[i], buf[j]) })
	return List[T]{head: fromBuffer(buf, nil), size: l.size}
}

func (l List[T]) sortBuffer() []T {
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, n.elem)
	}
	return buf
}

// Sort returns a new list sorted in ascending natural order.
func Sort[T cmp.Ordered](l List[T]) List[T] {
	return l.Sorted(func(a, b T) bool { return a < b })
}

// SortStable is like [Sort] but stable: equal elements keep their relative
// order from the source list.
func SortStable[T cmp.Ordered](l List[T]) List[T] {
	return l.SortedStable(func(a, b T) bool { return a < b })
}
