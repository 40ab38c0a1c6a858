package list

import (
	"encoding/json"
	"iter"
)

// All returns a forward-only iterator over the elements, head to tail.
// It is the bridge to the generic-algorithm ecosystem:
//
//	for v := range l.All() {
//	    …
//	}
//	s := slices.Collect(l.All())
//
// Iteration never mutates the list, and an iterator obtained before any
// number of derived lists were built still observes the original sequence.
func (l List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.tail {
			if !yield(n.elem) {
				return
			}
		}
	}
}

// FromSeq creates a List from any forward-traversable source, preserving
// its order.
//
//	l := list.FromSeq(slices.Values([]int{1, 2, 3}))
//	l := list.FromSeq(maps.Keys(m))
func FromSeq[T any](seq iter.Seq[T]) List[T] {
	var buf []T
	for v := range seq {
		buf = append(buf, v)
	}
	return From(buf)
}

// ToSlice returns a copy of the elements as a plain Go slice, head first.
// The result is never nil.
func (l List[T]) ToSlice() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		out = append(out, n.elem)
	}
	return out
}

// MarshalJSON serialises the list as a JSON array, head first.
// It implements [json.Marshaler].
func (l List[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.ToSlice())
}

// UnmarshalJSON replaces *l with a fresh list holding the elements of a JSON
// array. It implements [json.Unmarshaler]; no existing chain is mutated, so
// lists derived from the previous value of *l are unaffected.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*l = From(items)
	return nil
}
