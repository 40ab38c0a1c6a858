package list

import "iter"

// Enumerable is the read surface satisfied by [List][T].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete List type.
//
// A minimal implementation only needs emptiness, length, head/tail access
// and forward traversal; every combinator in this package is built on that
// surface.
type Enumerable[T any] interface {
	// IsEmpty reports whether there are no elements.
	IsEmpty() bool

	// Len returns the number of elements.
	Len() int

	// Head returns the first element, or ErrEmptyCollection.
	Head() (T, error)

	// Tail returns everything after the first element, or ErrEmptyCollection.
	Tail() (List[T], error)

	// Each calls fn on every element in order.
	Each(fn func(T))

	// All returns a forward-only iterator over the elements.
	All() iter.Seq[T]

	// ToSlice returns a copy of the elements as a plain Go slice.
	ToSlice() []T
}

var _ Enumerable[int] = List[int]{}
