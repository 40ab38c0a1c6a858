package list

import (
	"fmt"
	"strings"
)

// List is a generic, immutable, singly-linked list with structural sharing.
//
// Every operation that looks like a mutation returns a *new* List, reusing as
// much of the original node chain as possible and never touching existing
// nodes. Copying a List value is O(1) — it shares the underlying chain — and
// because chains are immutable after construction, lists are safe to read
// from any number of goroutines concurrently without locking.
//
// The zero value is an empty list, ready to use.
//
// # Creating a list
//
//	l := list.New(1, 2, 3, 4, 5)
//	l := list.From([]string{"a", "b", "c"})
//	l := list.Empty[int]()
//	l := list.Cons(0, list.New(1, 2, 3)) // O(1), shares the tail chain
//
// # Method chaining
//
//	result := list.New(1, 2, 3, 4, 5, 6).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    Reverse().
//	    Take(2)
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters.
// Operations that change the element type are exposed as package-level
// functions in this package:
//
//	squares := list.Map(l, func(n int) string { return strconv.Itoa(n * n) })
//	pairs := list.Zip(l, list.New("a", "b", "c"))
//
// # Cost model
//
// Len, IsEmpty, Head, Tail, Uncons, Cons and Prepend are O(1). Everything
// else is O(n) except sorting, which is O(n log n). There is no O(1) random
// access: At(i) walks i nodes.
type List[T any] struct {
	head *node[T]
	size int
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a List from a variadic list of elements, first element at the
// head.
func New[T any](items ...T) List[T] {
	return From(items)
}

// From creates a List holding the elements of the slice in order.
// The slice itself is not retained; elements are copied into fresh nodes.
func From[T any](items []T) List[T] {
	return List[T]{head: fromBuffer(items, nil), size: len(items)}
}

// Empty creates an empty List of type T. Equivalent to the zero value.
func Empty[T any]() List[T] {
	return List[T]{}
}

// Cons creates a List with the given head and tail in O(1),
// sharing tail's entire chain.
func Cons[T any](head T, tail List[T]) List[T] {
	return List[T]{
		head: &node[T]{elem: head, tail: tail.head},
		size: tail.size + 1,
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Len returns the number of elements. The size is cached, so this is O(1).
func (l List[T]) Len() int { return l.size }

// IsEmpty reports whether the list contains no elements.
func (l List[T]) IsEmpty() bool { return l.size == 0 }

// IsNotEmpty reports whether the list has at least one element.
func (l List[T]) IsNotEmpty() bool { return l.size > 0 }

// Head returns the first element.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Head() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errEmpty("Head")
	}
	return l.head.elem, nil
}

// Tail returns all elements except the first one. The result shares the
// suffix chain node-for-node with l; the call is O(1).
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Tail() (List[T], error) {
	if l.IsEmpty() {
		return List[T]{}, errEmpty("Tail")
	}
	return List[T]{head: l.head.tail, size: l.size - 1}, nil
}

// Uncons returns the head and tail together.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Uncons() (T, List[T], error) {
	if l.IsEmpty() {
		var zero T
		return zero, List[T]{}, errEmpty("Uncons")
	}
	return l.head.elem, List[T]{head: l.head.tail, size: l.size - 1}, nil
}

// Last returns the final element. O(n): the chain has no back pointer.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Last() (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errEmpty("Last")
	}
	n := l.head
	for n.tail != nil {
		n = n.tail
	}
	return n.elem, nil
}

// Init returns all elements except the last one. O(n); unlike Tail it cannot
// share any suffix, since the chain's endpoint changes.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Init() (List[T], error) {
	if l.IsEmpty() {
		return List[T]{}, errEmpty("Init")
	}
	return l.Take(l.size - 1), nil
}

// At returns the element at position index. O(index).
// Returns [ErrIndexOutOfRange] if index is outside [0, Len()-1].
func (l List[T]) At(index int) (T, error) {
	if index < 0 || index >= l.size {
		var zero T
		return zero, errIndex("At", index, l.size)
	}
	n := l.head
	for ; index > 0; index-- {
		n = n.tail
	}
	return n.elem, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn on every element in order, head to tail, for its side effects.
func (l List[T]) Each(fn func(T)) {
	for n := l.head; n != nil; n = n.tail {
		fn(n.elem)
	}
}

// String returns a human-readable representation: "List(e1, e2, …)".
// It implements [fmt.Stringer].
func (l List[T]) String() string {
	var b strings.Builder
	b.WriteString("List(")
	sep := ""
	for n := l.head; n != nil; n = n.tail {
		b.WriteString(sep)
		fmt.Fprintf(&b, "%v", n.elem)
		sep = ", "
	}
	b.WriteByte(')')
	return b.String()
}
