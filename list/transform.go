package list

// This file holds the type-preserving transformations and positional
// operations. They all follow the same construction pattern: traverse the
// source once, left to right, collecting surviving or transformed elements
// into a buffer, then fold the buffer right-to-left onto a terminal node
// (fromBuffer), producing the new chain in original order without ever
// mutating the source.
//
// Operations whose result is an untouched suffix of the source — Drop,
// DropWhile, Tail — skip the rebuild entirely and share the suffix chain
// node-for-node.

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a new list with fn applied to every element, in order.
//
// fn is called exactly once per element, head to tail. For transformations
// that change the element type, use the package-level [Map] function.
func (l List[T]) Map(fn func(T) T) List[T] {
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, fn(n.elem))
	}
	return List[T]{head: fromBuffer(buf, nil), size: l.size}
}

// Filter returns a new list with only the elements for which p returns true.
// The order of the elements is preserved; p is called exactly once per
// element.
func (l List[T]) Filter(p func(T) bool) List[T] {
	var buf []T
	for n := l.head; n != nil; n = n.tail {
		if p(n.elem) {
			buf = append(buf, n.elem)
		}
	}
	return List[T]{head: fromBuffer(buf, nil), size: len(buf)}
}

// FilterNot returns a new list with the elements for which p returns true
// removed. It is the complement of [List.Filter].
func (l List[T]) FilterNot(p func(T) bool) List[T] {
	return l.Filter(func(x T) bool { return !p(x) })
}

// Reverse returns a new list with the elements in reversed order.
//
// No buffer is needed: prepending while traversing head-to-tail already
// yields reversal order.
func (l List[T]) Reverse() List[T] {
	var hd *node[T]
	for n := l.head; n != nil; n = n.tail {
		hd = &node[T]{elem: n.elem, tail: hd}
	}
	return List[T]{head: hd, size: l.size}
}

// ─────────────────────────────────────────────────────────────────────────────
// Positional operations
// ─────────────────────────────────────────────────────────────────────────────

// Take returns the first n elements, or the whole list if n >= Len().
// A fresh chain is built since the result terminates early; n >= Len()
// returns l itself unchanged.
func (l List[T]) Take(n int) List[T] {
	if n <= 0 {
		return List[T]{}
	}
	if n >= l.size {
		return l
	}
	buf := make([]T, 0, n)
	for nd := l.head; n > 0; nd, n = nd.tail, n-1 {
		buf = append(buf, nd.elem)
	}
	return List[T]{head: fromBuffer(buf, nil), size: len(buf)}
}

// TakeRight returns the last n elements, or the whole list if n >= Len().
// The result shares the suffix chain node-for-node with l.
func (l List[T]) TakeRight(n int) List[T] {
	return l.Drop(l.size - min(max(n, 0), l.size))
}

// TakeWhile returns the longest prefix whose elements all satisfy p.
func (l List[T]) TakeWhile(p func(T) bool) List[T] {
	var buf []T
	for n := l.head; n != nil && p(n.elem); n = n.tail {
		buf = append(buf, n.elem)
	}
	return List[T]{head: fromBuffer(buf, nil), size: len(buf)}
}

// Drop returns all elements except the first n ones, or an empty list if
// n >= Len(). Locating the suffix costs O(n), but the result shares the
// remaining chain node-for-node with l — no element is copied.
func (l List[T]) Drop(n int) List[T] {
	if n <= 0 {
		return l
	}
	if n >= l.size {
		return List[T]{}
	}
	nd := l.head
	for i := 0; i < n; i++ {
		nd = nd.tail
	}
	return List[T]{head: nd, size: l.size - n}
}

// DropRight returns all elements except the last n ones, or an empty list if
// n >= Len().
func (l List[T]) DropRight(n int) List[T] {
	return l.Take(l.size - min(max(n, 0), l.size))
}

// DropWhile returns the longest suffix whose first element does not satisfy
// p. The result shares the suffix chain node-for-node with l.
func (l List[T]) DropWhile(p func(T) bool) List[T] {
	nd, s := l.head, l.size
	for nd != nil && p(nd.elem) {
		nd, s = nd.tail, s-1
	}
	return List[T]{head: nd, size: s}
}

// Slice returns the elements starting at position from (included) and
// extending up until position until (excluded). An empty list is returned if
// from >= until or from >= Len().
func (l List[T]) Slice(from, until int) List[T] {
	if from < 0 {
		from = 0
	}
	if from >= until || from >= l.size {
		return List[T]{}
	}
	return l.Drop(from).Take(until - from)
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Replace / Combine
// ─────────────────────────────────────────────────────────────────────────────

// Prepend returns a new list with items inserted at the front, in order.
// O(1) per item: the entire existing chain is shared as the tail.
func (l List[T]) Prepend(items ...T) List[T] {
	return List[T]{
		head: fromBuffer(items, l.head),
		size: l.size + len(items),
	}
}

// Updated returns a copy of the list with the element at position index
// replaced by v. The chain strictly after index is shared with l; only the
// prefix up to and including index is rebuilt.
// Returns [ErrIndexOutOfRange] if index is outside [0, Len()-1].
func (l List[T]) Updated(index int, v T) (List[T], error) {
	if index < 0 || index >= l.size {
		return List[T]{}, errIndex("Updated", index, l.size)
	}
	buf := make([]T, 0, index)
	nd := l.head
	for i := 0; i < index; i++ {
		buf = append(buf, nd.elem)
		nd = nd.tail
	}
	hd := &node[T]{elem: v, tail: nd.tail}
	return List[T]{head: fromBuffer(buf, hd), size: l.size}, nil
}

// Concat returns a new list holding the elements of l followed by the
// elements of that. If either operand is empty, the other is returned
// unchanged in O(1). Otherwise l's elements are rebuilt onto a shared
// reference to that's chain: O(l.Len()) time, zero copies of that.
func (l List[T]) Concat(that List[T]) List[T] {
	if l.IsEmpty() {
		return that
	}
	if that.IsEmpty() {
		return l
	}
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, n.elem)
	}
	return List[T]{
		head: fromBuffer(buf, that.head),
		size: l.size + that.size,
	}
}
