package list

// This file contains package-level generic functions for operations that
// transform a List[T] into a List[U] (T ≠ U) or need an extra constraint on
// the element type.
//
// Go generics do not allow methods to introduce their own type parameters,
// so these operations must be stand-alone functions. They compose with
// method-chaining calls:
//
//	result := list.Map(
//	    list.New(1, 2, 3, 4, 5).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

// Map applies fn to every element, in order, and returns a new List[U].
//
//	doubled := list.Map(list.New(1, 2, 3),
//	    func(n int) string { return strconv.Itoa(n * 2) })
func Map[T, U any](l List[T], fn func(T) U) List[U] {
	buf := make([]U, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, fn(n.elem))
	}
	return List[U]{head: fromBuffer(buf, nil), size: l.size}
}

// FlatMap applies fn to every element (producing a List[U] per element) and
// concatenates the results in source order.
//
//	words := list.FlatMap(list.New("hello world", "foo bar"),
//	    func(s string) list.List[string] { return list.From(strings.Fields(s)) })
//	// → ["hello", "world", "foo", "bar"]
func FlatMap[T, U any](l List[T], fn func(T) List[U]) List[U] {
	var buf []U
	for n := l.head; n != nil; n = n.tail {
		for m := fn(n.elem).head; m != nil; m = m.tail {
			buf = append(buf, m.elem)
		}
	}
	return List[U]{head: fromBuffer(buf, nil), size: len(buf)}
}

// Flatten concatenates all element lists of a list of lists, in source order.
//
//	flat := list.Flatten(list.New(list.New(1, 2), list.New(3, 4)))
//	// → [1, 2, 3, 4]
func Flatten[T any](l List[List[T]]) List[T] {
	return FlatMap(l, func(xs List[T]) List[T] { return xs })
}

// FoldLeft applies op to a start value and all elements of the list, going
// left to right.
//
//	sum := list.FoldLeft(list.New(1, 2, 3, 4),
//	    0, func(acc, n int) int { return acc + n })
func FoldLeft[T, B any](l List[T], z B, op func(B, T) B) B {
	for n := l.head; n != nil; n = n.tail {
		z = op(z, n.elem)
	}
	return z
}

// FoldRight applies op to a start value and all elements of the list, going
// right to left. The traversal is buffered first: O(n) space.
func FoldRight[T, B any](l List[T], z B, op func(T, B) B) B {
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, n.elem)
	}
	for i := len(buf) - 1; i >= 0; i-- {
		z = op(buf[i], z)
	}
	return z
}

// ScanLeft returns the intermediate results of a left fold over the list:
// a list of l.Len()+1 elements whose first element is z.
//
//	list.ScanLeft(list.New(1, 2, 3), 0, func(acc, n int) int { return acc + n })
//	// → [0, 1, 3, 6]
func ScanLeft[T, B any](l List[T], z B, op func(B, T) B) List[B] {
	acc := make([]B, 0, l.size+1)
	acc = append(acc, z)
	for n := l.head; n != nil; n = n.tail {
		z = op(z, n.elem)
		acc = append(acc, z)
	}
	return List[B]{head: fromBuffer(acc, nil), size: len(acc)}
}

// ScanRight returns the intermediate results of a right fold over the list:
// a list of l.Len()+1 elements whose last element is z.
//
//	list.ScanRight(list.New(1, 2, 3), 0, func(n, acc int) int { return n + acc })
//	// → [6, 5, 3, 0]
func ScanRight[T, B any](l List[T], z B, op func(T, B) B) List[B] {
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, n.elem)
	}
	hd := &node[B]{elem: z}
	for i := len(buf) - 1; i >= 0; i-- {
		hd = &node[B]{elem: op(buf[i], hd.elem), tail: hd}
	}
	return List[B]{head: hd, size: l.size + 1}
}

// Zip combines two lists element-by-element into Pairs, truncating to the
// shorter of the two. Element values are copied into the pairs.
//
//	pairs := list.Zip(list.New(1, 2), list.New("a", "b", "c"))
//	// → [(1, a), (2, b)]
func Zip[A, B any](a List[A], b List[B]) List[Pair[A, B]] {
	size := min(a.size, b.size)
	buf := make([]Pair[A, B], 0, size)
	na, nb := a.head, b.head
	for i := 0; i < size; i++ {
		buf = append(buf, Pair[A, B]{First: na.elem, Second: nb.elem})
		na, nb = na.tail, nb.tail
	}
	return List[Pair[A, B]]{head: fromBuffer(buf, nil), size: size}
}
