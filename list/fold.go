package list

// Fold folds the elements of the list using the given associative binary
// operator and neutral element z.
//
// The order in which operations are performed on elements is unspecified,
// which is a relaxation allowing future parallel evaluation: op must be
// associative and z a true neutral element (e.g. 0 for addition, 1 for
// multiplication). Today the evaluation is a strict left fold.
//
// For folds whose accumulator has a different type than the elements, use
// the package-level [FoldLeft] / [FoldRight] functions.
func (l List[T]) Fold(z T, op func(T, T) T) T {
	for n := l.head; n != nil; n = n.tail {
		z = op(z, n.elem)
	}
	return z
}

// Scan returns the intermediate results of a left fold over the list with
// start value z: a list of Len()+1 elements whose first element is z.
//
// For scans whose accumulator has a different type than the elements, use
// the package-level [ScanLeft] / [ScanRight] functions.
func (l List[T]) Scan(z T, op func(T, T) T) List[T] {
	return ScanLeft(l, z, op)
}

// Reduce applies the given associative binary operator between all elements
// of the list, using the first element as the seed. The evaluation order is
// unspecified in the same sense as [List.Fold]; today it reduces left to
// right.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) Reduce(op func(T, T) T) (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errEmpty("Reduce")
	}
	return l.ReduceLeft(op)
}

// ReduceLeft applies op between consecutive elements, going left to right,
// seeded with the first element.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) ReduceLeft(op func(T, T) T) (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errEmpty("ReduceLeft")
	}
	acc := l.head.elem
	for n := l.head.tail; n != nil; n = n.tail {
		acc = op(acc, n.elem)
	}
	return acc, nil
}

// ReduceRight applies op between consecutive elements, going right to left,
// seeded with the last element. Requires buffering the traversal: O(n) space.
// Returns [ErrEmptyCollection] if the list is empty.
func (l List[T]) ReduceRight(op func(T, T) T) (T, error) {
	if l.IsEmpty() {
		var zero T
		return zero, errEmpty("ReduceRight")
	}
	buf := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.tail {
		buf = append(buf, n.elem)
	}
	acc := buf[len(buf)-1]
	for i := len(buf) - 2; i >= 0; i-- {
		acc = op(buf[i], acc)
	}
	return acc, nil
}

// Number is the constraint satisfied by the built-in numeric types,
// used by [Sum] and [Product].
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Sum returns the sum of all elements, or 0 if the list is empty.
func Sum[T Number](l List[T]) T {
	var acc T
	for n := l.head; n != nil; n = n.tail {
		acc += n.elem
	}
	return acc
}

// Product returns the product of all elements, or 1 if the list is empty.
func Product[T Number](l List[T]) T {
	acc := T(1)
	for n := l.head; n != nil; n = n.tail {
		acc *= n.elem
	}
	return acc
}
