package list

// Exists reports whether at least one element satisfies p.
// Stops at the first satisfying element.
func (l List[T]) Exists(p func(T) bool) bool {
	for n := l.head; n != nil; n = n.tail {
		if p(n.elem) {
			return true
		}
	}
	return false
}

// Forall reports whether the list is empty or p holds for every element.
// Stops at the first violating element.
func (l List[T]) Forall(p func(T) bool) bool {
	for n := l.head; n != nil; n = n.tail {
		if !p(n.elem) {
			return false
		}
	}
	return true
}

// Count returns the number of elements that satisfy p.
func (l List[T]) Count(p func(T) bool) int {
	num := 0
	for n := l.head; n != nil; n = n.tail {
		if p(n.elem) {
			num++
		}
	}
	return num
}

// Contains reports whether the list has an element equal to x.
// Stops at the first match.
func Contains[T comparable](l List[T], x T) bool {
	return l.Exists(func(y T) bool { return y == x })
}

// CountOf returns the number of elements equal to x.
func CountOf[T comparable](l List[T], x T) int {
	return l.Count(func(y T) bool { return y == x })
}

// Equal reports whether a and b contain the same elements in the same order.
// Equality is element-wise over the sequences, independent of whether the
// two lists share any nodes; lists sharing the same root chain short-circuit
// to true, and a length mismatch short-circuits to false.
func Equal[T comparable](a, b List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like [Equal] but compares elements with eq.
func EqualFunc[T any](a, b List[T], eq func(T, T) bool) bool {
	if a.size != b.size {
		return false
	}
	if a.head == b.head {
		return true
	}
	for na, nb := a.head, b.head; na != nil; na, nb = na.tail, nb.tail {
		if !eq(na.elem, nb.elem) {
			return false
		}
	}
	return true
}
