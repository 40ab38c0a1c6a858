package list

// node is a single immutable cell of a list chain: one element plus a shared
// reference to the rest of the chain. A nil *node is the canonical terminal;
// every chain ends in it.
//
// Nodes are never mutated after construction. Any number of lists (and any
// number of goroutines) may therefore hold and traverse overlapping chains
// concurrently without synchronization. Tails are only ever built from
// strictly shorter, already-existing chains, so no cycle can form; the
// garbage collector reclaims a chain when the last list referencing it goes
// away.
type node[T any] struct {
	elem T
	tail *node[T]
}

// fromBuffer folds buf onto tail from last element to first, so that buf[0]
// ends up at the head of the returned chain.
//
// This right-to-left prepend pass is the canonical build step shared by every
// operation that reconstructs a list: traverse the source once into a buffer,
// then fold the buffer onto a terminal (or onto a shared suffix, as in
// Updated and Concat).
func fromBuffer[T any](buf []T, tail *node[T]) *node[T] {
	hd := tail
	for i := len(buf) - 1; i >= 0; i-- {
		hd = &node[T]{elem: buf[i], tail: hd}
	}
	return hd
}
