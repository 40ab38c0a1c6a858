// Package list provides a generic, immutable, singly-linked list with
// structural sharing, in the tradition of the cons lists of Scala, Clojure
// and the ML family.
//
// # Overview
//
// The central type is [List][T], a value type wrapping a reference-shared
// node chain plus a cached length. Operations that look like mutations
// return a new List and reuse every node the operation did not touch:
//
//	xs := list.New(1, 2, 3, 4, 5)
//	ys := xs.Prepend(0)  // O(1), shares all of xs
//	zs := xs.Drop(2)     // shares the [3 4 5] suffix node-for-node
//	xs                   // completely unchanged
//
// # Immutability and concurrency
//
// No node is ever mutated after construction, so any number of goroutines
// may hold and traverse lists over the same or overlapping chains
// concurrently without synchronization. There is no locking anywhere in
// this package outside the macro registry.
//
// # Type-transforming operations
//
// Go generics do not allow methods to introduce new type parameters, so
// operations that change the element type are exposed as package-level
// functions:
//
//	// Method-based (element type preserved):
//	xs.Map(func(n int) int { return n * 2 })
//
//	// Package-level (element type changes, fully typed):
//	list.Map(xs, strconv.Itoa)
//
// Package-level functions: [Map], [FlatMap], [Flatten], [FoldLeft],
// [FoldRight], [ScanLeft], [ScanRight], [Zip], [Sum], [Product],
// [Contains], [CountOf], [Equal], [EqualFunc], [Sort], [SortStable].
//
// # Errors
//
// Operations that require a non-empty list (Head, Tail, Uncons, Last, Init,
// the Reduce family) return [ErrEmptyCollection]; positional operations
// (At, Updated) return [ErrIndexOutOfRange] for an index >= Len(). A failed
// call never produces or mutates any structure.
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [List.Macro]:
//
//	list.RegisterMacro("evens", func(l any, _ ...any) any {
//	    return l.(list.List[int]).Filter(func(n int) bool { return n%2 == 0 })
//	})
//
//	evens, _ := list.New(1, 2, 3, 4).Macro("evens")
package list
