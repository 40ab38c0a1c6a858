package list_test

import (
	"fmt"
	"strconv"

	"github.com/hasbyte1/go-persistent-list/list"
)

func ExampleNew() {
	l := list.New(1, 2, 3, 4, 5)
	fmt.Println(l.Len(), list.Sum(l))
	// Output: 5 15
}

func ExampleList_Filter() {
	result := list.New(1, 2, 3, 4, 5, 6).
		Filter(func(n int) bool { return n%2 == 0 })
	fmt.Println(result)
	// Output: List(2, 4, 6)
}

func ExampleList_Prepend() {
	base := list.New(2, 3)
	fmt.Println(base.Prepend(1))
	fmt.Println(base) // unchanged
	// Output:
	// List(1, 2, 3)
	// List(2, 3)
}

func ExampleMap() {
	squares := list.Map(list.New(1, 2, 3),
		func(n int) string { return strconv.Itoa(n * n) })
	fmt.Println(squares)
	// Output: List(1, 4, 9)
}

func ExampleZip() {
	pairs := list.Zip(list.New(1, 2), list.New("a", "b", "c"))
	fmt.Println(pairs)
	// Output: List((1, a), (2, b))
}

func ExampleList_Fold() {
	total := list.New(1, 2, 3).Fold(0, func(a, b int) int { return a + b })
	fmt.Println(total)
	// Output: 6
}

func ExampleSort() {
	fmt.Println(list.Sort(list.New(3, 1, 2)))
	// Output: List(1, 2, 3)
}

func ExampleList_All() {
	for v := range list.New("a", "b", "c").All() {
		fmt.Println(v)
	}
	// Output:
	// a
	// b
	// c
}

func ExampleFromSeq() {
	src := list.New(1, 2, 3)
	fmt.Println(list.FromSeq(src.All()))
	// Output: List(1, 2, 3)
}

func ExampleScanLeft() {
	fmt.Println(list.ScanLeft(list.New(1, 2, 3), 0,
		func(acc, n int) int { return acc + n }))
	// Output: List(0, 1, 3, 6)
}
