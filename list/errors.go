package list

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by List operations.
var (
	// ErrEmptyCollection is returned when an operation requires at least one
	// element but the list is empty.
	ErrEmptyCollection = errors.New("list: operation on empty list")

	// ErrIndexOutOfRange is returned when an index is outside [0, Len()-1].
	ErrIndexOutOfRange = errors.New("list: index out of range")

	// ErrMacroNotFound is returned when an unregistered macro name is called.
	ErrMacroNotFound = errors.New("list: macro not found")
)

func errEmpty(op string) error {
	return fmt.Errorf("%w: %s", ErrEmptyCollection, op)
}

func errIndex(op string, index, size int) error {
	return fmt.Errorf("%w: %s(%d) with length %d", ErrIndexOutOfRange, op, index, size)
}
