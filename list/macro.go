package list

import (
	"fmt"
	"sync"
)

// MacroFunc is the function signature for a registered macro.
//
// The list is passed as an any (interface{}) so that macros can be
// registered once and used across any List[T] instantiation.
// Type-assert inside the macro to the concrete list.List[YourType].
type MacroFunc func(list any, args ...any) any

// macroRegistry is the package-level, goroutine-safe macro store.
var macroRegistry struct {
	mu     sync.RWMutex
	macros map[string]MacroFunc
}

func init() {
	macroRegistry.macros = make(map[string]MacroFunc)
}

// RegisterMacro adds a named macro to the global registry.
// If a macro with that name already exists it is replaced.
// Safe to call from multiple goroutines.
//
// Example – register a macro that keeps only even integers:
//
//	list.RegisterMacro("evens", func(l any, _ ...any) any {
//	    return l.(list.List[int]).Filter(func(n int) bool { return n%2 == 0 })
//	})
//
//	l := list.New(1, 2, 3, 4, 5)
//	res, _ := l.Macro("evens") // list.List[int](2, 4)
func RegisterMacro(name string, fn MacroFunc) {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros[name] = fn
}

// HasMacro reports whether a macro with the given name is registered.
func HasMacro(name string) bool {
	macroRegistry.mu.RLock()
	defer macroRegistry.mu.RUnlock()
	_, ok := macroRegistry.macros[name]
	return ok
}

// FlushMacros removes all registered macros.
// Intended for use in tests.
func FlushMacros() {
	macroRegistry.mu.Lock()
	defer macroRegistry.mu.Unlock()
	macroRegistry.macros = make(map[string]MacroFunc)
}

// CallMacro calls the named macro with the supplied list and args.
// Returns (nil, ErrMacroNotFound) if no macro is registered under name.
func CallMacro(name string, list any, args ...any) (any, error) {
	macroRegistry.mu.RLock()
	fn, ok := macroRegistry.macros[name]
	macroRegistry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrMacroNotFound, name)
	}
	return fn(list, args...), nil
}

// Macro calls the named registered macro on l, forwarding args.
// This is a convenience wrapper around the package-level [CallMacro].
func (l List[T]) Macro(name string, args ...any) (any, error) {
	return CallMacro(name, l, args...)
}
