// Package syncutil provides small typed wrappers around sync/atomic.
package syncutil

import "sync/atomic"

// Atomic is a typed atomic value. The zero value of T is returned
// until something is stored.
type Atomic[T any] struct {
	ptr atomic.Pointer[T]
}

// NewAtomic creates a new Atomic initialized with the given value.
func NewAtomic[T any](initial T) *Atomic[T] {
	a := &Atomic[T]{}
	a.Store(initial)
	return a
}

// Load returns the current value.
func (a *Atomic[T]) Load() T {
	val := a.ptr.Load()
	if val == nil {
		var zero T
		return zero
	}
	return *val
}

// Store sets the value.
func (a *Atomic[T]) Store(value T) {
	a.ptr.Store(&value)
}
