package concurrency

import (
	"sync/atomic"

	rusty "github.com/JiangJie/happy-rusty-sub000"
)

// FnOnce wraps a function that may be called at most once. The wrapped
// function is released after use. Safe for concurrent use: exactly one caller
// wins.
type FnOnce[T any] struct {
	used atomic.Bool
	fn   func() T
}

// NewFnOnce wraps fn as a one-shot callable.
func NewFnOnce[T any](fn func() T) *FnOnce[T] {
	return &FnOnce[T]{fn: fn}
}

// Call invokes the wrapped function. Calling a used FnOnce is a contract
// violation and panics.
func (f *FnOnce[T]) Call() T {
	if !f.used.CompareAndSwap(false, true) {
		panic("called Call on a used FnOnce")
	}
	fn := f.fn
	f.fn = nil
	return fn()
}

// TryCall invokes the wrapped function if it has not been used, and returns
// None after the first use instead of panicking.
func (f *FnOnce[T]) TryCall() rusty.Option[T] {
	if !f.used.CompareAndSwap(false, true) {
		return rusty.None[T]()
	}
	fn := f.fn
	f.fn = nil
	return rusty.Some(fn())
}

// IsUsed reports whether the function has been called or discarded.
func (f *FnOnce[T]) IsUsed() bool {
	return f.used.Load()
}

// Discard marks the FnOnce used without calling it and releases the function.
func (f *FnOnce[T]) Discard() {
	if f.used.CompareAndSwap(false, true) {
		f.fn = nil
	}
}
