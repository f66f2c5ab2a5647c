// Package concurrency provides synchronization primitives that speak the
// container types: write-once cells, memoized thunks, value-guarding mutexes
// and one-shot functions.
package concurrency

import (
	"sync"
	"sync/atomic"

	rusty "github.com/JiangJie/happy-rusty-sub000"
)

// Once is a write-once cell: empty until its first successful Set or
// GetOrInit, then immutable. Safe for concurrent use.
type Once[T any] struct {
	mu    sync.Mutex
	done  atomic.Bool
	value T
}

// NewOnce returns an empty cell.
func NewOnce[T any]() *Once[T] {
	return &Once[T]{}
}

// Get returns the stored value, or None while the cell is empty.
func (o *Once[T]) Get() rusty.Option[T] {
	if !o.done.Load() {
		return rusty.None[T]()
	}
	return rusty.Some(o.value)
}

// Set stores value if the cell is empty. A full cell rejects the write and
// hands the value back as the Err payload.
func (o *Once[T]) Set(value T) rusty.VoidResult[T] {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done.Load() {
		return rusty.Err[rusty.Unit, T](value)
	}
	o.value = value
	o.done.Store(true)
	return rusty.OkVoid[T]()
}

// GetOrInit returns the stored value, initializing the cell with fn on first
// use. Only one caller runs fn; the others block until it finishes.
func (o *Once[T]) GetOrInit(fn func() T) T {
	if o.done.Load() {
		return o.value
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.done.Load() {
		o.value = fn()
		o.done.Store(true)
	}
	return o.value
}

// GetOrTryInit is GetOrInit for fallible initializers. A failed attempt leaves
// the cell empty, so a later call retries.
func (o *Once[T]) GetOrTryInit(fn func() (T, error)) rusty.Fallible[T] {
	if o.done.Load() {
		return rusty.Ok[T, error](o.value)
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.done.Load() {
		return rusty.Ok[T, error](o.value)
	}
	value, err := fn()
	if err != nil {
		return rusty.Err[T, error](err)
	}
	o.value = value
	o.done.Store(true)
	return rusty.Ok[T, error](value)
}

// IsDone reports whether the cell holds a value.
func (o *Once[T]) IsDone() bool {
	return o.done.Load()
}
