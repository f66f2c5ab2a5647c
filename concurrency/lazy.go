package concurrency

import (
	"sync"
	"sync/atomic"

	rusty "github.com/JiangJie/happy-rusty-sub000"
)

// Lazy is a memoized thunk: the function runs once, on first Get, and the
// value is cached for every later call. Safe for concurrent use.
type Lazy[T any] struct {
	once  sync.Once
	fn    func() T
	value T
	done  atomic.Bool
}

// NewLazy returns a Lazy that will compute its value with fn.
func NewLazy[T any](fn func() T) *Lazy[T] {
	return &Lazy[T]{fn: fn}
}

// Get returns the memoized value, computing it on first call.
func (l *Lazy[T]) Get() T {
	l.once.Do(func() {
		l.value = l.fn()
		l.fn = nil
		l.done.Store(true)
	})
	return l.value
}

// TryGet returns the value if it has already been computed, and None
// otherwise. It never triggers the computation.
func (l *Lazy[T]) TryGet() rusty.Option[T] {
	if !l.done.Load() {
		return rusty.None[T]()
	}
	return rusty.Some(l.value)
}

// IsEvaluated reports whether the value has been computed.
func (l *Lazy[T]) IsEvaluated() bool {
	return l.done.Load()
}

// MapLazy returns a Lazy computing fn of l's value. l is not forced until the
// new Lazy is.
func MapLazy[T, U any](l *Lazy[T], fn func(T) U) *Lazy[U] {
	return NewLazy(func() U {
		return fn(l.Get())
	})
}
