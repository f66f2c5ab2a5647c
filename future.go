package rusty

import "context"

// Future represents a computation that resolves to a value of type T exactly
// once. Resolution is observed through Wait, WaitContext, IsDone and Poll;
// there is no way to cancel the computation itself.
type Future[T any] struct {
	done  chan struct{}
	value T
}

// AsyncOption is a pending computation of an Option.
type AsyncOption[T any] = *Future[Option[T]]

// AsyncResult is a pending computation of a Result.
type AsyncResult[T, E any] = *Future[Result[T, E]]

// AsyncFallible is a pending computation of a Fallible.
type AsyncFallible[T any] = *Future[Fallible[T]]

// AsyncVoidResult is a pending computation of a VoidResult.
type AsyncVoidResult[E any] = *Future[VoidResult[E]]

// NewFuture starts fn in a new goroutine and returns a Future for its value.
func NewFuture[T any](fn func() T) *Future[T] {
	f := &Future[T]{done: make(chan struct{})}
	go func() {
		f.value = fn()
		close(f.done)
	}()
	return f
}

// Resolve returns an already-resolved Future containing value.
func Resolve[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value}
	close(f.done)
	return f
}

// Wait blocks until the Future resolves and returns its value.
func (f *Future[T]) Wait() T {
	<-f.done
	return f.value
}

// WaitContext blocks until the Future resolves or ctx is done, whichever comes
// first. Abandoning the wait does not stop the underlying computation.
func (f *Future[T]) WaitContext(ctx context.Context) Fallible[T] {
	select {
	case <-f.done:
		return Ok[T, error](f.value)
	case <-ctx.Done():
		return Err[T, error](ctx.Err())
	}
}

// IsDone reports whether the Future has resolved, without blocking.
func (f *Future[T]) IsDone() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Poll returns the resolved value without blocking, or None while the Future
// is still pending.
func (f *Future[T]) Poll() Option[T] {
	select {
	case <-f.done:
		return Some(f.value)
	default:
		return None[T]()
	}
}

// MapFuture returns a Future resolving to fn applied to f's value.
func MapFuture[T, U any](f *Future[T], fn func(T) U) *Future[U] {
	return NewFuture(func() U {
		return fn(f.Wait())
	})
}

// FlatMapFuture chains f into the Future produced by fn.
func FlatMapFuture[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	return NewFuture(func() U {
		return fn(f.Wait()).Wait()
	})
}

// WaitAll blocks until every Future resolves and returns their values in
// argument order.
func WaitAll[T any](futures ...*Future[T]) []T {
	values := make([]T, len(futures))
	for i, f := range futures {
		values[i] = f.Wait()
	}
	return values
}

// Race blocks until the first of the Futures resolves and returns its value.
// The remaining computations keep running; their values are discarded.
func Race[T any](futures ...*Future[T]) T {
	winner := make(chan T, 1)
	for _, f := range futures {
		go func() {
			select {
			case winner <- f.Wait():
			default:
			}
		}()
	}
	return <-winner
}
