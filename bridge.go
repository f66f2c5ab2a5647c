package rusty

import "fmt"

// PanicError wraps a recovered panic payload that is not itself an error.
type PanicError struct {
	Value any
}

func (e PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// recoveredError normalizes a recover() payload into an error, keeping error
// payloads as they are.
func recoveredError(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return PanicError{Value: v}
}

// TryOption calls fn and funnels both a returned error and a panic into None.
// A nil error produces Some of the returned value.
func TryOption[T any](fn func() (T, error)) (o Option[T]) {
	defer func() {
		if recover() != nil {
			o = None[T]()
		}
	}()
	value, err := fn()
	if err != nil {
		return None[T]()
	}
	return Some(value)
}

// TryResult calls fn and funnels both a returned error and a panic into Err.
// Panic payloads that are not errors are wrapped in PanicError.
func TryResult[T any](fn func() (T, error)) (r Fallible[T]) {
	defer func() {
		if v := recover(); v != nil {
			r = Err[T, error](recoveredError(v))
		}
	}()
	value, err := fn()
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// TryAsyncOption runs fn in a new goroutine with TryOption's funneling.
func TryAsyncOption[T any](fn func() (T, error)) AsyncOption[T] {
	return NewFuture(func() Option[T] {
		return TryOption(fn)
	})
}

// TryAsyncResult runs fn in a new goroutine with TryResult's funneling.
func TryAsyncResult[T any](fn func() (T, error)) AsyncFallible[T] {
	return NewFuture(func() Fallible[T] {
		return TryResult(fn)
	})
}

// TryPendingOption guards the synchronous prefix of fn: a panic raised before
// fn returns its Future becomes a Future resolved to None instead of escaping
// to the caller. The returned Future is otherwise fn's own.
func TryPendingOption[T any](fn func() AsyncOption[T]) (f AsyncOption[T]) {
	defer func() {
		if recover() != nil {
			f = Resolve(None[T]())
		}
	}()
	return fn()
}

// TryPendingResult guards the synchronous prefix of fn the way
// TryPendingOption does, resolving to Err on panic.
func TryPendingResult[T any](fn func() AsyncFallible[T]) (f AsyncFallible[T]) {
	defer func() {
		if v := recover(); v != nil {
			f = Resolve(Err[T, error](recoveredError(v)))
		}
	}()
	return fn()
}
