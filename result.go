package rusty

import (
	"fmt"
	"iter"
)

// Result represents a fallible outcome: every Result is either Ok and carries
// a success value, or Err and carries an error value. The error type E is
// unconstrained; it does not have to implement the error interface. The zero
// value is an Err holding the zero value of E.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Unit is the payload of a success that carries no value.
type Unit struct{}

// Fallible is a Result whose error side is a Go error.
type Fallible[T any] = Result[T, error]

// VoidResult is a Result whose success side carries no value.
type VoidResult[E any] = Result[Unit, E]

// Ok returns a Result containing the given success value.
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a Result containing the given error value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// OkVoid returns a success that carries no value.
func OkVoid[E any]() VoidResult[E] {
	return Ok[Unit, E](Unit{})
}

// IsOk returns true if the Result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the Result is an error.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// IsOkAnd returns true if the Result is a success whose value matches the
// predicate. The predicate is not called on Err.
func (r Result[T, E]) IsOkAnd(pred func(T) bool) bool {
	return r.ok && pred(r.value)
}

// IsErrAnd returns true if the Result is an error whose value matches the
// predicate. The predicate is not called on Ok.
func (r Result[T, E]) IsErrAnd(pred func(E) bool) bool {
	return !r.ok && pred(r.err)
}

// Expect returns the success value, panicking with msg and the error if the
// Result is an Err.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.err))
	}
	return r.value
}

// Unwrap returns the success value, panicking if the Result is an Err.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(fmt.Sprintf("called Unwrap on Err: %v", r.err))
	}
	return r.value
}

// UnwrapOr returns the success value or the given default.
func (r Result[T, E]) UnwrapOr(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value or computes one from the error. The
// function is not called on Ok.
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if !r.ok {
		return fn(r.err)
	}
	return r.value
}

// ExpectErr returns the error value, panicking with msg and the success value
// if the Result is an Ok.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(fmt.Sprintf("%s: %v", msg, r.value))
	}
	return r.err
}

// UnwrapErr returns the error value, panicking if the Result is an Ok.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic("called UnwrapErr on Ok")
	}
	return r.err
}

// Ok returns the success value as an Option, discarding the error.
func (r Result[T, E]) Ok() Option[T] {
	if !r.ok {
		return None[T]()
	}
	return Some(r.value)
}

// Err returns the error value as an Option, discarding the success.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.err)
}

// Map applies fn to the success value. Use MapResult to change the success
// type.
func (r Result[T, E]) Map(fn func(T) T) Result[T, E] {
	if !r.ok {
		return r
	}
	return Ok[T, E](fn(r.value))
}

// MapErr applies fn to the error value. Use MapResultErr to change the error
// type.
func (r Result[T, E]) MapErr(fn func(E) E) Result[T, E] {
	if r.ok {
		return r
	}
	return Err[T, E](fn(r.err))
}

// And returns other if the Result is a success, and the Err otherwise.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return other
}

// AndThen calls fn with the success value and returns its result, or the Err
// unchanged. Use AndThenResult to change the success type.
func (r Result[T, E]) AndThen(fn func(T) Result[T, E]) Result[T, E] {
	if !r.ok {
		return r
	}
	return fn(r.value)
}

// Or returns the Result if it is a success, and other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns the Result if it is a success, and computes a fallback from
// the error otherwise. The function is not called on Ok.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.err)
}

// Inspect calls fn with the success value, if any, and returns the Result
// unchanged.
func (r Result[T, E]) Inspect(fn func(T)) Result[T, E] {
	if r.ok {
		fn(r.value)
	}
	return r
}

// InspectErr calls fn with the error value, if any, and returns the Result
// unchanged.
func (r Result[T, E]) InspectErr(fn func(E)) Result[T, E] {
	if !r.ok {
		fn(r.err)
	}
	return r
}

// All yields the success value, if any. An Ok iterates once, an Err not at
// all.
func (r Result[T, E]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// String renders the Result as Ok(value) or Err(err).
func (r Result[T, E]) String() string {
	if !r.ok {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// MapResult applies fn to the success value, producing a Result of the new
// success type.
func MapResult[T, E, U any](r Result[T, E], fn func(T) U) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return Ok[U, E](fn(r.value))
}

// MapResultErr applies fn to the error value, producing a Result of the new
// error type.
func MapResultErr[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return Err[T, F](fn(r.err))
}

// MapResultOr applies fn to the success value, or returns the default if the
// Result is an Err.
func MapResultOr[T, E, U any](r Result[T, E], def U, fn func(T) U) U {
	if !r.ok {
		return def
	}
	return fn(r.value)
}

// MapResultOrElse applies fn to the success value, or computes a default from
// the error.
func MapResultOrElse[T, E, U any](r Result[T, E], defFn func(E) U, fn func(T) U) U {
	if !r.ok {
		return defFn(r.err)
	}
	return fn(r.value)
}

// AndResult returns other if r is a success, and r's Err otherwise.
func AndResult[T, E, U any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return other
}

// AndThenResult calls fn with the success value and returns its result, or r's
// Err unchanged.
func AndThenResult[T, E, U any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	if !r.ok {
		return Err[U, E](r.err)
	}
	return fn(r.value)
}

// OrResult returns r's success if it is one, and other otherwise.
func OrResult[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return other
}

// OrElseResult returns r's success if it is one, and computes a fallback from
// the error otherwise.
func OrElseResult[T, E, F any](r Result[T, E], fn func(E) Result[T, F]) Result[T, F] {
	if r.ok {
		return Ok[T, F](r.value)
	}
	return fn(r.err)
}

// AsOk recasts the error type of a Result known to be a success. Calling it on
// an Err is a contract violation and panics.
func AsOk[T, E, F any](r Result[T, E]) Result[T, F] {
	if !r.ok {
		panic(fmt.Sprintf("called AsOk on Err: %v", r.err))
	}
	return Ok[T, F](r.value)
}

// AsErr recasts the success type of a Result known to be an error. Calling it
// on an Ok is a contract violation and panics.
func AsErr[T, E, U any](r Result[T, E]) Result[U, E] {
	if r.ok {
		panic("called AsErr on Ok")
	}
	return Err[U, E](r.err)
}

// TransposeResult turns a Result of an Option inside out: Ok(None) becomes
// None, Ok(Some(v)) becomes Some(Ok(v)), and Err(e) becomes Some(Err(e)).
func TransposeResult[T, E any](r Result[Option[T], E]) Option[Result[T, E]] {
	if !r.ok {
		return Some(Err[T, E](r.err))
	}
	if !r.value.some {
		return None[Result[T, E]]()
	}
	return Some(Ok[T, E](r.value.value))
}

// FlattenResult removes one level of nesting.
func FlattenResult[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if !r.ok {
		return Err[T, E](r.err)
	}
	return r.value
}

// CollectResults combines a slice of Results into a Result of a slice: every
// success value if all elements are Ok, and the first Err otherwise.
func CollectResults[T, E any](results []Result[T, E]) Result[[]T, E] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if !r.ok {
			return Err[[]T, E](r.err)
		}
		values = append(values, r.value)
	}
	return Ok[[]T, E](values)
}

// EqResult reports whether both Results are the same variant with equal
// payloads, using Go's == strictly.
func EqResult[T, E comparable](a, b Result[T, E]) bool {
	if a.ok != b.ok {
		return false
	}
	if a.ok {
		return a.value == b.value
	}
	return a.err == b.err
}
