package rusty

import (
	"fmt"
	"iter"
)

// Option represents an optional value: every Option is either Some and carries
// a value, or None and carries nothing. The zero value is None.
//
// Option does not distinguish "present but nil": Some of a nil pointer is a
// legal value and is not None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option containing the given value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Some of the pointed-to value, or None for a nil pointer.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// IsSome returns true if the Option contains a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// IsSomeAnd returns true if the Option contains a value and the value matches
// the predicate. The predicate is not called on None.
func (o Option[T]) IsSomeAnd(pred func(T) bool) bool {
	return o.some && pred(o.value)
}

// IsNoneOr returns true if the Option is empty or its value matches the
// predicate.
func (o Option[T]) IsNoneOr(pred func(T) bool) bool {
	return !o.some || pred(o.value)
}

// Expect returns the contained value, panicking with exactly msg if the Option
// is None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(msg)
	}
	return o.value
}

// Unwrap returns the contained value, panicking if the Option is None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic("called Unwrap on None")
	}
	return o.value
}

// UnwrapOr returns the contained value or the given default.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the contained value or computes a default. The thunk is
// not called on Some.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// Get returns the contained value and whether it is present, in Go's comma-ok
// form.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Filter returns the Option unchanged if it contains a value matching the
// predicate, and None otherwise.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// Map applies fn to the contained value. Use MapOption to change the payload
// type.
func (o Option[T]) Map(fn func(T) T) Option[T] {
	if !o.some {
		return o
	}
	return Some(fn(o.value))
}

// And returns other if the Option contains a value, and None otherwise.
func (o Option[T]) And(other Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return other
}

// AndThen calls fn with the contained value and returns its result, or None if
// the Option is empty. Use AndThenOption to change the payload type.
func (o Option[T]) AndThen(fn func(T) Option[T]) Option[T] {
	if !o.some {
		return o
	}
	return fn(o.value)
}

// Or returns the Option if it contains a value, and other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns the Option if it contains a value, and computes a fallback
// otherwise. The thunk is not called on Some.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of the two Options contains a value, or None when both
// or neither do.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	if o.some == other.some {
		return None[T]()
	}
	return o.Or(other)
}

// Inspect calls fn with the contained value, if any, and returns the Option
// unchanged.
func (o Option[T]) Inspect(fn func(T)) Option[T] {
	if o.some {
		fn(o.value)
	}
	return o
}

// All yields the contained value, if any. A Some iterates once, a None not at
// all.
func (o Option[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// ToPtr returns a pointer to a copy of the contained value, or nil if None.
func (o Option[T]) ToPtr() *T {
	if !o.some {
		return nil
	}
	value := o.value
	return &value
}

// String renders the Option as Some(value) or None.
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// MapOption applies fn to the contained value, producing an Option of the
// result type.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// MapOptionOr applies fn to the contained value, or returns the default if the
// Option is empty.
func MapOptionOr[T, U any](o Option[T], def U, fn func(T) U) U {
	if !o.some {
		return def
	}
	return fn(o.value)
}

// MapOptionOrElse applies fn to the contained value, or computes a default if
// the Option is empty.
func MapOptionOrElse[T, U any](o Option[T], defFn func() U, fn func(T) U) U {
	if !o.some {
		return defFn()
	}
	return fn(o.value)
}

// AndOption returns other if o contains a value, and None otherwise.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return other
}

// AndThenOption calls fn with the contained value and returns its result, or
// None if o is empty.
func AndThenOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// OkOr converts the Option into a Result, mapping Some to Ok and None to
// Err(err).
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	if !o.some {
		return Err[T, E](err)
	}
	return Ok[T, E](o.value)
}

// OkOrElse converts the Option into a Result, mapping Some to Ok and None to
// an Err computed by errFn.
func OkOrElse[T, E any](o Option[T], errFn func() E) Result[T, E] {
	if !o.some {
		return Err[T, E](errFn())
	}
	return Ok[T, E](o.value)
}

// TransposeOption turns an Option of a Result inside out: None becomes
// Ok(None), Some(Ok(v)) becomes Ok(Some(v)), and Some(Err(e)) becomes Err(e).
func TransposeOption[T, E any](o Option[Result[T, E]]) Result[Option[T], E] {
	if !o.some {
		return Ok[Option[T], E](None[T]())
	}
	if !o.value.ok {
		return Err[Option[T], E](o.value.err)
	}
	return Ok[Option[T], E](Some(o.value.value))
}

// FlattenOption removes one level of nesting.
func FlattenOption[T any](o Option[Option[T]]) Option[T] {
	if !o.some {
		return None[T]()
	}
	return o.value
}

// Zip returns Some of a Pair of both values if both Options contain one, and
// None otherwise.
func Zip[T, U any](a Option[T], b Option[U]) Option[Pair[T, U]] {
	if !a.some || !b.some {
		return None[Pair[T, U]]()
	}
	return Some(NewPair(a.value, b.value))
}

// ZipWith combines both contained values with fn if both Options contain one,
// and returns None otherwise. Neither operand is evaluated lazily; both are
// already-constructed values.
func ZipWith[T, U, R any](a Option[T], b Option[U], fn func(T, U) R) Option[R] {
	if !a.some || !b.some {
		return None[R]()
	}
	return Some(fn(a.value, b.value))
}

// Unzip splits an Option of a Pair into an Option per component: Some yields
// Some of each half, None yields two Nones.
func Unzip[T, U any](o Option[Pair[T, U]]) (Option[T], Option[U]) {
	if !o.some {
		return None[T](), None[U]()
	}
	return Some(o.value.First), Some(o.value.Second)
}

// CollectOptions combines a slice of Options into an Option of a slice: every
// value if all elements are Some, and None at the first empty element.
func CollectOptions[T any](options []Option[T]) Option[[]T] {
	values := make([]T, 0, len(options))
	for _, o := range options {
		if !o.some {
			return None[[]T]()
		}
		values = append(values, o.value)
	}
	return Some(values)
}

// EqOption reports whether both Options are the same variant with equal
// contained values, using Go's == strictly.
func EqOption[T comparable](a, b Option[T]) bool {
	if a.some != b.some {
		return false
	}
	return !a.some || a.value == b.value
}
