package rusty

import "fmt"

// Container identity rests on unexported marker methods: only this package can
// declare them, so no foreign type can pass the guards, no matter how closely
// its shape matches. Two copies of the package under different import paths do
// not recognize each other's containers.

type optionMark interface {
	optionVariant() (value any, some bool)
}

type resultMark interface {
	resultVariant() (value, err any, ok bool)
}

func (o Option[T]) optionVariant() (any, bool) {
	return o.value, o.some
}

func (r Result[T, E]) resultVariant() (any, any, bool) {
	return r.value, r.err, r.ok
}

// IsOption reports whether x is an Option of any payload type. It never
// panics, whatever x is.
func IsOption(x any) bool {
	_, ok := x.(optionMark)
	return ok
}

// IsResult reports whether x is a Result of any payload types. It never
// panics, whatever x is.
func IsResult(x any) bool {
	_, ok := x.(resultMark)
	return ok
}

// AssertOption panics if x is not an Option. The message includes the rejected
// value.
func AssertOption(x any) {
	if !IsOption(x) {
		panic(fmt.Sprintf("called AssertOption on non-Option value: %v", x))
	}
}

// AssertResult panics if x is not a Result. The message includes the rejected
// value.
func AssertResult(x any) {
	if !IsResult(x) {
		panic(fmt.Sprintf("called AssertResult on non-Result value: %v", x))
	}
}
