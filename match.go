package rusty

import "fmt"

// MatchOption reduces an Option to a value by calling onSome with the
// contained value or onNone for the empty case.
func MatchOption[T, R any](o Option[T], onSome func(T) R, onNone func() R) R {
	if o.some {
		return onSome(o.value)
	}
	return onNone()
}

// MatchResult reduces a Result to a value by calling onOk with the success
// value or onErr with the error value.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// Handlers holds the branch functions for Match. Any branch may be nil; nil
// branches fall through to Default.
type Handlers[R any] struct {
	Some    func(value any) R
	None    func() R
	Ok      func(value any) R
	Err     func(err any) R
	Default func() R
}

// Match dispatches x to the handler for its variant. Payloads arrive untyped
// since x itself is; pair Match with the typed MatchOption/MatchResult when
// the container type is statically known.
//
// A variant without a handler falls to Default, as does a value that is
// neither an Option nor a Result. Without a Default, either case is a contract
// violation and panics.
func Match[R any](x any, h Handlers[R]) R {
	switch c := x.(type) {
	case optionMark:
		value, some := c.optionVariant()
		switch {
		case some && h.Some != nil:
			return h.Some(value)
		case !some && h.None != nil:
			return h.None()
		}
	case resultMark:
		value, err, ok := c.resultVariant()
		switch {
		case ok && h.Ok != nil:
			return h.Ok(value)
		case !ok && h.Err != nil:
			return h.Err(err)
		}
	default:
		if h.Default == nil {
			panic(fmt.Sprintf("called Match on non-container value: %v", x))
		}
	}
	if h.Default != nil {
		return h.Default()
	}
	panic("called Match with no handler for the matched variant")
}
