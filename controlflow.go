package rusty

import "fmt"

// ControlFlow tells a caller-driven operation whether to exit early or keep
// going. Break carries the early-exit payload B, Continue the proceed payload
// C. The zero value is Continue with C's zero value.
type ControlFlow[B, C any] struct {
	breakValue    B
	continueValue C
	isBreak       bool
}

// Break returns a ControlFlow that stops the operation with the given payload.
func Break[B, C any](value B) ControlFlow[B, C] {
	return ControlFlow[B, C]{breakValue: value, isBreak: true}
}

// Continue returns a ControlFlow that lets the operation go on with the given
// payload.
func Continue[B, C any](value C) ControlFlow[B, C] {
	return ControlFlow[B, C]{continueValue: value}
}

// IsBreak returns true if this is a Break.
func (c ControlFlow[B, C]) IsBreak() bool {
	return c.isBreak
}

// IsContinue returns true if this is a Continue.
func (c ControlFlow[B, C]) IsContinue() bool {
	return !c.isBreak
}

// BreakValue returns the Break payload, or None for a Continue.
func (c ControlFlow[B, C]) BreakValue() Option[B] {
	if !c.isBreak {
		return None[B]()
	}
	return Some(c.breakValue)
}

// ContinueValue returns the Continue payload, or None for a Break.
func (c ControlFlow[B, C]) ContinueValue() Option[C] {
	if c.isBreak {
		return None[C]()
	}
	return Some(c.continueValue)
}

// String renders the ControlFlow as Break(value) or Continue(value).
func (c ControlFlow[B, C]) String() string {
	if c.isBreak {
		return fmt.Sprintf("Break(%v)", c.breakValue)
	}
	return fmt.Sprintf("Continue(%v)", c.continueValue)
}
