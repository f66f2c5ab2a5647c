package rusty

// Pair groups two values of independent types. It is the payload of Zip and
// the input of Unzip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// NewPair returns a Pair of the two values.
func NewPair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns both components.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Swap returns the Pair with its components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{First: p.Second, Second: p.First}
}
