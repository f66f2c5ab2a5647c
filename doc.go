// Package rusty provides Rust-style Option and Result containers: explicit,
// immutable carriers for optional values and fallible outcomes.
//
// Both containers are plain value types. Constructors are the only way to
// produce them, every accessor returns a fresh value, and nothing mutates a
// container after construction. The zero value of Option is None; the zero
// value of Result is an Err holding the zero value of its error type.
//
// Operations that keep the payload type are methods; operations that change it
// are package-level functions (MapOption, AndThenResult, ...), since Go methods
// cannot introduce new type parameters.
//
// Beyond the core algebra the package carries runtime identity guards for
// dynamic boundaries (IsOption, Match), bridges from Go's (value, error)
// convention (TryOption, TryResult), Future-based asynchronous counterparts of
// the suspending combinators, and JSON/YAML marshaling for Option.
package rusty
