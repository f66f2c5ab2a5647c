package rusty

// Asynchronous counterparts of the suspending combinators. Each one resolves
// immediately on the short-circuit branch and otherwise returns the callback's
// own Future unchanged, so no extra goroutine or layer of suspension is ever
// introduced.

// IsSomeAndAsync is IsSomeAnd with a predicate that resolves asynchronously.
// None resolves to false without calling the predicate.
func IsSomeAndAsync[T any](o Option[T], pred func(T) *Future[bool]) *Future[bool] {
	if !o.some {
		return Resolve(false)
	}
	return pred(o.value)
}

// AndThenOptionAsync is AndThenOption with a callback that resolves
// asynchronously. None resolves to None without calling the callback.
func AndThenOptionAsync[T, U any](o Option[T], fn func(T) AsyncOption[U]) AsyncOption[U] {
	if !o.some {
		return Resolve(None[U]())
	}
	return fn(o.value)
}

// OrElseOptionAsync is OrElse with a fallback that resolves asynchronously.
// Some resolves to itself without calling the fallback.
func OrElseOptionAsync[T any](o Option[T], fn func() AsyncOption[T]) AsyncOption[T] {
	if o.some {
		return Resolve(o)
	}
	return fn()
}

// UnwrapOrElseOptionAsync is UnwrapOrElse with a default that resolves
// asynchronously. Some resolves to its value without calling the thunk.
func UnwrapOrElseOptionAsync[T any](o Option[T], fn func() *Future[T]) *Future[T] {
	if o.some {
		return Resolve(o.value)
	}
	return fn()
}

// IsOkAndAsync is IsOkAnd with a predicate that resolves asynchronously. Err
// resolves to false without calling the predicate.
func IsOkAndAsync[T, E any](r Result[T, E], pred func(T) *Future[bool]) *Future[bool] {
	if !r.ok {
		return Resolve(false)
	}
	return pred(r.value)
}

// IsErrAndAsync is IsErrAnd with a predicate that resolves asynchronously. Ok
// resolves to false without calling the predicate.
func IsErrAndAsync[T, E any](r Result[T, E], pred func(E) *Future[bool]) *Future[bool] {
	if r.ok {
		return Resolve(false)
	}
	return pred(r.err)
}

// AndThenResultAsync is AndThenResult with a callback that resolves
// asynchronously. Err resolves to itself without calling the callback.
func AndThenResultAsync[T, E, U any](r Result[T, E], fn func(T) AsyncResult[U, E]) AsyncResult[U, E] {
	if !r.ok {
		return Resolve(Err[U, E](r.err))
	}
	return fn(r.value)
}

// OrElseResultAsync is OrElseResult with a fallback that resolves
// asynchronously. Ok resolves to itself without calling the fallback.
func OrElseResultAsync[T, E, F any](r Result[T, E], fn func(E) AsyncResult[T, F]) AsyncResult[T, F] {
	if r.ok {
		return Resolve(Ok[T, F](r.value))
	}
	return fn(r.err)
}

// UnwrapOrElseResultAsync is UnwrapOrElse with a default that resolves
// asynchronously. Ok resolves to its value without calling the function.
func UnwrapOrElseResultAsync[T, E any](r Result[T, E], fn func(E) *Future[T]) *Future[T] {
	if r.ok {
		return Resolve(r.value)
	}
	return fn(r.err)
}
