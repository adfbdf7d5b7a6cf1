package result

// Map applies f to the success payload. A failure is propagated without
// calling f; an empty success panics.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[U](reason)
	}
	return Success[U, E](f(r.mustPayload()))
}

// MapErr applies f to the failure reason and leaves a success untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[T](f(reason))
	}
	return sameSuccess[T, E, F](r)
}

// MapOr returns def for a failure, f(payload) for a success.
func MapOr[T, E, U any](r Result[T, E], def U, f func(T) U) U {
	if r.IsFailure() {
		return def
	}
	return f(r.mustPayload())
}

// MapOrElse is MapOr with the fallback computed from the failure reason.
func MapOrElse[T, E, U any](r Result[T, E], def func(E) U, f func(T) U) U {
	if reason, ok := r.FailureValue(); ok {
		return def(reason)
	}
	return f(r.mustPayload())
}

// AndThen calls f with the success payload and returns its Result as is.
func AndThen[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[U](reason)
	}
	return f(r.mustPayload())
}

// Flatten removes one level of nesting from a Result of a Result.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[T](reason)
	}
	inner, ok := r.SuccessValue()
	if !ok {
		return EmptySuccess[T, E]()
	}
	return inner
}

// Flatten returns the success payload when it is itself a Result[T, E].
// For any other success r is returned unchanged. Only that exact
// instantiation is recognized: a Result[int, error] held in a
// Result[any, error] is left nested. Use the Flatten function when the
// nesting is known statically.
func (r Result[T, E]) Flatten() Result[T, E] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[T](reason)
	}
	v, ok := r.SuccessValue()
	if !ok {
		return r
	}
	if inner, nested := any(v).(Result[T, E]); nested {
		return inner
	}
	return r
}

func (r Result[T, E]) mustPayload() T {
	v, ok := r.SuccessValue()
	if !ok {
		panic(newPanic(MsgEmptySuccess))
	}
	return v
}

// sameSuccess rebuilds a success of r under a different failure type.
func sameSuccess[T, E, F any](r Result[T, E]) Result[T, F] {
	if v, ok := r.SuccessValue(); ok {
		return Success[T, F](v)
	}
	return EmptySuccess[T, F]()
}
