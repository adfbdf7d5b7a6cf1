package result

// Unwrap returns the success payload (the zero T for an empty success) and
// panics on a failure.
func (r Result[T, E]) Unwrap() T {
	if reason, ok := r.FailureValue(); ok {
		panic(newPanicf(unwrapPanicFmt, render(reason)))
	}
	v, _ := r.SuccessValue()
	return v
}

// UnwrapFailure returns the failure reason and panics on a success.
func (r Result[T, E]) UnwrapFailure() E {
	reason, ok := r.FailureValue()
	if !ok {
		panic(newPanicf(unwrapFailurePanicFmt, r.successText()))
	}
	return reason
}

func (r Result[T, E]) UnwrapOr(def T) T {
	if r.IsFailure() {
		return def
	}
	v, _ := r.SuccessValue()
	return v
}

func (r Result[T, E]) UnwrapOrElse(f func(E) T) T {
	if reason, ok := r.FailureValue(); ok {
		return f(reason)
	}
	v, _ := r.SuccessValue()
	return v
}

// Expect is Unwrap with msg prefixed to the panic message.
func (r Result[T, E]) Expect(msg string) T {
	if reason, ok := r.FailureValue(); ok {
		panic(newPanicf(expectPanicFmt, msg, render(reason)))
	}
	v, _ := r.SuccessValue()
	return v
}

// ExpectFailure is UnwrapFailure with msg prefixed to the panic message.
func (r Result[T, E]) ExpectFailure(msg string) E {
	reason, ok := r.FailureValue()
	if !ok {
		panic(newPanicf(expectPanicFmt, msg, r.successText()))
	}
	return reason
}

func (r Result[T, E]) successText() string {
	if v, ok := r.SuccessValue(); ok {
		return render(v)
	}
	return ""
}
