package result

// And returns other when r is a success, otherwise r's failure.
func And[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	if reason, ok := r.FailureValue(); ok {
		return Failure[U](reason)
	}
	return other
}

// Or returns r's success when r is a success, otherwise other.
func Or[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	if r.IsSuccess() {
		return sameSuccess[T, E, F](r)
	}
	return other
}

// OrElse returns r's success, or the Result f builds from the failure reason.
func OrElse[T, E, F any](r Result[T, E], f func(E) Result[T, F]) Result[T, F] {
	if reason, ok := r.FailureValue(); ok {
		return f(reason)
	}
	return sameSuccess[T, E, F](r)
}
