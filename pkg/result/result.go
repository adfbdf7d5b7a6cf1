package result

// Result is either a success holding an optional T or a failure holding an E.
// The zero Result is an empty success.
type Result[T, E any] struct {
	state variant // nil for an empty success
}

type variant interface {
	variant()
}

type succeeded[T any] struct {
	value T
}

type failed[E any] struct {
	value E
}

func (succeeded[T]) variant() {}
func (failed[E]) variant()    {}

func Success[T, E any](value T) Result[T, E] {
	return Result[T, E]{state: succeeded[T]{value: value}}
}

// EmptySuccess returns a success that carries no payload. It is still a
// success, not a failure.
func EmptySuccess[T, E any]() Result[T, E] {
	return Result[T, E]{}
}

// Failure panics when reason is nil: a failure must carry a reason.
func Failure[T, E any](reason E) Result[T, E] {
	if IsNil(reason) {
		panic(newPanic(MsgNilFailure))
	}
	return Result[T, E]{state: failed[E]{value: reason}}
}

func Ok[T, E any](value T) Result[T, E] {
	return Success[T, E](value)
}

func EmptyOk[T, E any]() Result[T, E] {
	return EmptySuccess[T, E]()
}

func Err[T, E any](reason E) Result[T, E] {
	return Failure[T, E](reason)
}

// FromPair converts a Go (value, error) pair into a Result.
func FromPair[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Failure[T](err)
	}
	return Success[T, error](value)
}

func (r Result[T, E]) IsSuccess() bool {
	_, ok := r.state.(failed[E])
	return !ok
}

func (r Result[T, E]) IsFailure() bool {
	_, ok := r.state.(failed[E])
	return ok
}

// IsEmpty reports whether r is a success without a payload.
func (r Result[T, E]) IsEmpty() bool {
	_, present, ok := r.success()
	return ok && !present
}

// SuccessValue returns the success payload. ok is false for a failure and for
// an empty success.
func (r Result[T, E]) SuccessValue() (value T, ok bool) {
	v, present, isSuccess := r.success()
	if !isSuccess || !present {
		return value, false
	}
	return v, true
}

// FailureValue returns the failure payload; ok is true iff r is a failure.
func (r Result[T, E]) FailureValue() (reason E, ok bool) {
	if f, isFailure := r.state.(failed[E]); isFailure {
		return f.value, true
	}
	return reason, false
}

// Contains reports whether r is a success whose payload equals value.
func (r Result[T, E]) Contains(value T) bool {
	if IsNil(value) {
		return false
	}
	v, ok := r.SuccessValue()
	if !ok {
		return false
	}
	return equalValues(v, value)
}

// ContainsFailure reports whether r is a failure whose reason equals value.
func (r Result[T, E]) ContainsFailure(value E) bool {
	if IsNil(value) {
		return false
	}
	reason, ok := r.FailureValue()
	if !ok {
		return false
	}
	return equalValues(reason, value)
}

// success unpacks the success side. isSuccess is false for a failure.
func (r Result[T, E]) success() (value T, present bool, isSuccess bool) {
	switch s := r.state.(type) {
	case nil:
		return value, false, true
	case succeeded[T]:
		return s.value, true, true
	default:
		return value, false, false
	}
}
