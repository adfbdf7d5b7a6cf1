package result

import (
	"fmt"
	"reflect"
)

const (
	successName = "Success"
	failureName = "Failure"

	stringFmt      = "%s(%s)"
	stringQuoteFmt = "%s(\"%s\")"
)

// Equal reports whether other is a Result[T, E] (or a pointer to one) on the
// same side as r with an equal payload. Two empty successes are equal.
func (r Result[T, E]) Equal(other any) bool {
	var o Result[T, E]
	switch v := other.(type) {
	case Result[T, E]:
		o = v
	case *Result[T, E]:
		if v == nil {
			return false
		}
		o = *v
	default:
		return false
	}

	if r.IsFailure() != o.IsFailure() {
		return false
	}

	if r.IsFailure() {
		a, _ := r.FailureValue()
		b, _ := o.FailureValue()
		return equalValues(a, b)
	}

	a, aok := r.SuccessValue()
	b, bok := o.SuccessValue()
	if aok != bok {
		return false
	}
	return !aok || equalValues(a, b)
}

// String renders Success(<payload>) or Failure(<payload>). String payloads are
// quoted; an empty success renders as Success().
func (r Result[T, E]) String() string {
	if reason, ok := r.FailureValue(); ok {
		return format(failureName, reason, true)
	}
	v, ok := r.SuccessValue()
	return format(successName, v, ok)
}

func (r Result[T, E]) GoString() string {
	return r.String()
}

func format(name string, payload any, present bool) string {
	if !present {
		return fmt.Sprintf(stringFmt, name, "")
	}
	if isText(payload) {
		return fmt.Sprintf(stringQuoteFmt, name, render(payload))
	}
	return fmt.Sprintf(stringFmt, name, render(payload))
}

func render(v any) string {
	return fmt.Sprint(v)
}

func isText(v any) bool {
	if v == nil {
		return false
	}
	return reflect.TypeOf(v).Kind() == reflect.String
}
