package result

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether v is nil or a typed nil pointer, map, slice, func,
// chan or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

// Errors splits err into the errors it wraps (errors.Join and multierror
// values); any other error is returned alone.
func Errors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		return e.Unwrap()
	case interface{ WrappedErrors() []error }:
		return e.WrappedErrors()
	}

	return []error{err}
}

func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func equalValues(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
