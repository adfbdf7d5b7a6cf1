package result

import "fmt"

const (
	MsgEmptySuccess = "Can't applying a function to a Empty Ok."
	MsgNilFailure   = "Can't set a null to an Err's Content."

	unwrapPanicFmt        = "called unwrap() on a Failure value: %s"
	unwrapFailurePanicFmt = "called unwrapFailure() on a Success value: %s"
	expectPanicFmt        = "%s: %s"
)

// Panic is the value every contract violation of a Result panics with.
type Panic struct {
	Message string
}

func newPanic(msg string) *Panic {
	return &Panic{Message: msg}
}

func newPanicf(format string, args ...any) *Panic {
	return &Panic{Message: fmt.Sprintf(format, args...)}
}

func (p *Panic) Error() string {
	return p.Message
}

// Catch runs fn and turns a *Panic raised inside it into a failure.
// Any other panic value is re-raised untouched.
func Catch[T any](fn func() T) (res Result[T, *Panic]) {
	defer func() {
		if rec := recover(); rec != nil {
			p, ok := rec.(*Panic)
			if !ok {
				panic(rec)
			}
			res = Failure[T](p)
		}
	}()

	return Success[T, *Panic](fn())
}
