// Package solo contains single-value, synchronous railway helpers over
// result.Result[T, error]. They take a context and bridge ordinary Go
// functions (validators, (value, error) calls, side effects) onto the
// success/failure track.
//
// Highlights:
// - Succeed/Fail: construct Result[T, error]
// - Validate/AndValidate/ValidateAll: turn validation into failures
// - Switch/Map/Try: move from Result[In, error] to Result[Out, error]
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error handlers
package solo
