// Package chain provides a fluent wrapper around result.Result[T, error]
// for building synchronous railway chains using solo primitives.
//
// A Chain carries the context it was started with and a correlation id. Each
// step is logged through the logr.Logger stored in that context, if any.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or a value
// - Then: switch to a new Result via a function
// - ThenTry: call a function (U, error) and convert error to failure
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays on the success track
// - Or/And: pick the first success or the first failure among chains
// - Finally: collapse the chain into a final value via handlers
package chain
