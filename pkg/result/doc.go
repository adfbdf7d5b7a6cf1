// Package result provides Result[T, E], an immutable value that is either a
// success carrying an optional payload or a failure carrying a reason.
//
// Key operations:
// - Success/EmptySuccess/Failure (Ok/EmptyOk/Err): construct a Result
// - IsSuccess/IsFailure/SuccessValue/FailureValue/Contains: inspect it
// - Map/MapErr/MapOr/MapOrElse/AndThen/Flatten: transform the active side
// - And/Or/OrElse: pick between two Results
// - Unwrap/Expect and friends: extract a payload or panic with *Panic
// - Equal/String: structural comparison and the Success(..)/Failure(..) form
//
// Contract violations (a failure without a reason, transforming an empty
// success, unwrapping the wrong side) panic with a *Panic value. They are
// programming errors, not part of the recoverable error channel.
package result
