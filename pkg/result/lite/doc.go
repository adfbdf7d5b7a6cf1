// Package lite provides lightweight channel-lifted helpers that wrap solo
// primitives for concurrent pipelines of result.Result[T, error]. It is
// designed for simple fan-out/fan-in flows.
//
// Common usage:
// - Run/Turnout: execute an engine over an input channel with N lines
// - Validate/Try/Switch/Map/Tee: lift solo operations over channels
// - Finally: map Result[In, error] to Out on completion
//
// The number of lines falls back to core.WithWorkerOptions when not positive.
// With core.WithProcessOptions(ctx, true), items still queued when ctx is
// canceled are emitted as failures carrying ctx.Err(); the consumer must keep
// reading until the output channel closes.
package lite
