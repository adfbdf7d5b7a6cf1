// Package mass implements channel-based building blocks that lift solo
// primitives onto a single pipeline item and finalize streams of results.
//
// It is used by package lite to compose concurrent pipelines.
package mass
