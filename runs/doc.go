// Package runs defines the run-length-encoded row selection consumed by the
// take/compaction kernel.
//
// A run list is an ordered sequence of (index, count) pairs: "emit the source
// row at index, count times". Operators build run lists from join probes
// (FromIndices), filter bitmaps (FromBitmap) or directly, and hand them to
// colgo.Batch.TakeCompacted or column.TakeCompacted to materialize output
// batches.
//
// Validation is deliberately separated from expansion: Validate enforces the
// kernel's caller contract once at the boundary, so the hot expansion loops
// can run without per-row checks.
package runs
