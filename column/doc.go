// Package column implements the in-memory columnar value model and the
// take/compaction kernel that rebuilds columns from run-length-encoded row
// selections.
//
// # Value model
//
// Column is a closed tagged union with one concrete type per physical
// representation: zero-width placeholders (Null, EmptyArray, EmptyMap),
// fixed-width buffers (Numbers, Decimal128s, Decimal256s, Timestamps,
// Dates), bit-packed Booleans, offsets+data payload columns (Strings,
// Binaries, Variants) and recursive structures (Arrays, Maps, Nullables,
// Tuples). Columns are immutable; Builders are their transient mutable
// counterparts.
//
// # Take kernel
//
// TakeCompacted dispatches on the concrete column kind:
//   - fixed-width buffers go through an amortized-doubling bulk copy that
//     fills a run of n copies with O(log n) copy operations
//   - bitmaps append one bit per output row
//   - payload and nested kinds run a generic per-item fill over small
//     capability interfaces
//   - recursive kinds re-invoke the kernel on their constituents with the
//     same run list and row count, keeping offsets and validity aligned
//     with payload by construction
//
// The kernel is pure and synchronous: inputs are never mutated and every
// invocation owns its output, so concurrent invocations on shared source
// columns need no synchronization.
package column
