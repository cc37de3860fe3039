// Package colgo provides a columnar record-batch model and a vectorized
// take/compaction kernel for analytical query execution.
//
// A batch is an ordered list of entries sharing one row count; each entry is
// either a materialized column or a broadcast scalar. Operators that rebuild
// row batches from scattered source positions (join probes, filter
// materialization, merges) describe the rebuild as a run-length-encoded row
// selection and hand it to the kernel.
//
// # Quick Start
//
//	ages := column.NewNumbers([]int64{31, 27, 45})
//	names := column.NewStrings([]string{"ada", "bob", "eve"})
//	batch, _ := colgo.NewBatch([]colgo.Entry{
//	    colgo.ColumnEntry(ages),
//	    colgo.ColumnEntry(names),
//	}, 3)
//
//	// Emit row 0 twice, then row 2 once.
//	list := runs.List{{Index: 0, Count: 2}, {Index: 2, Count: 1}}
//	out, err := batch.TakeCompacted(list, 3)
//
// # Building run lists
//
// The runs package converts the shapes operators naturally produce:
//
//	runs.FromIndices(probeRows)   // join probe output, duplicates coalesced
//	runs.FromBitmap(selected)     // filter result (Roaring bitmap)
//	runs.Identity(n)              // pass-through of an n-row source
//
// # Checked and unchecked paths
//
// Batch.TakeCompacted and column.TakeCompacted validate the run list once at
// the boundary and return ErrInvalidRuns on a broken contract.
// column.TakeCompactedUnsafe skips validation for callers that have already
// established it; the expansion loops never re-check per row.
//
// # Concurrency
//
// Columns and batches are immutable. The kernel allocates and owns every
// output, so concurrent invocations on shared sources are safe without
// locking; scheduling across partitions belongs to the surrounding pipeline.
package colgo
