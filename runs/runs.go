package runs

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/colgo/internal/conv"
)

// Run selects the source row at Index and repeats it Count times in the
// output. Count must be at least 1.
type Run struct {
	Index uint32
	Count uint32
}

// List is an ordered sequence of runs describing how to expand and reorder a
// source column into an output. The sum of all counts is the row count of the
// output the list describes; an empty list describes a zero-row output.
type List []Run

// TotalRows returns the sum of all repeat counts.
func (l List) TotalRows() (int, error) {
	var total uint64
	for _, r := range l {
		total += uint64(r.Count)
	}
	return conv.Uint64ToInt(total)
}

// Validate checks the caller contract of the take kernel: every count is at
// least 1, the counts sum to targetRows and every index addresses a valid row
// of a source with sourceRows rows.
//
// The unchecked kernel paths do not repeat these checks; validating once at
// the boundary keeps them out of the hot loop.
func (l List) Validate(sourceRows, targetRows int) error {
	total, err := l.TotalRows()
	if err != nil {
		return err
	}
	if total != targetRows {
		return &ErrCountMismatch{Total: total, Rows: targetRows}
	}
	for _, r := range l {
		if r.Count == 0 {
			return &ErrZeroCount{Index: r.Index}
		}
		idx, err := conv.Uint32ToInt(r.Index)
		if err != nil {
			return &ErrIndexOutOfBounds{Index: r.Index, Rows: sourceRows}
		}
		if idx >= sourceRows {
			return &ErrIndexOutOfBounds{Index: r.Index, Rows: sourceRows}
		}
	}
	return nil
}

// Identity returns the run list that reproduces an n-row source unchanged:
// [(0,1), (1,1), ..., (n-1,1)].
func Identity(n int) List {
	l := make(List, n)
	for i := range l {
		l[i] = Run{Index: uint32(i), Count: 1}
	}
	return l
}

// FromIndices builds a run list from a plain row-index sequence, coalescing
// consecutive equal indices into a single run. This is the shape produced by
// join probes and group-by gathers, where the same source row is emitted for
// several adjacent output rows.
func FromIndices(indices []uint32) List {
	if len(indices) == 0 {
		return nil
	}
	l := make(List, 0, len(indices))
	cur := Run{Index: indices[0], Count: 1}
	for _, idx := range indices[1:] {
		if idx == cur.Index {
			cur.Count++
			continue
		}
		l = append(l, cur)
		cur = Run{Index: idx, Count: 1}
	}
	return append(l, cur)
}

// FromBitmap builds a run list from a selection bitmap, one single-repeat run
// per set bit in ascending order. This is the shape produced by filter
// materialization, where each selected source row appears exactly once.
func FromBitmap(bm *roaring.Bitmap) List {
	if bm == nil || bm.IsEmpty() {
		return nil
	}
	l := make(List, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		l = append(l, Run{Index: it.Next(), Count: 1})
	}
	return l
}

// ErrCountMismatch reports a run list whose counts do not sum to the target
// row count.
type ErrCountMismatch struct {
	Total int
	Rows  int
}

func (e *ErrCountMismatch) Error() string {
	return fmt.Sprintf("run counts sum to %d, want %d rows", e.Total, e.Rows)
}

// ErrZeroCount reports a run with a zero repeat count.
type ErrZeroCount struct {
	Index uint32
}

func (e *ErrZeroCount) Error() string {
	return fmt.Sprintf("run for source row %d has zero count", e.Index)
}

// ErrIndexOutOfBounds reports a run index outside the source row range.
type ErrIndexOutOfBounds struct {
	Index uint32
	Rows  int
}

func (e *ErrIndexOutOfBounds) Error() string {
	return fmt.Sprintf("run index %d out of bounds for %d source rows", e.Index, e.Rows)
}
