package colgo

import (
	"fmt"

	"github.com/hupe1980/colgo/column"
	"github.com/hupe1980/colgo/runs"
)

// Entry is one slot of a record batch: either a broadcast scalar that
// logically repeats for every row, or a materialized column. Exactly one of
// Scalar and Column is set; Type carries the logical type either way, so a
// zero-row batch still has a schema.
type Entry struct {
	Type   column.DataType
	Scalar column.Scalar
	Column column.Column
}

// ScalarEntry creates a broadcast-scalar entry of the given type.
func ScalarEntry(dt column.DataType, s column.Scalar) Entry {
	return Entry{Type: dt, Scalar: s}
}

// ColumnEntry creates a materialized-column entry; the type is taken from
// the column.
func ColumnEntry(c column.Column) Entry {
	return Entry{Type: c.DataType(), Column: c}
}

// IsScalar reports whether the entry holds a broadcast scalar.
func (e Entry) IsScalar() bool { return e.Column == nil }

// Batch is an ordered collection of entries sharing one row count. Batches
// are immutable: transformations produce new batches and never touch their
// inputs.
type Batch struct {
	entries []Entry
	rows    int
	logger  *Logger
}

// NewBatch creates a batch over the given entries. Every column entry must
// have exactly rows rows, and every entry must hold exactly one of a scalar
// or a column. Batches derived through Slice or TakeCompacted inherit the
// options.
func NewBatch(entries []Entry, rows int, optFns ...Option) (*Batch, error) {
	opts := applyOptions(optFns)
	for i, e := range entries {
		if (e.Scalar == nil) == (e.Column == nil) {
			return nil, &ErrMalformedEntry{Entry: i}
		}
		if e.Column != nil && e.Column.Rows() != rows {
			return nil, &ErrEntryRows{Entry: i, Got: e.Column.Rows(), Want: rows}
		}
	}
	return &Batch{entries: entries, rows: rows, logger: opts.logger}, nil
}

// Rows returns the batch row count.
func (b *Batch) Rows() int { return b.rows }

// Entries returns the batch's entries. The returned slice is shared; callers
// must not modify it.
func (b *Batch) Entries() []Entry { return b.entries }

// Entry returns the entry at position i.
func (b *Batch) Entry(i int) Entry { return b.entries[i] }

// Slice returns the [i, j) row window of the batch. Scalar entries pass
// through unchanged; column entries are sliced. Panics if the range is out
// of bounds.
func (b *Batch) Slice(i, j int) *Batch {
	if i < 0 || j < i || j > b.rows {
		panic(fmt.Sprintf("colgo: slice range [%d:%d] out of bounds for %d rows", i, j, b.rows))
	}
	entries := make([]Entry, len(b.entries))
	for k, e := range b.entries {
		if e.IsScalar() {
			entries[k] = e
			continue
		}
		entries[k] = Entry{Type: e.Type, Column: e.Column.Slice(i, j)}
	}
	return &Batch{entries: entries, rows: j - i, logger: b.logger}
}

// TakeCompacted materializes a new batch by expanding the run-length-encoded
// row selection over every entry: scalar entries are passed through (row
// selection does not change repeated-value semantics), column entries are
// rebuilt by the column kernel. An empty run list yields the zero-row slice
// of the batch, schema intact, not an error.
//
// The run list is validated once against the batch; the per-column expansion
// then runs unchecked. The kernel itself cannot fail on well-formed input;
// the error return exists for the validation boundary and for composability
// with fallible pipelines.
func (b *Batch) TakeCompacted(list runs.List, rows int) (*Batch, error) {
	if len(list) == 0 {
		b.logger.LogTake(b.rows, 0, nil)
		return b.Slice(0, 0), nil
	}
	if err := list.Validate(b.rows, rows); err != nil {
		err = translateError(err)
		b.logger.LogTake(b.rows, rows, err)
		return nil, err
	}
	entries := make([]Entry, len(b.entries))
	for i, e := range b.entries {
		if e.IsScalar() {
			entries[i] = e
			continue
		}
		entries[i] = Entry{Type: e.Type, Column: column.TakeCompactedUnsafe(e.Column, list, rows)}
	}
	b.logger.LogTake(b.rows, rows, nil)
	return &Batch{entries: entries, rows: rows, logger: b.logger}, nil
}
