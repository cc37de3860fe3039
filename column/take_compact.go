package column

import (
	"fmt"
	"math/bits"

	"github.com/hupe1980/colgo/runs"
)

// TakeCompacted materializes a new column from c by expanding the
// run-length-encoded row selection: each run (index, count) contributes count
// copies of the row at index, in run order. The result has exactly rows rows
// and c's logical type.
//
// The run list is validated once against c before expansion; the expansion
// itself runs unchecked. Use TakeCompactedUnsafe when the caller has already
// established the contract (e.g. the batch-level dispatcher, which validates
// once for all columns of a batch).
func TakeCompacted(c Column, list runs.List, rows int) (Column, error) {
	if err := list.Validate(c.Rows(), rows); err != nil {
		return nil, err
	}
	return TakeCompactedUnsafe(c, list, rows), nil
}

// TakeCompactedUnsafe is TakeCompacted without the validation pass.
//
// Caller contract: every count is at least 1, the counts sum to rows, and
// every index is a valid row of c. The fast paths do not re-check any of
// this; a violated contract corrupts the output or panics mid-expansion.
func TakeCompactedUnsafe(c Column, list runs.List, rows int) Column {
	switch c := c.(type) {
	case *Null:
		return &Null{Length: rows}
	case *EmptyArray:
		return &EmptyArray{Length: rows}
	case *EmptyMap:
		return &EmptyMap{Length: rows}
	case *Numbers[int8]:
		return takeNumbers(c, list, rows)
	case *Numbers[int16]:
		return takeNumbers(c, list, rows)
	case *Numbers[int32]:
		return takeNumbers(c, list, rows)
	case *Numbers[int64]:
		return takeNumbers(c, list, rows)
	case *Numbers[uint8]:
		return takeNumbers(c, list, rows)
	case *Numbers[uint16]:
		return takeNumbers(c, list, rows)
	case *Numbers[uint32]:
		return takeNumbers(c, list, rows)
	case *Numbers[uint64]:
		return takeNumbers(c, list, rows)
	case *Numbers[float32]:
		return takeNumbers(c, list, rows)
	case *Numbers[float64]:
		return takeNumbers(c, list, rows)
	case *Decimal128s:
		return &Decimal128s{Values: takeFixed(c.Values, list, rows), Size: c.Size}
	case *Decimal256s:
		return &Decimal256s{Values: takeFixed(c.Values, list, rows), Size: c.Size}
	case *Booleans:
		return &Booleans{Bits: takeBitmap(c.Bits, list, rows)}
	case *Strings:
		return takeItems[[]byte](c, newBytesBuilder(bytesKindString, rows), list)
	case *Binaries:
		return takeItems[[]byte](c, newBytesBuilder(bytesKindBinary, rows), list)
	case *Variants:
		return takeItems[[]byte](c, newBytesBuilder(bytesKindVariant, rows), list)
	case *Timestamps:
		return &Timestamps{Values: takeFixed(c.Values, list, rows)}
	case *Dates:
		return &Dates{Values: takeFixed(c.Values, list, rows)}
	case *Arrays:
		b := newArrayBuilder(c.Elems.DataType(), rows)
		return takeScalars[Column](c, b, list, rows)
	case *Maps:
		b := newMapBuilder(c.Keys.DataType(), c.Values.DataType(), rows)
		return takeScalars[kvPair](c, b, list, rows)
	case *Nullables:
		// Inner rows and validity bits are driven by the same run list and
		// row count, which keeps them aligned by construction.
		return &Nullables{
			Inner:    TakeCompactedUnsafe(c.Inner, list, rows),
			Validity: takeBitmap(c.Validity, list, rows),
		}
	case *Tuples:
		fields := make([]Column, len(c.Fields))
		for i, f := range c.Fields {
			fields[i] = TakeCompactedUnsafe(f, list, rows)
		}
		return &Tuples{Fields: fields}
	default:
		panic(fmt.Sprintf("column: take on unknown column kind %T", c))
	}
}

func takeNumbers[T Number](c *Numbers[T], list runs.List, rows int) Column {
	return &Numbers[T]{Values: takeFixed(c.Values, list, rows)}
}

// takeFixed expands a run list over a fixed-width element buffer using
// amortized doubling: a run of count n is filled with one seed copy, then
// ceil(log2(n)) block copies that each double the already-written segment,
// plus one direct copy for the non-power-of-two remainder. Every copy reads
// only previously written output, and source and destination ranges never
// overlap.
//
//	[___________] => [x__________] => [xx_________] => [xxxx_______] => [xxxxxxxx___]
func takeFixed[T any](src []T, list runs.List, rows int) []T {
	debugAssertRuns(list, rows)

	out := make([]T, rows)
	offset := 0
	for _, r := range list {
		if r.Count == 1 {
			out[offset] = src[r.Index]
			offset++
			continue
		}
		base := offset
		out[base] = src[r.Index]
		cnt := int(r.Count)
		// Largest power of two not exceeding cnt; cnt >= 1 per contract.
		segment := 1 << (31 - bits.LeadingZeros32(r.Count))
		for cur := 1; cur < segment; cur <<= 1 {
			copy(out[base+cur:base+2*cur], out[base:base+cur])
		}
		offset += segment
		if remain := cnt - segment; remain > 0 {
			copy(out[offset:offset+remain], out[base:base+remain])
			offset += remain
		}
	}
	return out
}

// takeBitmap expands a run list over a packed bitmap: each run reads its bit
// once and appends it count times. No doubling here; sub-byte-aligned block
// copies cost more than they save at these row counts, unlike the naturally
// aligned fixed-width buffers.
func takeBitmap(src Bitmap, list runs.List, rows int) Bitmap {
	debugAssertRuns(list, rows)

	b := NewBitmapBuilder(rows)
	for _, r := range list {
		v := src.GetUnsafe(int(r.Index))
		for n := uint32(0); n < r.Count; n++ {
			b.Append(v)
		}
	}
	return b.Bitmap()
}

// payloadColumn is the capability contract of column kinds whose rows are
// flat byte payloads: unchecked item access by position.
type payloadColumn[Item any] interface {
	Column
	itemUnchecked(i int) Item
}

// payloadBuilder is the matching push-one-item builder capability.
type payloadBuilder[Item any] interface {
	pushItem(item Item)
	finish() Column
}

// takeItems is the generic run-filler for payload kinds: fetch each run's
// item once, push it count times. O(rows) capability calls; the fallback for
// kinds without a bulk-copy-friendly fixed-width layout.
func takeItems[Item any](col payloadColumn[Item], b payloadBuilder[Item], list runs.List) Column {
	for _, r := range list {
		item := col.itemUnchecked(int(r.Index))
		for n := uint32(0); n < r.Count; n++ {
			b.pushItem(item)
		}
	}
	return b.finish()
}

// scalarColumn is the capability contract of column kinds whose rows are
// rich values (nested sub-sequences): unchecked row access by position.
type scalarColumn[Item any] interface {
	Column
	rowUnchecked(i int) Item
}

// scalarBuilder is the matching push-one-row builder capability.
type scalarBuilder[Item any] interface {
	pushRow(item Item)
	finish() Column
}

// takeScalars is the generic run-filler for scalar-valued kinds, driven by
// the same run list and row count as every other branch so that structural
// metadata (offsets) stays aligned with payload.
func takeScalars[Item any](col scalarColumn[Item], b scalarBuilder[Item], list runs.List, rows int) Column {
	debugAssertRuns(list, rows)

	for _, r := range list {
		item := col.rowUnchecked(int(r.Index))
		for n := uint32(0); n < r.Count; n++ {
			b.pushRow(item)
		}
	}
	return b.finish()
}

// kvPair is one map row: lockstep key and value sub-sequences.
type kvPair struct {
	keys   Column
	values Column
}
