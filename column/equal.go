package column

import (
	"bytes"
	"slices"
)

// Equal reports whether two columns have the same kind, row count and
// row-wise contents. Physical layout differences that do not change the
// logical value (shared backing arrays, bitmap offsets, offset re-basing) do
// not affect the result.
func Equal(a, b Column) bool {
	if a.Rows() != b.Rows() {
		return false
	}
	switch a := a.(type) {
	case *Null:
		_, ok := b.(*Null)
		return ok
	case *EmptyArray:
		_, ok := b.(*EmptyArray)
		return ok
	case *EmptyMap:
		_, ok := b.(*EmptyMap)
		return ok
	case *Numbers[int8]:
		return numbersEqual(a, b)
	case *Numbers[int16]:
		return numbersEqual(a, b)
	case *Numbers[int32]:
		return numbersEqual(a, b)
	case *Numbers[int64]:
		return numbersEqual(a, b)
	case *Numbers[uint8]:
		return numbersEqual(a, b)
	case *Numbers[uint16]:
		return numbersEqual(a, b)
	case *Numbers[uint32]:
		return numbersEqual(a, b)
	case *Numbers[uint64]:
		return numbersEqual(a, b)
	case *Numbers[float32]:
		return numbersEqual(a, b)
	case *Numbers[float64]:
		return numbersEqual(a, b)
	case *Decimal128s:
		o, ok := b.(*Decimal128s)
		return ok && a.Size == o.Size && slices.Equal(a.Values, o.Values)
	case *Decimal256s:
		o, ok := b.(*Decimal256s)
		return ok && a.Size == o.Size && slices.Equal(a.Values, o.Values)
	case *Booleans:
		o, ok := b.(*Booleans)
		return ok && bitmapsEqual(a.Bits, o.Bits)
	case *Strings:
		o, ok := b.(*Strings)
		return ok && bytesColumnsEqual(&a.bytesColumn, &o.bytesColumn)
	case *Binaries:
		o, ok := b.(*Binaries)
		return ok && bytesColumnsEqual(&a.bytesColumn, &o.bytesColumn)
	case *Variants:
		o, ok := b.(*Variants)
		return ok && bytesColumnsEqual(&a.bytesColumn, &o.bytesColumn)
	case *Timestamps:
		o, ok := b.(*Timestamps)
		return ok && slices.Equal(a.Values, o.Values)
	case *Dates:
		o, ok := b.(*Dates)
		return ok && slices.Equal(a.Values, o.Values)
	case *Arrays:
		o, ok := b.(*Arrays)
		if !ok {
			return false
		}
		for i := 0; i < a.Rows(); i++ {
			if !Equal(a.Row(i), o.Row(i)) {
				return false
			}
		}
		return true
	case *Maps:
		o, ok := b.(*Maps)
		if !ok {
			return false
		}
		for i := 0; i < a.Rows(); i++ {
			ak, av := a.Row(i)
			bk, bv := o.Row(i)
			if !Equal(ak, bk) || !Equal(av, bv) {
				return false
			}
		}
		return true
	case *Nullables:
		o, ok := b.(*Nullables)
		return ok && bitmapsEqual(a.Validity, o.Validity) && Equal(a.Inner, o.Inner)
	case *Tuples:
		o, ok := b.(*Tuples)
		if !ok || len(a.Fields) != len(o.Fields) {
			return false
		}
		for i, f := range a.Fields {
			if !Equal(f, o.Fields[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func numbersEqual[T Number](a *Numbers[T], b Column) bool {
	o, ok := b.(*Numbers[T])
	return ok && slices.Equal(a.Values, o.Values)
}

func bitmapsEqual(a, b Bitmap) bool {
	if a.length != b.length {
		return false
	}
	for i := 0; i < a.length; i++ {
		if a.GetUnsafe(i) != b.GetUnsafe(i) {
			return false
		}
	}
	return true
}

func bytesColumnsEqual(a, b *bytesColumn) bool {
	if a.rows() != b.rows() {
		return false
	}
	for i := 0; i < a.rows(); i++ {
		if !bytes.Equal(a.Bytes(i), b.Bytes(i)) {
			return false
		}
	}
	return true
}
