package column

import "fmt"

// Builder is the mutable counterpart of a Column. Builders are transient:
// created for one construction, appended to, finalized with Build and then
// discarded. They are not safe for concurrent use.
//
// AppendColumn appends every row of src, which must have the builder's
// column kind; a kind mismatch is a construction defect and panics.
type Builder interface {
	// Rows returns the number of rows appended so far.
	Rows() int

	// AppendColumn appends all rows of src.
	AppendColumn(src Column)

	// Build finalizes the builder into an immutable column. The builder
	// must not be used afterwards.
	Build() Column
}

// NewBuilder creates a builder for the given data type with a row-capacity
// hint. Nested types allocate their constituent builders recursively.
func NewBuilder(dt DataType, capacity int) Builder {
	switch dt := dt.(type) {
	case NullType:
		return &placeholderBuilder{dt: dt}
	case EmptyArrayType:
		return &placeholderBuilder{dt: dt}
	case EmptyMapType:
		return &placeholderBuilder{dt: dt}
	case NumberType:
		switch dt.Kind {
		case Int8:
			return &numbersBuilder[int8]{values: make([]int8, 0, capacity)}
		case Int16:
			return &numbersBuilder[int16]{values: make([]int16, 0, capacity)}
		case Int32:
			return &numbersBuilder[int32]{values: make([]int32, 0, capacity)}
		case Int64:
			return &numbersBuilder[int64]{values: make([]int64, 0, capacity)}
		case UInt8:
			return &numbersBuilder[uint8]{values: make([]uint8, 0, capacity)}
		case UInt16:
			return &numbersBuilder[uint16]{values: make([]uint16, 0, capacity)}
		case UInt32:
			return &numbersBuilder[uint32]{values: make([]uint32, 0, capacity)}
		case UInt64:
			return &numbersBuilder[uint64]{values: make([]uint64, 0, capacity)}
		case Float32:
			return &numbersBuilder[float32]{values: make([]float32, 0, capacity)}
		case Float64:
			return &numbersBuilder[float64]{values: make([]float64, 0, capacity)}
		default:
			panic(fmt.Sprintf("column: unknown number kind %v", dt.Kind))
		}
	case Decimal128Type:
		return &decimal128Builder{values: make([]Decimal128, 0, capacity), size: dt.Size}
	case Decimal256Type:
		return &decimal256Builder{values: make([]Decimal256, 0, capacity), size: dt.Size}
	case BooleanType:
		return &booleanBuilder{bits: NewBitmapBuilder(capacity)}
	case StringType:
		return newBytesBuilder(bytesKindString, capacity)
	case BinaryType:
		return newBytesBuilder(bytesKindBinary, capacity)
	case VariantType:
		return newBytesBuilder(bytesKindVariant, capacity)
	case TimestampType:
		return &timestampBuilder{values: make([]int64, 0, capacity)}
	case DateType:
		return &dateBuilder{values: make([]int32, 0, capacity)}
	case ArrayType:
		return newArrayBuilder(dt.Elem, capacity)
	case MapType:
		return newMapBuilder(dt.Key, dt.Value, capacity)
	case NullableType:
		return &nullableBuilder{
			inner:    NewBuilder(dt.Inner, capacity),
			validity: NewBitmapBuilder(capacity),
		}
	case TupleType:
		if len(dt.Fields) == 0 {
			panic("column: tuple needs at least one field")
		}
		fields := make([]Builder, len(dt.Fields))
		for i, f := range dt.Fields {
			fields[i] = NewBuilder(f, capacity)
		}
		return &tupleBuilder{fields: fields}
	default:
		panic(fmt.Sprintf("column: unknown data type %T", dt))
	}
}

// NewBuilderFor creates a builder matching an exemplar column's type.
func NewBuilderFor(c Column, capacity int) Builder {
	return NewBuilder(c.DataType(), capacity)
}

func mismatch(b Builder, src Column) string {
	return fmt.Sprintf("column: cannot append %T into %T builder", src, b)
}

// placeholderBuilder builds the zero-width placeholder kinds; only a length
// is tracked.
type placeholderBuilder struct {
	dt     DataType
	length int
}

func (b *placeholderBuilder) Rows() int { return b.length }

func (b *placeholderBuilder) AppendColumn(src Column) {
	switch src := src.(type) {
	case *Null:
		if (b.dt != NullType{}) {
			panic(mismatch(b, src))
		}
	case *EmptyArray:
		if (b.dt != EmptyArrayType{}) {
			panic(mismatch(b, src))
		}
	case *EmptyMap:
		if (b.dt != EmptyMapType{}) {
			panic(mismatch(b, src))
		}
	default:
		panic(mismatch(b, src))
	}
	b.length += src.Rows()
}

func (b *placeholderBuilder) Build() Column {
	switch b.dt.(type) {
	case NullType:
		return &Null{Length: b.length}
	case EmptyArrayType:
		return &EmptyArray{Length: b.length}
	default:
		return &EmptyMap{Length: b.length}
	}
}

type numbersBuilder[T Number] struct {
	values []T
}

func (b *numbersBuilder[T]) Rows() int { return len(b.values) }

func (b *numbersBuilder[T]) AppendColumn(src Column) {
	c, ok := src.(*Numbers[T])
	if !ok {
		panic(mismatch(b, src))
	}
	b.values = append(b.values, c.Values...)
}

func (b *numbersBuilder[T]) Build() Column { return &Numbers[T]{Values: b.values} }

type decimal128Builder struct {
	values []Decimal128
	size   DecimalSize
}

func (b *decimal128Builder) Rows() int { return len(b.values) }

func (b *decimal128Builder) AppendColumn(src Column) {
	c, ok := src.(*Decimal128s)
	if !ok {
		panic(mismatch(b, src))
	}
	b.values = append(b.values, c.Values...)
}

func (b *decimal128Builder) Build() Column {
	return &Decimal128s{Values: b.values, Size: b.size}
}

type decimal256Builder struct {
	values []Decimal256
	size   DecimalSize
}

func (b *decimal256Builder) Rows() int { return len(b.values) }

func (b *decimal256Builder) AppendColumn(src Column) {
	c, ok := src.(*Decimal256s)
	if !ok {
		panic(mismatch(b, src))
	}
	b.values = append(b.values, c.Values...)
}

func (b *decimal256Builder) Build() Column {
	return &Decimal256s{Values: b.values, Size: b.size}
}

type booleanBuilder struct {
	bits *BitmapBuilder
}

func (b *booleanBuilder) Rows() int { return b.bits.Len() }

func (b *booleanBuilder) AppendColumn(src Column) {
	c, ok := src.(*Booleans)
	if !ok {
		panic(mismatch(b, src))
	}
	b.bits.AppendBitmap(c.Bits)
}

func (b *booleanBuilder) Build() Column { return &Booleans{Bits: b.bits.Bitmap()} }

type bytesKind uint8

const (
	bytesKindString bytesKind = iota
	bytesKindBinary
	bytesKindVariant
)

// bytesBuilder builds the three offsets+data column kinds.
type bytesBuilder struct {
	kind    bytesKind
	offsets []uint64
	data    []byte
}

func newBytesBuilder(kind bytesKind, capacity int) *bytesBuilder {
	offsets := make([]uint64, 1, capacity+1)
	return &bytesBuilder{kind: kind, offsets: offsets}
}

func (b *bytesBuilder) Rows() int { return len(b.offsets) - 1 }

// pushItem appends one payload.
func (b *bytesBuilder) pushItem(item []byte) {
	b.data = append(b.data, item...)
	b.offsets = append(b.offsets, uint64(len(b.data)))
}

func (b *bytesBuilder) finish() Column { return b.Build() }

func (b *bytesBuilder) AppendColumn(src Column) {
	var sc *bytesColumn
	switch c := src.(type) {
	case *Strings:
		if b.kind != bytesKindString {
			panic(mismatch(b, src))
		}
		sc = &c.bytesColumn
	case *Binaries:
		if b.kind != bytesKindBinary {
			panic(mismatch(b, src))
		}
		sc = &c.bytesColumn
	case *Variants:
		if b.kind != bytesKindVariant {
			panic(mismatch(b, src))
		}
		sc = &c.bytesColumn
	default:
		panic(mismatch(b, src))
	}
	// One bulk copy of the covered payload range, then re-based offsets.
	lo := sc.offsets[0]
	hi := sc.offsets[len(sc.offsets)-1]
	base := uint64(len(b.data)) - lo
	b.data = append(b.data, sc.data[lo:hi]...)
	for _, off := range sc.offsets[1:] {
		b.offsets = append(b.offsets, base+off)
	}
}

func (b *bytesBuilder) Build() Column {
	bc := bytesColumn{offsets: b.offsets, data: b.data}
	switch b.kind {
	case bytesKindString:
		return &Strings{bc}
	case bytesKindBinary:
		return &Binaries{bc}
	default:
		return &Variants{bc}
	}
}

type timestampBuilder struct {
	values []int64
}

func (b *timestampBuilder) Rows() int { return len(b.values) }

func (b *timestampBuilder) AppendColumn(src Column) {
	c, ok := src.(*Timestamps)
	if !ok {
		panic(mismatch(b, src))
	}
	b.values = append(b.values, c.Values...)
}

func (b *timestampBuilder) Build() Column { return &Timestamps{Values: b.values} }

type dateBuilder struct {
	values []int32
}

func (b *dateBuilder) Rows() int { return len(b.values) }

func (b *dateBuilder) AppendColumn(src Column) {
	c, ok := src.(*Dates)
	if !ok {
		panic(mismatch(b, src))
	}
	b.values = append(b.values, c.Values...)
}

func (b *dateBuilder) Build() Column { return &Dates{Values: b.values} }

// arrayBuilder builds array columns: an inner element builder plus the fresh
// offsets array, seeded with a leading zero.
type arrayBuilder struct {
	elems   Builder
	offsets []uint64
}

func newArrayBuilder(elem DataType, capacity int) *arrayBuilder {
	offsets := make([]uint64, 1, capacity+1)
	return &arrayBuilder{elems: NewBuilder(elem, capacity), offsets: offsets}
}

func (b *arrayBuilder) Rows() int { return len(b.offsets) - 1 }

// pushRow appends one row whose sub-sequence is the given inner slice.
func (b *arrayBuilder) pushRow(elem Column) {
	b.elems.AppendColumn(elem)
	b.offsets = append(b.offsets, b.offsets[len(b.offsets)-1]+uint64(elem.Rows()))
}

func (b *arrayBuilder) finish() Column { return b.Build() }

func (b *arrayBuilder) AppendColumn(src Column) {
	c, ok := src.(*Arrays)
	if !ok {
		panic(mismatch(b, src))
	}
	lo := c.Offsets[0]
	hi := c.Offsets[len(c.Offsets)-1]
	b.elems.AppendColumn(c.Elems.Slice(int(lo), int(hi)))
	base := b.offsets[len(b.offsets)-1] - lo
	for _, off := range c.Offsets[1:] {
		b.offsets = append(b.offsets, base+off)
	}
}

func (b *arrayBuilder) Build() Column {
	return &Arrays{Elems: b.elems.Build(), Offsets: b.offsets}
}

// mapBuilder builds map columns with the key and value builders advancing in
// lockstep.
type mapBuilder struct {
	keys    Builder
	values  Builder
	offsets []uint64
}

func newMapBuilder(key, value DataType, capacity int) *mapBuilder {
	offsets := make([]uint64, 1, capacity+1)
	return &mapBuilder{
		keys:    NewBuilder(key, capacity),
		values:  NewBuilder(value, capacity),
		offsets: offsets,
	}
}

func (b *mapBuilder) Rows() int { return len(b.offsets) - 1 }

// pushRow appends one row's entries, advancing the key and value builders in
// lockstep.
func (b *mapBuilder) pushRow(item kvPair) {
	b.keys.AppendColumn(item.keys)
	b.values.AppendColumn(item.values)
	b.offsets = append(b.offsets, b.offsets[len(b.offsets)-1]+uint64(item.keys.Rows()))
}

func (b *mapBuilder) finish() Column { return b.Build() }

func (b *mapBuilder) AppendColumn(src Column) {
	c, ok := src.(*Maps)
	if !ok {
		panic(mismatch(b, src))
	}
	lo := int(c.Offsets[0])
	hi := int(c.Offsets[len(c.Offsets)-1])
	b.keys.AppendColumn(c.Keys.Slice(lo, hi))
	b.values.AppendColumn(c.Values.Slice(lo, hi))
	base := b.offsets[len(b.offsets)-1] - uint64(lo)
	for _, off := range c.Offsets[1:] {
		b.offsets = append(b.offsets, base+off)
	}
}

func (b *mapBuilder) Build() Column {
	return &Maps{Keys: b.keys.Build(), Values: b.values.Build(), Offsets: b.offsets}
}

type nullableBuilder struct {
	inner    Builder
	validity *BitmapBuilder
}

func (b *nullableBuilder) Rows() int { return b.validity.Len() }

func (b *nullableBuilder) AppendColumn(src Column) {
	c, ok := src.(*Nullables)
	if !ok {
		panic(mismatch(b, src))
	}
	b.inner.AppendColumn(c.Inner)
	b.validity.AppendBitmap(c.Validity)
}

func (b *nullableBuilder) Build() Column {
	return &Nullables{Inner: b.inner.Build(), Validity: b.validity.Bitmap()}
}

type tupleBuilder struct {
	fields []Builder
}

func (b *tupleBuilder) Rows() int { return b.fields[0].Rows() }

func (b *tupleBuilder) AppendColumn(src Column) {
	c, ok := src.(*Tuples)
	if !ok || len(c.Fields) != len(b.fields) {
		panic(mismatch(b, src))
	}
	for i, f := range b.fields {
		f.AppendColumn(c.Fields[i])
	}
}

func (b *tupleBuilder) Build() Column {
	fields := make([]Column, len(b.fields))
	for i, f := range b.fields {
		fields[i] = f.Build()
	}
	return &Tuples{Fields: fields}
}
