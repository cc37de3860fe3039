package column

import "math/bits"

// Bitmap is an immutable packed bitmap: one bit per row, LSB-first within
// each byte. A logical offset lets slices share the backing bytes without
// re-packing at sub-byte boundaries.
type Bitmap struct {
	data   []byte
	offset int
	length int
}

// NewBitmap packs the given bools into a bitmap.
func NewBitmap(values []bool) Bitmap {
	b := NewBitmapBuilder(len(values))
	for _, v := range values {
		b.Append(v)
	}
	return b.Bitmap()
}

// Len returns the number of bits.
func (m Bitmap) Len() int { return m.length }

// Get returns the bit at position i. Panics if i is out of bounds.
func (m Bitmap) Get(i int) bool {
	if i < 0 || i >= m.length {
		panic("column: bitmap index out of bounds")
	}
	return m.GetUnsafe(i)
}

// GetUnsafe returns the bit at position i without checking it against the
// bitmap length. The caller guarantees 0 <= i < Len().
func (m Bitmap) GetUnsafe(i int) bool {
	j := m.offset + i
	return m.data[j>>3]&(1<<(j&7)) != 0
}

// Slice returns the [i, j) bit window sharing the backing bytes.
func (m Bitmap) Slice(i, j int) Bitmap {
	checkRange(i, j, m.length)
	return Bitmap{data: m.data, offset: m.offset + i, length: j - i}
}

// Count returns the number of set bits.
func (m Bitmap) Count() int {
	count := 0
	i := 0
	// Head bits up to the first byte boundary, then whole bytes, then tail.
	for ; i < m.length && (m.offset+i)&7 != 0; i++ {
		if m.GetUnsafe(i) {
			count++
		}
	}
	for ; i+8 <= m.length; i += 8 {
		count += bits.OnesCount8(m.data[(m.offset+i)>>3])
	}
	for ; i < m.length; i++ {
		if m.GetUnsafe(i) {
			count++
		}
	}
	return count
}

// Bools unpacks the bitmap into a bool slice. Intended for tests and
// debugging, not hot paths.
func (m Bitmap) Bools() []bool {
	out := make([]bool, m.length)
	for i := range out {
		out[i] = m.GetUnsafe(i)
	}
	return out
}

// BitmapBuilder is a growable append-only bitmap builder.
type BitmapBuilder struct {
	data   []byte
	length int
}

// NewBitmapBuilder creates a builder with capacity for the given number of
// bits.
func NewBitmapBuilder(capacity int) *BitmapBuilder {
	return &BitmapBuilder{data: make([]byte, 0, (capacity+7)/8)}
}

// Append appends one bit.
func (b *BitmapBuilder) Append(v bool) {
	if b.length&7 == 0 {
		b.data = append(b.data, 0)
	}
	if v {
		b.data[len(b.data)-1] |= 1 << (b.length & 7)
	}
	b.length++
}

// AppendBitmap appends every bit of m.
func (b *BitmapBuilder) AppendBitmap(m Bitmap) {
	for i := 0; i < m.length; i++ {
		b.Append(m.GetUnsafe(i))
	}
}

// Len returns the number of bits appended so far.
func (b *BitmapBuilder) Len() int { return b.length }

// Bitmap finalizes the builder. The builder must not be used afterwards.
func (b *BitmapBuilder) Bitmap() Bitmap {
	return Bitmap{data: b.data, length: b.length}
}

// Booleans is a bit-packed boolean column.
type Booleans struct {
	Bits Bitmap
}

// NewBooleans creates a boolean column from the given values.
func NewBooleans(values []bool) *Booleans {
	return &Booleans{Bits: NewBitmap(values)}
}

func (c *Booleans) Rows() int          { return c.Bits.Len() }
func (c *Booleans) DataType() DataType { return BooleanType{} }
func (c *Booleans) Slice(i, j int) Column {
	return &Booleans{Bits: c.Bits.Slice(i, j)}
}

// Value returns the bit at row i. Panics if i is out of bounds.
func (c *Booleans) Value(i int) bool { return c.Bits.Get(i) }

func (*Booleans) column() {}
