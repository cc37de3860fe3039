package column

// Decimal128 is a 128-bit two's-complement decimal payload. The kernel treats
// it as an opaque fixed-width element; arithmetic and rendering live with the
// expression layer.
type Decimal128 struct {
	Lo uint64
	Hi int64
}

// Decimal256 is a 256-bit two's-complement decimal payload, stored as four
// little-endian 64-bit words with the sign in the top word.
type Decimal256 struct {
	Words [4]uint64
}

// Decimal128s is a fixed-width 128-bit decimal column.
type Decimal128s struct {
	Values []Decimal128
	Size   DecimalSize
}

// Decimal256s is a fixed-width 256-bit decimal column.
type Decimal256s struct {
	Values []Decimal256
	Size   DecimalSize
}

func (c *Decimal128s) Rows() int          { return len(c.Values) }
func (c *Decimal128s) DataType() DataType { return Decimal128Type{Size: c.Size} }
func (c *Decimal128s) Slice(i, j int) Column {
	checkRange(i, j, len(c.Values))
	return &Decimal128s{Values: c.Values[i:j], Size: c.Size}
}

func (c *Decimal256s) Rows() int          { return len(c.Values) }
func (c *Decimal256s) DataType() DataType { return Decimal256Type{Size: c.Size} }
func (c *Decimal256s) Slice(i, j int) Column {
	checkRange(i, j, len(c.Values))
	return &Decimal256s{Values: c.Values[i:j], Size: c.Size}
}

func (*Decimal128s) column() {}
func (*Decimal256s) column() {}
