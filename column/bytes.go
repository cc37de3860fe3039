package column

// bytesColumn is the shared offsets+data layout behind the variable-length
// column kinds. Offsets are absolute positions into data (len = rows+1,
// non-decreasing), so slices can share both arrays without re-basing.
type bytesColumn struct {
	offsets []uint64
	data    []byte
}

func bytesFromSlices(values [][]byte) bytesColumn {
	offsets := make([]uint64, 1, len(values)+1)
	size := 0
	for _, v := range values {
		size += len(v)
	}
	data := make([]byte, 0, size)
	for _, v := range values {
		data = append(data, v...)
		offsets = append(offsets, uint64(len(data)))
	}
	return bytesColumn{offsets: offsets, data: data}
}

func (c *bytesColumn) rows() int { return len(c.offsets) - 1 }

// Bytes returns the payload at row i without copying. Callers must not
// modify the returned slice. Panics if i is out of bounds.
func (c *bytesColumn) Bytes(i int) []byte {
	return c.data[c.offsets[i]:c.offsets[i+1]]
}

// itemUnchecked is Bytes without a logical bounds check on i; used by the
// generic run-filler, where the run list is the caller's contract.
func (c *bytesColumn) itemUnchecked(i int) []byte {
	return c.data[c.offsets[i]:c.offsets[i+1]]
}

func (c *bytesColumn) slice(i, j int) bytesColumn {
	checkRange(i, j, c.rows())
	return bytesColumn{offsets: c.offsets[i : j+1], data: c.data}
}

// Strings is a variable-length UTF-8 string column.
type Strings struct {
	bytesColumn
}

// NewStrings creates a string column from the given values.
func NewStrings(values []string) *Strings {
	offsets := make([]uint64, 1, len(values)+1)
	size := 0
	for _, v := range values {
		size += len(v)
	}
	data := make([]byte, 0, size)
	for _, v := range values {
		data = append(data, v...)
		offsets = append(offsets, uint64(len(data)))
	}
	return &Strings{bytesColumn{offsets: offsets, data: data}}
}

func (c *Strings) Rows() int          { return c.rows() }
func (c *Strings) DataType() DataType { return StringType{} }
func (c *Strings) Slice(i, j int) Column {
	return &Strings{c.slice(i, j)}
}

// Value returns the string at row i. Panics if i is out of bounds.
func (c *Strings) Value(i int) string { return string(c.Bytes(i)) }

func (*Strings) column() {}

// Binaries is a variable-length binary blob column.
type Binaries struct {
	bytesColumn
}

// NewBinaries creates a binary column from the given values. The payloads
// are copied into one contiguous buffer.
func NewBinaries(values [][]byte) *Binaries {
	return &Binaries{bytesFromSlices(values)}
}

func (c *Binaries) Rows() int          { return c.rows() }
func (c *Binaries) DataType() DataType { return BinaryType{} }
func (c *Binaries) Slice(i, j int) Column {
	return &Binaries{c.slice(i, j)}
}

func (*Binaries) column() {}

// Variants is a semi-structured value column. Each row is an opaque encoded
// payload; the kernel moves rows without interpreting them.
type Variants struct {
	bytesColumn
}

// NewVariants creates a variant column from the given encoded payloads.
func NewVariants(values [][]byte) *Variants {
	return &Variants{bytesFromSlices(values)}
}

func (c *Variants) Rows() int          { return c.rows() }
func (c *Variants) DataType() DataType { return VariantType{} }
func (c *Variants) Slice(i, j int) Column {
	return &Variants{c.slice(i, j)}
}

func (*Variants) column() {}
