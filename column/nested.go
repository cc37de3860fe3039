package column

// Arrays is a nested array column: one contiguous inner column plus
// monotonic offsets delimiting each row's sub-sequence. Offsets are absolute
// positions into Elems (len = rows+1), so slices share both structures.
type Arrays struct {
	Elems   Column
	Offsets []uint64
}

// NewArrays creates an array column. Offsets must start at a valid position,
// be non-decreasing and have length rows+1; the final offset must not exceed
// the inner column's row count.
func NewArrays(elems Column, offsets []uint64) *Arrays {
	return &Arrays{Elems: elems, Offsets: offsets}
}

func (c *Arrays) Rows() int          { return len(c.Offsets) - 1 }
func (c *Arrays) DataType() DataType { return ArrayType{Elem: c.Elems.DataType()} }

func (c *Arrays) Slice(i, j int) Column {
	checkRange(i, j, c.Rows())
	return &Arrays{Elems: c.Elems, Offsets: c.Offsets[i : j+1]}
}

// Row returns row i's sub-sequence as a slice of the inner column. Panics if
// i is out of bounds.
func (c *Arrays) Row(i int) Column {
	return c.Elems.Slice(int(c.Offsets[i]), int(c.Offsets[i+1]))
}

// rowUnchecked is Row without the logical bounds check on i; slice-range
// checks on the inner column still apply.
func (c *Arrays) rowUnchecked(i int) Column {
	return c.Elems.Slice(int(c.Offsets[i]), int(c.Offsets[i+1]))
}

func (*Arrays) column() {}

// Maps is a nested map column: lockstep key and value columns plus monotonic
// offsets delimiting each row's entries, the map analogue of Arrays.
type Maps struct {
	Keys    Column
	Values  Column
	Offsets []uint64
}

// NewMaps creates a map column. Keys and Values must share a row count;
// offsets follow the same rules as NewArrays.
func NewMaps(keys, values Column, offsets []uint64) *Maps {
	return &Maps{Keys: keys, Values: values, Offsets: offsets}
}

func (c *Maps) Rows() int { return len(c.Offsets) - 1 }

func (c *Maps) DataType() DataType {
	return MapType{Key: c.Keys.DataType(), Value: c.Values.DataType()}
}

func (c *Maps) Slice(i, j int) Column {
	checkRange(i, j, c.Rows())
	return &Maps{Keys: c.Keys, Values: c.Values, Offsets: c.Offsets[i : j+1]}
}

// Row returns row i's entries as lockstep slices of the key and value
// columns. Panics if i is out of bounds.
func (c *Maps) Row(i int) (keys, values Column) {
	lo, hi := int(c.Offsets[i]), int(c.Offsets[i+1])
	return c.Keys.Slice(lo, hi), c.Values.Slice(lo, hi)
}

func (c *Maps) rowUnchecked(i int) kvPair {
	lo, hi := int(c.Offsets[i]), int(c.Offsets[i+1])
	return kvPair{keys: c.Keys.Slice(lo, hi), values: c.Values.Slice(lo, hi)}
}

func (*Maps) column() {}
