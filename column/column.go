package column

import "fmt"

// Column is an immutable, typed, columnar sequence of values in one of a
// closed set of physical representations. Implementations live in this
// package only; the take kernel dispatches on the concrete type.
//
// Columns are value-semantic: kernels read them by reference and produce
// brand-new columns, never mutating an input. Slices share backing storage
// with their parent.
type Column interface {
	// Rows returns the row count, derived from the payload (buffer length,
	// bitmap length, or offsets length minus one).
	Rows() int

	// DataType returns the logical type.
	DataType() DataType

	// Slice returns the [i, j) row window as a new column sharing storage
	// where the layout allows. Panics if the range is out of bounds.
	Slice(i, j int) Column

	column()
}

// Null is the zero-width placeholder column whose rows are all null.
type Null struct {
	Length int
}

// EmptyArray is the zero-width placeholder for arrays of a not-yet-known
// element type.
type EmptyArray struct {
	Length int
}

// EmptyMap is the zero-width placeholder for maps of not-yet-known key and
// value types.
type EmptyMap struct {
	Length int
}

func (c *Null) Rows() int          { return c.Length }
func (c *Null) DataType() DataType { return NullType{} }
func (c *Null) Slice(i, j int) Column {
	checkRange(i, j, c.Length)
	return &Null{Length: j - i}
}

func (c *EmptyArray) Rows() int          { return c.Length }
func (c *EmptyArray) DataType() DataType { return EmptyArrayType{} }
func (c *EmptyArray) Slice(i, j int) Column {
	checkRange(i, j, c.Length)
	return &EmptyArray{Length: j - i}
}

func (c *EmptyMap) Rows() int          { return c.Length }
func (c *EmptyMap) DataType() DataType { return EmptyMapType{} }
func (c *EmptyMap) Slice(i, j int) Column {
	checkRange(i, j, c.Length)
	return &EmptyMap{Length: j - i}
}

func (*Null) column()       {}
func (*EmptyArray) column() {}
func (*EmptyMap) column()   {}

// checkRange panics when [i, j) is not a valid window over rows. Slicing is
// a structural operation, so a bad range is a defect, not a runtime error.
func checkRange(i, j, rows int) {
	if i < 0 || j < i || j > rows {
		panic(fmt.Sprintf("column: slice range [%d:%d] out of bounds for %d rows", i, j, rows))
	}
}
