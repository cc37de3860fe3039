package column

import "fmt"

// Nullables wraps any column with a per-row validity bitmap. A set bit means
// the row's value is present; the inner column still holds a (meaningless)
// value at null positions.
type Nullables struct {
	Inner    Column
	Validity Bitmap
}

// NewNullables wraps inner with the given validity bitmap. Panics if the row
// counts differ; mismatched validity is a construction defect.
func NewNullables(inner Column, validity Bitmap) *Nullables {
	if inner.Rows() != validity.Len() {
		panic(fmt.Sprintf("column: nullable inner has %d rows, validity has %d bits",
			inner.Rows(), validity.Len()))
	}
	return &Nullables{Inner: inner, Validity: validity}
}

func (c *Nullables) Rows() int          { return c.Validity.Len() }
func (c *Nullables) DataType() DataType { return NullableType{Inner: c.Inner.DataType()} }

func (c *Nullables) Slice(i, j int) Column {
	return &Nullables{Inner: c.Inner.Slice(i, j), Validity: c.Validity.Slice(i, j)}
}

// Valid reports whether row i holds a value. Panics if i is out of bounds.
func (c *Nullables) Valid(i int) bool { return c.Validity.Get(i) }

func (*Nullables) column() {}
