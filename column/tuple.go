package column

import "fmt"

// Tuples is a fixed-arity struct-of-columns; all field columns share the
// tuple's row count. Arity must be at least one.
type Tuples struct {
	Fields []Column
}

// NewTuples creates a tuple column. Panics if no fields are given or the
// fields disagree on row count.
func NewTuples(fields []Column) *Tuples {
	if len(fields) == 0 {
		panic("column: tuple needs at least one field")
	}
	rows := fields[0].Rows()
	for i, f := range fields[1:] {
		if f.Rows() != rows {
			panic(fmt.Sprintf("column: tuple field %d has %d rows, field 0 has %d",
				i+1, f.Rows(), rows))
		}
	}
	return &Tuples{Fields: fields}
}

func (c *Tuples) Rows() int { return c.Fields[0].Rows() }

func (c *Tuples) DataType() DataType {
	fields := make([]DataType, len(c.Fields))
	for i, f := range c.Fields {
		fields[i] = f.DataType()
	}
	return TupleType{Fields: fields}
}

func (c *Tuples) Slice(i, j int) Column {
	fields := make([]Column, len(c.Fields))
	for k, f := range c.Fields {
		fields[k] = f.Slice(i, j)
	}
	return &Tuples{Fields: fields}
}

func (*Tuples) column() {}
