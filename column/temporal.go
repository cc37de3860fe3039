package column

// Timestamps is a microsecond-precision timestamp column backed by an int64
// buffer.
type Timestamps struct {
	Values []int64
}

// NewTimestamps creates a timestamp column over the given microsecond values.
func NewTimestamps(values []int64) *Timestamps {
	return &Timestamps{Values: values}
}

func (c *Timestamps) Rows() int          { return len(c.Values) }
func (c *Timestamps) DataType() DataType { return TimestampType{} }
func (c *Timestamps) Slice(i, j int) Column {
	checkRange(i, j, len(c.Values))
	return &Timestamps{Values: c.Values[i:j]}
}

// Value returns the timestamp at row i. Panics if i is out of bounds.
func (c *Timestamps) Value(i int) int64 { return c.Values[i] }

func (*Timestamps) column() {}

// Dates is a day-precision date column backed by an int32 buffer (days since
// the Unix epoch).
type Dates struct {
	Values []int32
}

// NewDates creates a date column over the given day values.
func NewDates(values []int32) *Dates {
	return &Dates{Values: values}
}

func (c *Dates) Rows() int          { return len(c.Values) }
func (c *Dates) DataType() DataType { return DateType{} }
func (c *Dates) Slice(i, j int) Column {
	checkRange(i, j, len(c.Values))
	return &Dates{Values: c.Values[i:j]}
}

// Value returns the date at row i. Panics if i is out of bounds.
func (c *Dates) Value(i int) int32 { return c.Values[i] }

func (*Dates) column() {}
