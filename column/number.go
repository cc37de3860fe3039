package column

import "fmt"

// Number is the closed set of fixed-width numeric element types.
type Number interface {
	int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64
}

// Numbers is a fixed-width numeric column backed by a contiguous buffer.
type Numbers[T Number] struct {
	Values []T
}

// NewNumbers creates a numeric column over the given values. The slice is
// retained, not copied.
func NewNumbers[T Number](values []T) *Numbers[T] {
	return &Numbers[T]{Values: values}
}

func (c *Numbers[T]) Rows() int { return len(c.Values) }

func (c *Numbers[T]) DataType() DataType { return NumberType{Kind: numberKindOf[T]()} }

func (c *Numbers[T]) Slice(i, j int) Column {
	checkRange(i, j, len(c.Values))
	return &Numbers[T]{Values: c.Values[i:j]}
}

// Value returns the element at row i. Panics if i is out of bounds.
func (c *Numbers[T]) Value(i int) T { return c.Values[i] }

func (*Numbers[T]) column() {}

func numberKindOf[T Number]() NumberKind {
	var zero T
	switch any(zero).(type) {
	case int8:
		return Int8
	case int16:
		return Int16
	case int32:
		return Int32
	case int64:
		return Int64
	case uint8:
		return UInt8
	case uint16:
		return UInt16
	case uint32:
		return UInt32
	case uint64:
		return UInt64
	case float32:
		return Float32
	case float64:
		return Float64
	default:
		panic(fmt.Sprintf("column: unsupported number element %T", zero))
	}
}
