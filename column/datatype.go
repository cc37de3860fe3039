package column

import (
	"fmt"
	"strings"
)

// DataType is the logical type of a column or scalar. It mirrors the closed
// set of physical representations, so schemas survive zero-row slices and
// builders can be allocated for any type without an exemplar column.
type DataType interface {
	fmt.Stringer
	dataType()
}

// NumberKind identifies one of the ten fixed-width numeric representations.
type NumberKind uint8

const (
	Int8 NumberKind = iota
	Int16
	Int32
	Int64
	UInt8
	UInt16
	UInt32
	UInt64
	Float32
	Float64
)

func (k NumberKind) String() string {
	switch k {
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case UInt8:
		return "UInt8"
	case UInt16:
		return "UInt16"
	case UInt32:
		return "UInt32"
	case UInt64:
		return "UInt64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	default:
		return fmt.Sprintf("NumberKind(%d)", uint8(k))
	}
}

// DecimalSize carries the precision and scale of a decimal type.
type DecimalSize struct {
	Precision uint8
	Scale     uint8
}

// NullType is the type of the all-null placeholder column.
type NullType struct{}

// EmptyArrayType is the type of the element-less array placeholder column.
type EmptyArrayType struct{}

// EmptyMapType is the type of the entry-less map placeholder column.
type EmptyMapType struct{}

// NumberType is the type of a fixed-width numeric column.
type NumberType struct {
	Kind NumberKind
}

// Decimal128Type is the type of a 128-bit decimal column.
type Decimal128Type struct {
	Size DecimalSize
}

// Decimal256Type is the type of a 256-bit decimal column.
type Decimal256Type struct {
	Size DecimalSize
}

// BooleanType is the type of a bit-packed boolean column.
type BooleanType struct{}

// StringType is the type of a variable-length UTF-8 string column.
type StringType struct{}

// BinaryType is the type of a variable-length binary blob column.
type BinaryType struct{}

// VariantType is the type of a semi-structured value column whose rows are
// opaque encoded payloads.
type VariantType struct{}

// TimestampType is the type of a microsecond-precision timestamp column.
type TimestampType struct{}

// DateType is the type of a day-precision date column.
type DateType struct{}

// ArrayType is the type of a nested array column.
type ArrayType struct {
	Elem DataType
}

// MapType is the type of a nested map column.
type MapType struct {
	Key   DataType
	Value DataType
}

// NullableType wraps any type with per-row validity.
type NullableType struct {
	Inner DataType
}

// TupleType is the type of a fixed-arity struct-of-columns.
type TupleType struct {
	Fields []DataType
}

func (NullType) dataType()       {}
func (EmptyArrayType) dataType() {}
func (EmptyMapType) dataType()   {}
func (NumberType) dataType()     {}
func (Decimal128Type) dataType() {}
func (Decimal256Type) dataType() {}
func (BooleanType) dataType()    {}
func (StringType) dataType()     {}
func (BinaryType) dataType()     {}
func (VariantType) dataType()    {}
func (TimestampType) dataType()  {}
func (DateType) dataType()       {}
func (ArrayType) dataType()      {}
func (MapType) dataType()        {}
func (NullableType) dataType()   {}
func (TupleType) dataType()      {}

func (NullType) String() string       { return "Null" }
func (EmptyArrayType) String() string { return "EmptyArray" }
func (EmptyMapType) String() string   { return "EmptyMap" }

func (t NumberType) String() string { return t.Kind.String() }

func (t Decimal128Type) String() string {
	return fmt.Sprintf("Decimal128(%d,%d)", t.Size.Precision, t.Size.Scale)
}

func (t Decimal256Type) String() string {
	return fmt.Sprintf("Decimal256(%d,%d)", t.Size.Precision, t.Size.Scale)
}

func (BooleanType) String() string   { return "Boolean" }
func (StringType) String() string    { return "String" }
func (BinaryType) String() string    { return "Binary" }
func (VariantType) String() string   { return "Variant" }
func (TimestampType) String() string { return "Timestamp" }
func (DateType) String() string      { return "Date" }

func (t ArrayType) String() string { return fmt.Sprintf("Array(%s)", t.Elem) }

func (t MapType) String() string { return fmt.Sprintf("Map(%s, %s)", t.Key, t.Value) }

func (t NullableType) String() string { return fmt.Sprintf("Nullable(%s)", t.Inner) }

func (t TupleType) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.String()
	}
	return "Tuple(" + strings.Join(parts, ", ") + ")"
}
