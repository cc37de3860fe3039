package column

// Scalar is a single broadcast value: a batch entry may hold one scalar that
// logically repeats for every row instead of a materialized column. Row
// selection never changes repeated-value semantics, so the take kernel passes
// scalars through untouched.
type Scalar interface {
	scalar()
}

// NullScalar is the null broadcast value.
type NullScalar struct{}

// BoolScalar is a boolean broadcast value.
type BoolScalar struct {
	Value bool
}

// NumberScalar is a fixed-width numeric broadcast value.
type NumberScalar[T Number] struct {
	Value T
}

// Decimal128Scalar is a 128-bit decimal broadcast value.
type Decimal128Scalar struct {
	Value Decimal128
	Size  DecimalSize
}

// Decimal256Scalar is a 256-bit decimal broadcast value.
type Decimal256Scalar struct {
	Value Decimal256
	Size  DecimalSize
}

// StringScalar is a string broadcast value.
type StringScalar struct {
	Value string
}

// BinaryScalar is a binary blob broadcast value.
type BinaryScalar struct {
	Value []byte
}

// VariantScalar is a semi-structured broadcast value holding an opaque
// encoded payload.
type VariantScalar struct {
	Value []byte
}

// TimestampScalar is a microsecond-precision timestamp broadcast value.
type TimestampScalar struct {
	Value int64
}

// DateScalar is a day-precision date broadcast value.
type DateScalar struct {
	Value int32
}

// ArrayScalar is an array broadcast value: one row's sub-sequence held as a
// column.
type ArrayScalar struct {
	Value Column
}

// MapScalar is a map broadcast value: one row's entries held as lockstep key
// and value columns.
type MapScalar struct {
	Keys   Column
	Values Column
}

// TupleScalar is a tuple broadcast value.
type TupleScalar struct {
	Fields []Scalar
}

func (NullScalar) scalar()       {}
func (BoolScalar) scalar()       {}
func (NumberScalar[T]) scalar()  {}
func (Decimal128Scalar) scalar() {}
func (Decimal256Scalar) scalar() {}
func (StringScalar) scalar()     {}
func (BinaryScalar) scalar()     {}
func (VariantScalar) scalar()    {}
func (TimestampScalar) scalar()  {}
func (DateScalar) scalar()       {}
func (ArrayScalar) scalar()      {}
func (MapScalar) scalar()        {}
func (TupleScalar) scalar()      {}
