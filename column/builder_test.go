package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBuilderBuildsTypedEmptyColumns(t *testing.T) {
	types := []DataType{
		NullType{},
		EmptyArrayType{},
		EmptyMapType{},
		NumberType{Kind: Int8},
		NumberType{Kind: UInt64},
		NumberType{Kind: Float32},
		Decimal128Type{Size: DecimalSize{Precision: 10, Scale: 2}},
		Decimal256Type{Size: DecimalSize{Precision: 40, Scale: 5}},
		BooleanType{},
		StringType{},
		BinaryType{},
		VariantType{},
		TimestampType{},
		DateType{},
		ArrayType{Elem: StringType{}},
		MapType{Key: StringType{}, Value: NumberType{Kind: Int64}},
		NullableType{Inner: NumberType{Kind: Int32}},
		TupleType{Fields: []DataType{BooleanType{}, StringType{}}},
	}
	for _, dt := range types {
		t.Run(dt.String(), func(t *testing.T) {
			b := NewBuilder(dt, 8)
			require.Equal(t, 0, b.Rows())
			c := b.Build()
			assert.Equal(t, 0, c.Rows())
			assert.Equal(t, dt, c.DataType())
		})
	}
}

func TestBuilderAppendColumn(t *testing.T) {
	t.Run("numbers", func(t *testing.T) {
		b := NewBuilder(NumberType{Kind: Int64}, 0)
		b.AppendColumn(NewNumbers([]int64{1, 2}))
		b.AppendColumn(NewNumbers([]int64{3}))
		got := b.Build()
		assert.True(t, Equal(NewNumbers([]int64{1, 2, 3}), got))
	})

	t.Run("strings re-base offsets", func(t *testing.T) {
		b := NewBuilder(StringType{}, 0)
		b.AppendColumn(NewStrings([]string{"ab", "c"}))
		b.AppendColumn(NewStrings([]string{"xyz", ""}).Slice(1, 2))
		b.AppendColumn(NewStrings([]string{"de"}))
		got := b.Build()
		assert.True(t, Equal(NewStrings([]string{"ab", "c", "", "de"}), got))
	})

	t.Run("strings from shared-payload slice", func(t *testing.T) {
		src := NewStrings([]string{"head", "mid", "tail"})
		b := NewBuilder(StringType{}, 0)
		b.AppendColumn(src.Slice(1, 3))
		got := b.Build()
		assert.True(t, Equal(NewStrings([]string{"mid", "tail"}), got))
	})

	t.Run("booleans", func(t *testing.T) {
		b := NewBuilder(BooleanType{}, 0)
		b.AppendColumn(NewBooleans([]bool{true, false}))
		b.AppendColumn(NewBooleans([]bool{true}))
		assert.True(t, Equal(NewBooleans([]bool{true, false, true}), b.Build()))
	})

	t.Run("arrays", func(t *testing.T) {
		b := NewBuilder(ArrayType{Elem: NumberType{Kind: Int64}}, 0)
		b.AppendColumn(NewArrays(NewNumbers([]int64{1, 2, 3}), []uint64{0, 2, 3}))
		b.AppendColumn(NewArrays(NewNumbers([]int64{4}), []uint64{0, 0, 1}))
		got := b.Build().(*Arrays)
		require.Equal(t, 4, got.Rows())
		assert.Equal(t, []uint64{0, 2, 3, 3, 4}, got.Offsets)
		assert.Equal(t, []int64{1, 2, 3, 4}, got.Elems.(*Numbers[int64]).Values)
	})

	t.Run("array slice with non-zero base offset", func(t *testing.T) {
		src := NewArrays(NewNumbers([]int64{1, 2, 3, 4, 5}), []uint64{0, 2, 4, 5})
		b := NewBuilder(ArrayType{Elem: NumberType{Kind: Int64}}, 0)
		b.AppendColumn(src.Slice(1, 3))
		got := b.Build().(*Arrays)
		require.Equal(t, 2, got.Rows())
		assert.Equal(t, []uint64{0, 2, 3}, got.Offsets)
		assert.Equal(t, []int64{3, 4, 5}, got.Elems.(*Numbers[int64]).Values)
	})

	t.Run("maps keep keys and values in lockstep", func(t *testing.T) {
		b := NewBuilder(MapType{Key: StringType{}, Value: NumberType{Kind: Int64}}, 0)
		b.AppendColumn(NewMaps(
			NewStrings([]string{"a", "b"}),
			NewNumbers([]int64{1, 2}),
			[]uint64{0, 2},
		))
		got := b.Build().(*Maps)
		require.Equal(t, 1, got.Rows())
		keys, values := got.Row(0)
		assert.Equal(t, 2, keys.Rows())
		assert.Equal(t, 2, values.Rows())
	})

	t.Run("nullable", func(t *testing.T) {
		b := NewBuilder(NullableType{Inner: NumberType{Kind: Int64}}, 0)
		b.AppendColumn(NewNullables(NewNumbers([]int64{1}), NewBitmap([]bool{false})))
		b.AppendColumn(NewNullables(NewNumbers([]int64{2, 3}), NewBitmap([]bool{true, false})))
		got := b.Build().(*Nullables)
		require.Equal(t, 3, got.Rows())
		assert.Equal(t, []bool{false, true, false}, got.Validity.Bools())
	})

	t.Run("tuple", func(t *testing.T) {
		b := NewBuilder(TupleType{Fields: []DataType{NumberType{Kind: Int64}, StringType{}}}, 0)
		b.AppendColumn(NewTuples([]Column{
			NewNumbers([]int64{1, 2}),
			NewStrings([]string{"x", "y"}),
		}))
		got := b.Build().(*Tuples)
		require.Equal(t, 2, got.Rows())
		assert.Equal(t, "y", got.Fields[1].(*Strings).Value(1))
	})

	t.Run("placeholders count rows", func(t *testing.T) {
		b := NewBuilder(NullType{}, 0)
		b.AppendColumn(&Null{Length: 3})
		b.AppendColumn(&Null{Length: 2})
		assert.Equal(t, 5, b.Build().Rows())
	})
}

func TestBuilderKindMismatchPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder(NumberType{Kind: Int64}, 0).AppendColumn(NewNumbers([]int32{1}))
	})
	assert.Panics(t, func() {
		NewBuilder(StringType{}, 0).AppendColumn(NewBinaries([][]byte{{1}}))
	})
	assert.Panics(t, func() {
		NewBuilder(NullType{}, 0).AppendColumn(&EmptyMap{Length: 1})
	})
	assert.Panics(t, func() {
		NewBuilder(TupleType{Fields: []DataType{StringType{}}}, 0).
			AppendColumn(NewTuples([]Column{NewNumbers([]int64{1}), NewNumbers([]int64{1})}))
	})
}

func TestNewBuilderZeroFieldTuplePanics(t *testing.T) {
	assert.Panics(t, func() { NewBuilder(TupleType{}, 0) })
	assert.Panics(t, func() { NewBuilder(TupleType{Fields: []DataType{}}, 0) })
}
