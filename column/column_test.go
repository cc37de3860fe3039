package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaceholders(t *testing.T) {
	for _, c := range []Column{&Null{Length: 5}, &EmptyArray{Length: 5}, &EmptyMap{Length: 5}} {
		assert.Equal(t, 5, c.Rows())
		assert.Equal(t, 2, c.Slice(1, 3).Rows())
		assert.Panics(t, func() { c.Slice(2, 6) })
	}
}

func TestNumbers(t *testing.T) {
	c := NewNumbers([]int32{10, 20, 30, 40})
	assert.Equal(t, 4, c.Rows())
	assert.Equal(t, NumberType{Kind: Int32}, c.DataType())
	assert.Equal(t, int32(30), c.Value(2))

	s := c.Slice(1, 3).(*Numbers[int32])
	assert.Equal(t, []int32{20, 30}, s.Values)

	assert.Equal(t, UInt8, NewNumbers([]uint8{1}).DataType().(NumberType).Kind)
	assert.Equal(t, Float64, NewNumbers([]float64{1}).DataType().(NumberType).Kind)
}

func TestStrings(t *testing.T) {
	c := NewStrings([]string{"a", "", "bcd", "ef"})
	assert.Equal(t, 4, c.Rows())
	assert.Equal(t, StringType{}, c.DataType())
	assert.Equal(t, "bcd", c.Value(2))

	s := c.Slice(1, 4).(*Strings)
	require.Equal(t, 3, s.Rows())
	assert.Equal(t, "", s.Value(0))
	assert.Equal(t, "bcd", s.Value(1))
	assert.Equal(t, "ef", s.Value(2))
}

func TestBinariesAndVariants(t *testing.T) {
	bin := NewBinaries([][]byte{{1, 2}, nil, {3}})
	assert.Equal(t, 3, bin.Rows())
	assert.Equal(t, BinaryType{}, bin.DataType())
	assert.Equal(t, []byte{3}, bin.Bytes(2))
	assert.Empty(t, bin.Bytes(1))

	v := NewVariants([][]byte{[]byte(`{"a":1}`), []byte(`2`)})
	assert.Equal(t, 2, v.Rows())
	assert.Equal(t, VariantType{}, v.DataType())
	assert.Equal(t, []byte(`2`), v.Bytes(1))
}

func TestTemporal(t *testing.T) {
	ts := NewTimestamps([]int64{1000, 2000, 3000})
	assert.Equal(t, TimestampType{}, ts.DataType())
	assert.Equal(t, int64(2000), ts.Value(1))
	assert.Equal(t, []int64{2000, 3000}, ts.Slice(1, 3).(*Timestamps).Values)

	d := NewDates([]int32{0, 19000})
	assert.Equal(t, DateType{}, d.DataType())
	assert.Equal(t, int32(19000), d.Value(1))
}

func TestArrays(t *testing.T) {
	// [[1, 2], [], [3, 4, 5]]
	c := NewArrays(NewNumbers([]int64{1, 2, 3, 4, 5}), []uint64{0, 2, 2, 5})
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, "Array(Int64)", c.DataType().String())

	assert.Equal(t, []int64{1, 2}, c.Row(0).(*Numbers[int64]).Values)
	assert.Equal(t, 0, c.Row(1).Rows())
	assert.Equal(t, []int64{3, 4, 5}, c.Row(2).(*Numbers[int64]).Values)

	s := c.Slice(1, 3).(*Arrays)
	require.Equal(t, 2, s.Rows())
	assert.Equal(t, 0, s.Row(0).Rows())
	assert.Equal(t, []int64{3, 4, 5}, s.Row(1).(*Numbers[int64]).Values)
}

func TestMaps(t *testing.T) {
	// [{"a":1, "b":2}, {}, {"c":3}]
	c := NewMaps(
		NewStrings([]string{"a", "b", "c"}),
		NewNumbers([]int64{1, 2, 3}),
		[]uint64{0, 2, 2, 3},
	)
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, "Map(String, Int64)", c.DataType().String())

	keys, values := c.Row(0)
	assert.Equal(t, 2, keys.Rows())
	assert.Equal(t, "b", keys.(*Strings).Value(1))
	assert.Equal(t, []int64{1, 2}, values.(*Numbers[int64]).Values)

	s := c.Slice(2, 3).(*Maps)
	keys, values = s.Row(0)
	assert.Equal(t, "c", keys.(*Strings).Value(0))
	assert.Equal(t, []int64{3}, values.(*Numbers[int64]).Values)
}

func TestNullables(t *testing.T) {
	c := NewNullables(NewNumbers([]int64{1, 2, 3}), NewBitmap([]bool{true, false, true}))
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, "Nullable(Int64)", c.DataType().String())
	assert.True(t, c.Valid(0))
	assert.False(t, c.Valid(1))

	s := c.Slice(1, 3).(*Nullables)
	assert.False(t, s.Valid(0))
	assert.True(t, s.Valid(1))

	assert.Panics(t, func() {
		NewNullables(NewNumbers([]int64{1, 2}), NewBitmap([]bool{true}))
	})
}

func TestTuples(t *testing.T) {
	c := NewTuples([]Column{
		NewNumbers([]int64{1, 2, 3}),
		NewStrings([]string{"x", "y", "z"}),
	})
	assert.Equal(t, 3, c.Rows())
	assert.Equal(t, "Tuple(Int64, String)", c.DataType().String())

	s := c.Slice(0, 2).(*Tuples)
	assert.Equal(t, []int64{1, 2}, s.Fields[0].(*Numbers[int64]).Values)
	assert.Equal(t, "y", s.Fields[1].(*Strings).Value(1))

	assert.Panics(t, func() { NewTuples(nil) })
	assert.Panics(t, func() {
		NewTuples([]Column{NewNumbers([]int64{1}), NewStrings([]string{"x", "y"})})
	})
}

func TestEqual(t *testing.T) {
	t.Run("same contents", func(t *testing.T) {
		a := NewStrings([]string{"a", "bc"})
		b := NewStrings([]string{"a", "bc"})
		assert.True(t, Equal(a, b))
	})

	t.Run("layout differences do not matter", func(t *testing.T) {
		// A slice with re-based offsets equals a freshly built column.
		a := NewStrings([]string{"x", "a", "bc"}).Slice(1, 3)
		b := NewStrings([]string{"a", "bc"})
		assert.True(t, Equal(a, b))

		// A bitmap slice at a sub-byte offset equals a packed one.
		ba := NewBooleans([]bool{true, true, false, true}).Slice(2, 4)
		bb := NewBooleans([]bool{false, true})
		assert.True(t, Equal(ba, bb))
	})

	t.Run("different contents", func(t *testing.T) {
		assert.False(t, Equal(NewNumbers([]int64{1}), NewNumbers([]int64{2})))
		assert.False(t, Equal(NewNumbers([]int64{1}), NewNumbers([]int64{1, 2})))
	})

	t.Run("different kinds", func(t *testing.T) {
		assert.False(t, Equal(NewNumbers([]int64{1}), NewNumbers([]int32{1})))
		assert.False(t, Equal(&Null{Length: 1}, &EmptyArray{Length: 1}))
		assert.False(t, Equal(NewStrings([]string{"1"}), NewBinaries([][]byte{{'1'}})))
	})

	t.Run("nested", func(t *testing.T) {
		a := NewArrays(NewNumbers([]int64{1, 2, 3}), []uint64{0, 1, 3})
		b := NewArrays(NewNumbers([]int64{1, 2, 3}), []uint64{0, 1, 3})
		assert.True(t, Equal(a, b))

		c := NewArrays(NewNumbers([]int64{1, 2, 3}), []uint64{0, 2, 3})
		assert.False(t, Equal(a, c))
	})
}
