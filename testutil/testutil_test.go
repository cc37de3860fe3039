package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomRuns(t *testing.T) {
	rng := NewRNG(4711)

	for trial := 0; trial < 100; trial++ {
		list, rows := rng.RandomRuns(64, 16, 40)

		require.NotEmpty(t, list)
		require.LessOrEqual(t, len(list), 16)

		total := 0
		for _, r := range list {
			assert.Less(t, r.Index, uint32(64))
			assert.GreaterOrEqual(t, r.Count, uint32(1))
			assert.LessOrEqual(t, r.Count, uint32(40))
			total += int(r.Count)
		}
		assert.Equal(t, rows, total)

		assert.NoError(t, list.Validate(64, rows))
	}
}

func TestRandomData(t *testing.T) {
	rng := NewRNG(4711)

	ints := rng.RandomInt64s(32)
	assert.Len(t, ints, 32)

	bools := rng.RandomBools(32)
	assert.Len(t, bools, 32)

	strs := rng.RandomStrings(32, 12)
	require.Len(t, strs, 32)
	for _, s := range strs {
		assert.LessOrEqual(t, len(s), 12)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	first, firstRows := rng.RandomRuns(64, 8, 10)

	rng.Reset()
	second, secondRows := rng.RandomRuns(64, 8, 10)

	assert.Equal(t, first, second)
	assert.Equal(t, firstRows, secondRows)
	assert.Equal(t, int64(4711), rng.Seed())
}
