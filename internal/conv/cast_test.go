//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUint32ToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := Uint32ToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := Uint32ToInt(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, int(math.MaxUint32), got)
	})
}

func TestUint64ToInt(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := Uint64ToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := Uint64ToInt(math.MaxUint64)
		assert.Error(t, err)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := Uint64ToInt(uint64(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})
}
