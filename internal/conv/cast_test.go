//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintptrToInt(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := UintptrToInt(0)
		assert.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := UintptrToInt(uintptr(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintptrToInt(uintptr(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}

func TestUintptrToInt64(t *testing.T) {
	got, err := UintptrToInt64(4096)
	assert.NoError(t, err)
	assert.Equal(t, int64(4096), got)

	_, err = UintptrToInt64(math.MaxUint64)
	assert.Error(t, err)
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, ClampInt(-5))
	assert.Equal(t, 0, ClampInt(0))
	assert.Equal(t, 7, ClampInt(7))
}
