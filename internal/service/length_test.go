package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisoners-dilemma/internal/random"
)

type fixedFloat float64

func (f fixedFloat) Float64() float64 { return float64(f) }

func TestUniformLength_Law(t *testing.T) {
	tests := []struct {
		u    float64
		want int
	}{
		{0, 90},
		{0.024, 90},
		{0.125, 92}, // 2.5 rounds to even
		{0.375, 98}, // 7.5 rounds to even
		{0.5, 100},
		{0.99, 110},
	}
	for _, tt := range tests {
		u, err := NewUniformLength(90, 110, fixedFloat(tt.u))
		require.NoError(t, err)
		assert.Equal(t, tt.want, u.Next(), "u=%v", tt.u)
	}
}

func TestUniformLength_Bounds(t *testing.T) {
	u, err := NewUniformLength(90, 110, random.NewSource(1))
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 5000; i++ {
		n := u.Next()
		assert.GreaterOrEqual(t, n, 90)
		assert.LessOrEqual(t, n, 110)
		seen[n] = true
	}
	assert.True(t, seen[90])
	assert.True(t, seen[110])
}

func TestUniformLength_Degenerate(t *testing.T) {
	u, err := NewUniformLength(7, 7, random.NewSource(3))
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.Equal(t, 7, u.Next())
	}
}

func TestNewUniformLength_Invalid(t *testing.T) {
	for _, r := range [][2]int{{0, 10}, {-1, 5}, {10, 9}} {
		_, err := NewUniformLength(r[0], r[1], random.NewSource(1))
		assert.ErrorIs(t, err, ErrInvalidLengthRange, "range %v", r)
	}
}

func TestSequenceLength(t *testing.T) {
	s := NewSequenceLength(3, 5)
	assert.Equal(t, []int{3, 5, 3, 5, 3}, []int{s.Next(), s.Next(), s.Next(), s.Next(), s.Next()})

	assert.Equal(t, 0, NewSequenceLength().Next())
	assert.Equal(t, 12, FixedLength(12).Next())
}
