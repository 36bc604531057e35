package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisoners-dilemma/internal/domain"
)

func TestRank_TiesKeepLowerSlotFirst(t *testing.T) {
	got, err := Rank([]float64{5.0, 7.0, 7.0, 3.0}, 1)
	require.NoError(t, err)

	assert.Equal(t, []domain.Standing{
		{Slot: 1, Score: 7.0},
		{Slot: 2, Score: 7.0},
		{Slot: 0, Score: 5.0},
		{Slot: 3, Score: 3.0},
	}, got)
}

func TestRank_AveragesOverPasses(t *testing.T) {
	got, err := Rank([]float64{100, 400, 250}, 50)
	require.NoError(t, err)

	assert.Equal(t, []domain.Standing{
		{Slot: 1, Score: 8},
		{Slot: 2, Score: 5},
		{Slot: 0, Score: 2},
	}, got)
}

func TestRank_AllEqual(t *testing.T) {
	got, err := Rank([]float64{4, 4, 4, 4, 4}, 2)
	require.NoError(t, err)

	for i, s := range got {
		assert.Equal(t, i, s.Slot)
	}
}

func TestRank_Empty(t *testing.T) {
	got, err := Rank(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRank_InvalidPasses(t *testing.T) {
	for _, passes := range []int{0, -1} {
		_, err := Rank([]float64{1}, passes)
		assert.ErrorIs(t, err, ErrInvalidPasses)
	}
}
