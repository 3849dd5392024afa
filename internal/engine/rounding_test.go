package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundToSlot_HalfAwayFromZero(t *testing.T) {
	testCases := []struct {
		minutes  float64
		expected int
	}{
		{105, 110}, // exactly halfway rounds up, never to even
		{95, 100},
		{94.9, 90},
		{35, 40},
		{0, 0},
		{4.9, 0},
		{5, 10},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RoundToSlot(tc.minutes), "RoundToSlot(%v)", tc.minutes)
	}
}

func TestRoundToSlot_Idempotent(t *testing.T) {
	for _, slot := range []int{0, 10, 40, 70, 130} {
		assert.Equal(t, slot, RoundToSlot(float64(slot)))
	}
}

func TestRoundToSlot_InvalidInputs(t *testing.T) {
	assert.Equal(t, 0, RoundToSlot(math.NaN()))
	assert.Equal(t, 0, RoundToSlot(-25))
}

func TestRoundUpToSlot(t *testing.T) {
	testCases := []struct {
		minutes  float64
		expected int
	}{
		{101, 110},
		{109.9, 110},
		{100, 100},
		{0.1, 10},
		{0, 0},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, RoundUpToSlot(tc.minutes), "RoundUpToSlot(%v)", tc.minutes)
	}
}

func TestRoundUpToSlot_InvalidInputs(t *testing.T) {
	assert.Equal(t, 0, RoundUpToSlot(math.NaN()))
	assert.Equal(t, 0, RoundUpToSlot(-25))
}
