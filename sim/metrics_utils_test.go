package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMedian(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMedian([]int64{}))
	assert.Equal(t, 5.0, CalculateMedian([]int64{5}))
	assert.Equal(t, 3.0, CalculateMedian([]int64{9, 1, 3}))
	assert.Equal(t, 2.5, CalculateMedian([]int{4, 1, 3, 2}))

	data := []float64{3, 1, 2}
	CalculateMedian(data)
	assert.Equal(t, []float64{3, 1, 2}, data, "input must not be sorted in place")
}

func TestCalculateMean(t *testing.T) {
	assert.Equal(t, 0.0, CalculateMean([]int64{}))
	assert.Equal(t, 2.0, CalculateMean([]int{1, 2, 3}))
	assert.Equal(t, 4.5, CalculateMean([]int64{2, 4, 4, 8}))
}

func TestCalculateMinMax(t *testing.T) {
	lo, hi := CalculateMinMax([]int64{7, 3, 11, 5})
	assert.Equal(t, int64(3), lo)
	assert.Equal(t, int64(11), hi)

	lo, hi = CalculateMinMax([]int64{})
	assert.Equal(t, int64(0), lo)
	assert.Equal(t, int64(0), hi)
}

func TestCalculateMinMax_LargeIntegers_KeepPrecision(t *testing.T) {
	// GIVEN values above 2^53 that float64 cannot represent exactly
	big := int64(1)<<53 + 1
	data := []int64{big + 2, big}

	// WHEN the extremes are computed
	lo, hi := CalculateMinMax(data)

	// THEN they are returned unchanged
	assert.Equal(t, big, lo)
	assert.Equal(t, big+2, hi)
}
