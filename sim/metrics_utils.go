// sim/metrics_utils.go
package sim

import (
	"slices"
	"sort"

	"gonum.org/v1/gonum/stat"
)

type IntOrFloat64 interface {
	int | int64 | float64
}

// toFloat64s converts numeric data to a fresh float64 slice.
func toFloat64s[T IntOrFloat64](data []T) []float64 {
	out := make([]float64, len(data))
	for i, v := range data {
		out[i] = float64(v)
	}
	return out
}

// CalculateMean is a util function that calculates the mean of a data list.
// Returns 0 for empty input.
func CalculateMean[T IntOrFloat64](numbers []T) float64 {
	if len(numbers) == 0 {
		return 0.0
	}
	return stat.Mean(toFloat64s(numbers), nil)
}

// CalculateMedian returns the middle of the sorted values, averaging the two
// middle values for even counts. The input is not modified. Returns 0 for empty input.
func CalculateMedian[T IntOrFloat64](data []T) float64 {
	n := len(data)
	if n == 0 {
		return 0.0
	}
	sorted := toFloat64s(data)
	sort.Float64s(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// CalculateMinMax returns the extremes of data in its own type, so large
// integers keep full precision. Returns zeros for empty input.
func CalculateMinMax[T IntOrFloat64](data []T) (lo, hi T) {
	if len(data) == 0 {
		return 0, 0
	}
	return slices.Min(data), slices.Max(data)
}
