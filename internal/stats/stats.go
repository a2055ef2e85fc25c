// Package stats provides the statistical primitives shared by every
// aggregation: mean, median, population standard deviation, min/max, and the
// one-decimal rounding convention applied to all derived statistics.
package stats

import (
	"math"
	"sort"
)

// roundScale implements the round-to-one-decimal convention.
const roundScale = 10

// evenSplit is the divisor for the two central elements of an even-length median.
const evenSplit = 2

// Round1 rounds x to one decimal place. Every derived statistic goes through
// this so results stay reproducible across aggregations.
func Round1(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// Mean returns the arithmetic mean of values, or 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// Median returns the middle element of values (ascending), or the mean of the
// two central elements for even counts. Empty input returns 0 by convention.
// The input slice is not modified.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / evenSplit
	if len(sorted)%evenSplit == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / evenSplit
}

// StdDev returns the population standard deviation (divide by N) of values
// around mean. Fewer than two samples yield 0: a single data point has no
// spread, and this avoids division artifacts.
func StdDev(values []float64, mean float64) float64 {
	if len(values) < evenSplit {
		return 0
	}

	var sumSq float64

	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}

	return math.Sqrt(sumSq / float64(len(values)))
}

// Summary is the five-number profile of a sample set. Every field is nil when
// the set is empty, so downstream consumers can render an explicit "no data"
// state instead of a misleading zero.
type Summary struct {
	Mean   *float64 `json:"mean"`
	Median *float64 `json:"median"`
	StdDev *float64 `json:"stdDev"`
	Min    *float64 `json:"min"`
	Max    *float64 `json:"max"`
}

// Empty reports whether the summary was built from an empty sample set.
func (s Summary) Empty() bool {
	return s.Mean == nil
}

// MeanOrZero returns the mean, with nil sorting as 0.
func (s Summary) MeanOrZero() float64 {
	if s.Mean == nil {
		return 0
	}

	return *s.Mean
}

// Summarize computes the rounded five-number profile of values. An empty
// input produces a Summary with all fields nil.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	mean := Mean(values)

	minVal := values[0]
	maxVal := values[0]

	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}

		if v > maxVal {
			maxVal = v
		}
	}

	return Summary{
		Mean:   ptr(Round1(mean)),
		Median: ptr(Round1(Median(values))),
		StdDev: ptr(Round1(StdDev(values, mean))),
		Min:    ptr(Round1(minVal)),
		Max:    ptr(Round1(maxVal)),
	}
}

func ptr(v float64) *float64 {
	return &v
}
