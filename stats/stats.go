// Package stats provides summary statistics and histograms for integer
// trial outcomes.
package stats

import (
	"math"
	"sort"
)

// Summary describes a sample of trial outcomes.
type Summary struct {
	Count  int     `json:"count"`
	Min    int     `json:"min"`
	Max    int     `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	P90    float64 `json:"p90"`
	P99    float64 `json:"p99"`
}

// Describe computes summary statistics over xs. An empty sample yields a
// zero Summary.
func Describe(xs []int) Summary {
	n := len(xs)
	if n == 0 {
		return Summary{}
	}

	sorted := make([]int, n)
	copy(sorted, xs)
	sort.Ints(sorted)

	sum := 0.0
	for _, x := range sorted {
		sum += float64(x)
	}
	mean := sum / float64(n)

	varAcc := 0.0
	for _, x := range sorted {
		d := float64(x) - mean
		varAcc += d * d
	}

	return Summary{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: percentileSorted(sorted, 0.50),
		Std:    math.Sqrt(varAcc / float64(n)),
		P90:    percentileSorted(sorted, 0.90),
		P99:    percentileSorted(sorted, 0.99),
	}
}

// percentileSorted interpolates the q-th percentile of a sorted sample.
func percentileSorted(sorted []int, q float64) float64 {
	n := len(sorted)
	if n == 1 {
		return float64(sorted[0])
	}

	pos := q * float64(n-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return float64(sorted[lo])
	}
	frac := pos - float64(lo)
	return float64(sorted[lo])*(1-frac) + float64(sorted[hi])*frac
}
