// SPDX-License-Identifier: MIT

package stats

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample of finite values.
type Summary struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	StdDev float64 // sample standard deviation (n-1); 0 for a single value
}

// Summarize computes a Summary over the finite values of xs. An empty (or
// all non-finite) input yields a zero Summary with NaN statistics.
func Summarize(xs []float64) Summary {
	finite := Finite(xs)
	if len(finite) == 0 {
		nan := math.NaN()
		return Summary{Min: nan, Max: nan, Mean: nan, Median: nan, StdDev: nan}
	}
	slices.Sort(finite)

	s := Summary{
		Count:  len(finite),
		Min:    floats.Min(finite),
		Max:    floats.Max(finite),
		Median: median(finite),
	}
	if len(finite) == 1 {
		s.Mean = finite[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)

	return s
}

// Finite returns a copy of xs without NaN and ±Inf.
func Finite(xs []float64) []float64 {
	out := make([]float64, 0, len(xs))
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}

	return out
}

// median of a sorted, non-empty slice; even lengths average the middle pair.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return (sorted[n/2-1] + sorted[n/2]) / 2
}
