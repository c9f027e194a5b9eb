// SPDX-License-Identifier: MIT
// Package stats summarizes journey-time and stop-count samples produced by
// the all-pairs analyses.
//
// Histograms follow the numpy/matplotlib convention: bins are half-open
// [e_i, e_{i+1}) except the last, which is closed. NaN and ±Inf samples are
// skipped everywhere, so unreachable pairs never distort a distribution.
//
//	Summarize(xs)                 count, min, max, mean, median, stddev
//	Linspace(lo, hi, n)           n evenly spaced values, both ends included
//	SharedEdges(bins, sets...)    one set of bin edges covering every dataset
//	IntegerEdges(max)             0, 1, …, max+1 for stop counts
//	NewHistogram(xs, edges)       counts per bin
//	(*Histogram).Density()        counts normalized to unit area
//	(*Histogram).Render(w, width) horizontal ASCII bars
package stats
