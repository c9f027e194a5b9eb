// SPDX-License-Identifier: MIT

package stats

import (
	"errors"
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sentinel errors for histogram construction.
var (
	// ErrBadBinCount indicates fewer than one bin (or two edges) was requested.
	ErrBadBinCount = errors.New("stats: bin count must be positive")

	// ErrBadEdges indicates edges that are not finite and strictly increasing.
	ErrBadEdges = errors.New("stats: edges must be finite and strictly increasing")

	// ErrNoData indicates no finite sample was supplied where one is required.
	ErrNoData = errors.New("stats: no finite samples")
)

// Histogram counts samples per bin. len(Counts) == len(Edges)-1.
type Histogram struct {
	Edges  []float64
	Counts []int
}

// Linspace returns n evenly spaced values from lo to hi inclusive.
func Linspace(lo, hi float64, n int) ([]float64, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadBinCount, n)
	}
	if n == 1 {
		return []float64{lo}, nil
	}
	out := make([]float64, n)
	floats.Span(out, lo, hi)
	out[n-1] = hi

	return out, nil
}

// SharedEdges returns bins+1 edges spanning the common range of every set,
// so several distributions can be compared bin by bin. A degenerate range
// (all samples equal) is widened to [v-0.5, v+0.5].
func SharedEdges(bins int, sets ...[]float64) ([]float64, error) {
	if bins < 1 {
		return nil, fmt.Errorf("%w: bins=%d", ErrBadBinCount, bins)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, set := range sets {
		for _, x := range Finite(set) {
			lo = math.Min(lo, x)
			hi = math.Max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		return nil, ErrNoData
	}
	if lo == hi {
		lo, hi = lo-0.5, hi+0.5
	}

	return Linspace(lo, hi, bins+1)
}

// IntegerEdges returns 0, 1, …, top+1: one unit bin per stop count 0..top.
func IntegerEdges(top int) []float64 {
	if top < 0 {
		top = 0
	}
	out := make([]float64, top+2)
	for i := range out {
		out[i] = float64(i)
	}

	return out
}

// NewHistogram counts the finite values of xs into the bins defined by
// edges. Values outside [edges[0], edges[last]] are ignored; a value equal
// to the last edge lands in the last bin.
func NewHistogram(xs, edges []float64) (*Histogram, error) {
	if len(edges) < 2 {
		return nil, fmt.Errorf("%w: %d edges", ErrBadBinCount, len(edges))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) || (i > 0 && e <= edges[i-1]) {
			return nil, fmt.Errorf("%w: edge #%d = %g", ErrBadEdges, i, e)
		}
	}

	first, last := edges[0], edges[len(edges)-1]
	inside := make([]float64, 0, len(xs))
	closing := 0
	for _, x := range Finite(xs) {
		switch {
		case x == last:
			closing++
		case x >= first && x < last:
			inside = append(inside, x)
		}
	}
	slices.Sort(inside)

	raw := stat.Histogram(nil, edges, inside, nil)
	h := &Histogram{
		Edges:  slices.Clone(edges),
		Counts: make([]int, len(raw)),
	}
	for i, c := range raw {
		h.Counts[i] = int(c)
	}
	h.Counts[len(h.Counts)-1] += closing

	return h, nil
}

// Total returns the number of counted samples.
func (h *Histogram) Total() int {
	total := 0
	for _, c := range h.Counts {
		total += c
	}

	return total
}

// Density returns counts / (total · binWidth), so the bars integrate to 1.
// All zeros for an empty histogram.
func (h *Histogram) Density() []float64 {
	out := make([]float64, len(h.Counts))
	total := float64(h.Total())
	if total == 0 {
		return out
	}
	for i, c := range h.Counts {
		out[i] = float64(c) / (total * (h.Edges[i+1] - h.Edges[i]))
	}

	return out
}

// Render writes one line per bin: the bin range, a bar scaled so the fullest
// bin is width characters long, and the count.
func (h *Histogram) Render(w io.Writer, width int) error {
	values := make([]float64, len(h.Counts))
	for i, c := range h.Counts {
		values[i] = float64(c)
	}

	return h.render(w, width, values, slices.Max(values), "%.0f")
}

// PeakDensity returns the largest value of Density.
func (h *Histogram) PeakDensity() float64 {
	return slices.Max(h.Density())
}

// RenderDensity is Render over Density values. Bars are scaled so that peak
// is width characters long, letting histograms with different totals share
// one scale; peak <= 0 uses this histogram's own PeakDensity.
func (h *Histogram) RenderDensity(w io.Writer, width int, peak float64) error {
	if peak <= 0 {
		peak = h.PeakDensity()
	}

	return h.render(w, width, h.Density(), peak, "%.4f")
}

func (h *Histogram) render(w io.Writer, width int, values []float64, peak float64, format string) error {
	if width < 1 {
		width = 1
	}
	var bar int
	for i, v := range values {
		bar = 0
		if peak > 0 {
			bar = min(width, int(math.Round(v/peak*float64(width))))
		}
		if _, err := fmt.Fprintf(w, "%8.2f – %8.2f | %-*s "+format+"\n",
			h.Edges[i], h.Edges[i+1], width, strings.Repeat("█", bar), v); err != nil {
			return err
		}
	}

	return nil
}
