// SPDX-License-Identifier: MIT
// File: table.go
// Role: Dense all-pairs distance table.
// Determinism:
//   - Rows are stored in source order regardless of which worker filled them.
// Concurrency:
//   - During Compute each worker writes only its own row; afterwards the
//     table is read-only.

package apsp

import (
	"fmt"
	"math"
	"slices"
)

// Table holds dist(s, u) for every ordered pair in a flat row-major buffer.
//
//   - +Inf: u is unreachable from s.
//   - NaN:  every entry of a source whose run found a reachable negative
//     cycle; the source is listed by InvalidSources.
type Table struct {
	n       int
	solver  Solver
	dist    []float64
	invalid []bool
}

func newTable(n int, solver Solver) *Table {
	return &Table{
		n:       n,
		solver:  solver,
		dist:    make([]float64, n*n),
		invalid: make([]bool, n),
	}
}

// row returns the writable backing slice for source s.
func (t *Table) row(s int) []float64 { return t.dist[s*t.n : (s+1)*t.n] }

// markInvalid poisons row s with NaN.
func (t *Table) markInvalid(s int) {
	t.invalid[s] = true
	r := t.row(s)
	for i := range r {
		r[i] = math.NaN()
	}
}

// Len returns the number of vertices V.
func (t *Table) Len() int { return t.n }

// Solver returns the algorithm that produced the table.
func (t *Table) Solver() Solver { return t.solver }

func (t *Table) check(v int) error {
	if v < 0 || v >= t.n {
		return fmt.Errorf("%w: %d", ErrVertexOutOfRange, v)
	}

	return nil
}

// At returns dist(s, u).
func (t *Table) At(s, u int) (float64, error) {
	if err := t.check(s); err != nil {
		return 0, err
	}
	if err := t.check(u); err != nil {
		return 0, err
	}

	return t.dist[s*t.n+u], nil
}

// Row returns a copy of the distances from s.
func (t *Table) Row(s int) ([]float64, error) {
	if err := t.check(s); err != nil {
		return nil, err
	}

	return slices.Clone(t.row(s)), nil
}

// Valid reports whether row s holds exact distances.
func (t *Table) Valid(s int) bool {
	return s >= 0 && s < t.n && !t.invalid[s]
}

// InvalidSources lists, ascending, the sources with a reachable negative cycle.
func (t *Table) InvalidSources() []int {
	var out []int
	for s, bad := range t.invalid {
		if bad {
			out = append(out, s)
		}
	}

	return out
}

// Map returns the table as source → (target → distance). Every target is
// present; unreachable ones map to +Inf. Invalid sources are omitted.
func (t *Table) Map() map[int]map[int]float64 {
	out := make(map[int]map[int]float64, t.n)
	for s := 0; s < t.n; s++ {
		if t.invalid[s] {
			continue
		}
		m := make(map[int]float64, t.n)
		for u, d := range t.row(s) {
			m[u] = d
		}
		out[s] = m
	}

	return out
}

// Finite collects every finite distance of the valid rows in row-major
// order. Unreachable pairs are excluded, never counted as zero. Self pairs
// (always 0) are kept only when includeSelf is true.
func (t *Table) Finite(includeSelf bool) []float64 {
	out := make([]float64, 0, len(t.dist))
	t.each(includeSelf, func(_, _ int, d float64) {
		if !math.IsInf(d, 1) {
			out = append(out, d)
		}
	})

	return out
}

// Unreachable counts the ordered pairs of valid rows with infinite distance.
func (t *Table) Unreachable(includeSelf bool) int {
	count := 0
	t.each(includeSelf, func(_, _ int, d float64) {
		if math.IsInf(d, 1) {
			count++
		}
	})

	return count
}

// each visits every pair of every valid row.
func (t *Table) each(includeSelf bool, fn func(s, u int, d float64)) {
	for s := 0; s < t.n; s++ {
		if t.invalid[s] {
			continue
		}
		for u, d := range t.row(s) {
			if u == s && !includeSelf {
				continue
			}
			fn(s, u, d)
		}
	}
}
