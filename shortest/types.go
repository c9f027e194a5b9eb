package shortest

import (
	"errors"
	"fmt"
	"math"
)

// None marks an absent predecessor.
const None = -1

// Infinity is the distance of an unreachable vertex.
var Infinity = math.Inf(1)

// Sentinel errors for result queries and path reconstruction.
var (
	// ErrVertexOutOfRange indicates a query referenced an id outside [0, V).
	ErrVertexOutOfRange = errors.New("shortest: vertex out of range")

	// ErrNegativeCycle indicates the result is invalid because a negative
	// cycle is reachable from the source.
	ErrNegativeCycle = errors.New("shortest: negative cycle reachable from source")

	// ErrPredecessorCycle indicates the predecessor table loops without ever
	// reaching the source.
	ErrPredecessorCycle = errors.New("shortest: predecessor table contains a cycle")
)

// Result is the outcome of a single-source solver run. It is produced fresh
// per query and must be treated as immutable once returned.
type Result struct {
	// Source is the vertex the distances are measured from.
	Source int

	// Dist[v] is the shortest distance from Source to v, Infinity if unreachable.
	Dist []float64

	// Prev[v] is the predecessor of v on a shortest path, None if v is the
	// source or unreachable.
	Prev []int

	// Valid is false when a negative cycle is reachable from Source.
	Valid bool

	// Cycle holds one negative cycle as a closed walk (first == last) when
	// Valid is false and the solver could extract it.
	Cycle []int
}

// NewResult returns a Result for n vertices initialized the way every solver
// starts: Dist = +Inf except Dist[source] = 0, Prev = None, Valid = true.
// source must already be validated by the caller.
func NewResult(source, n int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]float64, n),
		Prev:   make([]int, n),
		Valid:  true,
	}
	for i := 0; i < n; i++ {
		r.Dist[i] = Infinity
		r.Prev[i] = None
	}
	r.Dist[source] = 0

	return r
}

// Len returns the number of vertices covered by the result.
func (r *Result) Len() int { return len(r.Dist) }

// Err returns ErrNegativeCycle for invalid results, nil otherwise. Batch
// callers use it to skip or flag a source without aborting.
func (r *Result) Err() error {
	if r.Valid {
		return nil
	}

	return fmt.Errorf("%w: source %d", ErrNegativeCycle, r.Source)
}

// Distance returns Dist[t]; Infinity when t is unreachable.
func (r *Result) Distance(t int) (float64, error) {
	if t < 0 || t >= len(r.Dist) {
		return 0, fmt.Errorf("%w: %d", ErrVertexOutOfRange, t)
	}

	return r.Dist[t], nil
}

// Reachable reports whether t has a finite distance.
func (r *Result) Reachable(t int) bool {
	return t >= 0 && t < len(r.Dist) && !math.IsInf(r.Dist[t], 1)
}

// PathTo reconstructs the path Source→t. A nil path with a nil error means t
// is unreachable.
func (r *Result) PathTo(t int) ([]int, error) {
	if !r.Valid {
		return nil, r.Err()
	}

	return Reconstruct(r.Prev, r.Source, t)
}

// Hops returns the number of edges on the reconstructed path to t.
// ok is false when t is unreachable or the result is invalid.
func (r *Result) Hops(t int) (hops int, ok bool) {
	p, err := r.PathTo(t)
	if err != nil || p == nil {
		return 0, false
	}

	return len(p) - 1, true
}

// Query is the answer to a point-to-point shortest_path(s, t) request.
type Query struct {
	// Path is the vertex sequence from source to target inclusive; nil when
	// the target is unreachable.
	Path []int

	// Distance is the path cost, Infinity when the target is unreachable.
	Distance float64
}

// Found reports whether a path exists.
func (q Query) Found() bool { return q.Path != nil }

// QueryOf extracts the point-to-point answer for target t from r.
func QueryOf(r *Result, t int) (Query, error) {
	d, err := r.Distance(t)
	if err != nil {
		return Query{}, err
	}
	p, err := r.PathTo(t)
	if err != nil {
		return Query{}, err
	}
	if p == nil {
		return Query{Distance: Infinity}, nil
	}

	return Query{Path: p, Distance: d}, nil
}
