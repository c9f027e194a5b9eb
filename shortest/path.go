// SPDX-License-Identifier: MIT

package shortest

import (
	"fmt"
	"slices"
)

// Reconstruct walks target → Prev[target] → … until it reaches source, then
// returns the sequence in source→target order.
//
// Outcomes:
//   - source == target: []int{source}.
//   - A None predecessor before reaching source: nil, nil ("no path").
//   - More than len(prev) steps: ErrPredecessorCycle (corrupted table).
//   - source or target outside [0, len(prev)): ErrVertexOutOfRange.
//
// Complexity: O(L) where L is the path length.
func Reconstruct(prev []int, source, target int) ([]int, error) {
	n := len(prev)
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: source %d", ErrVertexOutOfRange, source)
	}
	if target < 0 || target >= n {
		return nil, fmt.Errorf("%w: target %d", ErrVertexOutOfRange, target)
	}
	if source == target {
		return []int{source}, nil
	}

	path := make([]int, 0, 8)
	cur := target
	for steps := 0; cur != source; steps++ {
		if steps >= n {
			return nil, fmt.Errorf("%w: from %d towards %d", ErrPredecessorCycle, target, source)
		}
		path = append(path, cur)
		cur = prev[cur]
		if cur == None {
			return nil, nil
		}
		if cur < 0 || cur >= n {
			return nil, fmt.Errorf("%w: predecessor %d", ErrVertexOutOfRange, cur)
		}
	}
	path = append(path, source)
	slices.Reverse(path)

	return path, nil
}
