// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// PairwiseDistances builds the symmetric n×n Euclidean distance matrix of
// points, with a zero diagonal. Points must be non-empty, share one
// dimension d ≥ 1 and hold finite coordinates.
//
// The result feeds max-cut clustering directly: far-apart points get heavy
// edges and the cut prefers to separate them.
//
// Complexity: O(n²·d) time, O(n²) space.
func PairwiseDistances(points [][]float64) (*Dense, error) {
	n := len(points)
	if n == 0 {
		return nil, fmt.Errorf("PairwiseDistances: no points: %w", ErrDimensionMismatch)
	}
	d := len(points[0])
	if d == 0 {
		return nil, fmt.Errorf("PairwiseDistances: zero-dimensional points: %w", ErrDimensionMismatch)
	}

	var (
		i, j, k int
		x       float64
	)
	for i = 0; i < n; i++ {
		if len(points[i]) != d {
			return nil, fmt.Errorf("PairwiseDistances: point %d has dimension %d, want %d: %w",
				i, len(points[i]), d, ErrDimensionMismatch)
		}
		for k = 0; k < d; k++ {
			x = points[i][k]
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return nil, fmt.Errorf("PairwiseDistances: point %d: %w", i, ErrNaNInf)
			}
		}
	}

	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var sum, diff float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			sum = 0
			for k = 0; k < d; k++ {
				diff = points[i][k] - points[j][k]
				sum += diff * diff
			}
			// indices are in range by construction
			_ = out.SetSym(i, j, math.Sqrt(sum))
		}
	}

	return out, nil
}
