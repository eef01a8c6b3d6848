// SPDX-License-Identifier: MIT

package graphgen

import (
	"fmt"
	"math"

	"github.com/katalvlaran/spinglass/matrix"
)

// Method tags used as error context.
const (
	methodComplete     = "Complete"
	methodCycle        = "Cycle"
	methodPath         = "Path"
	methodStar         = "Star"
	methodRandomSparse = "RandomSparse"
)

// Minimum vertex counts per family.
const (
	minCompleteNodes     = 2
	minCycleNodes        = 3
	minPathNodes         = 2
	minStarNodes         = 2
	minRandomSparseNodes = 1
)

// edgeSink writes symmetric weights into a dense matrix, validating each one.
type edgeSink struct {
	method string
	w      *matrix.Dense
	cfg    config
}

// newSink allocates the n×n zero matrix after checking n ≥ min.
func newSink(method string, n, min int, cfg config) (*edgeSink, error) {
	if n < min {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)
	}
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	return &edgeSink{method: method, w: w, cfg: cfg}, nil
}

// add draws one weight and stores it at (i,j) and (j,i).
func (s *edgeSink) add(i, j int) error {
	wt := s.cfg.weightFn(s.cfg.rng)
	if wt < 0 || math.IsNaN(wt) || math.IsInf(wt, 0) {
		return fmt.Errorf("%s: edge (%d,%d) w=%g: %w", s.method, i, j, wt, ErrInvalidWeight)
	}
	if err := s.w.SetSym(i, j, wt); err != nil {
		return fmt.Errorf("%s: edge (%d,%d): %w", s.method, i, j, err)
	}

	return nil
}

// Complete returns the weight matrix of K_n (n ≥ 2).
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*matrix.Dense, error) {
	s, err := newSink(methodComplete, n, minCompleteNodes, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err = s.add(i, j); err != nil {
				return nil, err
			}
		}
	}

	return s.w, nil
}

// Cycle returns the weight matrix of C_n (n ≥ 3): edges i–(i+1) mod n.
// Complexity: O(n²) allocation, O(n) edges.
func Cycle(n int, opts ...Option) (*matrix.Dense, error) {
	s, err := newSink(methodCycle, n, minCycleNodes, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err = s.add(i, (i+1)%n); err != nil {
			return nil, err
		}
	}

	return s.w, nil
}

// Path returns the weight matrix of P_n (n ≥ 2): edges i–(i+1).
// Complexity: O(n²) allocation, O(n) edges.
func Path(n int, opts ...Option) (*matrix.Dense, error) {
	s, err := newSink(methodPath, n, minPathNodes, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	for i := 0; i+1 < n; i++ {
		if err = s.add(i, i+1); err != nil {
			return nil, err
		}
	}

	return s.w, nil
}

// Star returns the weight matrix of a star with hub 0 and n-1 leaves (n ≥ 2).
// Complexity: O(n²) allocation, O(n) edges.
func Star(n int, opts ...Option) (*matrix.Dense, error) {
	s, err := newSink(methodStar, n, minStarNodes, newConfig(opts...))
	if err != nil {
		return nil, err
	}
	for j := 1; j < n; j++ {
		if err = s.add(0, j); err != nil {
			return nil, err
		}
	}

	return s.w, nil
}

// RandomSparse returns an Erdős–Rényi G(n, p) weight matrix: each pair i<j is
// an edge independently with probability p. An RNG is required for
// 0 < p < 1; p ∈ {0, 1} is deterministic.
//
// Errors: ErrTooFewVertices (n < 1), ErrInvalidProbability, ErrNeedRandSource,
// ErrInvalidWeight.
// Complexity: O(n²) Bernoulli trials.
func RandomSparse(n int, p float64, opts ...Option) (*matrix.Dense, error) {
	cfg := newConfig(opts...)
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSparse, n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if !(p >= 0 && p <= 1) {
		return nil, fmt.Errorf("%s: p=%g not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	if cfg.rng == nil && p > 0 && p < 1 {
		return nil, fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
	}
	s, err := newSink(methodRandomSparse, n, minRandomSparseNodes, cfg)
	if err != nil {
		return nil, err
	}

	var include bool
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			switch p {
			case 0:
				include = false
			case 1:
				include = true
			default:
				include = cfg.rng.Float64() < p
			}
			if !include {
				continue
			}
			if err = s.add(i, j); err != nil {
				return nil, err
			}
		}
	}

	return s.w, nil
}
