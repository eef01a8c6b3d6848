// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"

	"github.com/katalvlaran/spinglass/matrix"
)

// BuildMaxCut converts a symmetric non-negative weight matrix into the
// max-cut Ising model:
//
//	h(i)   = 0                     for every node
//	J(i,j) = w(i,j)                for i<j, w(i,j) ≠ 0
//	Offset = ¼·Σ_{i≠j} w(i,j)      (both orderings)
//
// The diagonal w(i,i) is ignored. Symmetry is checked within opts Tolerance
// (DefaultTolerance unless WithTolerance is given); J takes the upper
// triangle value.
//
// Errors: ErrInvalidInput, additionally matching the matrix sentinel that
// fired (matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaNInf,
// matrix.ErrNegativeWeight, matrix.ErrAsymmetry).
//
// Complexity: O(N²) validation + O(E log E) model assembly.
func BuildMaxCut(w matrix.Matrix, opts ...Option) (*Model, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// Stage 1: structural validation, nothing allocated before it passes.
	if err := matrix.ValidateWeights(w, o.Tolerance); err != nil {
		return nil, fmt.Errorf("BuildMaxCut: %w: %w", ErrInvalidInput, err)
	}

	// Stage 2: collect the upper triangle and the offset.
	var (
		n         = w.Rows()
		i, j      int
		wij, wji  float64
		total     float64
		couplings = make(map[Pair]float64)
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			// At cannot fail: ValidateWeights already read every cell.
			wij, _ = w.At(i, j)
			wji, _ = w.At(j, i)
			total += wij + wji
			if wij != 0 {
				couplings[Pair{I: i, J: j}] = wij
			}
		}
	}

	// Stage 3: assemble with zero biases.
	return newModel(make([]float64, n), couplings, total/4)
}

// BuildMaxCutFromRows is BuildMaxCut over a [][]float64. Ragged or empty
// input is reported as ErrInvalidInput wrapping matrix.ErrNonSquare.
func BuildMaxCutFromRows(rows [][]float64, opts ...Option) (*Model, error) {
	n := len(rows)
	for i := range rows {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("BuildMaxCut: row %d has %d entries, want %d: %w: %w",
				i, len(rows[i]), n, ErrInvalidInput, matrix.ErrNonSquare)
		}
	}
	w, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, fmt.Errorf("BuildMaxCut: %w: %w", ErrInvalidInput, matrix.ErrNonSquare)
	}

	return BuildMaxCut(w, opts...)
}
