// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." so it is easy to grep. Callers
// add context with fmt.Errorf("ctx: %w", ErrX) and match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0, c<=0 or ragged rows).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix was passed.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals |a_ij - a_ji| > tol for some pair.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNegativeWeight signals a negative off-diagonal entry where weights must be >= 0.
	ErrNegativeWeight = errors.New("matrix: negative weight")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrDimensionMismatch indicates points of differing dimension or an empty point set.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)
