// SPDX-License-Identifier: MIT

// Package matrix provides the dense weight-matrix primitives consumed by the
// energy model: a bounds-checked Matrix interface, a row-major Dense
// implementation, structural validators and a Euclidean distance builder.
//
// What & Why:
//
//	Max-cut problems arrive as symmetric N×N weight matrices, either written
//	out by hand, produced by a graph generator, or derived from data points
//	(pairwise Euclidean distances). Every consumer needs the same guards:
//	square shape, finite values, no negative weights, symmetry within a
//	tolerance. Those checks live here once, as sentinel errors.
//
// Complexity:
//
//	At/Set are O(1); validators are O(n²) and allocate nothing;
//	PairwiseDistances is O(n²·d) for n points of dimension d.
//
// Errors (sentinel, matched with errors.Is):
//
//	ErrBadShape, ErrOutOfRange, ErrNilMatrix, ErrNonSquare, ErrAsymmetry,
//	ErrNegativeWeight, ErrNaNInf, ErrDimensionMismatch.
package matrix
