// SPDX-License-Identifier: MIT

// Package coloring partitions the nodes of a coupling graph into independent
// sets ("color classes") so that spins inside one class can be updated from
// the same snapshot of their neighbours without breaking single-spin-flip
// dynamics: no two nodes of a class are adjacent.
//
// Algorithm (greedy, deterministic):
//
//	for v = 0..N-1:
//	    color(v) = smallest c ≥ 0 not used by an already-colored neighbour of v
//
// Isolated nodes always get color 0. The same adjacency always yields the same
// coloring, so a sweep order derived from it is reproducible for a fixed seed.
//
// Complexity:
//
//	Time O(N + E), extra space O(max degree).
//
// Errors:
//
//	ErrInvalidAdjacency - out-of-range ids, self loops or asymmetric lists
//	                      (wraps ising.ErrInvalidInput).
//	ErrInvalidColoring  - a supplied coloring violates the class invariants
//	                      (wraps ising.ErrInvalidConfiguration).
package coloring
