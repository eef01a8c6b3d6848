// SPDX-License-Identifier: MIT

// Package graphgen builds weight matrices for max-cut problems: classic
// graph families (complete, cycle, path, star, random sparse) written straight
// into a symmetric *matrix.Dense, and Gaussian point clouds for clustering
// demos.
//
// Every generator validates its parameters first and returns only sentinel
// errors. Option constructors (WithX) panic on meaningless arguments; the
// generators themselves never panic.
//
// Determinism: vertices are indexed 0..n-1 and edges are emitted in a fixed
// order (i ascending, then j ascending for j > i), so a fixed seed always gives
// the same matrix. Without WithSeed or WithRand no randomness is used and
// random weight functions fall back to DefaultEdgeWeight.
//
// Weights must be finite and ≥ 0, as max-cut matrices require; a WeightFn that
// yields anything else makes the generator fail with ErrInvalidWeight.
package graphgen
