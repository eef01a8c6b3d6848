// SPDX-License-Identifier: MIT

// Package ising models spin systems with per-node biases and pairwise
// couplings, and formulates weighted max-cut problems as such models.
//
// Energy convention:
//
//	E(s) = Σ_i h(i)·s(i) + Σ_{i<j} J(i,j)·s(i)·s(j),   s(i) ∈ {-1, +1}
//
// Lower energy is preferred. For a max-cut model built by BuildMaxCut the
// biases are zero, J(i,j) = w(i,j) and
//
//	Cut(s) = Offset − E(s)/2,   Offset = ¼·Σ_{i≠j} w(i,j)
//
// so minimizing E maximizes the total weight crossing the partition
// {i : s(i)=+1} / {i : s(i)=−1}.
//
// A Model is immutable once built and safe to share between goroutines.
// Spin configurations (Config) are plain slices owned by whoever created them.
//
// Errors are grouped under two categories, matched with errors.Is:
//
//	ErrInvalidInput         - malformed weights, couplings or configurations.
//	ErrInvalidConfiguration - bad run parameters (clamps, sizes, schedules…).
//
// Packages anneal and estimate reuse these categories so callers can classify
// any failure of the pipeline with two checks.
package ising
