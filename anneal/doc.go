// SPDX-License-Identifier: MIT

// Package anneal approximately minimizes Ising energy with single-spin-flip
// simulated annealing, optionally holding a subset of spins fixed (clamped)
// for conditional / maximum-a-posteriori inference.
//
// One run:
//
//  1. Every free node gets an independent uniform ±1; clamped nodes take
//     their fixed value and are never updated.
//  2. For each β of the Schedule (one sweep):
//     - the bias part of every node's flip delta, −2·s(v)·h(v), is taken once
//       at the start of the sweep;
//     - color classes are visited in order; for a class, the coupling part
//       −2·s(v)·Σ_u J(v,u)·s(u) is computed for all its nodes from the state at
//       the start of the class, then each free node flips when
//       log(u) < −β·Δ, u ~ U[0,1).
//  3. The final configuration and its recomputed energy form the Sample.
//
// Nodes of one color class are pairwise non-adjacent and each node belongs to
// exactly one class, so neither part of Δ can go stale before the node is
// visited: the sweep is equivalent to a sequential Metropolis sweep in class
// order (sampler_test.go checks this against a reference implementation).
//
// Determinism: for a fixed *rand.Rand stream, schedule and coloring the run is
// fully deterministic. Random numbers are consumed in a fixed order: one Intn(2)
// per free node in ascending id, then one Float64 per free node per sweep in
// class order.
//
// Concurrency: a Sampler is read-only and may serve concurrent Sample calls,
// provided each call gets its own *rand.Rand (math/rand.Rand is not
// goroutine-safe). Use DeriveRand to split streams.
//
// Complexity: O(sweeps · (N + E)) per run.
package anneal
