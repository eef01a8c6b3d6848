// SPDX-License-Identifier: MIT

// Package estimate turns repeated annealing runs into an empirical
// Boltzmann-like distribution over the energies they reach.
//
// Estimate performs R independent anneal runs, rounds every final energy to
// Options.Precision, counts how often each rounded energy occurs (its
// degeneracy g(E)) and reports
//
//	P(E) = g(E)·exp(−(E−Emin)/T) / Σ_E' g(E')·exp(−(E'−Emin)/T)
//
// which equals g(E)·exp(−E/T)/Z over the observed levels; the shift by the
// lowest observed energy Emin keeps the exponentials finite. T is the readout
// temperature and is independent of the annealing schedule.
//
// The result is an estimate, not a partition function: levels that annealing
// rarely reaches are undercounted. Exact enumerates a small model instead and
// gives the true distribution for comparison.
//
// Determinism: one child stream per run is derived from the caller's RNG, in
// run order, before any worker starts. The distribution is therefore the same
// for every Options.Workers value.
//
// Concurrency: runs are sharded across Options.Workers goroutines under an
// errgroup; every worker fills a private Histogram, and the histograms are
// summed once all workers are done. The model and coloring are shared
// read-only. Cancelling ctx stops the remaining runs and Estimate returns
// ctx.Err().
package estimate
