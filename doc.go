// Package spinglass is an in-memory toolkit for Ising spin-glass sampling:
// formulate weighted max-cut problems as Ising energies, anneal them with a
// clamped Metropolis sampler, and read out Boltzmann-like energy
// distributions.
//
// What is inside:
//
//	matrix/    — dense weight matrices, validators, Euclidean distances
//	ising/     — the energy model, max-cut formulation, exact enumeration
//	coloring/  — greedy coloring of the coupling graph (sweep schedule)
//	anneal/    — cooling schedules, seeded RNG streams, the annealing sampler
//	estimate/  — parallel repetitions, degeneracy histograms, exact references
//	graphgen/  — graph families and point clouds as weight matrices
//	cmd/spinglass — command-line front end (TOML problems and config)
//	examples/  — runnable scenarios
//
// Pipeline:
//
//	weights ──BuildMaxCut──▶ Model ──FromModel──▶ Coloring
//	                           │                     │
//	                           └──────▶ Sampler ◀────┘
//	                                      │  R runs, own RNG each
//	                                      ▼
//	                               Histogram g(E) ──▶ P(E) ∝ g(E)·e^(−E/T)
//
// Library packages never log and never panic on user input; every failure is
// a sentinel error matching ising.ErrInvalidInput or
// ising.ErrInvalidConfiguration through errors.Is.
//
//	go get github.com/katalvlaran/spinglass
package spinglass
