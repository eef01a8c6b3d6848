// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"
	"math"
	"strings"
)

// Spin is a binary state variable taking value -1 or +1.
type Spin int8

const (
	// Down is the -1 spin.
	Down Spin = -1
	// Up is the +1 spin.
	Up Spin = 1
)

// Valid reports whether s is -1 or +1.
func (s Spin) Valid() bool { return s == Down || s == Up }

// Flip returns -s.
func (s Spin) Flip() Spin { return -s }

// String renders "+" or "-" ("?" for invalid values).
func (s Spin) String() string {
	switch s {
	case Up:
		return "+"
	case Down:
		return "-"
	default:
		return "?"
	}
}

// Config holds one spin per node, indexed by node id.
type Config []Spin

// Clone returns an independent copy of c.
func (c Config) Clone() Config {
	out := make(Config, len(c))
	copy(out, c)

	return out
}

// String renders c as a compact run of "+"/"-" runes, e.g. "+-+".
func (c Config) String() string {
	var sb strings.Builder
	sb.Grow(len(c))
	for _, s := range c {
		sb.WriteString(s.String())
	}

	return sb.String()
}

// Validate checks that c has exactly n entries, all ±1.
func (c Config) Validate(n int) error {
	if len(c) != n {
		return fmt.Errorf("config has %d spins, model has %d nodes: %w", len(c), n, ErrConfigLength)
	}
	for i, s := range c {
		if !s.Valid() {
			return fmt.Errorf("node %d has spin %d: %w", i, s, ErrBadSpinValue)
		}
	}

	return nil
}

// Pair is an unordered node pair stored with I < J.
type Pair struct {
	I, J int
}

// NewPair orders (a, b) so that I < J. a == b yields a Pair with I == J,
// which model constructors reject as ErrSelfCoupling.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}

	return Pair{I: a, J: b}
}

// Term is one coupling J(I,J) of a model, in the model's canonical order.
type Term struct {
	Pair
	Weight float64
}

// Edge is one entry of a node's adjacency list.
type Edge struct {
	To     int
	Weight float64
}

// DefaultTolerance is the default symmetry tolerance for weight matrices.
const DefaultTolerance = 1e-9

// MaxEnumerate bounds the free-spin count accepted by Enumerate (2^20 configurations).
const MaxEnumerate = 20

const panicToleranceInvalid = "ising: WithTolerance: tol must be finite and non-negative"

// Options configures BuildMaxCut.
type Options struct {
	// Tolerance is the maximum |w(i,j) - w(j,i)| accepted as symmetric.
	Tolerance float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the BuildMaxCut defaults (Tolerance = DefaultTolerance).
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance sets the symmetry tolerance.
// Panics if tol is negative or not finite (programmer error).
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.Tolerance = tol
	}
}
