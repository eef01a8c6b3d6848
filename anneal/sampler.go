// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/spinglass/coloring"
	"github.com/katalvlaran/spinglass/ising"
)

// Sampler runs annealing on one model with one coloring. It holds no mutable
// state and may serve concurrent Sample calls.
type Sampler struct {
	model    *ising.Model
	coloring *coloring.Coloring
	bias     []float64
	maxClass int
}

// NewSampler prepares m for sampling. Unless WithColoring is given, the
// coupling graph is colored with coloring.Greedy.
//
// Errors: ErrNilModel; coloring.ErrInvalidColoring for a supplied coloring
// that does not fit m.
func NewSampler(m *ising.Model, opts ...Option) (*Sampler, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	var o samplerOptions
	for _, fn := range opts {
		fn(&o)
	}

	c := o.coloring
	if c == nil {
		c = coloring.FromModel(m)
	} else if err := c.Validate(m.NeighborIDs()); err != nil {
		return nil, fmt.Errorf("NewSampler: %w", err)
	}

	s := &Sampler{model: m, coloring: c, bias: m.Biases()}
	for _, class := range c.Order {
		if len(class) > s.maxClass {
			s.maxClass = len(class)
		}
	}

	return s, nil
}

// Model returns the sampler's model.
func (s *Sampler) Model() *ising.Model { return s.model }

// Coloring returns the sweep coloring.
func (s *Sampler) Coloring() *coloring.Coloring { return s.coloring }

// Sample performs one annealing run. clamped may be nil. A nil rng uses the
// DefaultSeed stream.
//
// Errors (all ising.ErrInvalidConfiguration): ErrEmptySchedule,
// ErrBadSchedule, ising.ErrUnknownNode, ising.ErrBadClamp. Validation happens
// before any random number is drawn.
func (s *Sampler) Sample(clamped map[int]ising.Spin, sched Schedule, rng *rand.Rand) (Sample, error) {
	if err := sched.Validate(); err != nil {
		return Sample{}, err
	}
	if err := s.model.ValidateClamped(clamped); err != nil {
		return Sample{}, err
	}
	if rng == nil {
		rng = NewRand(0)
	}

	var (
		n     = s.model.N()
		adj   = s.model.Adjacency()
		spins = make(ising.Config, n)
		fixed = make([]bool, n)
		field = make([]float64, n)          // bias part of Δ, per sweep
		delta = make([]float64, s.maxClass) // full Δ, per class
		v, k  int
	)

	// Stage 1: initial state, ascending id.
	for v = 0; v < n; v++ {
		if cv, ok := clamped[v]; ok {
			spins[v], fixed[v] = cv, true
			continue
		}
		if rng.Intn(2) == 0 {
			spins[v] = ising.Down
		} else {
			spins[v] = ising.Up
		}
	}

	// Stage 2: one sweep per β.
	var (
		beta, local float64
		sv          float64
	)
	for _, beta = range sched {
		for v = 0; v < n; v++ {
			field[v] = -2 * float64(spins[v]) * s.bias[v]
		}
		for _, class := range s.coloring.Order {
			// Deltas for the whole class from the state at class start.
			for k, v = range class {
				if fixed[v] {
					continue
				}
				local = 0
				for _, e := range adj[v] {
					local += e.Weight * float64(spins[e.To])
				}
				sv = float64(spins[v])
				delta[k] = field[v] - 2*sv*local
			}
			// Metropolis: accept when log(u) < -β·Δ.
			for k, v = range class {
				if fixed[v] {
					continue
				}
				if math.Log(rng.Float64()) < -beta*delta[k] {
					spins[v] = spins[v].Flip()
				}
			}
		}
	}

	// Stage 3: recompute the energy from the final state.
	return Sample{Spins: spins, Energy: s.model.EnergyUnchecked(spins)}, nil
}

// Anneal is the one-shot form: NewSampler(m) followed by Sample.
func Anneal(m *ising.Model, clamped map[int]ising.Spin, sched Schedule, rng *rand.Rand) (Sample, error) {
	s, err := NewSampler(m)
	if err != nil {
		return Sample{}, err
	}

	return s.Sample(clamped, sched, rng)
}
