// SPDX-License-Identifier: MIT

package graphgen

import "math/rand"

// config holds the resolved generator knobs.
type config struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes a generator.
type Option func(*config)

// newConfig applies opts in order over the defaults: no RNG, constant
// DefaultEdgeWeight.
func newConfig(opts ...Option) config {
	cfg := config{weightFn: DefaultWeightFn}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides the RNG for random topologies and weights. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("graphgen: WithRand(nil)")
	}

	return func(c *config) {
		c.rng = r
	}
}

// WithSeed seeds a fresh RNG.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("graphgen: WithWeightFn(nil)")
	}

	return func(c *config) {
		c.weightFn = fn
	}
}

// WithConstantWeight is WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w float64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is WithWeightFn(UniformWeightFn(min, max)).
func WithUniformWeight(min, max float64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}
