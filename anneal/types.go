// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"

	"github.com/katalvlaran/spinglass/coloring"
	"github.com/katalvlaran/spinglass/ising"
)

// Sentinel errors. All wrap ising.ErrInvalidConfiguration.
var (
	// ErrEmptySchedule indicates a schedule with no sweeps.
	ErrEmptySchedule = fmt.Errorf("%w: anneal: empty schedule", ising.ErrInvalidConfiguration)

	// ErrBadSchedule indicates a β that is NaN, ±Inf, negative, or lower than its predecessor.
	ErrBadSchedule = fmt.Errorf("%w: anneal: schedule must be finite, non-negative and non-decreasing", ising.ErrInvalidConfiguration)

	// ErrNilModel indicates a nil *ising.Model. It is ising.ErrNilModel.
	ErrNilModel = ising.ErrNilModel
)

// Defaults used by DefaultSchedule and the command-line tool.
const (
	DefaultSweeps    = 1000
	DefaultBetaStart = 0.1
	DefaultBetaEnd   = 10.0
)

// Sample is the outcome of one annealing run. Energy is recomputed from Spins
// when the run ends and is not updated afterwards.
type Sample struct {
	Spins  ising.Config
	Energy float64
}

// samplerOptions collects NewSampler options.
type samplerOptions struct {
	coloring *coloring.Coloring
}

// Option configures a Sampler.
type Option func(*samplerOptions)

// WithColoring supplies a precomputed coloring instead of coloring.FromModel.
// NewSampler validates it against the model's adjacency.
func WithColoring(c *coloring.Coloring) Option {
	return func(o *samplerOptions) {
		o.coloring = c
	}
}
