// SPDX-License-Identifier: MIT

package estimate

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/ising"
)

// Sentinel errors. All wrap ising.ErrInvalidConfiguration.
var (
	// ErrBadTemperature indicates a readout temperature that is ≤ 0, NaN or ±Inf.
	ErrBadTemperature = fmt.Errorf("%w: estimate: temperature must be finite and > 0", ising.ErrInvalidConfiguration)

	// ErrBadRepetitions indicates fewer than one repetition.
	ErrBadRepetitions = fmt.Errorf("%w: estimate: repetitions must be >= 1", ising.ErrInvalidConfiguration)

	// ErrBadWorkers indicates a negative worker count.
	ErrBadWorkers = fmt.Errorf("%w: estimate: workers must be >= 0", ising.ErrInvalidConfiguration)

	// ErrBadPrecision indicates a rounding precision that is ≤ 0, NaN or ±Inf.
	ErrBadPrecision = fmt.Errorf("%w: estimate: precision must be finite and > 0", ising.ErrInvalidConfiguration)

	// ErrEmptyHistogram indicates a histogram without any positive count.
	ErrEmptyHistogram = fmt.Errorf("%w: estimate: histogram is empty", ising.ErrInvalidConfiguration)
)

// Defaults used by DefaultOptions.
const (
	DefaultRepetitions = 100
	DefaultTemperature = 1.0
	DefaultPrecision   = 1e-9
)

// Options configures Estimate.
type Options struct {
	// Repetitions is the number of independent anneal runs R (≥ 1).
	Repetitions int
	// Temperature is the readout temperature T (> 0).
	Temperature float64
	// Precision is the rounding step applied to energies before counting.
	Precision float64
	// Workers bounds concurrent runs; 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Clamped fixes spins for every run. May be nil.
	Clamped map[int]ising.Spin
}

// DefaultOptions returns R=100, T=1, precision 1e-9, GOMAXPROCS workers and
// no clamps.
func DefaultOptions() Options {
	return Options{
		Repetitions: DefaultRepetitions,
		Temperature: DefaultTemperature,
		Precision:   DefaultPrecision,
	}
}

// Validate reports the first invalid field.
func (o Options) Validate() error {
	if o.Repetitions < 1 {
		return fmt.Errorf("repetitions=%d: %w", o.Repetitions, ErrBadRepetitions)
	}
	if err := validateTemperature(o.Temperature); err != nil {
		return err
	}
	if err := validatePrecision(o.Precision); err != nil {
		return err
	}
	if o.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", o.Workers, ErrBadWorkers)
	}

	return nil
}

func validateTemperature(t float64) error {
	if !(t > 0) || math.IsInf(t, 0) {
		return fmt.Errorf("temperature=%g: %w", t, ErrBadTemperature)
	}

	return nil
}

func validatePrecision(p float64) error {
	if !(p > 0) || math.IsInf(p, 0) {
		return fmt.Errorf("precision=%g: %w", p, ErrBadPrecision)
	}

	return nil
}

// Histogram counts occurrences per rounded energy (the degeneracy g(E)).
type Histogram map[float64]int

// Add merges o into h.
func (h Histogram) Add(o Histogram) {
	for e, c := range o {
		h[e] += c
	}
}

// Total returns the sum of all counts.
func (h Histogram) Total() int {
	var n int
	for _, c := range h {
		n += c
	}

	return n
}

// Energies returns the keys in ascending order.
func (h Histogram) Energies() []float64 {
	es := make([]float64, 0, len(h))
	for e := range h {
		es = append(es, e)
	}
	sort.Float64s(es)

	return es
}

// Level is one observed energy with its count and normalized probability.
type Level struct {
	Energy      float64
	Degeneracy  int
	Probability float64
}

// Distribution is the normalized Boltzmann weighting of a histogram.
type Distribution struct {
	// Levels are sorted by ascending energy; probabilities sum to 1.
	Levels []Level
	// Temperature is the readout temperature used for the weights.
	Temperature float64
	// Repetitions is the total count behind Levels.
	Repetitions int
	// Best is the lowest-energy configuration seen, earliest on ties.
	// It is the zero Sample for FromHistogram.
	Best anneal.Sample
}

// Probabilities returns the energy → probability mapping.
func (d *Distribution) Probabilities() map[float64]float64 {
	out := make(map[float64]float64, len(d.Levels))
	for _, l := range d.Levels {
		out[l.Energy] = l.Probability
	}

	return out
}

// Histogram returns the degeneracies behind d.
func (d *Distribution) Histogram() Histogram {
	out := make(Histogram, len(d.Levels))
	for _, l := range d.Levels {
		out[l.Energy] = l.Degeneracy
	}

	return out
}

// Ground returns the lowest level, or the zero Level when d is nil or has
// no levels.
func (d *Distribution) Ground() Level {
	if d == nil || len(d.Levels) == 0 {
		return Level{}
	}

	return d.Levels[0]
}

// Round snaps e to the nearest multiple of precision. Decimal precisions
// such as 1e-9 go through their integer reciprocal, so the result is the
// float closest to the decimal value. Negative zero becomes zero.
func Round(e, precision float64) float64 {
	var r float64
	if inv := math.Round(1 / precision); inv > 1 && math.Abs(inv*precision-1) < 1e-12 {
		r = math.Round(e*inv) / inv
	} else {
		r = math.Round(e/precision) * precision
	}
	if r == 0 {
		return 0
	}

	return r
}
