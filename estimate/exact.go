// SPDX-License-Identifier: MIT

package estimate

import (
	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/ising"
)

// Exact builds the true Boltzmann distribution of m at temperature t by
// enumerating every configuration allowed by clamped. Degeneracies count
// configurations, so Repetitions is 2^free. Best is the first ground state in
// enumeration order.
//
// Errors: ErrBadTemperature, ErrBadPrecision, anneal.ErrNilModel, and the
// ising.Enumerate errors (ising.ErrTooLarge above ising.MaxEnumerate free spins).
func Exact(m *ising.Model, clamped map[int]ising.Spin, t, precision float64) (*Distribution, error) {
	if err := validateTemperature(t); err != nil {
		return nil, err
	}
	if err := validatePrecision(precision); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, anneal.ErrNilModel
	}

	var (
		hist = make(Histogram)
		best anneal.Sample
	)
	err := ising.Enumerate(m, clamped, func(c ising.Config, e float64) bool {
		hist[Round(e, precision)]++
		if best.Spins == nil || e < best.Energy {
			best = anneal.Sample{Spins: c.Clone(), Energy: e}
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	d, err := FromHistogram(hist, t)
	if err != nil {
		return nil, err
	}
	d.Best = best

	return d, nil
}
