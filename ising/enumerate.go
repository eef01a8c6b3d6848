// SPDX-License-Identifier: MIT

package ising

import (
	"fmt"
	"math/bits"
)

// Enumerate visits every configuration of m in which the clamped nodes keep
// their values, calling fn with the configuration and its exact energy.
// The free nodes are walked in binary-reflected Gray code order, starting
// from all free spins Down, so consecutive configurations differ in one spin.
//
// fn receives a buffer reused between calls: Clone it to keep it. Returning
// false from fn stops the walk early.
//
// Errors: ErrNilModel, ErrUnknownNode, ErrBadClamp, ErrTooLarge (more than MaxEnumerate
// free spins).
//
// Complexity: O(2^f · (N + E)) for f free spins.
func Enumerate(m *Model, clamped map[int]Spin, fn func(c Config, energy float64) bool) error {
	if m == nil {
		return ErrNilModel
	}
	if err := m.ValidateClamped(clamped); err != nil {
		return err
	}

	var (
		n    = m.N()
		free = make([]int, 0, n)
		c    = make(Config, n)
		v    int
	)
	for v = 0; v < n; v++ {
		if s, ok := clamped[v]; ok {
			c[v] = s
			continue
		}
		c[v] = Down
		free = append(free, v)
	}
	if len(free) > MaxEnumerate {
		return fmt.Errorf("%d free spins > %d: %w", len(free), MaxEnumerate, ErrTooLarge)
	}

	if !fn(c, m.energy(c)) {
		return nil
	}
	var (
		total = uint64(1) << uint(len(free))
		k     uint64
		bit   int
	)
	for k = 1; k < total; k++ {
		// Gray code: step k flips the position of k's lowest set bit.
		bit = bits.TrailingZeros64(k)
		v = free[bit]
		c[v] = c[v].Flip()
		if !fn(c, m.energy(c)) {
			return nil
		}
	}

	return nil
}

// GroundStates returns the minimum energy over all configurations allowed by
// clamped, together with every configuration attaining it (within tol).
func GroundStates(m *Model, clamped map[int]Spin, tol float64) (float64, []Config, error) {
	var (
		best   float64
		states []Config
		seen   bool
	)
	err := Enumerate(m, clamped, func(c Config, e float64) bool {
		switch {
		case !seen || e < best-tol:
			best, seen = e, true
			states = append(states[:0], c.Clone())
		case e <= best+tol:
			states = append(states, c.Clone())
		}
		return true
	})
	if err != nil {
		return 0, nil, err
	}

	return best, states, nil
}
