// SPDX-License-Identifier: MIT

package anneal

import (
	"fmt"
	"math"
)

// Schedule is the cooling trajectory: one inverse temperature β per sweep,
// non-decreasing. Its length is the sweep count.
type Schedule []float64

// Validate checks the schedule is non-empty and every β is finite, ≥ 0 and
// not lower than the previous one.
// Errors: ErrEmptySchedule, ErrBadSchedule.
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return ErrEmptySchedule
	}
	var prev float64
	for k, b := range s {
		if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
			return fmt.Errorf("sweep %d: beta=%g: %w", k, b, ErrBadSchedule)
		}
		if k > 0 && b < prev {
			return fmt.Errorf("sweep %d: beta=%g < previous %g: %w", k, b, prev, ErrBadSchedule)
		}
		prev = b
	}

	return nil
}

// Final returns the last β, or 0 for an empty schedule.
func (s Schedule) Final() float64 {
	if len(s) == 0 {
		return 0
	}

	return s[len(s)-1]
}

// validateRange checks the common constructor arguments.
func validateRange(betaStart, betaEnd float64, sweeps int) error {
	if sweeps < 1 {
		return fmt.Errorf("sweeps=%d: %w", sweeps, ErrEmptySchedule)
	}
	for _, b := range []float64{betaStart, betaEnd} {
		if math.IsNaN(b) || math.IsInf(b, 0) || b < 0 {
			return fmt.Errorf("beta=%g: %w", b, ErrBadSchedule)
		}
	}
	if betaEnd < betaStart {
		return fmt.Errorf("betaEnd=%g < betaStart=%g: %w", betaEnd, betaStart, ErrBadSchedule)
	}

	return nil
}

// Linear returns sweeps values evenly spaced from betaStart to betaEnd
// inclusive. A single sweep runs at betaEnd.
func Linear(betaStart, betaEnd float64, sweeps int) (Schedule, error) {
	if err := validateRange(betaStart, betaEnd, sweeps); err != nil {
		return nil, err
	}
	s := make(Schedule, sweeps)
	if sweeps == 1 {
		s[0] = betaEnd
		return s, nil
	}
	step := (betaEnd - betaStart) / float64(sweeps-1)
	for k := range s {
		s[k] = betaStart + float64(k)*step
	}
	s[sweeps-1] = betaEnd

	return s, nil
}

// Geometric returns sweeps values growing by a constant ratio from betaStart
// to betaEnd inclusive. betaStart must be > 0. A single sweep runs at betaEnd.
func Geometric(betaStart, betaEnd float64, sweeps int) (Schedule, error) {
	if err := validateRange(betaStart, betaEnd, sweeps); err != nil {
		return nil, err
	}
	if betaStart == 0 {
		return nil, fmt.Errorf("geometric schedule needs betaStart > 0: %w", ErrBadSchedule)
	}
	s := make(Schedule, sweeps)
	if sweeps == 1 {
		s[0] = betaEnd
		return s, nil
	}
	ratio := math.Log(betaEnd / betaStart)
	for k := range s {
		s[k] = betaStart * math.Exp(ratio*float64(k)/float64(sweeps-1))
		// guard against rounding making the sequence dip
		if k > 0 && s[k] < s[k-1] {
			s[k] = s[k-1]
		}
	}
	s[sweeps-1] = betaEnd

	return s, nil
}

// DefaultSchedule is Geometric(DefaultBetaStart, DefaultBetaEnd, DefaultSweeps).
func DefaultSchedule() Schedule {
	s, _ := Geometric(DefaultBetaStart, DefaultBetaEnd, DefaultSweeps)

	return s
}
