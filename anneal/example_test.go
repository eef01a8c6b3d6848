// Package anneal_test shows annealing on small max-cut and clamped models.
package anneal_test

import (
	"fmt"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/ising"
)

// ExampleAnneal finds the maximum cut of a weighted square with a diagonal.
func ExampleAnneal() {
	m, _ := ising.BuildMaxCutFromRows([][]float64{
		{0, 1, 2, 1},
		{1, 0, 1, 0},
		{2, 1, 0, 1},
		{1, 0, 1, 0},
	})
	sched, _ := anneal.Geometric(0.1, 10, 200)
	s, _ := anneal.Anneal(m, nil, sched, anneal.NewRand(42))
	cut, _ := m.CutValue(s.Spins)
	fmt.Printf("energy=%.0f cut=%.0f\n", s.Energy, cut)
	// Output: energy=-2 cut=4
}

// ExampleSampler_Sample holds node 0 Down and lets the rest settle.
func ExampleSampler_Sample() {
	m, _ := ising.NewModel([]float64{1, 1, 1}, map[ising.Pair]float64{
		{I: 0, J: 1}: 2,
		{I: 1, J: 2}: -1,
	})
	s, _ := anneal.NewSampler(m)
	sched, _ := anneal.Geometric(0.1, 10, 200)
	out, _ := s.Sample(map[int]ising.Spin{0: ising.Down}, sched, anneal.NewRand(3))
	fmt.Println(out.Spins[0], out.Energy)
	// Output: - -2
}
