package ising_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinglass/ising"
)

func TestEnumerate_ChainDegeneracies(t *testing.T) {
	m := chain(t)
	hist := map[float64]int{}
	seen := map[string]bool{}

	err := ising.Enumerate(m, nil, func(c ising.Config, e float64) bool {
		hist[e]++
		seen[c.String()] = true
		direct, err := m.Energy(c)
		require.NoError(t, err)
		require.Equal(t, direct, e)
		return true
	})
	require.NoError(t, err)
	require.Len(t, seen, 8)

	// Direct computation of E = Σh·s + Σ J·s_i·s_j over the 8 assignments.
	require.Equal(t, map[float64]int{-4: 1, -2: 3, 0: 1, 2: 1, 4: 2}, hist)
}

func TestEnumerate_Clamped(t *testing.T) {
	m := chain(t)
	var configs []string
	err := ising.Enumerate(m, map[int]ising.Spin{0: ising.Down}, func(c ising.Config, e float64) bool {
		require.Equal(t, ising.Down, c[0])
		configs = append(configs, c.String())
		return true
	})
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"---", "-+-", "--+", "-++"}, configs)

	best, states, err := ising.GroundStates(m, map[int]ising.Spin{0: ising.Down}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, -2.0, best)
	got := make([]string, len(states))
	for i, s := range states {
		got[i] = s.String()
	}
	require.ElementsMatch(t, []string{"---", "-++", "-+-"}, got)
}

func TestEnumerate_MirrorClamp(t *testing.T) {
	m := chain(t)
	best, states, err := ising.GroundStates(m, map[int]ising.Spin{0: ising.Up}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, -4.0, best)
	require.Len(t, states, 1)
	require.Equal(t, "+--", states[0].String())
}

func TestEnumerate_EarlyStopAndErrors(t *testing.T) {
	m := chain(t)
	calls := 0
	require.NoError(t, ising.Enumerate(m, nil, func(ising.Config, float64) bool {
		calls++
		return calls < 3
	}))
	require.Equal(t, 3, calls)

	err := ising.Enumerate(m, map[int]ising.Spin{7: ising.Up}, func(ising.Config, float64) bool { return true })
	require.ErrorIs(t, err, ising.ErrUnknownNode)

	big, err := ising.NewModel(make([]float64, ising.MaxEnumerate+1), nil)
	require.NoError(t, err)
	err = ising.Enumerate(big, nil, func(ising.Config, float64) bool { return true })
	require.ErrorIs(t, err, ising.ErrTooLarge)
	require.ErrorIs(t, err, ising.ErrInvalidConfiguration)

	err = ising.Enumerate(nil, nil, func(ising.Config, float64) bool { return true })
	require.ErrorIs(t, err, ising.ErrNilModel)
	_, _, err = ising.GroundStates(nil, nil, 1e-9)
	require.ErrorIs(t, err, ising.ErrNilModel)

	// clamping one node brings it back within range
	require.NoError(t, ising.Enumerate(big, map[int]ising.Spin{0: ising.Up}, func(ising.Config, float64) bool { return false }))
}
