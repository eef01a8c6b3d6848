package estimate_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/estimate"
	"github.com/katalvlaran/spinglass/ising"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// chain is the three-node model h={1,1,1}, J(0,1)=2, J(1,2)=-1.
func chain(t *testing.T) *ising.Model {
	t.Helper()
	m, err := ising.NewModel([]float64{1, 1, 1}, map[ising.Pair]float64{
		{I: 0, J: 1}: 2,
		{I: 1, J: 2}: -1,
	})
	require.NoError(t, err)

	return m
}

func randomModel(t *testing.T, rng *rand.Rand, n int) *ising.Model {
	t.Helper()
	h := make([]float64, n)
	for i := range h {
		h[i] = rng.NormFloat64()
	}
	j := map[ising.Pair]float64{}
	for a := 0; a < n; a++ {
		for b := a + 1; b < n; b++ {
			if rng.Float64() < 0.5 {
				j[ising.Pair{I: a, J: b}] = rng.NormFloat64()
			}
		}
	}
	m, err := ising.NewModel(h, j)
	require.NoError(t, err)

	return m
}

func opts(r int, temp float64) estimate.Options {
	o := estimate.DefaultOptions()
	o.Repetitions = r
	o.Temperature = temp
	return o
}

func TestEstimate_SumsToOne(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sched, err := anneal.Linear(0, 1, 10)
	require.NoError(t, err)

	for _, r := range []int{1, 2, 7, 50} {
		for _, temp := range []float64{0.01, 1, 100} {
			m := randomModel(t, rng, 2+rng.Intn(8))
			d, err := estimate.Estimate(context.Background(), m, sched, anneal.DeriveRand(rng, 0), opts(r, temp))
			require.NoError(t, err)

			var sum float64
			for _, l := range d.Levels {
				sum += l.Probability
				assert.GreaterOrEqual(t, l.Probability, 0.0)
			}
			assert.InDelta(t, 1.0, sum, 1e-12, "R=%d T=%g", r, temp)
			assert.Equal(t, r, d.Repetitions)
			assert.Equal(t, r, d.Histogram().Total())
			assert.Equal(t, temp, d.Temperature)
			assert.LessOrEqual(t, d.Ground().Energy, d.Levels[len(d.Levels)-1].Energy)
		}
	}
}

func TestEstimate_SingleRepetition(t *testing.T) {
	d, err := estimate.Estimate(context.Background(), chain(t), anneal.Schedule{0.5}, anneal.NewRand(5), opts(1, 1))
	require.NoError(t, err)
	require.Len(t, d.Levels, 1)
	assert.Equal(t, 1.0, d.Levels[0].Probability)
	assert.Equal(t, d.Levels[0].Energy, estimate.Round(d.Best.Energy, estimate.DefaultPrecision))
}

func TestEstimate_WorkerCountInvariance(t *testing.T) {
	m := randomModel(t, rand.New(rand.NewSource(9)), 12)
	sched, err := anneal.Geometric(0.1, 3, 20)
	require.NoError(t, err)

	var ref *estimate.Distribution
	for _, w := range []int{1, 2, 3, 8, 64} {
		o := opts(37, 0.7)
		o.Workers = w
		d, err := estimate.Estimate(context.Background(), m, sched, anneal.NewRand(77), o)
		require.NoError(t, err)
		if ref == nil {
			ref = d
			continue
		}
		require.Equal(t, ref, d, "workers=%d", w)
	}

	o := opts(37, 0.7)
	d, err := estimate.Estimate(context.Background(), m, sched, anneal.NewRand(77), o)
	require.NoError(t, err)
	require.Equal(t, ref, d, "GOMAXPROCS workers")
}

func TestEstimate_EveryRunCounted(t *testing.T) {
	m, err := ising.BuildMaxCutFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	sched := anneal.Schedule{1, 2, 5}

	for _, r := range []int{1, 50} {
		for _, w := range []int{1, 2, 4} {
			o := opts(r, 1)
			o.Workers = w
			d, err := estimate.Estimate(context.Background(), m, sched, anneal.NewRand(3), o)
			require.NoError(t, err, "R=%d workers=%d", r, w)
			assert.Equal(t, r, d.Repetitions)
			assert.Equal(t, r, d.Histogram().Total(), "R=%d workers=%d", r, w)
			var sum float64
			for _, l := range d.Levels {
				sum += l.Probability
			}
			assert.InDelta(t, 1.0, sum, 1e-12)
		}
	}
}

func TestEstimate_NilRandUsesDefaultSeed(t *testing.T) {
	m := chain(t)
	sched := anneal.Schedule{0.2, 0.4}
	a, err := estimate.Estimate(context.Background(), m, sched, nil, opts(20, 1))
	require.NoError(t, err)
	b, err := estimate.Estimate(context.Background(), m, sched, anneal.NewRand(anneal.DefaultSeed), opts(20, 1))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestEstimate_LowerTemperatureFavoursLowerEnergy(t *testing.T) {
	m := chain(t)
	// A hot, short schedule so that several levels are observed.
	sched, err := anneal.Linear(0, 0.3, 3)
	require.NoError(t, err)

	var (
		prevGround = -1.0
		hist       estimate.Histogram
	)
	for _, temp := range []float64{10, 3, 1, 0.3, 0.1} {
		d, err := estimate.Estimate(context.Background(), m, sched, anneal.NewRand(12), opts(400, temp))
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(d.Levels), 2)
		if hist == nil {
			hist = d.Histogram()
		} else {
			require.Equal(t, hist, d.Histogram(), "histogram must not depend on T")
		}
		p := d.Ground().Probability
		require.Greater(t, p, prevGround, "T=%g", temp)
		prevGround = p
	}
}

func TestEstimate_ChainReachesGroundState(t *testing.T) {
	sched, err := anneal.Geometric(0.1, 10, 200)
	require.NoError(t, err)
	d, err := estimate.Estimate(context.Background(), chain(t), sched, anneal.NewRand(4), opts(200, 0.5))
	require.NoError(t, err)

	assert.Equal(t, -4.0, d.Ground().Energy)
	assert.Equal(t, -4.0, d.Best.Energy)
	assert.Equal(t, "+--", d.Best.Spins.String())
	assert.Greater(t, d.Ground().Degeneracy, 170)
}

func TestEstimate_Clamped(t *testing.T) {
	sched, err := anneal.Geometric(0.1, 10, 100)
	require.NoError(t, err)
	o := opts(100, 1)
	o.Clamped = map[int]ising.Spin{0: ising.Down}
	d, err := estimate.Estimate(context.Background(), chain(t), sched, anneal.NewRand(6), o)
	require.NoError(t, err)

	assert.Equal(t, -2.0, d.Ground().Energy)
	assert.Equal(t, ising.Down, d.Best.Spins[0])
	for e := range d.Probabilities() {
		assert.Contains(t, []float64{-2, 2}, e)
	}
}

func TestEstimate_Errors(t *testing.T) {
	m := chain(t)
	sched := anneal.Schedule{1}
	ctx := context.Background()

	withClamp := func(c map[int]ising.Spin) estimate.Options {
		o := opts(3, 1)
		o.Clamped = c
		return o
	}
	withWorkers := opts(3, 1)
	withWorkers.Workers = -1
	withPrecision := opts(3, 1)
	withPrecision.Precision = 0

	cases := []struct {
		name  string
		m     *ising.Model
		sched anneal.Schedule
		o     estimate.Options
		want  error
	}{
		{"zero repetitions", m, sched, opts(0, 1), estimate.ErrBadRepetitions},
		{"zero temperature", m, sched, opts(3, 0), estimate.ErrBadTemperature},
		{"negative temperature", m, sched, opts(3, -1), estimate.ErrBadTemperature},
		{"NaN temperature", m, sched, opts(3, math.NaN()), estimate.ErrBadTemperature},
		{"Inf temperature", m, sched, opts(3, math.Inf(1)), estimate.ErrBadTemperature},
		{"negative workers", m, sched, withWorkers, estimate.ErrBadWorkers},
		{"zero precision", m, sched, withPrecision, estimate.ErrBadPrecision},
		{"nil model", nil, sched, opts(3, 1), anneal.ErrNilModel},
		{"empty schedule", m, nil, opts(3, 1), anneal.ErrEmptySchedule},
		{"decreasing schedule", m, anneal.Schedule{2, 1}, opts(3, 1), anneal.ErrBadSchedule},
		{"unknown clamp", m, sched, withClamp(map[int]ising.Spin{3: ising.Up}), ising.ErrUnknownNode},
		{"bad clamp", m, sched, withClamp(map[int]ising.Spin{1: 5}), ising.ErrBadClamp},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rng := anneal.NewRand(8)
			d, err := estimate.Estimate(ctx, tc.m, tc.sched, rng, tc.o)
			require.Nil(t, d)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, ising.ErrInvalidConfiguration)
			require.Equal(t, anneal.NewRand(8).Int63(), rng.Int63(), "rng must be untouched")
		})
	}
}

func TestEstimate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	d, err := estimate.Estimate(ctx, chain(t), anneal.Schedule{1}, nil, opts(10, 1))
	require.Nil(t, d)
	require.ErrorIs(t, err, context.Canceled)
}
