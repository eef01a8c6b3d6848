// SPDX-License-Identifier: MIT

package estimate

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/ising"
)

// shard is the outcome of one worker: its private histogram and its best run.
type shard struct {
	hist    Histogram
	best    anneal.Sample
	bestRun int
}

// Estimate runs opts.Repetitions independent anneal runs of m under sched and
// weights the observed energies at opts.Temperature. A nil rng uses the
// anneal.DefaultSeed stream.
//
// Errors: ErrBadRepetitions, ErrBadTemperature, ErrBadPrecision, ErrBadWorkers,
// anneal.ErrNilModel, anneal.ErrEmptySchedule, anneal.ErrBadSchedule,
// ising.ErrUnknownNode, ising.ErrBadClamp (all detected before the first run),
// or ctx.Err() when cancelled.
//
// Complexity: O(R · sweeps · (N + E)) work spread over the workers.
func Estimate(ctx context.Context, m *ising.Model, sched anneal.Schedule, rng *rand.Rand, opts Options) (*Distribution, error) {
	// Stage 1: eager validation, nothing is drawn from rng before it passes.
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s, err := anneal.NewSampler(m)
	if err != nil {
		return nil, err
	}
	if err = sched.Validate(); err != nil {
		return nil, err
	}
	if err = m.ValidateClamped(opts.Clamped); err != nil {
		return nil, err
	}

	// Stage 2: one child stream per run, derived in run order.
	if rng == nil {
		rng = anneal.NewRand(0)
	}
	streams := make([]*rand.Rand, opts.Repetitions)
	for r := range streams {
		streams[r] = anneal.DeriveRand(rng, uint64(r))
	}

	// Stage 3: contiguous shards of runs, one per worker.
	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > opts.Repetitions {
		workers = opts.Repetitions
	}
	shards := make([]shard, workers)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	per, rem := opts.Repetitions/workers, opts.Repetitions%workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + per
		if w < rem {
			hi++
		}
		out, first, last := &shards[w], lo, hi
		g.Go(func() error {
			return runShard(gctx, s, sched, opts, streams[first:last], first, out)
		})
		lo = hi
	}
	if err = g.Wait(); err != nil {
		return nil, err
	}

	// Stage 4: reduce. Shards are merged in run order so the earliest best
	// run wins ties.
	var (
		hist    = make(Histogram)
		best    anneal.Sample
		bestRun = -1
	)
	for i := range shards {
		hist.Add(shards[i].hist)
		if bestRun < 0 || shards[i].best.Energy < best.Energy {
			best, bestRun = shards[i].best, shards[i].bestRun
		}
	}

	d, err := FromHistogram(hist, opts.Temperature)
	if err != nil {
		return nil, err
	}
	d.Best = best

	return d, nil
}

// runShard performs the runs of one worker into out.
func runShard(ctx context.Context, s *anneal.Sampler, sched anneal.Schedule, opts Options,
	streams []*rand.Rand, first int, out *shard) error {
	out.hist = make(Histogram)
	out.bestRun = -1
	for k, rng := range streams {
		if err := ctx.Err(); err != nil {
			return err
		}
		sample, err := s.Sample(opts.Clamped, sched, rng)
		if err != nil {
			return fmt.Errorf("run %d: %w", first+k, err)
		}
		out.hist[Round(sample.Energy, opts.Precision)]++
		if out.bestRun < 0 || sample.Energy < out.best.Energy {
			out.best, out.bestRun = sample, first+k
		}
	}

	return nil
}

// FromHistogram normalizes h at temperature t. Counts ≤ 0 are ignored.
//
// Errors: ErrBadTemperature, ErrEmptyHistogram.
func FromHistogram(h Histogram, t float64) (*Distribution, error) {
	if err := validateTemperature(t); err != nil {
		return nil, err
	}

	var (
		levels = make([]Level, 0, len(h))
		total  int
	)
	for _, e := range h.Energies() {
		if c := h[e]; c > 0 {
			levels = append(levels, Level{Energy: e, Degeneracy: c})
			total += c
		}
	}
	if len(levels) == 0 {
		return nil, ErrEmptyHistogram
	}

	// Shift by the lowest energy: the largest weight is g(Emin), never 0 or +Inf.
	var (
		emin = levels[0].Energy
		z    float64
		i    int
	)
	for i = range levels {
		levels[i].Probability = float64(levels[i].Degeneracy) * math.Exp(-(levels[i].Energy-emin)/t)
		z += levels[i].Probability
	}
	for i = range levels {
		levels[i].Probability /= z
	}

	return &Distribution{Levels: levels, Temperature: t, Repetitions: total}, nil
}
