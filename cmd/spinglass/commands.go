// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/estimate"
	"github.com/katalvlaran/spinglass/graphgen"
	"github.com/katalvlaran/spinglass/ising"
	"github.com/katalvlaran/spinglass/matrix"
)

// best returns the lowest configuration found for m: exhaustively when exact
// is set, otherwise the best of the configured annealing repetitions.
func (e *env) best(c *cli.Context, m *ising.Model, clamped map[int]ising.Spin, exact bool) (anneal.Sample, error) {
	start := time.Now()
	if exact {
		energy, states, err := ising.GroundStates(m, clamped, e.cfg.Estimate.Precision)
		if err != nil {
			return anneal.Sample{}, err
		}
		e.log.Info("Enumerated ground states", "nodes", m.N(), "degeneracy", len(states), "elapsed", time.Since(start))
		return anneal.Sample{Spins: states[0], Energy: energy}, nil
	}
	d, err := e.estimate(c, m, clamped)
	if err != nil {
		return anneal.Sample{}, err
	}
	e.log.Info("Annealed", "nodes", m.N(), "runs", d.Repetitions, "levels", len(d.Levels), "elapsed", time.Since(start))
	return d.Best, nil
}

func (e *env) estimate(c *cli.Context, m *ising.Model, clamped map[int]ising.Spin) (*estimate.Distribution, error) {
	sched, err := e.cfg.Anneal.schedule()
	if err != nil {
		return nil, err
	}
	opts := e.cfg.Estimate.options()
	opts.Clamped = clamped
	e.log.Debug("Estimating", "nodes", m.N(), "sweeps", len(sched), "runs", opts.Repetitions, "workers", opts.Workers)
	return estimate.Estimate(c.Context, m, sched, anneal.NewRand(e.cfg.Anneal.Seed), opts)
}

func maxcutCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "maxcut",
		Usage: "Find a maximum cut of a weighted graph",
		Flags: []cli.Flag{weightsFlag, exactFlag},
		Action: func(c *cli.Context) error {
			p, err := loadProblem(c.Path(weightsFlag.Name))
			if err != nil {
				return err
			}
			m, err := p.maxCut()
			if err != nil {
				return err
			}
			s, err := e.best(c, m, nil, c.Bool(exactFlag.Name))
			if err != nil {
				return err
			}
			renderState(e.out, m, s.Spins, s.Energy, true)
			return nil
		},
	}
}

func clusterCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "cluster",
		Usage: "Split points into two clusters by a maximum cut of their distances",
		Flags: []cli.Flag{pointsFlag, exactFlag},
		Action: func(c *cli.Context) error {
			p, err := loadProblem(c.Path(pointsFlag.Name))
			if err != nil {
				return err
			}
			w, err := p.distances()
			if err != nil {
				return err
			}
			m, err := ising.BuildMaxCut(w)
			if err != nil {
				return err
			}
			s, err := e.best(c, m, nil, c.Bool(exactFlag.Name))
			if err != nil {
				return err
			}
			renderClusters(e.out, p.Points, s.Spins)
			return nil
		},
	}
}

func annealCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "anneal",
		Usage: "Run one annealing pass, optionally with clamped spins",
		Flags: []cli.Flag{problemFlag, clampFlag},
		Action: func(c *cli.Context) error {
			p, err := loadProblem(c.Path(problemFlag.Name))
			if err != nil {
				return err
			}
			m, err := p.model()
			if err != nil {
				return err
			}
			clamped, err := parseClamps(c.StringSlice(clampFlag.Name))
			if err != nil {
				return err
			}
			sched, err := e.cfg.Anneal.schedule()
			if err != nil {
				return err
			}
			start := time.Now()
			s, err := anneal.Anneal(m, clamped, sched, anneal.NewRand(e.cfg.Anneal.Seed))
			if err != nil {
				return err
			}
			e.log.Info("Annealed", "nodes", m.N(), "clamped", len(clamped), "sweeps", len(sched), "elapsed", time.Since(start))
			renderState(e.out, m, s.Spins, s.Energy, len(p.Weights) > 0)
			return nil
		},
	}
}

func estimateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "estimate",
		Usage: "Estimate the Boltzmann distribution over annealed energies",
		Flags: []cli.Flag{problemFlag, clampFlag},
		Action: func(c *cli.Context) error {
			p, err := loadProblem(c.Path(problemFlag.Name))
			if err != nil {
				return err
			}
			m, err := p.model()
			if err != nil {
				return err
			}
			clamped, err := parseClamps(c.StringSlice(clampFlag.Name))
			if err != nil {
				return err
			}
			start := time.Now()
			d, err := e.estimate(c, m, clamped)
			if err != nil {
				return err
			}
			e.log.Info("Estimated distribution", "runs", d.Repetitions, "levels", len(d.Levels), "elapsed", time.Since(start))
			renderDistribution(e.out, d)
			renderState(e.out, m, d.Best.Spins, d.Best.Energy, len(p.Weights) > 0)
			return nil
		},
	}
}

func enumerateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "enumerate",
		Usage: fmt.Sprintf("Exact Boltzmann distribution of a small model (at most %d free spins)", ising.MaxEnumerate),
		Flags: []cli.Flag{problemFlag, clampFlag},
		Action: func(c *cli.Context) error {
			p, err := loadProblem(c.Path(problemFlag.Name))
			if err != nil {
				return err
			}
			m, err := p.model()
			if err != nil {
				return err
			}
			clamped, err := parseClamps(c.StringSlice(clampFlag.Name))
			if err != nil {
				return err
			}
			d, err := estimate.Exact(m, clamped, e.cfg.Estimate.Temperature, e.cfg.Estimate.Precision)
			if err != nil {
				return err
			}
			renderDistribution(e.out, d)
			renderState(e.out, m, d.Best.Spins, d.Best.Energy, len(p.Weights) > 0)
			return nil
		},
	}
}

func generateCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write a weight-matrix problem file for a graph family",
		Flags: []cli.Flag{familyFlag, nodesFlag, probabilityFlag, minWeightFlag, maxWeightFlag},
		Action: func(c *cli.Context) error {
			var (
				n    = c.Int(nodesFlag.Name)
				lo   = c.Float64(minWeightFlag.Name)
				hi   = c.Float64(maxWeightFlag.Name)
				w    *matrix.Dense
				err  error
				opts []graphgen.Option
			)
			if !(lo >= 0) || hi < lo {
				return fmt.Errorf("weights: need 0 <= min-weight <= max-weight, got %g and %g: %w", lo, hi, graphgen.ErrInvalidWeight)
			}
			opts = append(opts, graphgen.WithSeed(e.cfg.Anneal.Seed), graphgen.WithUniformWeight(lo, hi))
			switch family := c.String(familyFlag.Name); family {
			case "complete":
				w, err = graphgen.Complete(n, opts...)
			case "cycle":
				w, err = graphgen.Cycle(n, opts...)
			case "path":
				w, err = graphgen.Path(n, opts...)
			case "star":
				w, err = graphgen.Star(n, opts...)
			case "random":
				w, err = graphgen.RandomSparse(n, c.Float64(probabilityFlag.Name), opts...)
			default:
				return fmt.Errorf("unknown family %q", family)
			}
			if err != nil {
				return err
			}
			out, err := tomlSettings.Marshal(&struct{ Weights [][]float64 }{w.ToRows()})
			if err != nil {
				return err
			}
			_, err = e.out.Write(out)
			return err
		},
	}
}
