// SPDX-License-Identifier: MIT

package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/estimate"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:  "config",
		Usage: "TOML configuration file",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Usage: "log level (debug, info, warn, error)",
		Value: defaultLogLevel,
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Usage: "base random seed (0 selects the default seed)",
		Value: anneal.DefaultSeed,
	}
	sweepsFlag = &cli.IntFlag{
		Name:  "sweeps",
		Usage: "sweeps per annealing run",
		Value: anneal.DefaultSweeps,
	}
	betaStartFlag = &cli.Float64Flag{
		Name:  "beta-start",
		Usage: "inverse temperature of the first sweep",
		Value: anneal.DefaultBetaStart,
	}
	betaEndFlag = &cli.Float64Flag{
		Name:  "beta-end",
		Usage: "inverse temperature of the last sweep",
		Value: anneal.DefaultBetaEnd,
	}
	scheduleFlag = &cli.StringFlag{
		Name:  "schedule",
		Usage: "cooling schedule: linear or geometric",
		Value: scheduleGeometric,
	}
	repetitionsFlag = &cli.IntFlag{
		Name:    "repetitions",
		Aliases: []string{"r"},
		Usage:   "independent annealing runs",
		Value:   estimate.DefaultRepetitions,
	}
	temperatureFlag = &cli.Float64Flag{
		Name:    "temperature",
		Aliases: []string{"T"},
		Usage:   "readout temperature of the Boltzmann weights",
		Value:   estimate.DefaultTemperature,
	}
	precisionFlag = &cli.Float64Flag{
		Name:  "precision",
		Usage: "energy rounding step for the histogram",
		Value: estimate.DefaultPrecision,
	}
	workersFlag = &cli.IntFlag{
		Name:  "workers",
		Usage: "parallel annealing runs (0 = GOMAXPROCS)",
	}

	globalFlags = []cli.Flag{
		configFileFlag,
		logLevelFlag,
		seedFlag,
		sweepsFlag,
		betaStartFlag,
		betaEndFlag,
		scheduleFlag,
		repetitionsFlag,
		temperatureFlag,
		precisionFlag,
		workersFlag,
	}
)

var (
	problemFlag = &cli.PathFlag{
		Name:     "problem",
		Aliases:  []string{"p"},
		Usage:    "TOML problem file (Weights, or H and Couplings)",
		Required: true,
	}
	weightsFlag = &cli.PathFlag{
		Name:     "weights",
		Aliases:  []string{"w"},
		Usage:    "TOML problem file with a Weights matrix",
		Required: true,
	}
	pointsFlag = &cli.PathFlag{
		Name:     "points",
		Usage:    "TOML problem file with Points",
		Required: true,
	}
	clampFlag = &cli.StringSliceFlag{
		Name:  "clamp",
		Usage: "fix a spin, node=+1 or node=-1 (repeatable)",
	}
	exactFlag = &cli.BoolFlag{
		Name:  "exact",
		Usage: "enumerate every configuration instead of annealing",
	}
	familyFlag = &cli.StringFlag{
		Name:  "family",
		Usage: "graph family: complete, cycle, path, star, random",
		Value: "random",
	}
	nodesFlag = &cli.IntFlag{
		Name:  "n",
		Usage: "number of nodes",
		Value: 10,
	}
	probabilityFlag = &cli.Float64Flag{
		Name:  "prob",
		Usage: "edge probability of the random family",
		Value: 0.5,
	}
	minWeightFlag = &cli.Float64Flag{
		Name:  "min-weight",
		Usage: "lower bound of uniform edge weights",
		Value: 1,
	}
	maxWeightFlag = &cli.Float64Flag{
		Name:  "max-weight",
		Usage: "upper bound of uniform edge weights",
		Value: 1,
	}
)
