// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/naoina/toml"
	"github.com/urfave/cli/v2"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/katalvlaran/spinglass/anneal"
	"github.com/katalvlaran/spinglass/estimate"
)

const (
	scheduleLinear    = "linear"
	scheduleGeometric = "geometric"
	defaultLogLevel   = "info"
)

var errUnknownSchedule = errors.New("unknown schedule")

// These settings ensure that TOML keys use the same names as Go struct fields.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string {
		return key
	},
	FieldToKey: func(rt reflect.Type, field string) string {
		return field
	},
	MissingField: func(rt reflect.Type, field string) error {
		id := fmt.Sprintf("%s.%s", rt.String(), field)
		if unicode.IsLower(rune(field[0])) {
			return fmt.Errorf("field %q is not defined in %s (did you mean %q?)",
				field, rt.String(), string(unicode.ToUpper(rune(field[0])))+field[1:])
		}
		return fmt.Errorf("field %q is not defined in %s", id, rt.String())
	},
}

type annealConfig struct {
	Seed      int64
	Sweeps    int
	BetaStart float64
	BetaEnd   float64
	Schedule  string
}

type estimateConfig struct {
	Repetitions int
	Temperature float64
	Precision   float64
	Workers     int
}

type logConfig struct {
	Level string
}

type spinglassConfig struct {
	Anneal   annealConfig
	Estimate estimateConfig
	Log      logConfig
}

func defaultConfig() spinglassConfig {
	return spinglassConfig{
		Anneal: annealConfig{
			Seed:      anneal.DefaultSeed,
			Sweeps:    anneal.DefaultSweeps,
			BetaStart: anneal.DefaultBetaStart,
			BetaEnd:   anneal.DefaultBetaEnd,
			Schedule:  scheduleGeometric,
		},
		Estimate: estimateConfig{
			Repetitions: estimate.DefaultRepetitions,
			Temperature: estimate.DefaultTemperature,
			Precision:   estimate.DefaultPrecision,
		},
		Log: logConfig{Level: defaultLogLevel},
	}
}

func loadConfig(file string, cfg *spinglassConfig) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(cfg)
	// Add file name to errors that have a line number.
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	return err
}

// applyFlags overrides cfg with every flag set on the command line.
func applyFlags(c *cli.Context, cfg *spinglassConfig) {
	if c.IsSet(seedFlag.Name) {
		cfg.Anneal.Seed = c.Int64(seedFlag.Name)
	}
	if c.IsSet(sweepsFlag.Name) {
		cfg.Anneal.Sweeps = c.Int(sweepsFlag.Name)
	}
	if c.IsSet(betaStartFlag.Name) {
		cfg.Anneal.BetaStart = c.Float64(betaStartFlag.Name)
	}
	if c.IsSet(betaEndFlag.Name) {
		cfg.Anneal.BetaEnd = c.Float64(betaEndFlag.Name)
	}
	if c.IsSet(scheduleFlag.Name) {
		cfg.Anneal.Schedule = c.String(scheduleFlag.Name)
	}
	if c.IsSet(repetitionsFlag.Name) {
		cfg.Estimate.Repetitions = c.Int(repetitionsFlag.Name)
	}
	if c.IsSet(temperatureFlag.Name) {
		cfg.Estimate.Temperature = c.Float64(temperatureFlag.Name)
	}
	if c.IsSet(precisionFlag.Name) {
		cfg.Estimate.Precision = c.Float64(precisionFlag.Name)
	}
	if c.IsSet(workersFlag.Name) {
		cfg.Estimate.Workers = c.Int(workersFlag.Name)
	}
	if c.IsSet(logLevelFlag.Name) {
		cfg.Log.Level = c.String(logLevelFlag.Name)
	}
}

// schedule builds the configured cooling schedule.
func (c annealConfig) schedule() (anneal.Schedule, error) {
	switch c.Schedule {
	case scheduleLinear:
		return anneal.Linear(c.BetaStart, c.BetaEnd, c.Sweeps)
	case scheduleGeometric:
		return anneal.Geometric(c.BetaStart, c.BetaEnd, c.Sweeps)
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", errUnknownSchedule, c.Schedule, scheduleLinear, scheduleGeometric)
	}
}

// options maps the estimate section onto estimate.Options.
func (c estimateConfig) options() estimate.Options {
	return estimate.Options{
		Repetitions: c.Repetitions,
		Temperature: c.Temperature,
		Precision:   c.Precision,
		Workers:     c.Workers,
	}
}

// env is the state shared by all commands of one invocation.
type env struct {
	out         io.Writer
	log         *log.Logger
	cfg         spinglassConfig
	undoMaxProc func()
}

// setup resolves the configuration (defaults, then file, then flags) and
// prepares logging and GOMAXPROCS.
func (e *env) setup(c *cli.Context) error {
	if file := c.String(configFileFlag.Name); file != "" {
		if err := loadConfig(file, &e.cfg); err != nil {
			return err
		}
	}
	applyFlags(c, &e.cfg)

	lvl, err := log.ParseLevel(e.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", e.cfg.Log.Level, err)
	}
	e.log.SetLevel(lvl)

	undo, err := maxprocs.Set(maxprocs.Logger(e.log.Debugf))
	if err != nil {
		e.log.Warn("Failed to set GOMAXPROCS", "err", err)
	}
	e.undoMaxProc = undo
	e.log.Debug("Configuration resolved", "seed", e.cfg.Anneal.Seed, "sweeps", e.cfg.Anneal.Sweeps,
		"schedule", e.cfg.Anneal.Schedule, "repetitions", e.cfg.Estimate.Repetitions)

	return nil
}

func (e *env) teardown(*cli.Context) error {
	if e.undoMaxProc != nil {
		e.undoMaxProc()
	}
	return nil
}

func dumpConfigCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Print the effective configuration as TOML",
		Action: func(c *cli.Context) error {
			out, err := tomlSettings.Marshal(&e.cfg)
			if err != nil {
				return err
			}
			_, err = e.out.Write(out)
			return err
		},
	}
}
