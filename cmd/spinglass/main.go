// SPDX-License-Identifier: MIT

// spinglass is the command-line front end of the sampling pipeline: it builds
// max-cut and explicit Ising models from TOML problem files, anneals them,
// estimates or enumerates their energy distributions, and splits point sets
// into two clusters.
package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the CLI with args (program name first) and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := newApp(stdout, stderr)
	if err := app.RunContext(ctx, args); err != nil {
		log.NewWithOptions(stderr, log.Options{Prefix: "spinglass"}).Error("command failed", "err", err)
		return 1
	}

	return 0
}

// newApp wires flags, configuration and commands around one env.
func newApp(stdout, stderr io.Writer) *cli.App {
	e := &env{out: stdout, cfg: defaultConfig()}
	e.log = log.NewWithOptions(stderr, log.Options{Prefix: "spinglass"})

	return &cli.App{
		Name:                 "spinglass",
		Usage:                "max-cut Ising models, clamped simulated annealing and Boltzmann estimates",
		Writer:               stdout,
		ErrWriter:            stderr,
		Flags:                globalFlags,
		Before:               e.setup,
		After:                e.teardown,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			maxcutCommand(e),
			clusterCommand(e),
			annealCommand(e),
			estimateCommand(e),
			enumerateCommand(e),
			generateCommand(e),
			dumpConfigCommand(e),
		},
	}
}
