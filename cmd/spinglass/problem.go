// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/naoina/toml"

	"github.com/katalvlaran/spinglass/ising"
	"github.com/katalvlaran/spinglass/matrix"
)

var (
	errNoModel   = errors.New("problem file defines neither Weights nor H")
	errNoWeights = errors.New("problem file has no Weights matrix")
	errNoPoints  = errors.New("problem file has no Points")
	errClamp     = errors.New("clamp must look like node=+1 or node=-1")
)

// coupling is one explicit J entry of a problem file.
type coupling struct {
	I, J   int
	Weight float64
}

// problemFile is the TOML problem format. A max-cut problem sets Weights; an
// explicit model sets H and Couplings; a clustering problem sets Points.
type problemFile struct {
	Weights   [][]float64
	H         []float64
	Couplings []coupling
	Points    [][]float64
}

func loadProblem(file string) (*problemFile, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var p problemFile
	err = tomlSettings.NewDecoder(bufio.NewReader(f)).Decode(&p)
	if _, ok := err.(*toml.LineError); ok {
		err = errors.New(file + ", " + err.Error())
	}
	if err != nil {
		return nil, err
	}

	return &p, nil
}

// model builds the Ising model the file describes; Weights take precedence.
func (p *problemFile) model() (*ising.Model, error) {
	switch {
	case len(p.Weights) > 0:
		return ising.BuildMaxCutFromRows(p.Weights)
	case len(p.H) > 0:
		j := make(map[ising.Pair]float64, len(p.Couplings))
		for _, c := range p.Couplings {
			j[ising.Pair{I: c.I, J: c.J}] += c.Weight
		}
		return ising.NewModel(p.H, j)
	default:
		return nil, errNoModel
	}
}

// maxCut builds the max-cut model of the Weights matrix.
func (p *problemFile) maxCut() (*ising.Model, error) {
	if len(p.Weights) == 0 {
		return nil, errNoWeights
	}
	return ising.BuildMaxCutFromRows(p.Weights)
}

// distances returns the Euclidean distance matrix of the Points.
func (p *problemFile) distances() (*matrix.Dense, error) {
	if len(p.Points) == 0 {
		return nil, errNoPoints
	}
	return matrix.PairwiseDistances(p.Points)
}

// parseClamps turns "node=value" pairs into a clamp map. Values accept
// +1, 1, + and up, or -1, - and down.
func parseClamps(specs []string) (map[int]ising.Spin, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	out := make(map[int]ising.Spin, len(specs))
	for _, spec := range specs {
		node, value, ok := strings.Cut(spec, "=")
		if !ok {
			return nil, fmt.Errorf("%q: %w", spec, errClamp)
		}
		v, err := strconv.Atoi(strings.TrimSpace(node))
		if err != nil {
			return nil, fmt.Errorf("%q: %w", spec, errClamp)
		}
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "+1", "1", "+", "up":
			out[v] = ising.Up
		case "-1", "-", "down":
			out[v] = ising.Down
		default:
			return nil, fmt.Errorf("%q: %w", spec, errClamp)
		}
	}

	return out, nil
}
