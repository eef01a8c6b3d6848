// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/spinglass/estimate"
	"github.com/katalvlaran/spinglass/ising"
)

var (
	upSpin   = color.New(color.FgGreen, color.Bold).SprintFunc()
	downSpin = color.New(color.FgRed).SprintFunc()
)

// spins renders a configuration as a row of colored +/- runes.
func spins(c ising.Config) string {
	var b strings.Builder
	for _, s := range c {
		if s == ising.Up {
			b.WriteString(upSpin("+"))
		} else {
			b.WriteString(downSpin("-"))
		}
	}
	return b.String()
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', 10, 64)
}

func itoas(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_RIGHT)
	return table
}

// renderState prints a key/value summary of one configuration. For max-cut
// models the cut value and the two sides are included.
func renderState(w io.Writer, m *ising.Model, c ising.Config, energy float64, maxcut bool) {
	table := newTable(w, "Field", "Value")
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"Nodes", strconv.Itoa(m.N())})
	table.Append([]string{"Spins", spins(c)})
	table.Append([]string{"Energy", ftoa(energy)})
	if maxcut {
		cut := m.Offset() - energy/2
		up, down, _ := m.Partition(c)
		table.Append([]string{"Offset", ftoa(m.Offset())})
		table.Append([]string{"Cut", ftoa(cut)})
		table.Append([]string{"Up", itoas(up)})
		table.Append([]string{"Down", itoas(down)})
	}
	table.Render()
}

// renderDistribution prints one row per energy level.
func renderDistribution(w io.Writer, d *estimate.Distribution) {
	table := newTable(w, "Energy", "Degeneracy", "Probability")
	for _, l := range d.Levels {
		table.Append([]string{ftoa(l.Energy), strconv.Itoa(l.Degeneracy), fmt.Sprintf("%.6f", l.Probability)})
	}
	table.SetFooter([]string{"T=" + ftoa(d.Temperature), "Σ " + strconv.Itoa(d.Repetitions), ""})
	table.Render()
}

// renderClusters prints each point with its side of the cut. Side A is the
// side of point 0.
func renderClusters(w io.Writer, points [][]float64, c ising.Config) {
	table := newTable(w, "Point", "Coordinates", "Cluster")
	for i, p := range points {
		coords := make([]string, len(p))
		for d, x := range p {
			coords[d] = ftoa(x)
		}
		side := "A"
		if c[i] != c[0] {
			side = "B"
		}
		table.Append([]string{strconv.Itoa(i), "(" + strings.Join(coords, ", ") + ")", side})
	}
	table.Render()
}
