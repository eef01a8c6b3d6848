// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spinglass/ising"
)

// Greedy colors the graph given by adjacency lists adj (adj[v] lists v's
// neighbours). Nodes are processed in ascending id; each gets the smallest
// color not used by an already-colored neighbour.
//
// Errors: ErrInvalidAdjacency.
func Greedy(adj [][]int) (*Coloring, error) {
	if err := validateAdjacency(adj); err != nil {
		return nil, err
	}

	var (
		n      = len(adj)
		of     = make([]int, n)
		used   []bool // scratch: used[c] marks colors taken by colored neighbours
		v, c   int
		colors int
		maxDeg int
	)
	for v = 0; v < n; v++ {
		if len(adj[v]) > maxDeg {
			maxDeg = len(adj[v])
		}
	}
	used = make([]bool, maxDeg+1)

	for v = 0; v < n; v++ {
		// Stage 1: mark colors of already-colored (lower id) neighbours.
		for _, u := range adj[v] {
			if u < v {
				used[of[u]] = true
			}
		}
		// Stage 2: smallest free color; at most deg(v) colors are taken,
		// so c never exceeds maxDeg.
		c = 0
		for used[c] {
			c++
		}
		of[v] = c
		if c+1 > colors {
			colors = c + 1
		}
		// Stage 3: reset scratch for the next node.
		for _, u := range adj[v] {
			if u < v {
				used[of[u]] = false
			}
		}
	}

	return newColoring(of, colors), nil
}

// FromModel colors the coupling graph of m: nodes i and j are adjacent iff
// J(i,j) is non-zero. Model adjacency is valid by construction.
func FromModel(m *ising.Model) *Coloring {
	c, err := Greedy(m.NeighborIDs())
	if err != nil {
		// unreachable: ising.Model keeps symmetric, in-range adjacency
		panic(fmt.Sprintf("coloring: model adjacency rejected: %v", err))
	}

	return c
}

// newColoring assembles classes from a per-node color assignment.
func newColoring(of []int, colors int) *Coloring {
	out := &Coloring{
		Classes: make([]mapset.Set[int], colors),
		Order:   make([][]int, colors),
		Of:      of,
	}
	var c int
	for c = 0; c < colors; c++ {
		out.Classes[c] = mapset.NewThreadUnsafeSet[int]()
	}
	for v, col := range of {
		out.Classes[col].Add(v)
		out.Order[col] = append(out.Order[col], v)
	}

	return out
}

// validateAdjacency checks ids are in range, there are no self loops and
// every edge is listed from both ends.
func validateAdjacency(adj [][]int) error {
	n := len(adj)
	sets := make([]mapset.Set[int], n)
	for v := 0; v < n; v++ {
		sets[v] = mapset.NewThreadUnsafeSet[int]()
		for _, u := range adj[v] {
			if u < 0 || u >= n {
				return fmt.Errorf("node %d lists neighbour %d with %d nodes: %w", v, u, n, ErrInvalidAdjacency)
			}
			if u == v {
				return fmt.Errorf("node %d lists itself: %w", v, ErrInvalidAdjacency)
			}
			sets[v].Add(u)
		}
	}
	for v := 0; v < n; v++ {
		for _, u := range adj[v] {
			if !sets[u].Contains(v) {
				return fmt.Errorf("edge %d-%d listed only at %d: %w", v, u, v, ErrInvalidAdjacency)
			}
		}
	}

	return nil
}

// Validate checks that c is a proper coloring of adj: every node has exactly
// one class, classes agree with Of and Order, and no class contains an edge.
func (c *Coloring) Validate(adj [][]int) error {
	if c == nil || len(c.Of) != len(adj) || len(c.Classes) != len(c.Order) {
		return fmt.Errorf("shape mismatch: %w", ErrInvalidColoring)
	}
	var (
		seen  = mapset.NewThreadUnsafeSet[int]()
		total int
	)
	for col, class := range c.Classes {
		if class == nil || class.Cardinality() != len(c.Order[col]) {
			return fmt.Errorf("class %d disagrees with its order: %w", col, ErrInvalidColoring)
		}
		for _, v := range c.Order[col] {
			if v < 0 || v >= len(c.Of) || c.Of[v] != col || !class.Contains(v) {
				return fmt.Errorf("node %d misplaced in class %d: %w", v, col, ErrInvalidColoring)
			}
			seen.Add(v)
			for _, u := range adj[v] {
				if class.Contains(u) {
					return fmt.Errorf("adjacent nodes %d and %d share class %d: %w", v, u, col, ErrInvalidColoring)
				}
			}
		}
		total += class.Cardinality()
	}
	if total != len(c.Of) || seen.Cardinality() != len(c.Of) {
		return fmt.Errorf("classes cover %d of %d nodes: %w", seen.Cardinality(), len(c.Of), ErrInvalidColoring)
	}

	return nil
}
