// SPDX-License-Identifier: MIT

package coloring

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/spinglass/ising"
)

var (
	// ErrInvalidAdjacency indicates malformed adjacency lists.
	ErrInvalidAdjacency = fmt.Errorf("%w: coloring: invalid adjacency", ising.ErrInvalidInput)

	// ErrInvalidColoring indicates a coloring that is not a proper partition
	// of the node set into independent sets.
	ErrInvalidColoring = fmt.Errorf("%w: coloring: invalid coloring", ising.ErrInvalidConfiguration)
)

// Coloring is a partition of nodes 0..N-1 into color classes.
//
//   - Classes[c] is the set of nodes with color c.
//   - Order[c] lists the same nodes in ascending id, for deterministic sweeps.
//   - Of[v] is the color of node v.
//
// A Coloring is read-only once returned and may be shared between goroutines.
type Coloring struct {
	Classes []mapset.Set[int]
	Order   [][]int
	Of      []int
}

// NumColors returns the number of classes.
func (c *Coloring) NumColors() int { return len(c.Order) }

// N returns the number of colored nodes.
func (c *Coloring) N() int { return len(c.Of) }
