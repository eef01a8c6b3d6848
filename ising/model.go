// SPDX-License-Identifier: MIT

// Package ising - the immutable Model and its energy arithmetic.
//
// Storage:
//   - h: dense bias vector, len == N.
//   - terms: couplings sorted by (I, J) asc; zero weights dropped. All energy
//     sums iterate terms in this order so results do not depend on map order.
//   - adj: per-node adjacency lists (ascending neighbour id), built once.
//
// Complexity quicksheet:
//   - NewModel: O(N + E log E); Energy/CutValue: O(N + E); FlipDelta: O(deg v).

package ising

import (
	"fmt"
	"math"
	"sort"
)

// Model is an Ising model: biases h, couplings J over pairs i<j, and an
// additive offset. It is read-only after construction.
type Model struct {
	h      []float64
	terms  []Term
	index  map[Pair]int // Pair -> position in terms
	adj    [][]Edge
	offset float64
}

// NewModel builds a model over len(h) nodes with the given couplings.
// Pairs may be given in either order; NewPair normalization is applied, and
// couplings for the same unordered pair are summed. Zero couplings are dropped.
//
// Errors: ErrEmptyModel, ErrNodeOutOfRange, ErrSelfCoupling, ErrNonFinite
// (all ErrInvalidInput).
func NewModel(h []float64, couplings map[Pair]float64) (*Model, error) {
	return newModel(h, couplings, 0)
}

// newModel validates and assembles a model. The bias slice is copied.
func newModel(h []float64, couplings map[Pair]float64, offset float64) (*Model, error) {
	n := len(h)
	if n == 0 {
		return nil, ErrEmptyModel
	}
	var i int
	for i = 0; i < n; i++ {
		if math.IsNaN(h[i]) || math.IsInf(h[i], 0) {
			return nil, fmt.Errorf("bias of node %d: %w", i, ErrNonFinite)
		}
	}

	merged := make(map[Pair]float64, len(couplings))
	for p, w := range couplings {
		if p.I < 0 || p.J < 0 || p.I >= n || p.J >= n {
			return nil, fmt.Errorf("coupling (%d,%d) with %d nodes: %w", p.I, p.J, n, ErrNodeOutOfRange)
		}
		if p.I == p.J {
			return nil, fmt.Errorf("coupling (%d,%d): %w", p.I, p.J, ErrSelfCoupling)
		}
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("coupling (%d,%d): %w", p.I, p.J, ErrNonFinite)
		}
		merged[NewPair(p.I, p.J)] += w
	}

	m := &Model{
		h:      make([]float64, n),
		terms:  make([]Term, 0, len(merged)),
		adj:    make([][]Edge, n),
		offset: offset,
	}
	copy(m.h, h)
	for p, w := range merged {
		if w == 0 {
			continue
		}
		m.terms = append(m.terms, Term{Pair: p, Weight: w})
	}
	sort.Slice(m.terms, func(a, b int) bool {
		if m.terms[a].I != m.terms[b].I {
			return m.terms[a].I < m.terms[b].I
		}
		return m.terms[a].J < m.terms[b].J
	})

	m.index = make(map[Pair]int, len(m.terms))
	for i = range m.terms {
		t := m.terms[i]
		m.index[t.Pair] = i
		m.adj[t.I] = append(m.adj[t.I], Edge{To: t.J, Weight: t.Weight})
		m.adj[t.J] = append(m.adj[t.J], Edge{To: t.I, Weight: t.Weight})
	}
	for i = 0; i < n; i++ {
		sort.Slice(m.adj[i], func(a, b int) bool { return m.adj[i][a].To < m.adj[i][b].To })
	}

	return m, nil
}

// N returns the node count.
func (m *Model) N() int { return len(m.h) }

// Offset returns the additive constant carried with the model.
func (m *Model) Offset() float64 { return m.offset }

// Bias returns h(i), or 0 for ids outside the model.
func (m *Model) Bias(i int) float64 {
	if i < 0 || i >= len(m.h) {
		return 0
	}

	return m.h[i]
}

// Biases returns a copy of the bias vector.
func (m *Model) Biases() []float64 {
	out := make([]float64, len(m.h))
	copy(out, m.h)

	return out
}

// Coupling returns J(i,j) in either argument order, 0 when absent.
func (m *Model) Coupling(i, j int) float64 {
	k, ok := m.index[NewPair(i, j)]
	if !ok {
		return 0
	}

	return m.terms[k].Weight
}

// Terms returns a copy of the couplings in canonical (I, J) ascending order.
func (m *Model) Terms() []Term {
	out := make([]Term, len(m.terms))
	copy(out, m.terms)

	return out
}

// Couplings returns the couplings as a fresh map.
func (m *Model) Couplings() map[Pair]float64 {
	out := make(map[Pair]float64, len(m.terms))
	for _, t := range m.terms {
		out[t.Pair] = t.Weight
	}

	return out
}

// Adjacency returns the per-node adjacency lists, ascending by neighbour id.
// The returned slices are shared with the model and must not be modified.
func (m *Model) Adjacency() [][]Edge { return m.adj }

// NeighborIDs returns the adjacency as plain node-id lists (fresh slices).
func (m *Model) NeighborIDs() [][]int {
	out := make([][]int, len(m.adj))
	for v, edges := range m.adj {
		ids := make([]int, len(edges))
		for k, e := range edges {
			ids[k] = e.To
		}
		out[v] = ids
	}

	return out
}

// Energy returns Σ h(i)·s(i) + Σ_{i<j} J(i,j)·s(i)·s(j).
// Errors: ErrConfigLength, ErrBadSpinValue.
func (m *Model) Energy(c Config) (float64, error) {
	if err := c.Validate(len(m.h)); err != nil {
		return 0, err
	}

	return m.energy(c), nil
}

// energy is Energy without validation; c must match the model.
func (m *Model) energy(c Config) float64 {
	var (
		e float64
		i int
	)
	for i = 0; i < len(m.h); i++ {
		e += m.h[i] * float64(c[i])
	}
	for _, t := range m.terms {
		e += t.Weight * float64(c[t.I]*c[t.J])
	}

	return e
}

// EnergyUnchecked is Energy for callers that already validated c against
// the model (samplers in their inner loop). It does not check c.
func (m *Model) EnergyUnchecked(c Config) float64 { return m.energy(c) }

// FlipDelta returns the energy change caused by flipping node v alone:
//
//	Δ = -2·s(v)·(h(v) + Σ_u J(v,u)·s(u))
//
// c must be a valid configuration for m and v in range.
func (m *Model) FlipDelta(c Config, v int) float64 {
	return -2 * float64(c[v]) * (m.h[v] + m.LocalField(c, v))
}

// LocalField returns Σ_u J(v,u)·s(u) over v's neighbours.
func (m *Model) LocalField(c Config, v int) float64 {
	var f float64
	for _, e := range m.adj[v] {
		f += e.Weight * float64(c[e.To])
	}

	return f
}

// CutValue returns the total coupling weight between nodes of opposite spin.
// For max-cut models CutValue(s) == Offset() - Energy(s)/2.
func (m *Model) CutValue(c Config) (float64, error) {
	if err := c.Validate(len(m.h)); err != nil {
		return 0, err
	}
	var cut float64
	for _, t := range m.terms {
		if c[t.I] != c[t.J] {
			cut += t.Weight
		}
	}

	return cut, nil
}

// Partition splits node ids by spin: up holds +1 nodes, down holds -1 nodes,
// both ascending.
func (m *Model) Partition(c Config) (up, down []int, err error) {
	if err = c.Validate(len(m.h)); err != nil {
		return nil, nil, err
	}
	for i, s := range c {
		if s == Up {
			up = append(up, i)
		} else {
			down = append(down, i)
		}
	}

	return up, down, nil
}

// ValidateClamped checks every clamp refers to an existing node and holds ±1.
// Errors: ErrUnknownNode, ErrBadClamp (both ErrInvalidConfiguration).
func (m *Model) ValidateClamped(clamped map[int]Spin) error {
	for v, s := range clamped {
		if v < 0 || v >= len(m.h) {
			return fmt.Errorf("clamp on node %d with %d nodes: %w", v, len(m.h), ErrUnknownNode)
		}
		if !s.Valid() {
			return fmt.Errorf("clamp on node %d = %d: %w", v, s, ErrBadClamp)
		}
	}

	return nil
}
