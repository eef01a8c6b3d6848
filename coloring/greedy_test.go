package coloring_test

import (
	"math/rand"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/spinglass/coloring"
	"github.com/katalvlaran/spinglass/ising"
)

// GreedySuite exercises the greedy scheduler on fixed and random graphs.
type GreedySuite struct {
	suite.Suite
}

func TestGreedySuite(t *testing.T) {
	suite.Run(t, new(GreedySuite))
}

// undirected turns an edge list into symmetric adjacency lists over n nodes.
func undirected(n int, edges [][2]int) [][]int {
	adj := make([][]int, n)
	for _, e := range edges {
		adj[e[0]] = append(adj[e[0]], e[1])
		adj[e[1]] = append(adj[e[1]], e[0])
	}
	return adj
}

// TestPath verifies the alternating 0,1,0,1 assignment on a path.
func (s *GreedySuite) TestPath() {
	c, err := coloring.Greedy(undirected(4, [][2]int{{0, 1}, {1, 2}, {2, 3}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 0, 1}, c.Of)
	require.Equal(s.T(), [][]int{{0, 2}, {1, 3}}, c.Order)
	require.True(s.T(), c.Classes[0].Equal(mapset.NewThreadUnsafeSet(0, 2)))
}

// TestTriangle needs three colors.
func (s *GreedySuite) TestTriangle() {
	c, err := coloring.Greedy(undirected(3, [][2]int{{0, 1}, {1, 2}, {0, 2}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2}, c.Of)
	require.Equal(s.T(), 3, c.NumColors())
}

// TestIsolatedNodes get color 0 and share the class with other color-0 nodes.
func (s *GreedySuite) TestIsolatedNodes() {
	c, err := coloring.Greedy(undirected(5, [][2]int{{1, 3}}))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 0, 0, 1, 0}, c.Of)
	require.Equal(s.T(), [][]int{{0, 1, 2, 4}, {3}}, c.Order)
}

// TestEmptyGraph yields no classes.
func (s *GreedySuite) TestEmptyGraph() {
	c, err := coloring.Greedy(nil)
	require.NoError(s.T(), err)
	require.Zero(s.T(), c.NumColors())
	require.Zero(s.T(), c.N())
}

// TestRandomGraphsAreProper checks the partition invariants and determinism.
func (s *GreedySuite) TestRandomGraphsAreProper() {
	rng := rand.New(rand.NewSource(42))
	for iter := 0; iter < 100; iter++ {
		n := 1 + rng.Intn(30)
		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() < 0.2 {
					edges = append(edges, [2]int{i, j})
				}
			}
		}
		adj := undirected(n, edges)

		c, err := coloring.Greedy(adj)
		require.NoError(s.T(), err)
		require.NoError(s.T(), c.Validate(adj))

		union := mapset.NewThreadUnsafeSet[int]()
		total := 0
		for _, class := range c.Classes {
			total += class.Cardinality()
			union = union.Union(class)
		}
		require.Equal(s.T(), n, total, "classes must be disjoint")
		require.Equal(s.T(), n, union.Cardinality(), "classes must cover every node")

		again, err := coloring.Greedy(adj)
		require.NoError(s.T(), err)
		require.Equal(s.T(), c.Of, again.Of)
	}
}

// TestFromModel colors the coupling graph of an Ising model.
func (s *GreedySuite) TestFromModel() {
	m, err := ising.NewModel([]float64{1, 1, 1}, map[ising.Pair]float64{
		{I: 0, J: 1}: 2,
		{I: 1, J: 2}: -1,
	})
	require.NoError(s.T(), err)
	c := coloring.FromModel(m)
	require.Equal(s.T(), []int{0, 1, 0}, c.Of)
	require.NoError(s.T(), c.Validate(m.NeighborIDs()))
}

// TestInvalidAdjacency rejects malformed lists.
func (s *GreedySuite) TestInvalidAdjacency() {
	for name, adj := range map[string][][]int{
		"out of range": {{1}, {0, 2}},
		"self loop":    {{0}},
		"asymmetric":   {{1}, {}},
		"negative":     {{-1}},
	} {
		_, err := coloring.Greedy(adj)
		require.ErrorIs(s.T(), err, coloring.ErrInvalidAdjacency, name)
		require.ErrorIs(s.T(), err, ising.ErrInvalidInput, name)
	}
}

// TestValidateRejectsBadColorings covers each invariant of Validate.
func (s *GreedySuite) TestValidateRejectsBadColorings() {
	adj := undirected(3, [][2]int{{0, 1}})

	sameClass := &coloring.Coloring{
		Classes: []mapset.Set[int]{mapset.NewThreadUnsafeSet(0, 1, 2)},
		Order:   [][]int{{0, 1, 2}},
		Of:      []int{0, 0, 0},
	}
	require.ErrorIs(s.T(), sameClass.Validate(adj), coloring.ErrInvalidColoring)

	missing := &coloring.Coloring{
		Classes: []mapset.Set[int]{mapset.NewThreadUnsafeSet(0, 2), mapset.NewThreadUnsafeSet[int]()},
		Order:   [][]int{{0, 2}, {}},
		Of:      []int{0, 1, 0},
	}
	require.ErrorIs(s.T(), missing.Validate(adj), coloring.ErrInvalidColoring)

	require.ErrorIs(s.T(), (*coloring.Coloring)(nil).Validate(adj), ising.ErrInvalidConfiguration)
}
