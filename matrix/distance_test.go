package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spinglass/matrix"
)

func TestPairwiseDistances_345(t *testing.T) {
	m, err := matrix.PairwiseDistances([][]float64{{0, 0}, {3, 4}, {0, 4}})
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())

	rows := m.ToRows()
	require.InDelta(t, 5.0, rows[0][1], 1e-12)
	require.InDelta(t, 4.0, rows[0][2], 1e-12)
	require.InDelta(t, 3.0, rows[1][2], 1e-12)
	for i := 0; i < 3; i++ {
		require.Zero(t, rows[i][i])
	}
	require.NoError(t, matrix.ValidateWeights(m, 0))
}

func TestPairwiseDistances_Errors(t *testing.T) {
	_, err := matrix.PairwiseDistances(nil)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.PairwiseDistances([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.PairwiseDistances([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.PairwiseDistances([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
