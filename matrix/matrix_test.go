// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstraviz/core"
	"github.com/katalvlaran/dijkstraviz/matrix"
)

var inf = math.Inf(1)

// triangle builds 0→1 (4), 0→2 (1), 2→1 (2), a parallel 0→1 (3), a self-loop
// on 1 and an isolated node 3.
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < 4; i++ {
		g.AddNode()
	}
	for _, e := range []struct {
		from, to core.NodeID
		cost     float64
	}{
		{0, 1, 4}, {0, 2, 1}, {2, 1, 2}, {0, 1, 3}, {1, 1, 7},
	} {
		_, err := g.AddEdge(e.from, e.to, e.cost)
		require.NoError(t, err)
	}

	return g
}

func TestNewDense_Validation(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestDense_AtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 2.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaN)
	require.NoError(t, m.Set(0, 1, inf))

	c := m.Clone()
	require.NoError(t, c.Set(1, 0, 9))
	v, _ = m.At(1, 0)
	require.Equal(t, 2.5, v, "Clone must not alias")

	require.Equal(t, "[0, ∞]\n[2.5, 0]\n", m.String())
}

func TestFromGraph(t *testing.T) {
	_, err := matrix.FromGraph(nil)
	require.ErrorIs(t, err, matrix.ErrGraphNil)

	d, err := matrix.FromGraph(triangle(t))
	require.NoError(t, err)

	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, 1, inf}, row, "cheapest parallel edge wins")

	row, err = d.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{inf, 0, inf, inf}, row, "self-loops are ignored")
}

func TestAllPairs(t *testing.T) {
	d, err := matrix.AllPairs(triangle(t))
	require.NoError(t, err)

	row, err := d.Row(0)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 3, 1, inf}, row, "0→2→1 ties the direct edge")

	row, err = d.Row(2)
	require.NoError(t, err)
	require.Equal(t, []float64{inf, 2, 0, inf}, row)

	row, err = d.Row(3)
	require.NoError(t, err)
	require.Equal(t, []float64{inf, inf, inf, 0}, row)
}

func TestFloydWarshall_Errors(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.FloydWarshall(m), matrix.ErrNonSquare)

	neg, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, neg.Set(0, 1, 1))
	require.NoError(t, neg.Set(1, 0, -2))
	err = matrix.FloydWarshall(neg)
	require.ErrorIs(t, err, matrix.ErrNegativeCycle)
	require.True(t, strings.Contains(err.Error(), "FloydWarshall"))
}

func TestCompare(t *testing.T) {
	d, err := matrix.AllPairs(triangle(t))
	require.NoError(t, err)

	got, err := matrix.Compare(d, 0, []float64{0, 3, 1, inf}, 1e-9)
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = matrix.Compare(d, 0, []float64{0, math.NaN(), 1.5, 7}, 1e-9)
	require.NoError(t, err)
	require.Equal(t, []matrix.Mismatch{
		{Node: 2, Got: 1.5, Want: 1},
		{Node: 3, Got: 7, Want: inf},
	}, got)

	_, err = matrix.Compare(d, 9, nil, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.Compare(d, 0, make([]float64, 5), 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
