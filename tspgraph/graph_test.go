package tspgraph_test

import (
	"testing"

	"github.com/giraldeau/vroom/tspgraph"
	"github.com/stretchr/testify/require"
)

func TestAddEdgeAndDegree(t *testing.T) {
	g := tspgraph.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(0, 1)) // parallel edge

	d0, err := g.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 2, d0)

	d1, err := g.Degree(1)
	require.NoError(t, err)
	require.Equal(t, 3, d1)

	d3, err := g.Degree(3)
	require.NoError(t, err)
	require.Equal(t, 0, d3)
}

func TestOddDegreeVertices(t *testing.T) {
	g := tspgraph.New(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 3))

	// degrees: 0:1, 1:2, 2:2, 3:1
	require.Equal(t, []int{0, 3}, g.OddDegreeVertices())
}

func TestRemoveOneEdgeConsumesSingleOccurrence(t *testing.T) {
	g := tspgraph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 1))

	require.NoError(t, g.RemoveOneEdge(0, 1))
	d0, _ := g.Degree(0)
	require.Equal(t, 1, d0)

	require.NoError(t, g.RemoveOneEdge(0, 1))
	d0, _ = g.Degree(0)
	require.Equal(t, 0, d0)
}

func TestVertexOutOfRange(t *testing.T) {
	g := tspgraph.New(2)
	require.ErrorIs(t, g.AddEdge(0, 5), tspgraph.ErrVertexOutOfRange)
	_, err := g.Degree(-1)
	require.ErrorIs(t, err, tspgraph.ErrVertexOutOfRange)
}

func TestCloneIsIndependent(t *testing.T) {
	g := tspgraph.New(2)
	require.NoError(t, g.AddEdge(0, 1))
	clone := g.Clone()
	require.NoError(t, clone.AddEdge(0, 1))

	dOrig, _ := g.Degree(0)
	dClone, _ := clone.Degree(0)
	require.Equal(t, 1, dOrig)
	require.Equal(t, 2, dClone)
}
