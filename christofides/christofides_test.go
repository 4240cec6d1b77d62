package christofides_test

import (
	"testing"

	"github.com/giraldeau/vroom/christofides"
	"github.com/stretchr/testify/require"
)

func TestSolveTinySquare(t *testing.T) {
	// Unit square: (0,0),(1,0),(1,1),(0,1) with integer distances (edges 1,
	// diagonals 2 to keep the example integral).
	dist := denseFrom(t, [][]int{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	})

	res, err := christofides.Solve(dist, 0)
	require.NoError(t, err)
	require.NoError(t, christofides.ValidateTour(res.Tour, 4, 0))
	require.Equal(t, 0, res.Tour[0])
	require.Equal(t, 0, res.Tour[len(res.Tour)-1])

	cost, err := christofides.TourCost(dist, res.Tour)
	require.NoError(t, err)
	require.Equal(t, res.Cost, cost)
	// The optimal Hamiltonian cycle on this instance costs 4 (all unit edges).
	require.Equal(t, 4, res.Cost)
}

func TestSolveRejectsInvalidStart(t *testing.T) {
	dist := denseFrom(t, [][]int{
		{0, 1},
		{1, 0},
	})
	_, err := christofides.Solve(dist, 5)
	require.ErrorIs(t, err, christofides.ErrStartOutOfRange)
}

func TestSolveSingleCityInstance(t *testing.T) {
	// A one-city instance is well-formed (spec §4.3, §8): it returns the
	// degenerate closed tour [0, 0] at cost 0, not an error.
	dist := denseFrom(t, [][]int{{0}})
	res, err := christofides.Solve(dist, 0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, res.Tour)
	require.Equal(t, 0, res.Cost)
}
