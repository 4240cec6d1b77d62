package localsearch_test

import (
	"testing"

	"github.com/giraldeau/vroom/localsearch"
	"github.com/stretchr/testify/require"
)

func TestOrOptRelocatesMisplacedVertex(t *testing.T) {
	// Five points on a line: 0,1,2,3,4 at coordinates 0,10,20,30,40. A tour
	// visiting them out of order (0,2,1,3,4) can be fixed by relocating
	// vertex 1 between 0 and 2.
	dist := denseFrom(t, [][]int{
		{0, 10, 20, 30, 40},
		{10, 0, 10, 20, 30},
		{20, 10, 0, 10, 20},
		{30, 20, 10, 0, 10},
		{40, 30, 20, 10, 0},
	})
	tour := []int{0, 2, 1, 3, 4, 0}

	fixed, cost, err := localsearch.OrOpt(dist, tour)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3, 4, 0}, fixed)
	require.Equal(t, 80, cost)
}

func TestOptimizeAlternatesUntilStable(t *testing.T) {
	dist := denseFrom(t, [][]int{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	})
	crossed := []int{0, 2, 1, 3, 0}

	tour, cost, err := localsearch.Optimize(dist, crossed, localsearch.Options{Enable2Opt: true, EnableOrOpt: true})
	require.NoError(t, err)
	require.Equal(t, 4, cost)
	require.Equal(t, 0, tour[0])
}

func TestOptimizeRespectsDisabledMoveKinds(t *testing.T) {
	dist := denseFrom(t, [][]int{
		{0, 1, 2, 1},
		{1, 0, 1, 2},
		{2, 1, 0, 1},
		{1, 2, 1, 0},
	})
	crossed := []int{0, 2, 1, 3, 0}

	tour, cost, err := localsearch.Optimize(dist, crossed, localsearch.Options{Enable2Opt: false, EnableOrOpt: false})
	require.NoError(t, err)
	require.Equal(t, crossed, tour)
	require.Equal(t, 6, cost)
}

func TestOptimizeSingleCityIsNoOp(t *testing.T) {
	dist := denseFrom(t, [][]int{{0}})

	tour, cost, err := localsearch.Optimize(dist, []int{0, 0}, localsearch.Options{Enable2Opt: true, EnableOrOpt: true})
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, tour)
	require.Equal(t, 0, cost)
}
