package christofides

import (
	"math"

	"github.com/giraldeau/vroom/matrix"
	"github.com/giraldeau/vroom/tspgraph"
)

// MinimumSpanningTree computes a minimum spanning tree over the complete
// graph implied by dist using Prim's algorithm, returning it as a
// tspgraph.Multigraph (one edge each way per MST edge) that the matching
// and Eulerian-circuit steps build directly on top of.
//
// Ties are broken deterministically: among candidate vertices with equal
// bestCost, the lowest index wins, and the scan itself proceeds in index
// order, so the result does not depend on map iteration or any other
// non-deterministic source (spec §4.3).
//
// Grounded on github.com/katalvlaran/lvlath/tsp/mst.go, translated from
// float64 to integer costs and from a raw [][]int adjacency to this
// module's tspgraph.Multigraph.
//
// Complexity: O(n²) time, O(n) extra space besides the output.
func MinimumSpanningTree(dist *matrix.Dense) (*tspgraph.Multigraph, error) {
	n := dist.Rows()
	if n != dist.Cols() {
		return nil, ErrDimensionMismatch
	}

	inMST := make([]bool, n)
	bestCost := make([]int, n)
	parent := make([]int, n)
	g := tspgraph.New(n)

	const inf = math.MaxInt64
	var v int
	for v = 0; v < n; v++ {
		bestCost[v] = inf
		parent[v] = -1
	}
	bestCost[0] = 0

	var it int
	var err error
	for it = 0; it < n; it++ {
		u, minW := -1, inf
		for v = 0; v < n; v++ {
			if !inMST[v] && bestCost[v] < minW {
				minW, u = bestCost[v], v
			}
		}
		if u < 0 {
			return nil, ErrIncompleteGraph
		}
		inMST[u] = true
		if parent[u] >= 0 {
			if err = g.AddEdge(u, parent[u]); err != nil {
				return nil, ErrDimensionMismatch
			}
		}

		var w int
		for v = 0; v < n; v++ {
			if inMST[v] {
				continue
			}
			w, err = dist.At(u, v)
			if err != nil {
				return nil, ErrDimensionMismatch
			}
			if w < bestCost[v] {
				bestCost[v] = w
				parent[v] = u
			}
		}
	}

	return g, nil
}
