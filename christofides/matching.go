package christofides

import (
	"math"

	"github.com/giraldeau/vroom/matrix"
	"github.com/giraldeau/vroom/tspgraph"
)

// greedyMatch performs a deterministic greedy perfect matching on the
// odd-degree vertex set: each round it scans every remaining pair and pairs
// off the single globally lightest one, ties broken lexicographically by
// (min(u,v), max(u,v)), adding the resulting edge into g (turning the MST
// into the Eulerian multigraph). It repeats until at most one vertex
// remains unmatched (the odd-degree set always has even size).
//
// This is not a true minimum-weight perfect matching (that requires
// Edmonds' Blossom algorithm), so the classic Christofides 1.5-factor
// guarantee does not formally hold on this matching step; it is the
// deterministic approximation spec §4.3(3) mandates in its place
// ("repeatedly pair the globally lightest unmatched pair"), and spec §9
// requires its tie-break to be fixed exactly as above so two conforming
// implementations agree bit-for-bit.
//
// Grounded on github.com/katalvlaran/lvlath/tsp/matching.go's greedyMatch,
// restructured from a fixed-anchor nearest-neighbor scan to a global
// minimum-pair scan, adapted from float64 to integer costs, from
// *matrix.Dense weights, and from a raw [][]int adjacency to
// tspgraph.Multigraph.
//
// Complexity: O(k³), k = len(odd): O(k) rounds, each an O(k²) full pair scan.
func greedyMatch(odd []int, dist *matrix.Dense, g *tspgraph.Multigraph) error {
	remaining := append([]int(nil), odd...)
	for len(remaining) > 1 {
		bestI, bestJ, bestD := -1, -1, math.MaxInt64
		var i, j, u, v, d int
		var err error
		for i = 0; i < len(remaining); i++ {
			for j = i + 1; j < len(remaining); j++ {
				u, v = remaining[i], remaining[j]
				if u > v {
					u, v = v, u
				}
				d, err = dist.At(u, v)
				if err != nil {
					return ErrDimensionMismatch
				}
				if d < bestD || (d == bestD && lessPair(u, v, remaining[bestI], remaining[bestJ])) {
					bestD, bestI, bestJ = d, i, j
				}
			}
		}

		u, v = remaining[bestI], remaining[bestJ]
		if err = g.AddEdge(u, v); err != nil {
			return ErrDimensionMismatch
		}

		// Remove bestJ first: it is always the larger index, so removing it
		// first leaves bestI's index valid for the second removal.
		remaining = append(remaining[:bestJ], remaining[bestJ+1:]...)
		remaining = append(remaining[:bestI], remaining[bestI+1:]...)
	}

	return nil
}

// lessPair reports whether pair (u1,v1) sorts before (u2,v2) under the
// lexicographic tie-break (min(u,v), max(u,v)) spec §9 fixes for equal-weight
// candidate pairs. u1<v1 and u2<v2 are assumed already normalized by the
// caller.
func lessPair(u1, v1, u2, v2 int) bool {
	if u1 != u2 {
		return u1 < u2
	}

	return v1 < v2
}
