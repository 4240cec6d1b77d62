package christofides

import (
	"github.com/giraldeau/vroom/matrix"
	"github.com/giraldeau/vroom/tspgraph"
)

// HookGreedyMatch exposes the unexported greedyMatch to christofides_test,
// mirroring github.com/katalvlaran/lvlath/tsp's HookGreedyMatch pattern.
func HookGreedyMatch(odd []int, dist *matrix.Dense, g *tspgraph.Multigraph) error {
	return greedyMatch(odd, dist, g)
}
