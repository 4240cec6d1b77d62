package christofides

import "github.com/giraldeau/vroom/tspgraph"

// eulerianCircuit returns an Eulerian tour of the undirected multigraph g,
// starting and ending at start, using Hierholzer's algorithm. It walks a
// clone of g so the caller's graph is left untouched.
//
// Grounded on github.com/katalvlaran/lvlath/tsp/eulerian.go, adapted from a
// raw [][]int adjacency to tspgraph.Multigraph's Neighbors/RemoveOneEdge
// (unexported: this is an internal pipeline step, not part of the
// package's public surface).
//
// Complexity: O(E), E = total number of multigraph edges.
func eulerianCircuit(g *tspgraph.Multigraph, start int) []int {
	local := g.Clone()

	var circuit []int
	stack := []int{start}

	for len(stack) > 0 {
		u := stack[len(stack)-1]
		neighbors, _ := local.Neighbors(u)
		if len(neighbors) == 0 {
			circuit = append(circuit, u)
			stack = stack[:len(stack)-1]

			continue
		}

		v := neighbors[len(neighbors)-1]
		_ = local.RemoveOneEdge(u, v)
		stack = append(stack, v)
	}

	return circuit
}
