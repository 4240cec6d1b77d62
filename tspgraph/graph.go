// Package tspgraph provides a small int-indexed multigraph used as the
// working structure for the Christofides pipeline: it holds the MST edges,
// then the matching edges are added on top of it (possibly duplicating an
// existing MST edge), producing the Eulerian multigraph that Hierholzer's
// algorithm consumes.
//
// Grounded on github.com/katalvlaran/lvlath/core's adjacency-list Graph
// (map-of-maps keyed by vertex ID), simplified to int vertex indices and
// slice-based adjacency to match the dense [0..n) vertex numbering used
// throughout this module, and to preserve multi-edges without an ID map —
// exactly the adj [][]int convention already used by the teacher's
// tsp/mst.go, tsp/matching.go and tsp/eulerian.go.
package tspgraph

import "errors"

// ErrVertexOutOfRange is returned when a vertex index falls outside [0, n).
var ErrVertexOutOfRange = errors.New("tspgraph: vertex index out of range")

// Multigraph is an undirected multigraph over vertices [0, n), stored as
// adjacency lists that may contain duplicate neighbor entries (multi-edges).
// It carries no edge weights: weights live in the distance matrix that
// produced its edges, not in the graph structure itself.
type Multigraph struct {
	n   int
	adj [][]int
}

// New returns an empty Multigraph over n vertices.
func New(n int) *Multigraph {
	return &Multigraph{n: n, adj: make([][]int, n)}
}

// Vertices returns the number of vertices in the graph.
func (g *Multigraph) Vertices() int { return g.n }

// Degree returns the number of edge-endpoints incident to v, counting
// multi-edges and self-loops twice as TSPLIB graph theory requires.
func (g *Multigraph) Degree(v int) (int, error) {
	if v < 0 || v >= g.n {
		return 0, ErrVertexOutOfRange
	}

	return len(g.adj[v]), nil
}

// Neighbors returns the (possibly repeated) neighbor list of v, in
// insertion order. The returned slice must not be mutated by the caller.
func (g *Multigraph) Neighbors(v int) ([]int, error) {
	if v < 0 || v >= g.n {
		return nil, ErrVertexOutOfRange
	}

	return g.adj[v], nil
}

// AddEdge inserts an undirected edge u–v, appending to both adjacency
// lists. Repeated calls with the same (u, v) create parallel edges.
func (g *Multigraph) AddEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)

	return nil
}

// RemoveOneEdge deletes a single u–v edge (one occurrence in each
// adjacency list), used by Eulerian-circuit extraction to consume edges as
// they are walked. It is a no-op if no such edge exists.
func (g *Multigraph) RemoveOneEdge(u, v int) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return ErrVertexOutOfRange
	}
	g.adj[u] = removeFirst(g.adj[u], v)
	g.adj[v] = removeFirst(g.adj[v], u)

	return nil
}

func removeFirst(xs []int, x int) []int {
	var i int
	for i = range xs {
		if xs[i] == x {
			return append(xs[:i], xs[i+1:]...)
		}
	}

	return xs
}

// OddDegreeVertices returns every vertex with odd degree, in ascending
// order, per the standard Christofides pre-matching step.
func (g *Multigraph) OddDegreeVertices() []int {
	odd := make([]int, 0, g.n/2+1)
	var v int
	for v = 0; v < g.n; v++ {
		if len(g.adj[v])%2 == 1 {
			odd = append(odd, v)
		}
	}

	return odd
}

// Clone returns a deep copy of the graph's adjacency lists.
func (g *Multigraph) Clone() *Multigraph {
	out := &Multigraph{n: g.n, adj: make([][]int, g.n)}
	var v int
	for v = 0; v < g.n; v++ {
		out.adj[v] = append([]int(nil), g.adj[v]...)
	}

	return out
}
