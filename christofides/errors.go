// Package christofides implements the Christofides constructive heuristic
// for the symmetric metric TSP: minimum spanning tree, greedy perfect
// matching on odd-degree vertices (not a true minimum-weight matching),
// Eulerian circuit, and shortcutting to a Hamiltonian tour.
//
// Grounded on github.com/katalvlaran/lvlath/tsp's mst.go, matching.go,
// eulerian.go, tour.go and approx.go, adapted from float64 costs to the
// bit-exact integer costs this module requires, and from the teacher's
// string-keyed Options struct to a plain integer distance matrix.
package christofides

import "errors"

var (
	// ErrDimensionMismatch is returned when a distance matrix is not square,
	// or a tour/permutation does not match the expected vertex count.
	ErrDimensionMismatch = errors.New("christofides: dimension mismatch")

	// ErrIncompleteGraph is returned when Prim's algorithm cannot reach
	// every vertex, i.e. the instance is not a complete graph.
	ErrIncompleteGraph = errors.New("christofides: incomplete graph, MST cannot span all vertices")

	// ErrStartOutOfRange is returned when a requested start vertex falls
	// outside [0, n).
	ErrStartOutOfRange = errors.New("christofides: start vertex out of range")

	// ErrEmptyInstance is returned when n < 1 (a distance matrix with no
	// vertices at all). A single-city instance (n == 1) is well-formed and
	// does not trigger this error (spec §4.3, §8).
	ErrEmptyInstance = errors.New("christofides: instance has no vertices")
)
