// Package emit renders a solved tour as JSON, matching the output contract
// of spec §6: "route" (coordinate pairs, coordinate-based instances only),
// "tour" (1-based vertex ranks), and "cost".
//
// Grounded on original_source/src/loaders/tsplib_loader.h's get_route,
// which only emits the "route" key when the instance's edge-weight type is
// coordinate-based (i.e. not EXPLICIT), and always emits "tour" as 1-based
// ranks rather than 0-based indices; translated here from hand-built
// string concatenation to encoding/json struct tags, per this module's
// JSON conventions (github.com/azaryc2s-bch_hmmmtsp's MTSPSolution uses the
// same struct-tag style for its own JSON output).
package emit

import (
	"encoding/json"
	"io"

	"github.com/giraldeau/vroom/tsplib"
)

// Point is a coordinate pair for the "route" field.
type Point struct {
	X float64
	Y float64
}

// MarshalJSON renders a Point as a two-element JSON array [x, y], matching
// the original loader's "[x,y]" route entries.
func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]float64{p.X, p.Y})
}

// Solution is the top-level JSON document written to the output file.
type Solution struct {
	Route []Point `json:"route,omitempty"`
	Tour  []int   `json:"tour"`
	Cost  int     `json:"cost"`
}

// BuildSolution assembles a Solution from a closed 0-based tour (length
// N+1, tour[N] == tour[0], the internal convention used throughout
// christofides/localsearch), its cost, and the instance it was computed
// against. The closing element is dropped before emitting: spec §6 defines
// "tour" as an array of exactly N 1-based ranks, with no repeated city.
// "route" is populated only when nodes is non-nil (coordinate-based
// instances); "tour" is always emitted as 1-based ranks.
func BuildSolution(tour []int, cost int, nodes []tsplib.Node) Solution {
	sol := Solution{Cost: cost}

	open := tour
	if len(open) > 1 && open[len(open)-1] == open[0] {
		open = open[:len(open)-1]
	}

	sol.Tour = make([]int, len(open))
	var i int
	for i = range open {
		sol.Tour[i] = open[i] + 1
	}

	if nodes != nil {
		sol.Route = make([]Point, len(open))
		for i = range open {
			n := nodes[open[i]]
			sol.Route[i] = Point{X: n.X, Y: n.Y}
		}
	}

	return sol
}

// Write serializes sol as indented JSON to w.
func Write(w io.Writer, sol Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(sol)
}
