// Solve runs the Christofides constructive heuristic end to end: minimum
// spanning tree, greedy matching on odd-degree vertices, Eulerian circuit,
// and shortcutting to a Hamiltonian tour.
//
// Grounded on github.com/katalvlaran/lvlath/tsp/approx.go's TSPApprox,
// simplified to this module's single fixed pipeline (no Options-driven
// algorithm/matching selection: spec §4.3 fixes the pipeline exactly).
package christofides

import "github.com/giraldeau/vroom/matrix"

// Result holds a constructed tour and its integer cost.
type Result struct {
	Tour []int
	Cost int
}

// Solve builds a Christofides tour starting and ending at start.
//
// Contract: dist is a validated n×n symmetric, zero-diagonal, non-negative
// matrix (see matrix.Dense.ValidateSymmetric), n >= 1, 0 <= start < n. A
// single-city instance (n == 1) is well-formed and returns the degenerate
// tour [0, 0] at cost 0 rather than an error (spec §4.3, §8).
//
// Complexity: O(n²) for the MST plus O(k³) for the greedy matching over the
// k odd-degree vertices, so O(n³) in the worst case.
func Solve(dist *matrix.Dense, start int) (Result, error) {
	n := dist.Rows()
	if n < 1 {
		return Result{}, ErrEmptyInstance
	}
	if start < 0 || start >= n {
		return Result{}, ErrStartOutOfRange
	}

	mstAdj, err := MinimumSpanningTree(dist)
	if err != nil {
		return Result{}, err
	}

	odd := mstAdj.OddDegreeVertices()

	if err = greedyMatch(odd, dist, mstAdj); err != nil {
		return Result{}, err
	}

	euler := eulerianCircuit(mstAdj, start)

	tour, err := ShortcutEulerianToHamiltonian(euler, n, start)
	if err != nil {
		return Result{}, err
	}

	if err = ValidateTour(tour, n, start); err != nil {
		return Result{}, err
	}

	cost, err := TourCost(dist, tour)
	if err != nil {
		return Result{}, err
	}

	return Result{Tour: tour, Cost: cost}, nil
}
