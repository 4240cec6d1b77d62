// Tour utilities shared by the Christofides pipeline and the local-search
// package: validating a closed Hamiltonian cycle, shortcutting an Eulerian
// walk into one, and summing its integer cost.
//
// Grounded on github.com/katalvlaran/lvlath/tsp/tour.go and tsp/cost.go,
// translated from float64 (with 1e-9 cost stabilization) to plain integer
// arithmetic, which needs no stabilization.
package christofides

import "github.com/giraldeau/vroom/matrix"

// ValidateTour enforces Hamiltonian-cycle invariants: len(tour) == n+1,
// tour[0] == tour[n] == start, and every vertex in [0, n) appears exactly
// once among tour[0:n].
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 {
		return ErrDimensionMismatch
	}
	if len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}

	seen := make([]bool, n)
	var i, v int
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return ErrDimensionMismatch
		}
		if seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// ShortcutEulerianToHamiltonian converts an Eulerian vertex sequence (with
// revisits) into a Hamiltonian cycle by skipping repeats after their first
// occurrence, then rotates the result so it starts and ends at start.
func ShortcutEulerianToHamiltonian(euler []int, n int, start int) ([]int, error) {
	if n <= 0 {
		return nil, ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	visited := make([]bool, n)
	cycle := make([]int, 0, n)

	var idx, v int
	for idx = 0; idx < len(euler); idx++ {
		v = euler[idx]
		if v < 0 || v >= n {
			return nil, ErrDimensionMismatch
		}
		if !visited[v] {
			visited[v] = true
			cycle = append(cycle, v)
		}
	}
	if len(cycle) != n {
		return nil, ErrDimensionMismatch
	}

	p := -1
	var i int
	for i = 0; i < n; i++ {
		if cycle[i] == start {
			p = i

			break
		}
	}
	if p == -1 {
		return nil, ErrDimensionMismatch
	}

	tour := make([]int, n+1)
	for i = 0; i < n; i++ {
		tour[i] = cycle[(p+i)%n]
	}
	tour[n] = start

	return tour, nil
}

// TourCost sums the integer cost of every edge in a closed tour.
func TourCost(dist *matrix.Dense, tour []int) (int, error) {
	if dist == nil || len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	n := dist.Rows()

	var sum, i, u, v, w int
	var err error
	for i = 0; i < len(tour)-1; i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrDimensionMismatch
		}
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return sum, nil
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}
