package localsearch

import "github.com/giraldeau/vroom/matrix"

// TwoOpt repeatedly applies the single best-improving 2-opt move (segment
// reversal) until no candidate improves the tour, then returns the
// resulting tour and its total cost.
//
// Contract: tour is closed (len == n+1, tour[0] == tour[n]) and a valid
// permutation of [0, n). n == 1 is well-formed (spec §4.3, §8) and is a
// no-op here: the reversal-candidate loop below has no valid (i, k) pair
// when n < 3, so it simply returns the tour and cost unchanged.
//
// Complexity: O(n²) per sweep, O(n) sweeps worst case ⇒ O(n³) overall,
// versus the teacher's typical O(iter·n²) under first-improvement.
func TwoOpt(dist *matrix.Dense, tour []int) ([]int, int, error) {
	n := len(tour) - 1
	if n < 1 {
		return nil, 0, ErrDimensionMismatch
	}

	cur := make([]int, len(tour))
	copy(cur, tour)

	cost, err := tourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	for {
		bestDelta := 0
		bestI, bestK := -1, -1

		var i, k int
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d := cur[i-1], cur[i], cur[k], cur[k+1]

				wab, e1 := dist.At(a, b)
				wcd, e2 := dist.At(c, d)
				wac, e3 := dist.At(a, c)
				wbd, e4 := dist.At(b, d)
				if e1 != nil || e2 != nil || e3 != nil || e4 != nil {
					return nil, 0, ErrDimensionMismatch
				}

				delta := (wac + wbd) - (wab + wcd)
				if delta < bestDelta {
					bestDelta, bestI, bestK = delta, i, k
				}
			}
		}

		if bestI < 0 {
			break
		}

		reverseInPlace(cur, bestI, bestK)
		cost += bestDelta
	}

	return cur, cost, nil
}

// reverseInPlace reverses the inclusive segment cur[i..k].
func reverseInPlace(cur []int, i, k int) {
	for i < k {
		cur[i], cur[k] = cur[k], cur[i]
		i++
		k--
	}
}

// tourCost sums the integer cost of every edge in a closed tour.
func tourCost(dist *matrix.Dense, tour []int) (int, error) {
	var sum, i, u, v, w int
	var err error
	for i = 0; i < len(tour)-1; i++ {
		u, v = tour[i], tour[i+1]
		w, err = dist.At(u, v)
		if err != nil {
			return 0, ErrDimensionMismatch
		}
		sum += w
	}

	return sum, nil
}
