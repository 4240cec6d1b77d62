package localsearch

import "github.com/giraldeau/vroom/matrix"

// Options toggles which move kinds Optimize applies (spec §A.3: CLI flags
// -2opt/-oropt, both default true).
type Options struct {
	Enable2Opt  bool
	EnableOrOpt bool
}

// Optimize runs 2-opt to a local optimum, then a single or-opt sweep; if
// or-opt found an improving move, control returns to 2-opt, and so on until
// neither kind improves the tour (spec §4.4: "First 2-opt is exhausted,
// then or-opt; after an or-opt move, control returns to 2-opt").
func Optimize(dist *matrix.Dense, tour []int, opts Options) ([]int, int, error) {
	cur := make([]int, len(tour))
	copy(cur, tour)

	cost, err := tourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	for {
		improved := false

		if opts.Enable2Opt {
			next, newCost, terr := TwoOpt(dist, cur)
			if terr != nil {
				return nil, 0, terr
			}
			if newCost < cost {
				cur, cost = next, newCost
				improved = true
			}
		}

		if opts.EnableOrOpt {
			next, newCost, oerr := orOptSingleSweep(dist, cur)
			if oerr != nil {
				return nil, 0, oerr
			}
			if newCost < cost {
				cur, cost = next, newCost
				improved = true
			}
		}

		if !improved {
			break
		}
	}

	return cur, cost, nil
}

// orOptSingleSweep applies at most one or-opt move (the pipeline's
// alternation discipline hands control back to 2-opt after every single
// or-opt move, rather than running or-opt to its own local optimum first).
func orOptSingleSweep(dist *matrix.Dense, tour []int) ([]int, int, error) {
	next, delta, moved, err := bestOrOptMove(dist, tour)
	if err != nil {
		return nil, 0, err
	}
	if !moved {
		return tour, mustCost(dist, tour), nil
	}

	base, err := tourCost(dist, tour)
	if err != nil {
		return nil, 0, err
	}

	return next, base + delta, nil
}

func mustCost(dist *matrix.Dense, tour []int) int {
	c, _ := tourCost(dist, tour)

	return c
}
