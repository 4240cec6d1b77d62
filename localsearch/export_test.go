package localsearch

import "github.com/giraldeau/vroom/matrix"

// Test hooks exposing bestOrOptMove's cyclic-indexing helpers to
// localsearch_test, mirroring the teacher's tsp package pattern of
// exporting unexported internals under _test.go for white-box coverage.

func HookMod(a, n int) int { return mod(a, n) }

func HookExtractSegment(ring []int, i, segLen int) []int {
	return extractSegment(ring, i, segLen)
}

func HookRemoveSegment(ring []int, i, segLen int) []int {
	return removeSegment(ring, i, segLen)
}

func HookCloseRingAt(ring []int, start int) []int {
	return closeRingAt(ring, start)
}

func HookBestOrOptMove(dist *matrix.Dense, cur []int) ([]int, int, bool, error) {
	return bestOrOptMove(dist, cur)
}
