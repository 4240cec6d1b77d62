package localsearch

import "github.com/giraldeau/vroom/matrix"

// maxSegmentLen is the longest relocated segment or-opt considers (spec
// §4.4: "segment relocation length 1-3").
const maxSegmentLen = 3

// OrOpt repeatedly relocates the single best-improving segment of length
// 1..maxSegmentLen (in either orientation) to a different position in the
// tour, until no relocation improves it.
//
// Contract: same as TwoOpt.
//
// Complexity: O(n²) per candidate length per sweep, O(1) sweeps typical.
func OrOpt(dist *matrix.Dense, tour []int) ([]int, int, error) {
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
		next, delta, moved, mErr := bestOrOptMove(dist, cur)
		if mErr != nil {
			return nil, 0, mErr
		}
		if !moved {
			break
		}
		cur = next
		cost += delta
	}

	return cur, cost, nil
}

// bestOrOptMove scans every segment length, cyclic start position, target
// gap and orientation, and returns the resulting closed tour for the single
// best-improving move found, or moved=false if none improves.
//
// The tour is a cycle, so segment start positions range over all n ring
// positions, including the one anchored at the closed array's fixed
// start/end (position 0/n) and ones that wrap across that boundary: spec
// §4.4 considers "each contiguous segment of length L starting at tour
// position i" over the whole cyclic tour, not just the array's interior.
// The move is found on ring, the tour with its duplicate closing element
// dropped, then the winning ring is rotated back so the closed result still
// starts and ends at the original start vertex.
func bestOrOptMove(dist *matrix.Dense, cur []int) (next []int, bestDelta int, moved bool, err error) {
	n := len(cur) - 1
	bestDelta = 0
	start := cur[0]
	ring := cur[:n]

	var bestRing []int

	// Scan starts in [1, n-1] before 0: this keeps the previously-covered
	// range's relative order intact, so an old, already-considered move and
	// a newly-covered one that ties in delta still resolve to the old move
	// (spec §9 determinism), with position 0 (the start-vertex anchor)
	// scanned last as the newly-covered case.
	starts := make([]int, 0, n)
	var s int
	for s = 1; s < n; s++ {
		starts = append(starts, s)
	}
	starts = append(starts, 0)

	var segLen int
	for segLen = 1; segLen <= maxSegmentLen && segLen <= n-2; segLen++ {
		var si int
		for si = 0; si < len(starts); si++ {
			i := starts[si]
			prevPos, afterPos := mod(i-1, n), mod(i+segLen, n)
			prev, after := ring[prevPos], ring[afterPos]
			segFirst, segLast := ring[i], ring[mod(i+segLen-1, n)]

			var wPrevStart, wLastAfter, wPrevAfter int
			if wPrevStart, err = dist.At(prev, segFirst); err != nil {
				return nil, 0, false, ErrDimensionMismatch
			}
			if wLastAfter, err = dist.At(segLast, after); err != nil {
				return nil, 0, false, ErrDimensionMismatch
			}
			if wPrevAfter, err = dist.At(prev, after); err != nil {
				return nil, 0, false, ErrDimensionMismatch
			}
			removeGain := (wPrevStart + wLastAfter) - wPrevAfter

			segment := extractSegment(ring, i, segLen)
			base := removeSegment(ring, i, segLen)
			// base[0] == after, base[len(base)-1] == prev: it starts right
			// after the removed segment and wraps back around to prev.

			var j int
			for j = 0; j < len(base); j++ {
				a, b := base[j], base[(j+1)%len(base)]
				// Skip the gap that reopening would recreate: reinserting
				// exactly where the segment came from is a no-op. This is
				// the wraparound pair (j == len(base)-1), a == prev, b ==
				// after.
				if a == prev && b == after {
					continue
				}

				var wab int
				if wab, err = dist.At(a, b); err != nil {
					return nil, 0, false, ErrDimensionMismatch
				}

				fwdCost, ferr := insertionCost(dist, a, segment[0], segment[len(segment)-1], b)
				if ferr != nil {
					return nil, 0, false, ferr
				}
				delta := (fwdCost - wab) - removeGain
				if delta < bestDelta {
					bestDelta = delta
					bestRing = spliceSegment(base, j, segment, false)
					moved = true
				}

				if segLen > 1 {
					revCost, rerr := insertionCost(dist, a, segment[len(segment)-1], segment[0], b)
					if rerr != nil {
						return nil, 0, false, rerr
					}
					delta = (revCost - wab) - removeGain
					if delta < bestDelta {
						bestDelta = delta
						bestRing = spliceSegment(base, j, segment, true)
						moved = true
					}
				}
			}
		}
	}

	if !moved {
		return nil, 0, false, nil
	}

	return closeRingAt(bestRing, start), bestDelta, true, nil
}

// mod returns a mod n, folded into [0, n) for negative a.
func mod(a, n int) int {
	m := a % n
	if m < 0 {
		m += n
	}

	return m
}

// extractSegment returns the segLen ring elements starting at cyclic
// position i.
func extractSegment(ring []int, i, segLen int) []int {
	n := len(ring)
	seg := make([]int, segLen)
	var k int
	for k = 0; k < segLen; k++ {
		seg[k] = ring[(i+k)%n]
	}

	return seg
}

// removeSegment returns ring with the segLen elements starting at cyclic
// position i removed, reordered to start right after the removed segment
// (so the result's last element is the vertex immediately before the
// removed segment, and its first element is the vertex immediately after).
func removeSegment(ring []int, i, segLen int) []int {
	n := len(ring)
	base := make([]int, 0, n-segLen)
	var k int
	for k = 0; k < n-segLen; k++ {
		base = append(base, ring[(i+segLen+k)%n])
	}

	return base
}

// closeRingAt rotates ring so start is first, then appends it again to
// produce the closed len(ring)+1 tour representation the rest of this
// package expects.
func closeRingAt(ring []int, start int) []int {
	n := len(ring)
	idx := 0
	var k int
	for k = 0; k < n; k++ {
		if ring[k] == start {
			idx = k

			break
		}
	}

	closed := make([]int, n+1)
	for k = 0; k < n; k++ {
		closed[k] = ring[(idx+k)%n]
	}
	closed[n] = start

	return closed
}

// insertionCost returns dist(a,first) + dist(last,b), the two new edges
// created by inserting a segment (whose effective endpoints are first and
// last, after orientation) between a and b.
func insertionCost(dist *matrix.Dense, a, first, last, b int) (int, error) {
	w1, err := dist.At(a, first)
	if err != nil {
		return 0, ErrDimensionMismatch
	}
	w2, err := dist.At(last, b)
	if err != nil {
		return 0, ErrDimensionMismatch
	}

	return w1 + w2, nil
}

// spliceSegment inserts segment (optionally reversed) into base right after
// index j, returning a new ring slice.
func spliceSegment(base []int, j int, segment []int, reversed bool) []int {
	seg := make([]int, len(segment))
	copy(seg, segment)
	if reversed {
		for l, r := 0, len(seg)-1; l < r; l, r = l+1, r-1 {
			seg[l], seg[r] = seg[r], seg[l]
		}
	}

	out := make([]int, 0, len(base)+len(seg))
	out = append(out, base[:j+1]...)
	out = append(out, seg...)
	out = append(out, base[j+1:]...)

	return out
}
