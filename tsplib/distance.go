package tsplib

import "math"

// geoPI is TSPLIB's own truncated approximation of pi, used verbatim by the
// GEO distance function. Do not replace with math.Pi: published TSPLIB GEO
// benchmark costs are defined against this exact truncated constant (spec
// §4.1, §9). Grounded on original_source/src/loaders/tsplib_loader.h's
// `static double constexpr PI = 3.141592;`.
const geoPI = 3.141592

// geoEarthRadius is TSPLIB's fixed Earth radius in kilometers for GEO.
const geoEarthRadius = 6378.388

// nint implements TSPLIB's "round half up" rounding: floor(x + 0.5).
// This is deliberately not banker's rounding (spec §9).
func nint(x float64) int {
	return int(math.Floor(x + 0.5))
}

// euc2D computes the Euclidean distance between two nodes, rounded per nint.
func euc2D(a, b Node) int {
	xd := a.X - b.X
	yd := a.Y - b.Y

	return nint(math.Sqrt(xd*xd + yd*yd))
}

// ceil2D computes the Euclidean distance rounded up to the next integer.
func ceil2D(a, b Node) int {
	xd := a.X - b.X
	yd := a.Y - b.Y

	return int(math.Ceil(math.Sqrt(xd*xd + yd*yd)))
}

// att computes the ATSP/pseudo-Euclidean "ATT" distance used by instances
// such as att48/att532. The rounding quirk (round to nearest, then bump up
// by one if the rounded value undershoots the true distance) is part of the
// TSPLIB contract and must be preserved bit-exactly (spec §4.1, example 4).
func att(a, b Node) int {
	xd := a.X - b.X
	yd := a.Y - b.Y
	r := math.Sqrt((xd*xd + yd*yd) / 10.0)
	t := nint(r)
	if float64(t) < r {
		return t + 1
	}

	return t
}

// geoLatLon converts a TSPLIB "degrees.minutes" coordinate pair into
// latitude/longitude radians using the truncated geoPI constant.
func geoLatLon(x, y float64) (lat, lon float64) {
	degX := math.Trunc(x)
	minX := x - degX
	lat = geoPI * (degX + 5.0*minX/3.0) / 180.0

	degY := math.Trunc(y)
	minY := y - degY
	lon = geoPI * (degY + 5.0*minY/3.0) / 180.0

	return lat, lon
}

// geo computes the TSPLIB geographical distance in kilometers, treating a
// node's X field as latitude and Y field as longitude, per spec §4.1.
func geo(a, b Node) int {
	latI, lonI := geoLatLon(a.X, a.Y)
	latJ, lonJ := geoLatLon(b.X, b.Y)

	q1 := math.Cos(lonI - lonJ)
	q2 := math.Cos(latI - latJ)
	q3 := math.Cos(latI + latJ)

	return int(geoEarthRadius*math.Acos(0.5*((1+q1)*q2-(1-q1)*q3)) + 1.0)
}

// distanceFunc returns the bit-exact distance function for a coordinate
// based edge-weight type, or nil if t is not coordinate-based (i.e. Explicit).
func distanceFunc(t EdgeWeightType) func(a, b Node) int {
	switch t {
	case Euc2D:
		return euc2D
	case Ceil2D:
		return ceil2D
	case Geo:
		return geo
	case Att:
		return att
	default:
		return nil
	}
}
