package tsplib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEuc2DRounding(t *testing.T) {
	// spec §8 scenario 3: (0,0),(3,4),(6,0) -> matrix [[0,5,6],[5,0,5],[6,5,0]].
	a := Node{X: 0, Y: 0}
	b := Node{X: 3, Y: 4}
	c := Node{X: 6, Y: 0}

	require.Equal(t, 5, euc2D(a, b))
	require.Equal(t, 5, euc2D(b, c))
	require.Equal(t, 6, euc2D(a, c))
}

func TestCeil2D(t *testing.T) {
	a := Node{X: 0, Y: 0}
	b := Node{X: 1, Y: 1}
	require.Equal(t, 2, ceil2D(a, b)) // sqrt(2) = 1.41 -> ceil = 2
}

func TestATTRoundingQuirk(t *testing.T) {
	// spec §4.1 example 4: (0,0),(1,0) => r=sqrt(0.1)=0.3162, t=nint(r)=0,
	// t<r so result is 1.
	a := Node{X: 0, Y: 0}
	b := Node{X: 1, Y: 0}
	require.Equal(t, 1, att(a, b))
}

func TestGEOTruncatedPI(t *testing.T) {
	// spec §4.1/§8 scenario 5: (0,0) and (0,90) computed against the
	// truncated PI=3.141592 constant. For this pair the truncation moves the
	// raw distance by only ~0.002 km (10020.146 vs 10020.148 with math.Pi),
	// so the integer result is 10020 either way.
	a := Node{X: 0.0, Y: 0.0}
	b := Node{X: 0.0, Y: 90.0}
	got := geo(a, b)
	require.Equal(t, 10020, got, "GEO distance for (0,0)-(0,90) with PI=3.141592")
}

func TestNint(t *testing.T) {
	require.Equal(t, 1, nint(0.5)) // round half up
	require.Equal(t, 0, nint(0.49))
	require.Equal(t, 0, nint(-0.5)) // floor(-0.5+0.5) = floor(0) = 0
	require.Equal(t, -1, nint(-0.51))
}
