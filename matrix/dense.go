package matrix

import "fmt"

// Dense is a row-major square matrix of int distances, backed by a flat
// slice for cache-friendly access. Adapted from the teacher's
// matrix.Dense (github.com/katalvlaran/lvlath/matrix/dense.go), narrowed
// to a square int matrix since every consumer here (loader, graph,
// Christofides, local search) only ever needs a symmetric distance table.
type Dense struct {
	n    int   // rows == cols == n
	data []int // flat backing storage, length n*n
}

// NewDense allocates an n×n Dense matrix initialized to zero.
//
// Complexity: O(n²) time and space.
func NewDense(n int) (*Dense, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{n: n, data: make([]int, n*n)}, nil
}

// Rows returns n.
func (d *Dense) Rows() int { return d.n }

// Cols returns n.
func (d *Dense) Cols() int { return d.n }

func (d *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= d.n || j < 0 || j >= d.n {
		return 0, fmt.Errorf("Dense: (%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return i*d.n + j, nil
}

// At retrieves the element at (i, j).
//
// Complexity: O(1).
func (d *Dense) At(i, j int) (int, error) {
	idx, err := d.index(i, j)
	if err != nil {
		return 0, err
	}

	return d.data[idx], nil
}

// Set assigns v at (i, j).
//
// Complexity: O(1).
func (d *Dense) Set(i, j int, v int) error {
	idx, err := d.index(i, j)
	if err != nil {
		return err
	}
	d.data[idx] = v

	return nil
}

// Clone returns a deep, independent copy.
//
// Complexity: O(n²).
func (d *Dense) Clone() Matrix {
	out := &Dense{n: d.n, data: make([]int, len(d.data))}
	copy(out.data, d.data)

	return out
}

// ZeroDiagonal overwrites every diagonal entry with zero, matching TSPLIB's
// convention that mirrored/explicit matrices always carry a zero diagonal
// regardless of what was supplied (spec §4.1: "the diagonal is overwritten
// to zero").
//
// Complexity: O(n).
func (d *Dense) ZeroDiagonal() {
	var i int
	for i = 0; i < d.n; i++ {
		d.data[i*d.n+i] = 0
	}
}

// ValidateSymmetric checks a[i][j] == a[j][i] for all i,j and a[i][i] == 0.
//
// Complexity: O(n²).
func (d *Dense) ValidateSymmetric() error {
	var i, j int
	for i = 0; i < d.n; i++ {
		if d.data[i*d.n+i] != 0 {
			return ErrNonZeroDiagonal
		}
		for j = i + 1; j < d.n; j++ {
			if d.data[i*d.n+j] != d.data[j*d.n+i] {
				return ErrAsymmetry
			}
			if d.data[i*d.n+j] < 0 {
				return ErrNegativeWeight
			}
		}
	}

	return nil
}
