// Package matrix: sentinel error set.
//
// All algorithms in this package and its callers return these sentinels,
// either bare or wrapped with %w (Dense.At/Set wrap ErrIndexOutOfBounds with
// the offending indices), so that callers can match with errors.Is.
package matrix

import "errors"

var (
	// ErrInvalidDimensions signals a requested shape with rows or cols <= 0.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds signals an out-of-range row or column index.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch signals incompatible dimensions between operands
	// or between a matrix and an index sequence (e.g. a tour).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals a[i][j] != a[j][i] (exact integer comparison).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric")

	// ErrNonZeroDiagonal signals a non-zero value on the diagonal.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal is not zero")

	// ErrNegativeWeight signals a negative distance, which TSPLIB never produces.
	ErrNegativeWeight = errors.New("matrix: negative weight")
)
