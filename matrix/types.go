// Package matrix provides the dense integer distance matrix used across the
// solver: loader output, graph adjacency, and cost accounting all share this
// single representation. Adapted from the teacher's float64-backed Matrix
// interface (github.com/katalvlaran/lvlath/matrix); here weights are integers
// because TSPLIB distance functions (§4.1) are defined bit-exactly over
// integers and every downstream stage must reproduce them without drift.
package matrix

// Matrix is a two-dimensional square array of non-negative integer distances.
type Matrix interface {
	// Rows returns the number of rows. Complexity: O(1).
	Rows() int
	// Cols returns the number of columns. Complexity: O(1).
	Cols() int
	// At retrieves the value at (i, j), or ErrIndexOutOfBounds. Complexity: O(1).
	At(i, j int) (int, error)
	// Set assigns v at (i, j), or ErrIndexOutOfBounds. Complexity: O(1).
	Set(i, j int, v int) error
	// Clone returns an independent deep copy. Complexity: O(rows*cols).
	Clone() Matrix
}
