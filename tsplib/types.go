// Package tsplib parses TSPLIB-format symmetric TSP instances into an
// integer distance matrix, following the bit-exact rounding rules that
// make published TSPLIB benchmark costs reproducible.
//
// Grounded on github.com/katalvlaran/lvlath/tsp (Christofides/MST/2-opt
// consume the resulting matrix directly) and on
// original_source/src/loaders/tsplib_loader.h, the VROOM C++ loader this
// package's rules were distilled from.
package tsplib

import (
	"errors"
	"strconv"
)

// EdgeWeightType is the TSPLIB EDGE_WEIGHT_TYPE key.
type EdgeWeightType string

// Supported edge-weight types (spec §4.1).
const (
	Explicit EdgeWeightType = "EXPLICIT"
	Euc2D    EdgeWeightType = "EUC_2D"
	Ceil2D   EdgeWeightType = "CEIL_2D"
	Geo      EdgeWeightType = "GEO"
	Att      EdgeWeightType = "ATT"
)

// EdgeWeightFormat is the TSPLIB EDGE_WEIGHT_FORMAT key, required iff
// EdgeWeightType == Explicit.
type EdgeWeightFormat string

// Supported edge-weight formats (spec §4.1).
const (
	FullMatrix   EdgeWeightFormat = "FULL_MATRIX"
	UpperRow     EdgeWeightFormat = "UPPER_ROW"
	UpperDiagRow EdgeWeightFormat = "UPPER_DIAG_ROW"
	LowerDiagRow EdgeWeightFormat = "LOWER_DIAG_ROW"
)

// Node is a coordinate-form city record, retained for the emitter's
// coordinate-based "route" output.
type Node struct {
	Index int
	X, Y  float64
}

// Sentinel errors. Kept as package-level vars (never fmt.Errorf) so callers
// can match with errors.Is; context is attached via ParseError below.
var (
	// ErrMissingDimension is returned when DIMENSION is absent or non-positive.
	ErrMissingDimension = errors.New("tsplib: missing or invalid DIMENSION")

	// ErrMissingEdgeWeightType is returned when EDGE_WEIGHT_TYPE is absent or unknown.
	ErrMissingEdgeWeightType = errors.New("tsplib: missing or unsupported EDGE_WEIGHT_TYPE")

	// ErrMissingEdgeWeightFormat is returned when EXPLICIT lacks a supported EDGE_WEIGHT_FORMAT.
	ErrMissingEdgeWeightFormat = errors.New("tsplib: missing or unsupported EDGE_WEIGHT_FORMAT")

	// ErrMissingDataSection is returned when neither NODE_COORD_SECTION nor
	// EDGE_WEIGHT_SECTION could be found where required.
	ErrMissingDataSection = errors.New("tsplib: missing data section")

	// ErrTruncatedData is returned when the data section has fewer numbers
	// than the header promises.
	ErrTruncatedData = errors.New("tsplib: truncated data section")

	// ErrNonNumericData is returned when a token in the data section is not
	// a valid number.
	ErrNonNumericData = errors.New("tsplib: non-numeric token in data section")
)

// ParseError wraps a sentinel with the offending TSPLIB key and, when known,
// the 1-based line number in the source text. It implements Unwrap so
// callers can still match the underlying sentinel with errors.Is.
type ParseError struct {
	Key  string // offending TSPLIB key, e.g. "DIMENSION"
	Line int    // 1-based line number, 0 if unknown
	Err  error  // underlying sentinel
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return "tsplib: " + e.Key + " (line " + strconv.Itoa(e.Line) + "): " + e.Err.Error()
	}

	return "tsplib: " + e.Key + ": " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }
