package tsplib

import (
	"strconv"
	"strings"

	"github.com/giraldeau/vroom/matrix"
)

// Instance is the parsed result of Load: a dense integer distance matrix
// plus, for coordinate-based instances, the original node coordinates
// (needed by the emitter's "route" field).
type Instance struct {
	Dist  *matrix.Dense
	Nodes []Node // nil for EXPLICIT instances
	Type  EdgeWeightType
}

// Load parses TSPLIB text into an Instance. It recognizes DIMENSION,
// EDGE_WEIGHT_TYPE, EDGE_WEIGHT_FORMAT, NODE_COORD_SECTION, and
// EDGE_WEIGHT_SECTION; every other TSPLIB key (NAME, COMMENT, TYPE, EOF,
// ...) is tolerated and ignored, per spec §6.
//
// Complexity: O(n²) time and space for EXPLICIT/FULL_MATRIX instances
// (dominated by matrix allocation), O(n²) for coordinate instances
// (computing all pairwise distances).
func Load(text string) (*Instance, error) {
	lines := strings.Split(text, "\n")

	dimension, err := findDimension(lines)
	if err != nil {
		return nil, err
	}

	ewt, err := findEdgeWeightType(lines)
	if err != nil {
		return nil, err
	}

	if ewt == Explicit {
		ewf, ferr := findEdgeWeightFormat(lines)
		if ferr != nil {
			return nil, ferr
		}

		tokens, terr := findSection(lines, "EDGE_WEIGHT_SECTION")
		if terr != nil {
			return nil, terr
		}

		dist, derr := parseExplicit(dimension, ewf, tokens)
		if derr != nil {
			return nil, derr
		}

		return &Instance{Dist: dist, Type: ewt}, nil
	}

	tokens, terr := findSection(lines, "NODE_COORD_SECTION")
	if terr != nil {
		return nil, terr
	}

	nodes, nerr := parseNodeCoords(dimension, tokens)
	if nerr != nil {
		return nil, nerr
	}

	dist, derr := buildFromCoords(nodes, ewt)
	if derr != nil {
		return nil, derr
	}

	return &Instance{Dist: dist, Nodes: nodes, Type: ewt}, nil
}

// headerValue returns the trimmed value following "key" and a ':' on some
// line of lines, case-sensitively matching TSPLIB's own convention of
// upper-case keys. The key must appear at the start of the (trimmed) line,
// so a COMMENT line that happens to mention another key's name by accident
// is never mistaken for that key. Returns ok=false if the key is not present.
func headerValue(lines []string, key string) (value string, ok bool) {
	var line, trimmed string
	for _, line = range lines {
		trimmed = strings.TrimSpace(line)
		if !strings.HasPrefix(trimmed, key) {
			continue
		}
		rest := trimmed[len(key):]
		rest = strings.TrimSpace(rest)
		rest = strings.TrimPrefix(rest, ":")

		return strings.TrimSpace(rest), true
	}

	return "", false
}

func findDimension(lines []string) (int, error) {
	v, ok := headerValue(lines, "DIMENSION")
	if !ok {
		return 0, &ParseError{Key: "DIMENSION", Err: ErrMissingDimension}
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, &ParseError{Key: "DIMENSION", Err: ErrMissingDimension}
	}

	return n, nil
}

func findEdgeWeightType(lines []string) (EdgeWeightType, error) {
	v, ok := headerValue(lines, "EDGE_WEIGHT_TYPE")
	if !ok {
		return "", &ParseError{Key: "EDGE_WEIGHT_TYPE", Err: ErrMissingEdgeWeightType}
	}
	switch EdgeWeightType(v) {
	case Explicit, Euc2D, Ceil2D, Geo, Att:
		return EdgeWeightType(v), nil
	default:
		return "", &ParseError{Key: "EDGE_WEIGHT_TYPE", Err: ErrMissingEdgeWeightType}
	}
}

func findEdgeWeightFormat(lines []string) (EdgeWeightFormat, error) {
	v, ok := headerValue(lines, "EDGE_WEIGHT_FORMAT")
	if !ok {
		return "", &ParseError{Key: "EDGE_WEIGHT_FORMAT", Err: ErrMissingEdgeWeightFormat}
	}
	switch EdgeWeightFormat(v) {
	case FullMatrix, UpperRow, UpperDiagRow, LowerDiagRow:
		return EdgeWeightFormat(v), nil
	default:
		return "", &ParseError{Key: "EDGE_WEIGHT_FORMAT", Err: ErrMissingEdgeWeightFormat}
	}
}

// findSection locates a line equal to sectionName (after trimming) and
// returns every whitespace-separated token from every line after it, up to
// the next recognized section/EOF marker or the end of text. Line breaks
// within the data are not significant (spec §4.1).
func findSection(lines []string, sectionName string) ([]string, error) {
	start := -1
	var i int
	var line string
	for i, line = range lines {
		if strings.TrimSpace(line) == sectionName {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, &ParseError{Key: sectionName, Line: i + 1, Err: ErrMissingDataSection}
	}

	var tokens []string
	for i = start; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		if trimmed == "EOF" || isKnownSectionHeader(trimmed) {
			break
		}
		tokens = append(tokens, strings.Fields(lines[i])...)
	}
	if len(tokens) == 0 {
		return nil, &ParseError{Key: sectionName, Err: ErrMissingDataSection}
	}

	return tokens, nil
}

func isKnownSectionHeader(s string) bool {
	switch s {
	case "NODE_COORD_SECTION", "EDGE_WEIGHT_SECTION":
		return true
	default:
		return false
	}
}

// parseFloatToken parses a single TSPLIB numeric token.
func parseFloatToken(key string, tok string) (float64, error) {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Key: key, Err: ErrNonNumericData}
	}

	return v, nil
}

// parseExplicit fills an n×n matrix from the flat token stream per format,
// mirroring symmetric entries and zeroing the diagonal (spec §4.1 table).
func parseExplicit(n int, format EdgeWeightFormat, tokens []string) (*matrix.Dense, error) {
	dist, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}

	need := explicitCount(n, format)
	if len(tokens) < need {
		return nil, &ParseError{Key: "EDGE_WEIGHT_SECTION", Err: ErrTruncatedData}
	}

	pos := 0
	next := func() (int, error) {
		v, perr := parseFloatToken("EDGE_WEIGHT_SECTION", tokens[pos])
		if perr != nil {
			return 0, perr
		}
		pos++

		return int(v), nil
	}

	var i, j int
	var w int
	switch format {
	case FullMatrix:
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if w, err = next(); err != nil {
					return nil, err
				}
				_ = dist.Set(i, j, w)
			}
		}
	case UpperRow:
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				if w, err = next(); err != nil {
					return nil, err
				}
				_ = dist.Set(i, j, w)
				_ = dist.Set(j, i, w)
			}
		}
	case UpperDiagRow:
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				if w, err = next(); err != nil {
					return nil, err
				}
				_ = dist.Set(i, j, w)
				_ = dist.Set(j, i, w)
			}
		}
	case LowerDiagRow:
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				if w, err = next(); err != nil {
					return nil, err
				}
				_ = dist.Set(i, j, w)
				_ = dist.Set(j, i, w)
			}
		}
	}

	dist.ZeroDiagonal()

	return dist, nil
}

// explicitCount returns the number of integers a format expects, per the
// table in spec §4.1.
func explicitCount(n int, format EdgeWeightFormat) int {
	switch format {
	case FullMatrix:
		return n * n
	case UpperRow:
		return n * (n - 1) / 2
	case UpperDiagRow, LowerDiagRow:
		return n * (n + 1) / 2
	default:
		return 0
	}
}

// parseNodeCoords reads exactly n "(index x y)" triples from tokens.
func parseNodeCoords(n int, tokens []string) ([]Node, error) {
	if len(tokens) < n*3 {
		return nil, &ParseError{Key: "NODE_COORD_SECTION", Err: ErrTruncatedData}
	}

	nodes := make([]Node, n)
	var i int
	for i = 0; i < n; i++ {
		idxF, err := parseFloatToken("NODE_COORD_SECTION", tokens[3*i])
		if err != nil {
			return nil, err
		}
		x, err := parseFloatToken("NODE_COORD_SECTION", tokens[3*i+1])
		if err != nil {
			return nil, err
		}
		y, err := parseFloatToken("NODE_COORD_SECTION", tokens[3*i+2])
		if err != nil {
			return nil, err
		}
		nodes[i] = Node{Index: int(idxF), X: x, Y: y}
	}

	return nodes, nil
}

// buildFromCoords computes the pairwise distance matrix for a coordinate
// based instance using the bit-exact function selected by ewt.
func buildFromCoords(nodes []Node, ewt EdgeWeightType) (*matrix.Dense, error) {
	n := len(nodes)
	dist, err := matrix.NewDense(n)
	if err != nil {
		return nil, err
	}

	f := distanceFunc(ewt)
	var i, j, w int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = f(nodes[i], nodes[j])
			_ = dist.Set(i, j, w)
			_ = dist.Set(j, i, w)
		}
	}
	dist.ZeroDiagonal()

	return dist, nil
}
