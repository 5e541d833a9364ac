package coxeter

import "fmt"

// Infinity is the Coxeter-matrix encoding for m[i][j] = ∞.
const Infinity = 0

// MaxGenerators bounds the size of a Coxeter matrix this package will accept.
// Tunable; matches the source program's MAX_GENERATORS constant.
var MaxGenerators = 10

// MatrixError reports a malformed Coxeter matrix.
type MatrixError struct {
	Reason string
}

func (e *MatrixError) Error() string {
	return fmt.Sprintf("coxeter: invalid matrix: %s", e.Reason)
}

// Matrix is a symmetric Coxeter matrix: m[i][i] = 1, and for i≠j either
// m[i][j] ≥ 2 or m[i][j] = Infinity.
type Matrix struct {
	n    int
	rows [][]int
}

// NewMatrix validates rows and wraps them as a Coxeter matrix. rows must be
// square, symmetric, with a diagonal of 1 and off-diagonal entries that are
// either ≥2 or Infinity.
func NewMatrix(rows [][]int) (*Matrix, error) {
	n := len(rows)
	if n == 0 {
		return nil, &MatrixError{Reason: "empty matrix"}
	}
	if n > MaxGenerators {
		return nil, &MatrixError{Reason: fmt.Sprintf("dimension %d exceeds MaxGenerators %d", n, MaxGenerators)}
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, &MatrixError{Reason: fmt.Sprintf("row %d has %d columns, want %d", i, len(row), n)}
		}
	}
	for i := 0; i < n; i++ {
		if rows[i][i] != 1 {
			return nil, &MatrixError{Reason: fmt.Sprintf("m[%d][%d] = %d, want 1", i, i, rows[i][i])}
		}
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if rows[i][j] != rows[j][i] {
				return nil, &MatrixError{Reason: fmt.Sprintf("matrix not symmetric at (%d,%d): %d != %d", i, j, rows[i][j], rows[j][i])}
			}
			if rows[i][j] != Infinity && rows[i][j] < 2 {
				return nil, &MatrixError{Reason: fmt.Sprintf("m[%d][%d] = %d, want 0 or ≥2", i, j, rows[i][j])}
			}
		}
	}
	return &Matrix{n: n, rows: rows}, nil
}

// N returns the number of generators.
func (m *Matrix) N() int {
	return m.n
}

// At returns m[i][j].
func (m *Matrix) At(i, j int) int {
	return m.rows[i][j]
}
