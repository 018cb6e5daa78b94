// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense storage and the
// Gauss-Jordan kernels. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Matrix represents a two-dimensional mutable array of float64 values.
// For the solver it holds an augmented system [A | b]: N rows, N+1 columns.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}

// StepKind names an elementary row operation performed by Reduce.
type StepKind int

const (
	// StepSwap exchanges the pivot row with the first lower row holding a nonzero pivot.
	StepSwap StepKind = iota
	// StepNormalize multiplies the pivot row by 1/pivot.
	StepNormalize
	// StepEliminate replaces row i with row_i*(-1/row_i[a]) + row_a.
	StepEliminate
	// StepFinalize divides a row by its diagonal entry in the cleanup pass.
	StepFinalize
)

// String implements fmt.Stringer for log attributes.
func (k StepKind) String() string {
	switch k {
	case StepSwap:
		return "swap"
	case StepNormalize:
		return "normalize"
	case StepEliminate:
		return "eliminate"
	case StepFinalize:
		return "finalize"
	default:
		return "unknown"
	}
}

// Step describes one elementary row operation, reported to a WithTrace hook.
//   - Column is the pivot column a (for StepFinalize it equals Row).
//   - Row is the row that was modified.
//   - Other is the partner row (swap partner or pivot row); -1 when unused.
//   - Factor is the scalar applied to Row (1/p, -1/row_i[a], 1/diag); 0 for swaps.
type Step struct {
	Kind   StepKind
	Column int
	Row    int
	Other  int
	Factor float64
}
