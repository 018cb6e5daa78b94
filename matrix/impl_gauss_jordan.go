// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan elimination on augmented systems [A | b].
//
// Purpose:
//   - Reduce an N×(N+1) augmented matrix to row canonical form using only
//     elementary row operations (swap, scale, scale-and-add), so the solution
//     set of the linear system is preserved.
//   - Read the solution vector off the right-hand-side column.
//
// Algorithm (column a = 0..N-1, only while the matrix is not yet canonical):
//  1. Pivot: if (a,a) == 0, swap row a with the first row below holding a
//     nonzero in column a.
//  2. Normalize: multiply row a by 1/p, p = (a,a).
//  3. Eliminate: every other row i with (i,a) != 0 becomes
//     row_i*(-1/row_i[a]) + row_a. The factor is read before row i changes.
//  4. Final pass: while not canonical, divide each row (in order) by its
//     diagonal entry. Step 3 rescales earlier rows, so this pass is what
//     restores their leading ones.
//
// Determinism & Policy:
//   - First-nonzero pivoting (no magnitude-based pivot choice); fixed loop orders.
//   - The canonical check is exact unless WithTolerance is given.
//   - Missing pivot: ErrSingular (default) or IEEE ±Inf/NaN (SingularPropagate).
//   - The input is never mutated; all work happens on a private *Dense.
//
// Complexity:
//   - Time O(N³) worst case (plus O(N²) canonical checks per column), Space O(N²).

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opReduce  = "Reduce"
	opExtract = "ExtractSolutions"
	opSolve   = "Solve"
)

// Reduce returns the row canonical form of the augmented matrix m.
// MAIN DESCRIPTION:
//   - Validates m, copies it, and runs Gauss-Jordan elimination on the copy.
//
// Implementation:
//   - Stage 1: ValidateSystem (nil → N×(N+1) → finite, per policy).
//   - Stage 2: private working copy carrying the resolved numeric policy.
//   - Stage 3: column loop (pivot, normalize, eliminate) guarded by the canonical check.
//   - Stage 4: final diagonal normalization pass, guarded the same way.
//
// Behavior highlights:
//   - A matrix that is already canonical is returned as an equal copy with no row operations.
//   - WithTrace observes every row operation in order.
//
// Inputs:
//   - m: augmented system with N ≥ 1 rows and N+1 columns.
//   - opts: WithTolerance, WithSingularPolicy, WithNoValidateNaNInf, WithTrace.
//
// Returns:
//   - *Dense: reduced copy; m is untouched.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape, ErrNaNInf (input), ErrSingular (SingularError policy).
//
// Complexity:
//   - Time O(N³), Space O(N²).
func Reduce(m Matrix, opts ...Option) (*Dense, error) {
	o := gatherOptions(opts...)
	if err := ValidateSystem(m, o.validateNaNInf); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	work, err := workingCopy(m, o.outputFinite)
	if err != nil {
		return nil, matrixErrorf(opReduce, err)
	}
	if err = gaussJordan(work, &o); err != nil {
		return nil, matrixErrorf(opReduce, err)
	}

	return work, nil
}

// gaussJordan mutates w in place. w must be N×(N+1).
func gaussJordan(w *Dense, o *Options) error {
	n := w.r
	var a, i int
	var x, f float64

	for a = 0; a < n && !denseCanonical(w, o.tol); a++ {
		// 1. pivot search & swap
		if err := w.pivot(a, o); err != nil {
			return err
		}

		// 2. normalize: leading one at (a,a)
		f = 1 / w.at(a, a)
		w.scaleRow(a, f)
		o.emit(Step{Kind: StepNormalize, Column: a, Row: a, Other: -1, Factor: f}, w)

		// 3. eliminate column a from every other row
		for i = 0; i < n; i++ {
			if i == a {
				continue
			}
			if x = w.at(i, a); x != 0 {
				f = -1 / x
				w.scaleAddRow(i, a, f)
				o.emit(Step{Kind: StepEliminate, Column: a, Row: i, Other: a, Factor: f}, w)
			}
		}
	}

	// 4. final diagonal normalization pass
	for i = 0; i < n && !denseCanonical(w, o.tol); i++ {
		x = w.at(i, i)
		if x == 0 && o.singular == SingularError {
			return fmt.Errorf("diagonal %d: %w", i, ErrSingular)
		}
		f = 1 / x
		w.scaleRow(i, f)
		o.emit(Step{Kind: StepFinalize, Column: i, Row: i, Other: -1, Factor: f}, w)
	}

	return nil
}

// pivot ensures (a,a) is nonzero by swapping in the first lower row with a
// nonzero entry in column a. When no such row exists it returns ErrSingular
// under SingularError and leaves the zero pivot in place otherwise.
func (w *Dense) pivot(a int, o *Options) error {
	if w.at(a, a) != 0 {
		return nil
	}
	for i := a + 1; i < w.r; i++ {
		if w.at(i, a) != 0 {
			w.swapRows(a, i)
			o.emit(Step{Kind: StepSwap, Column: a, Row: a, Other: i}, w)

			return nil
		}
	}
	if o.singular == SingularError {
		return fmt.Errorf("column %d has no nonzero pivot: %w", a, ErrSingular)
	}

	return nil // SingularPropagate: divide by zero downstream
}

// workingCopy returns a private *Dense copy of m; finite sets its NaN/Inf policy.
func workingCopy(m Matrix, finite bool) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		w := d.cloneDense()
		w.validateNaNInf = finite

		return w, nil
	}

	w, err := newDenseWithPolicy(m.Rows(), m.Cols(), finite)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < w.r; i++ {
		for j := 0; j < w.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			w.data[i*w.c+j] = v
		}
	}

	return w, nil
}

// ExtractSolutions returns the right-hand-side column of a reduced system:
// x[i] = m[i][N], the value of variable i+1.
//
// Precondition: m is already in row canonical form (typically the output of
// Reduce). The content is NOT checked unless WithRequireCanonical is given;
// on an unreduced matrix the result is simply the RHS column.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape; ErrNotReduced under WithRequireCanonical.
//
// Complexity: O(N).
func ExtractSolutions(m Matrix, opts ...Option) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opExtract, err)
	}
	if err := ValidateAugmented(m); err != nil {
		return nil, matrixErrorf(opExtract, err)
	}
	o := gatherOptions(opts...)
	if o.requireCanonical && !IsRowCanonicalTol(m, o.tol) {
		return nil, matrixErrorf(opExtract, ErrNotReduced)
	}

	n, last := m.Rows(), m.Cols()-1
	if d, ok := m.(*Dense); ok {
		out, err := d.Col(last)
		if err != nil {
			return nil, matrixErrorf(opExtract, err)
		}

		return out, nil
	}
	out := make([]float64, n)
	var err error
	for i := 0; i < n; i++ {
		if out[i], err = m.At(i, last); err != nil {
			return nil, matrixErrorf(opExtract, err)
		}
	}

	return out, nil
}

// Solve reduces m and extracts the solution vector in one call.
// Returns the solutions and the reduced matrix.
// Errors are those of Reduce and ExtractSolutions, tagged "Solve".
func Solve(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	reduced, err := Reduce(m, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opSolve, err)
	}
	x, err := ExtractSolutions(reduced, opts...)
	if err != nil {
		return nil, nil, matrixErrorf(opSolve, err)
	}

	return x, reduced, nil
}
