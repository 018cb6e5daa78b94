// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common tasks across the package.
//   - Avoid any logic duplication: each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Build systems with NewAugmented(A, b) or NewDenseFromRows.
//   - Reduce → ExtractSolutions, or Solve for both; Residuals to verify.

package matrix

import "errors"

// ---------- Constructors & Utilities ----------

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// Thin alias of NewDense with an intention-revealing name.
func NewZeros(rows, cols int) (*Dense, error) {
	return NewDense(rows, cols)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// NewAugmented builds the N×(N+1) system [A | b] from a square coefficient
// matrix A and a right-hand side b of length N.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (A not square or len(b) != N), ErrNaNInf.
// Complexity: O(N²).
func NewAugmented(a Matrix, b []float64) (*Dense, error) {
	const op = "NewAugmented"
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(op, err)
	}
	n := a.Rows()
	if a.Cols() != n {
		return nil, matrixErrorf(op, ErrDimensionMismatch)
	}
	if err := ValidateVecLen(b, n); err != nil {
		return nil, matrixErrorf(op, err)
	}
	out, err := NewDense(n, n+1)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, matrixErrorf(op, err)
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, matrixErrorf(op, err)
			}
		}
		if err = out.Set(i, n, b[i]); err != nil {
			return nil, matrixErrorf(op, err)
		}
	}

	return out, nil
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	return m.Clone()
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// NaN != anything. Time: O(r*c). Space: O(1). Deterministic.
//
// AI-Hints:
//   - AllClose with small atol/rtol is ideal for idempotence checks on reduced matrices.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	return ewAllClose(a, b, rtol, atol)
}

// IsSolvable reports whether m reduces without hitting a missing pivot.
// It is Reduce with the default policy, discarding the result.
func IsSolvable(m Matrix) (bool, error) {
	_, err := Reduce(m)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrSingular) {
		return false, nil
	}

	return false, err
}
