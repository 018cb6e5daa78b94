// SPDX-License-Identifier: MIT
// Package matrix: private element-wise kernels behind the public facades.
//
// Policy:
//   - Fixed i→j loop orders; *Dense inputs take a flat-slice fast path.
//   - Kernels never mutate their inputs.

package matrix

import "math"

// ewAllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Time: O(r*c). Space: O(1). Deterministic.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - Equal infinities compare close; NaN never does.
func ewAllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf("AllClose", ErrNaNInf) // invalid tolerance
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return false, matrixErrorf("AllClose", ErrDimensionMismatch)
	}

	r, c := a.Rows(), a.Cols()

	// Dense fast-path: operate over flat slices when both are *Dense.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !closeEnough(da.data[idx], db.data[idx], rtol, atol) {
					return false, nil // early-exit on first violation
				}
			}

			return true, nil
		}
	}

	// Generic fallback via At (bounds-safe; still deterministic).
	var av, bv float64
	var err error
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if !closeEnough(av, bv, rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// closeEnough is the scalar relation shared by both AllClose paths.
func closeEnough(a, b, rtol, atol float64) bool {
	if a == b { // covers equal infinities and exact hits
		return true
	}
	if math.IsNaN(a) || math.IsNaN(b) || math.IsInf(a, 0) || math.IsInf(b, 0) {
		return false
	}

	return math.Abs(a-b) <= atol+rtol*math.Abs(b)
}

// ewReplaceInfNaN returns a copy of X where any {±Inf, NaN} are replaced by val.
// The copy has the finite-only policy enabled.
// Time: O(r*c). Space: O(r*c).
func ewReplaceInfNaN(X Matrix, val float64) (*Dense, error) {
	if isNonFinite(val) {
		return nil, matrixErrorf("ReplaceInfNaN", ErrNaNInf)
	}
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}
	out, err := workingCopy(X, false)
	if err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}
	out.validateNaNInf = true
	err = out.Apply(func(_, _ int, v float64) float64 {
		if isNonFinite(v) {
			return val
		}
		return v
	})
	if err != nil {
		return nil, matrixErrorf("ReplaceInfNaN", err)
	}

	return out, nil
}

// ReplaceInfNaN returns a copy of m where any {±Inf, NaN} are replaced by val (finite).
// Useful to sanitize the output of a SingularPropagate reduction before display.
func ReplaceInfNaN(m Matrix, val float64) (*Dense, error) {
	return ewReplaceInfNaN(m, val)
}

// HasNonFinite reports whether any entry of m is NaN or ±Inf.
// A nil matrix reports false.
func HasNonFinite(m Matrix) bool {
	if ValidateNotNil(m) != nil {
		return false
	}

	return ValidateFinite(m) != nil
}
