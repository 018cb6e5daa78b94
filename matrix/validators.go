// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating shape/nil/finite checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Finite).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil (*Dense)(nil) stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateAugmented ensures m is an N×(N+1) augmented system with N ≥ 1.
//
// Inputs: non-nil Matrix (caller must ensure).
// Errors: ErrBadShape.
// Complexity: O(1).
func ValidateAugmented(m Matrix) error {
	r, c := m.Rows(), m.Cols()
	if r < 1 || c != r+1 {
		return validatorErrorf("ValidateAugmented", fmt.Errorf("%dx%d: %w", r, c, ErrBadShape))
	}

	return nil
}

// ValidateFinite ensures every entry of m is finite.
// Errors: ErrNaNInf, tagged with the first offending coordinates (row-major order).
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if d, ok := m.(*Dense); ok {
		var err error
		d.Do(func(i, j int, v float64) bool {
			if isNonFinite(v) {
				err = validatorErrorf("ValidateFinite", denseErrorf(ctxAt, i, j, ErrNaNInf))
				return false
			}
			return true
		})

		return err
	}

	r, c := m.Rows(), m.Cols()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if isNonFinite(v) {
				return validatorErrorf("ValidateFinite", fmt.Errorf("At(%d,%d): %w", i, j, ErrNaNInf))
			}
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSystem is the composite guard used by Reduce: NotNil → Augmented → Finite.
// The finite check is skipped when checkFinite is false.
func ValidateSystem(m Matrix, checkFinite bool) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if err := ValidateAugmented(m); err != nil {
		return validatorErrorf("ValidateSystem", err)
	}
	if checkFinite {
		if err := ValidateFinite(m); err != nil {
			return validatorErrorf("ValidateSystem", err)
		}
	}

	return nil
}
