// SPDX-License-Identifier: MIT
// Package matrix provides the generic linear-algebra kernels that support the
// solver: matrix-vector products and residual checks on augmented systems.
//
// Purpose:
//   - Verify a solution against the ORIGINAL system (r = A·x − b).
//   - Keep the shared error wrapper and accumulation constants in one place.
//
// Notes:
//   - All kernels use central validators and wrap sentinels via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for dot products and similar accumulations.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMatVec    = "MatVec"
	opResiduals = "Residuals"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes y = m·x.
// Implementation:
//   - Stage 1: Validate m non-nil and len(x) == Cols.
//   - Stage 2: Fast-path for *Dense (flat row-major dot products); fallback via At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var mv float64
	var err error
	for i := 0; i < rows; i++ {
		y[i] = ZeroSum
		for j := 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// Residuals returns r = A·x − b for the augmented system aug = [A | b].
// It multiplies aug by the extended vector [x, −1], so one MatVec covers
// both the coefficient block and the right-hand side.
//
// Errors:
//   - ErrNilMatrix, ErrBadShape (aug not N×(N+1)), ErrDimensionMismatch (len(x) != N).
//
// Complexity: O(N²).
func Residuals(aug Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(aug); err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	if err := ValidateAugmented(aug); err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	if err := ValidateVecLen(x, aug.Rows()); err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}
	ext := make([]float64, len(x)+1)
	copy(ext, x)
	ext[len(x)] = -1

	r, err := MatVec(aug, ext)
	if err != nil {
		return nil, matrixErrorf(opResiduals, err)
	}

	return r, nil
}

// MaxAbs returns max_i |v[i]|, or 0 for an empty vector. NaN propagates.
func MaxAbs(v []float64) float64 {
	out := 0.0
	for _, x := range v {
		if math.IsNaN(x) {
			return x
		}
		if a := math.Abs(x); a > out {
			out = a
		}
	}

	return out
}
