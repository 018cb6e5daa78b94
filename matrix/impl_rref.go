// SPDX-License-Identifier: MIT

// Package matrix - row canonical form (RREF) predicate.
//
// Purpose:
//   - Decide whether an augmented N×(N+1) matrix is already reduced: ones on the
//     diagonal, zeros everywhere else except the right-hand-side column.
//   - Double as a shape guard: anything that is not N×(N+1) is reported as
//     "not canonical". Callers that need to tell malformed input apart from
//     unreduced input validate the shape first (ValidateAugmented, loader.Validate).
//
// Determinism & Policy:
//   - IsRowCanonical compares with EXACT equality. Values that are mathematically
//     1 or 0 but carry rounding error fail the test; IsRowCanonicalTol accepts
//     a tolerance instead.
//   - Pure functions; inputs are never mutated.

package matrix

import "math"

// IsRowCanonical reports whether m is an N×(N+1) matrix whose leading N×N
// block is exactly the identity.
// A nil matrix or a wrong shape yields false.
// Complexity: O(N²), no allocations.
func IsRowCanonical(m Matrix) bool {
	return IsRowCanonicalTol(m, 0)
}

// IsRowCanonicalTol is IsRowCanonical with |x-1| ≤ tol on the diagonal and
// |x| ≤ tol off it. tol == 0 is exact equality; a negative or NaN tol
// never matches.
// Complexity: O(N²), no allocations.
func IsRowCanonicalTol(m Matrix, tol float64) bool {
	if ValidateNotNil(m) != nil || ValidateAugmented(m) != nil {
		return false
	}
	if d, ok := m.(*Dense); ok {
		return denseCanonical(d, tol)
	}

	n := m.Rows()
	var i, j int
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return false
			}
			if !canonicalEntry(i, j, v, tol) {
				return false
			}
		}
	}

	return true
}

// IsRowCanonicalData applies the exact predicate to raw rows.
// Every row must hold len(rows)+1 values; ragged or empty input yields false.
func IsRowCanonicalData(rows [][]float64) bool {
	n := len(rows)
	if n == 0 {
		return false
	}
	for _, row := range rows {
		if len(row) != n+1 {
			return false
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if !canonicalEntry(i, j, rows[i][j], 0) {
				return false
			}
		}
	}

	return true
}

// denseCanonical is the flat-slice fast path; shape already validated.
func denseCanonical(d *Dense, tol float64) bool {
	n := d.r
	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * d.c
		for j = 0; j < n; j++ { // last column (j == n) is the RHS and never inspected
			if !canonicalEntry(i, j, d.data[base+j], tol) {
				return false
			}
		}
	}

	return true
}

// canonicalEntry checks one coefficient: 1 on the diagonal, 0 elsewhere.
func canonicalEntry(i, j int, v, tol float64) bool {
	want := 0.0
	if i == j {
		want = 1.0
	}
	if tol == 0 {
		return v == want
	}

	return math.Abs(v-want) <= tol
}
