// SPDX-License-Identifier: MIT

// Package matrix: converters between raw row slices ([][]float64, as produced
// by text loaders) and *Dense.
package matrix

import "fmt"

const opFromRows = "NewDenseFromRows"

// NewDenseFromRows copies rows into a new *Dense.
// Rows must be non-empty, non-ragged and (under the default numeric policy) finite.
//
// Errors: ErrInvalidDimensions (no rows / empty first row), ErrBadShape (ragged),
// ErrNaNInf (non-finite value).
// Time Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), c, ErrBadShape))
		}
		for j, v := range row {
			if m.validateNaNInf && isNonFinite(v) {
				return nil, matrixErrorf(opFromRows, denseErrorf(ctxSet, i, j, ErrNaNInf))
			}
		}
		copy(m.data[i*c:(i+1)*c], row)
	}

	return m, nil
}

// ToRows returns m as freshly allocated row slices.
// Time Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf("ToRows", err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	if d, ok := m.(*Dense); ok {
		var err error
		for i := 0; i < r; i++ {
			if out[i], err = d.Row(i); err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
		}

		return out, nil
	}
	for i := 0; i < r; i++ {
		out[i] = make([]float64, c)
		for j := 0; j < c; j++ {
			v, err := m.At(i, j)
			if err != nil {
				return nil, matrixErrorf("ToRows", err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}
