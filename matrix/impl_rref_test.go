// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gaussjordan/matrix"
)

func TestIsRowCanonical(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		rows [][]float64
		want bool
	}{
		{"identity augmented 2x3", sysCanon, true},
		{"1x2 leading one", [][]float64{{1, -9.5}}, true},
		{"rhs column is ignored", [][]float64{{1, 0, math.MaxFloat64}, {0, 1, -1e300}}, true},
		{"negative zero counts as zero", [][]float64{{1, math.Copysign(0, -1), 3}, {0, 1, 4}}, true},
		{"diagonal not one", [][]float64{{2, 0, 5}, {0, 1, 7}}, false},
		{"off-diagonal not zero", [][]float64{{1, 0.5, 5}, {0, 1, 7}}, false},
		{"lower triangle not zero", [][]float64{{1, 0, 5}, {1e-300, 1, 7}}, false},
		{"rounding residue fails exact check", [][]float64{{1, 0, 5}, {0, 1 + 1e-16*2, 7}}, false},
		{"unreduced system", sys3, false},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			m := MustRows(t, tc.rows)
			require.Equal(t, tc.want, matrix.IsRowCanonical(m))
			require.Equal(t, tc.want, matrix.IsRowCanonical(hide{m}), "fallback path")
			require.Equal(t, tc.want, matrix.IsRowCanonicalData(tc.rows), "raw rows")
		})
	}
}

func TestIsRowCanonical_ShapeRejection(t *testing.T) {
	var nilDense *matrix.Dense

	require.False(t, matrix.IsRowCanonical(nil))
	require.False(t, matrix.IsRowCanonical(nilDense))

	// square identity: wrong shape even though the block is I
	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	require.False(t, matrix.IsRowCanonical(I))

	// one column too many
	wide := MustRows(t, [][]float64{{1, 0, 0, 1}, {0, 1, 0, 1}})
	require.False(t, matrix.IsRowCanonical(wide))

	// ragged raw rows: the second row is short
	require.False(t, matrix.IsRowCanonicalData([][]float64{{1, 0, 5}, {0, 1}}))
	// ragged raw rows: the first row is long
	require.False(t, matrix.IsRowCanonicalData([][]float64{{1, 0, 5, 6}, {0, 1, 7}}))
	require.False(t, matrix.IsRowCanonicalData(nil))
}

func TestIsRowCanonicalTol(t *testing.T) {
	drift := MustRows(t, [][]float64{{1 + 1e-15, -2e-16, 5}, {3e-17, 1 - 4e-16, 7}})

	require.False(t, matrix.IsRowCanonical(drift))
	require.False(t, matrix.IsRowCanonicalTol(drift, 0))
	require.True(t, matrix.IsRowCanonicalTol(drift, 1e-12))
	require.True(t, matrix.IsRowCanonicalTol(hide{drift}, 1e-12))
	require.False(t, matrix.IsRowCanonicalTol(drift, 1e-16))

	// a negative or NaN tolerance never matches anything off exact
	require.False(t, matrix.IsRowCanonicalTol(drift, -1))
	require.False(t, matrix.IsRowCanonicalTol(drift, math.NaN()))
}

func TestIsRowCanonical_DoesNotMutate(t *testing.T) {
	m := MustRows(t, sys3)
	_ = matrix.IsRowCanonical(m)
	_ = matrix.IsRowCanonicalTol(m, 1e-3)
	CompareExact(t, sys3, m)
}
