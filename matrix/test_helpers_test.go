// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures (augmented systems) and utilities for kernels.
//   • Keep fixture data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// Tolerances for solution checks. Elimination by scaling rows with -1/row_i[a]
// accumulates a few ulps; anything beyond 1e-9 on these fixtures is a bug.
const (
	tolSolution = 1e-9
	tolCanon    = 1e-12
)

// Fixtures: augmented systems [A | b] with known solutions.
var (
	// sys3: classic 3×3 textbook system, x=2, y=3, z=-1.
	sys3     = [][]float64{{2, 1, -1, 8}, {-3, -1, 2, -11}, {-2, 1, 2, -3}}
	sys3Want = []float64{2, 3, -1}

	// sys1: trivial 1×2 system 2x = 4.
	sys1     = [][]float64{{2, 4}}
	sys1Want = []float64{2}

	// sysCanon: already reduced, identity-augmented.
	sysCanon     = [][]float64{{1, 0, 5}, {0, 1, 7}}
	sysCanonWant = []float64{5, 7}

	// sysSwap: zero leading pivot, needs a row swap.
	sysSwap     = [][]float64{{0, 2, 4}, {3, 0, 9}}
	sysSwapWant = []float64{3, 2}

	// sysSym: symmetric positive definite 3×3, x=(1,-2,3).
	sysSym     = [][]float64{{4, -2, 1, 11}, {-2, 4, -2, -16}, {1, -2, 4, 17}}
	sysSymWant = []float64{1, -2, 3}

	// sysSingular: dependent rows; no unique solution.
	sysSingular = [][]float64{{1, 2, 3}, {2, 4, 6}}
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the interface fallback paths in kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// CompareExact asserts that m matches want element by element with ==.
func CompareExact(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("Rows = %d; want %d", m.Rows(), len(want))
	}
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("Cols[%d] = %d; want %d", i, m.Cols(), len(want[i]))
		}
		for j = 0; j < m.Cols(); j++ {
			if got := MustAt(t, m, i, j); got != want[i][j] {
				t.Errorf("At(%d,%d) = %v; want %v", i, j, got, want[i][j])
			}
		}
	}
}

// RandomSystem returns a diagonally dominant n×(n+1) system (always nonsingular)
// filled from a seeded source, so runs are reproducible.
func RandomSystem(t testing.TB, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n+1)
	var i, j int
	var v, rowSum float64
	for i = 0; i < n; i++ {
		rowSum = 0
		for j = 0; j <= n; j++ {
			v = rng.Float64()*2 - 1 // [-1, 1)
			MustSet(t, m, i, j, v)
			if j < n && j != i {
				if v < 0 {
					rowSum -= v
				} else {
					rowSum += v
				}
			}
		}
		MustSet(t, m, i, i, rowSum+1) // strict diagonal dominance
	}

	return m
}
