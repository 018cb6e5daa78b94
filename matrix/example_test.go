// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// ExampleSolve solves the classic 3×3 system
//
//	 2x +  y -  z =   8
//	-3x -  y + 2z = -11
//	-2x +  y + 2z =  -3
func ExampleSolve() {
	sys, _ := matrix.NewDenseFromRows([][]float64{
		{2, 1, -1, 8},
		{-3, -1, 2, -11},
		{-2, 1, 2, -3},
	})

	x, reduced, err := matrix.Solve(sys)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x=%.4f y=%.4f z=%.4f\n", x[0], x[1], x[2])
	fmt.Println("reduced is RREF:", matrix.IsRowCanonicalTol(reduced, 1e-12))

	// Output:
	// x=2.0000 y=3.0000 z=-1.0000
	// reduced is RREF: true
}

// ExampleReduce shows the row swap forced by a zero leading pivot.
func ExampleReduce() {
	sys, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 4},
		{3, 0, 9},
	})

	reduced, _ := matrix.Reduce(sys)
	fmt.Print(reduced)

	// Output:
	// [1, 0, 3]
	// [0, 1, 2]
}

// ExampleWithTrace records every elementary row operation.
func ExampleWithTrace() {
	sys, _ := matrix.NewDenseFromRows([][]float64{
		{0, 2, 4},
		{3, 0, 9},
	})

	_, _ = matrix.Reduce(sys, matrix.WithTrace(func(s matrix.Step, _ matrix.Matrix) {
		fmt.Printf("%-9s column=%d row=%d other=%d\n", s.Kind, s.Column, s.Row, s.Other)
	}))

	// Output:
	// swap      column=0 row=0 other=1
	// normalize column=0 row=0 other=-1
	// normalize column=1 row=1 other=-1
}

// ExampleIsRowCanonical checks the RREF predicate on raw rows.
func ExampleIsRowCanonical() {
	fmt.Println(matrix.IsRowCanonicalData([][]float64{{1, 0, 5}, {0, 1, 7}}))
	fmt.Println(matrix.IsRowCanonicalData([][]float64{{1, 2, 5}, {0, 1, 7}}))
	fmt.Println(matrix.IsRowCanonicalData([][]float64{{1, 0}, {0, 1}}))

	// Output:
	// true
	// false
	// false
}

// ExampleWithSingularPolicy contrasts the two singular policies.
func ExampleWithSingularPolicy() {
	sys, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3},
		{2, 4, 6},
	})

	_, _, err := matrix.Solve(sys)
	fmt.Println("default:", errors.Is(err, matrix.ErrSingular))

	x, _, err := matrix.Solve(sys, matrix.WithSingularPolicy(matrix.SingularPropagate))
	fmt.Println("propagate:", err == nil, x)

	// Output:
	// default: true
	// propagate: true [NaN NaN]
}

// ExampleResiduals verifies a solution against the original system.
func ExampleResiduals() {
	sys, _ := matrix.NewDenseFromRows([][]float64{
		{4, -2, 1, 11},
		{-2, 4, -2, -16},
		{1, -2, 4, 17},
	})

	x, _, _ := matrix.Solve(sys)
	r, _ := matrix.Residuals(sys, x)
	fmt.Printf("%.6g %.6g %.6g %v\n", x[0], x[1], x[2], matrix.MaxAbs(r) < 1e-9)

	// Output:
	// 1 -2 3 true
}
