// Package matrix solves square linear systems by Gauss-Jordan elimination.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked accessors and an
//     optional finite-only numeric policy.
//   - IsRowCanonical, the reduced row echelon form (RREF) predicate for
//     augmented N×(N+1) systems, plus tolerance and raw-rows variants.
//   - Reduce, which turns [A | b] into [I | x] with elementary row operations
//     on a private copy, and ExtractSolutions, which reads x off the last column.
//   - Residuals and AllClose to verify a solution against the original system.
//
// Singular systems fail with ErrSingular by default; WithSingularPolicy
// (SingularPropagate) reproduces the IEEE ±Inf/NaN output of dividing by a
// zero pivot instead.
//
// See the examples in this package for usage patterns.
package matrix
