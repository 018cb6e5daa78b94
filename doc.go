// Package gaussjordan solves square systems of linear equations by
// Gauss-Jordan elimination to reduced row echelon form (RREF).
//
// What is in the box?
//
//	• Core kernel: pivot swap, row normalization and elimination on an
//	  augmented N×(N+1) matrix, with an optional per-step trace hook
//	• RREF predicate: exact by default, tolerance-aware on request
//	• Solution extraction and residual verification
//	• Text input: comma-separated rows, one equation per line
//	• Output: text tables, Markdown, CSV, JSON and YAML
//	• The gjsolve command line tool
//
// Layout:
//
//	matrix/        Dense storage, Reduce/Solve/ExtractSolutions, RREF checks
//	loader/        parse and shape-check augmented systems from text
//	present/       render matrices, solutions and reports
//	config/        layered configuration (defaults, file, env, flags) + logging
//	internal/cli/  cobra commands behind gjsolve
//	cmd/gjsolve/   the binary entry point
//	examples/      runnable walkthroughs
//
// Quick example:
//
//	 2x +  y -  z =   8        2, 1, -1, 8
//	-3x -  y + 2z = -11   →   -3, -1, 2, -11   →   x=2 y=3 z=-1
//	-2x +  y + 2z =  -3       -2, 1, 2, -3
//
//	go install github.com/katalvlaran/gaussjordan/cmd/gjsolve@latest
package gaussjordan
