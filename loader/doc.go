// SPDX-License-Identifier: MIT

// Package loader reads augmented linear systems from comma-delimited text.
//
// Each non-blank line is one row; values are separated by commas:
//
//	2,1,-1,8
//	-3,-1,2,-11
//	-2,1,2,-3
//
// Parse and ReadFile return raw rows without shape checks, so a caller can
// display what was read before rejecting it. Validate enforces the
// N x (N+1) shape, and Load / Decode combine all steps into a *matrix.Dense.
package loader
