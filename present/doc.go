// SPDX-License-Identifier: MIT

// Package present renders systems, solution vectors and reports for humans
// (text tables, markdown) and for tools (csv, json, yaml).
//
// Unknowns are labelled var1..varN. Numbers are printed with a configurable
// number of significant digits; NaN and ±Inf are always spelled out.
package present
