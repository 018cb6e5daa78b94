// SPDX-License-Identifier: MIT
// Package loader: sentinel errors.
// Shape sentinels mirror the checks a user sees at the command line; the
// matrix package keeps its own ErrBadShape for the library boundary.

package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrEmpty is returned when the input contains no rows of numbers.
	ErrEmpty = errors.New("loader: zero rows of numbers")

	// ErrRagged is returned when rows carry different numbers of values.
	ErrRagged = errors.New("loader: rows have different lengths")

	// ErrNotAugmented is returned when the input is not an N x (N+1) matrix.
	ErrNotAugmented = errors.New("loader: not an N x (N+1) matrix")

	// ErrParse is returned when a value cannot be read as a number.
	// The concrete error is a *ParseError carrying the position.
	ErrParse = errors.New("loader: invalid number")
)

// ParseError reports the position of a value that failed to parse.
// Line and Column are 1-based; Column counts comma-separated values, not bytes.
type ParseError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("loader: line %d, value %d: cannot parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap exposes both ErrParse and the underlying strconv error to errors.Is.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}

// loaderErrorf wraps err with a call-site tag, preserving it for errors.Is.
func loaderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
