// SPDX-License-Identifier: MIT

package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// fieldSep separates the values of one row.
const fieldSep = ","

// maxLineBytes bounds a single input line; wide systems still fit comfortably.
const maxLineBytes = 4 << 20

// Parse reads comma-delimited rows of numbers from r.
//
// Implementation:
//   - Stage 1: Scan line by line; strip a trailing '\r' and surrounding blanks.
//   - Stage 2: Skip blank lines, so a trailing newline never adds an empty row.
//   - Stage 3: Split on ',' and parse every trimmed value with strconv.ParseFloat.
//     Integers and decimals are both accepted.
//
// Parse performs no shape checks: ragged rows are returned as read.
// Errors: *ParseError (matches ErrParse) for a bad value, or the reader's error.
// Complexity: O(total input size).
func Parse(r io.Reader) ([][]float64, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		rows   [][]float64
		lineNo int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(strings.TrimSuffix(sc.Text(), "\r"))
		if line == "" {
			continue
		}
		fields := strings.Split(line, fieldSep)
		row := make([]float64, len(fields))
		for j, f := range fields {
			f = strings.TrimSpace(f)
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				var numErr *strconv.NumError
				if errors.As(err, &numErr) {
					err = numErr.Err
				}
				return nil, &ParseError{Line: lineNo, Column: j + 1, Value: f, Err: err}
			}
			row[j] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, loaderErrorf("Parse", fmt.Errorf("line %d: %w", lineNo+1, err))
	}

	return rows, nil
}

// Validate checks that rows form an augmented N x (N+1) system.
// Checks run in order: empty, ragged, augmented shape.
//
// Errors: ErrEmpty, ErrRagged (with the first offending row), ErrNotAugmented.
// Complexity: O(rows).
func Validate(rows [][]float64) error {
	if len(rows) == 0 {
		return loaderErrorf("Validate", ErrEmpty)
	}
	want := len(rows[0])
	for i, row := range rows {
		if len(row) != want {
			return loaderErrorf("Validate", fmt.Errorf("row %d has %d values, row 1 has %d: %w", i+1, len(row), want, ErrRagged))
		}
	}
	if want != len(rows)+1 {
		return loaderErrorf("Validate", fmt.Errorf("%d rows x %d columns: %w", len(rows), want, ErrNotAugmented))
	}

	return nil
}
