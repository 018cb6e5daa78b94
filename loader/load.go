// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/gaussjordan/matrix"
)

// ReadFile parses the file at path without shape checks.
// Callers that want to show the raw input before rejecting it use this
// together with Validate.
func ReadFile(path string) ([][]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loaderErrorf("ReadFile", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := Parse(f)
	if err != nil {
		return nil, loaderErrorf("ReadFile", fmt.Errorf("%s: %w", path, err))
	}

	return rows, nil
}

// Decode parses r, validates the shape and builds a *matrix.Dense.
// Non-finite values (e.g. "NaN", "Inf") are rejected with matrix.ErrNaNInf.
func Decode(r io.Reader) (*matrix.Dense, error) {
	rows, err := Parse(r)
	if err != nil {
		return nil, loaderErrorf("Decode", err)
	}

	return build("Decode", rows)
}

// Load is ReadFile followed by Validate and matrix.NewDenseFromRows.
func Load(path string) (*matrix.Dense, error) {
	rows, err := ReadFile(path)
	if err != nil {
		return nil, loaderErrorf("Load", err)
	}

	return build("Load", rows)
}

// FromRows validates already parsed rows and builds the system matrix.
func FromRows(rows [][]float64) (*matrix.Dense, error) {
	return build("FromRows", rows)
}

func build(tag string, rows [][]float64) (*matrix.Dense, error) {
	if err := Validate(rows); err != nil {
		return nil, loaderErrorf(tag, err)
	}
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, loaderErrorf(tag, err)
	}

	return m, nil
}
