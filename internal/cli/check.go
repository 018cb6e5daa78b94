// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaussjordan/loader"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/present"
)

// ErrNotCanonical is returned by `check --strict` for a matrix not in RREF.
var ErrNotCanonical = errors.New("matrix is not in row canonical form")

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Report whether a matrix is already in row canonical form",
		Long: `Read an N x (N+1) augmented matrix and report whether its coefficient block
is the identity. If it is, the solution is printed straight from the last column.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	cmd.Flags().Bool("strict", false, "Exit with an error when the matrix is not in RREF")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg := GetConfig(cmd.Context())
	strict, _ := cmd.Flags().GetBool("strict")

	r, err := newRenderer(cmd, cfg)
	if err != nil {
		return err
	}
	path, err := resolvePath(cmd, args)
	if err != nil {
		return err
	}
	rows, err := readRows(cmd, path)
	if err != nil {
		return err
	}
	if err = loader.Validate(rows); err != nil {
		return explainShape(path, err)
	}
	sys, err := loader.FromRows(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	canonical := matrix.IsRowCanonicalTol(sys, cfg.Tolerance)
	n, cols := sys.Shape()
	if err = r.Report("CHECK", []present.Field{
		{Key: "file", Value: path},
		{Key: "size", Value: strconv.Itoa(n) + " x " + strconv.Itoa(cols)},
		{Key: "rref", Value: yesNo(canonical)},
	}); err != nil {
		return err
	}

	if !canonical {
		if err = r.Flush(); err != nil {
			return err
		}
		if strict {
			return fmt.Errorf("%s: %w", path, ErrNotCanonical)
		}
		return nil
	}

	xs, err := matrix.ExtractSolutions(sys, matrix.WithRequireCanonical(), matrix.WithTolerance(cfg.Tolerance))
	if err != nil {
		return err
	}
	if err = r.Solutions(xs); err != nil {
		return err
	}

	return r.Flush()
}
