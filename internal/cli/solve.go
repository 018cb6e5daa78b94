// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaussjordan/config"
	"github.com/katalvlaran/gaussjordan/loader"
	"github.com/katalvlaran/gaussjordan/matrix"
	"github.com/katalvlaran/gaussjordan/present"
)

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Solve the system stored in a text file",
		Long: `Read an N x (N+1) augmented matrix, reduce it to RREF and print var1..varN.

When no file is given, gjsolve asks for one. Use "-" to read the matrix
from standard input.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	cmd.Flags().Bool("verify", false, "Print the largest residual |A*x - b| of the solution")
	cmd.Flags().Bool("trace", false, "Log every elementary row operation (debug level)")
	cmd.Flags().Bool("show-input", true, "Print the matrix that was read")
	cmd.Flags().Bool("show-reduced", false, "Print the reduced matrix")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := GetConfig(ctx)
	logger := config.GetLogger(ctx)

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

	// Echo the input before shape checks so users can see what was parsed.
	if cfg.ShowInput {
		if err = r.Rows("INPUT", rows); err != nil {
			return err
		}
	}
	if err = loader.Validate(rows); err != nil {
		return explainShape(path, err)
	}
	sys, err := loader.FromRows(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	opts := cfg.MatrixOptions()
	if cfg.Trace {
		opts = append(opts, matrix.WithTrace(traceHook(logger)))
	}

	start := time.Now()
	xs, reduced, err := matrix.Solve(sys, opts...)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return fmt.Errorf("%s: the system has no unique solution: %w", path, err)
		}
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Info("system solved", "file", path, "n", len(xs), "elapsed", time.Since(start))
	if matrix.HasNonFinite(reduced) {
		logger.Warn("singular system produced non-finite values", "policy", cfg.Singular)
	}

	if cfg.ShowReduced {
		if err = r.Matrix("REDUCED", reduced); err != nil {
			return err
		}
	}
	if err = r.Solutions(xs); err != nil {
		return err
	}

	if cfg.Verify {
		res, err := matrix.Residuals(sys, xs)
		if err != nil {
			return err
		}
		err = r.Report("VERIFY", []present.Field{
			{Key: "max residual", Value: present.FormatFloat(matrix.MaxAbs(res), -1)},
			{Key: "canonical", Value: yesNo(matrix.IsRowCanonicalTol(reduced, cfg.Tolerance))},
		})
		if err != nil {
			return err
		}
	}

	return r.Flush()
}

// traceHook logs each row operation at debug level.
func traceHook(logger *slog.Logger) func(matrix.Step, matrix.Matrix) {
	return func(s matrix.Step, _ matrix.Matrix) {
		logger.Debug("row operation",
			"kind", s.Kind.String(),
			"column", s.Column,
			"row", s.Row,
			"other", s.Other,
			"factor", s.Factor,
		)
	}
}

func yesNo(ok bool) string {
	if ok {
		return "yes"
	}

	return "no"
}
