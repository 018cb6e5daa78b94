// SPDX-License-Identifier: MIT

// Package cli provides the command-line interface of gjsolve.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gaussjordan/config"
	"github.com/katalvlaran/gaussjordan/present"
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gjsolve",
		Short: "gjsolve - solve N x N linear systems by Gauss-Jordan elimination",
		Long: `gjsolve reads an N x (N+1) augmented matrix from a comma-delimited text file,
reduces it to row canonical form (RREF) with Gauss-Jordan elimination and
prints the solution of the system.

Each line of the input is one equation; the last value is the right-hand side:

  2,1,-1,8
  -3,-1,2,-11
  -2,1,2,-3`,
		Version: version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfgFile, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			if cfg.Trace && config.ParseLevel(cfg.LogLevel) > slog.LevelDebug {
				cfg.LogLevel = "debug"
			}

			logger := config.NewLogger(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			ctx := config.WithLogger(cmd.Context(), logger)
			ctx = context.WithValue(ctx, configKey{}, cfg)
			cmd.SetContext(ctx)

			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(`{{.Name}} {{.Version}}
`)

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./"+config.DefaultFileName+")")
	pf.StringP("format", "o", config.DefaultFormat, "Output format (text|markdown|csv|json|yaml)")
	pf.IntP("precision", "p", config.DefaultPrecision, "Significant digits to print (-1 for shortest exact)")
	pf.Float64("tolerance", config.DefaultTolerance, "Tolerance for canonical-form checks (0 = exact)")
	pf.String("singular", config.DefaultSingular, "Singular system policy (error|propagate)")
	pf.Bool("no-color", false, "Disable styled headings")
	pf.String("log-level", config.DefaultLogLevel, "Log level (debug|info|warn|error)")
	pf.String("log-format", config.DefaultLogFormat, "Log format (text|json)")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return present.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("singular", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"error", "propagate"}, cobra.ShellCompDirectiveNoFileComp
	})

	// Add subcommands
	rootCmd.AddCommand(NewSolveCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewVersionCommand(version))

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute(ctx context.Context) error {
	rootCmd := NewRootCmd(Version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintf(rootCmd.ErrOrStderr(), "ERROR: %v\n", err)
		return err
	}

	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	// Return default config if none in context
	return config.Default()
}

// newRenderer builds the presenter for cmd's output stream.
func newRenderer(cmd *cobra.Command, cfg *config.Config) (*present.Renderer, error) {
	format, err := present.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	out := cmd.OutOrStdout()

	return present.New(out, format, cfg.Precision, !cfg.NoColor && isTerminal(out)), nil
}

// isTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
