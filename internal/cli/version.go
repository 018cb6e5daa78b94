// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display gjsolve version and build information.`,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "gjsolve v%s (commit %s)\n", version, GitCommit)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Gauss-Jordan linear system solver")
		},
	}
}
