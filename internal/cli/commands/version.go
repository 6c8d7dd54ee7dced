package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sqldoc v%s\n", version)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "built %s (%s)\n", buildDate, gitCommit)
		},
	}
}
