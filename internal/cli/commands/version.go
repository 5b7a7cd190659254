package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCommand creates the version command. Given any arguments it
// judges "version" and the arguments as pins instead.
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display bowlsplit version and build information.`,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return judgeAsPins(cmd, args)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "bowlsplit v%s\n", version)
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Bowling split judge built with Go")
			return nil
		},
	}
}
