package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit, build date, and build information for fileops.`,
		Args:  cobra.NoArgs,
		// Version output does not depend on configuration.
		PersistentPreRun: func(*cobra.Command, []string) {},
		Run: func(cmd *cobra.Command, _ []string) {
			info := GetVersionInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "fileops version %s\n", info.Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", info.Commit)
			fmt.Fprintf(cmd.OutOrStdout(), "  built: %s\n", info.Date)
			fmt.Fprintf(cmd.OutOrStdout(), "  built by: %s\n", info.BuiltBy)
		},
	}
}
