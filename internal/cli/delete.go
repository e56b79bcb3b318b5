package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fileops/internal/commands"
)

func newDeleteCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:     "delete NAME...",
		Aliases: []string{"rm"},
		Short:   "Delete files",
		Long:    `Delete one or more files from the directory. Deleting a missing file is an error.`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application := state.application
			deleteCommand := commands.NewDeleteCommand(application.FileOps, application.Logger)

			result, err := deleteCommand.Execute(cmd.Context(), commands.DeleteRequest{
				Directory: state.directory(),
				FileNames: args,
			})
			if result != nil {
				for _, name := range result.Deleted {
					fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", name)
				}
			}
			return err
		},
	}
}
