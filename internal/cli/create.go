package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"fileops/internal/commands"
)

func newCreateCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "create NAME...",
		Short: "Create empty files",
		Long: `Create one or more empty files in the directory. Missing directories are
created first and existing files are truncated.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application := state.application
			createCommand := commands.NewCreateCommand(application.FileOps, application.Logger)

			result, err := createCommand.Execute(cmd.Context(), commands.CreateRequest{
				Directory: state.directory(),
				FileNames: args,
			})
			if result != nil {
				for _, name := range result.Created {
					fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
				}
			}
			return err
		},
	}
}
