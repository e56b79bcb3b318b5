package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"fileops/internal/commands"
)

func newReadCommand(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "read NAME",
		Short: "Print a file as text",
		Long:  `Print the content of a file in the directory. The file must contain valid UTF-8 text.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			application := state.application
			readCommand := commands.NewReadCommand(application.FileOps, application.Logger)

			content, err := readCommand.Execute(cmd.Context(), commands.ReadRequest{
				Directory: state.directory(),
				FileName:  args[0],
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, content)
			if content != "" && !strings.HasSuffix(content, "\n") && isTerminal(out) {
				fmt.Fprintln(out)
			}
			return nil
		},
	}
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
