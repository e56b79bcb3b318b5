// Package cli wires the fileops cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"fileops/internal/app"
	"fileops/internal/config"
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// rootState is shared by the root command and its subcommands.
type rootState struct {
	cfgFile string
	verbose bool

	appOpts     []app.Option
	application *app.App
}

// directory returns the directory the subcommands operate in.
func (s *rootState) directory() string {
	return s.application.Settings.Directory
}

// NewRootCommand builds the fileops command tree. Extra options are applied
// when the application is initialized, after the ones derived from flags.
func NewRootCommand(opts ...app.Option) *cobra.Command {
	state := &rootState{appOpts: opts}

	rootCmd := &cobra.Command{
		Use:   "fileops",
		Short: "Create, read and delete files in a directory",
		Long: `Fileops creates empty files (making the directory when it is missing),
prints file contents as text and deletes files.

The directory defaults to the "directory" setting of the config file, which
itself defaults to the current directory. Use --dir to override it.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return state.init(cmd)
		},
	}

	rootCmd.PersistentFlags().
		StringVar(&state.cfgFile, "config", "", "config file (default is $HOME/.config/fileops/config.yaml)")
	rootCmd.PersistentFlags().
		BoolVarP(&state.verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		StringP("dir", "d", "", "Directory containing the files (default is the configured directory)")

	rootCmd.AddCommand(
		newCreateCommand(state),
		newReadCommand(state),
		newDeleteCommand(state),
		newConfigCommand(state),
		newVersionCommand(),
	)

	return rootCmd
}

func (s *rootState) init(cmd *cobra.Command) error {
	// Without a home directory only --config and the environment apply.
	home, _ := os.UserHomeDir()

	v := config.NewViper(s.cfgFile, home)
	if err := v.BindPFlag(config.KeyDirectory, cmd.Root().PersistentFlags().Lookup("dir")); err != nil {
		return err
	}

	settings, err := config.Load(v)
	if err != nil {
		return err
	}

	// Initialize the application with dependency injection
	opts := []app.Option{
		app.WithSettings(settings),
		app.WithLogOutput(cmd.ErrOrStderr()),
	}
	if s.verbose {
		opts = append(opts, app.WithVerbose(true))
	}
	opts = append(opts, s.appOpts...)

	s.application, err = app.NewApp(cmd.Context(), opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, opts ...app.Option) error {
	rootCmd := NewRootCommand(opts...)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.ExecuteContext(ctx)
}
