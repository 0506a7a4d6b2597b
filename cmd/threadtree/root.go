package main

import (
	"fmt"

	"threadtree/config"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
)

var log = logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "threadtree"))

// ExitError carries a process exit code out of a command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// globalFlags are shared by every subcommand
type globalFlags struct {
	configFile string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:   "threadtree",
		Short: "Print the thread group tree of a running system",
		Long: TitleStyle.Render("threadtree") + SubtitleStyle.Render(" - print the thread group tree of a running system") + `

threadtree walks from the calling process up to the root of the process
tree and prints every process (thread group) and task (thread) below it.
Trees can also be captured to TOML snapshots and rendered later.

` + SubtitleStyle.Render("Examples:") + `
  threadtree tree                       Print the whole live tree
  threadtree tree --pid 1234 --self     Print one process and its descendants
  threadtree list --depth 1             Flat table of the top of the tree
  threadtree snapshot -o tree.toml      Capture the live tree
  threadtree tree --file tree.toml      Render a captured tree`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVar(&g.configFile, "config", "", "config file (default is ./threadtree.toml or $XDG_CONFIG_HOME/threadtree/config.toml)")
	root.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "print a summary after the report")

	root.AddCommand(newTreeCmd(g))
	root.AddCommand(newListCmd(g))
	root.AddCommand(newSnapshotCmd(g))
	root.AddCommand(newVersionCmd())

	return root
}

// loadConfig reads the config file and environment
func (g *globalFlags) loadConfig() (*config.Config, error) {
	cfg, path, err := config.Load(g.configFile)
	if err != nil {
		return nil, &ExitError{Code: 2, Err: err}
	}
	if path != "" {
		log.Debugln("Using config file", path)
	}
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), "threadtree", versionString())
			return err
		},
	}
}

func versionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s)", Version, Commit)
}
