// Package cli provides the command-line interface for blame-gutter.
package cli

import (
	"context"

	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBlame = "blame"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the viewer, allowing it to be mocked in tests.
var launchTUIFunc = tui.Run

// NewRootCommand creates the root command for blame-gutter.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "blame-gutter [file]",
		Short: "Blame annotations beside a file",
		Long: `blame-gutter shows who last changed each line of a file in a resizable
gutter. Consecutive lines from the same commit are grouped; hovering a group
shows the commit, and each group can copy its revision or open it on the
hosting service.

Run with a file to open the viewer, or use the subcommands for plain output.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.Config == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				c.Diag.Warn("config", "warning", w)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			return launchTUIFunc(ctx, c, args[0])
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupBlame, Title: "Blame Commands:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	blameCmd := newBlameCommand(c)
	blameCmd.GroupID = groupBlame

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupBlame

	linkCmd := newLinkCommand(c)
	linkCmd.GroupID = groupBlame

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup

	logsCmd := newLogsCommand(c)
	logsCmd.GroupID = groupSetup

	root.AddCommand(
		blameCmd,
		showCmd,
		linkCmd,
		configCmd,
		logsCmd,
	)

	return root
}
