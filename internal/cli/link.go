package cli

import (
	"fmt"

	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/usecase"
	"github.com/spf13/cobra"
)

// newLinkCommand creates the link command.
func newLinkCommand(c *app.Container) *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "link <file> <revision>",
		Short: "Print the web permalink of a revision",
		Long: `Print the hosting-service URL of a revision, built from the origin remote
of the file's repository and the configured providers.

Error conditions:
- Uncommitted revision
- No origin remote
- No provider matches the remote`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := c.ResolveLinkUseCase().Execute(cmd.Context(), usecase.ResolveLinkInput{
				FilePath: args[0],
				Revision: args[1],
			})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out.URL)
			if open {
				return c.Opener().Open(out.URL)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open the link in a browser")

	return cmd
}
