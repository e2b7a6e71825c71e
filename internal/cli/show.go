package cli

import (
	"fmt"
	"strings"

	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/usecase"
	"github.com/spf13/cobra"
)

// newShowCommand creates the show command.
func newShowCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file> <revision>",
		Short: "Display commit details",
		Long: `Display the author, subject and message of a revision, as shown in the
viewer's popover. The file locates the repository.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rev := domain.NormalizeRevision(args[1])
			if !domain.IsCommitted(rev) {
				return domain.ErrUncommitted
			}

			out, err := c.ShowCommitUseCase().Execute(cmd.Context(), usecase.ShowCommitInput{
				FilePath: args[0],
				Revision: rev,
			})
			if err != nil {
				return err
			}

			d := out.Detail
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "commit %s\n", out.Revision)
			_, _ = fmt.Fprintf(w, "Author: %s <%s>\n", d.AuthorName, d.AuthorEmail)
			_, _ = fmt.Fprintf(w, "Avatar: %s\n", d.AvatarURL(domain.DefaultAvatarSize))
			_, _ = fmt.Fprintf(w, "\n    %s\n", d.Subject)
			if d.Message != "" {
				_, _ = fmt.Fprintln(w)
				for _, line := range strings.Split(d.Message, "\n") {
					_, _ = fmt.Fprintf(w, "    %s\n", line)
				}
			}
			return nil
		},
	}

	return cmd
}
