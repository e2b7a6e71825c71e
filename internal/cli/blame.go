package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/usecase"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// newBlameCommand creates the blame command.
func newBlameCommand(c *app.Container) *cobra.Command {
	var labelsOnly bool

	cmd := &cobra.Command{
		Use:   "blame <file>",
		Short: "Print gutter labels next to each line",
		Long: `Print the blame gutter of a file without the viewer.

The first line of each group of consecutive lines from the same commit is
labeled with its short hash, date and author. Lines only present in the
working tree are labeled "` + domain.UncommittedAuthor + `".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}

			out, err := c.FetchBlameUseCase().Execute(cmd.Context(), usecase.FetchBlameInput{FilePath: path})
			if err != nil {
				return err
			}
			if len(out.Blame) == 0 {
				return fmt.Errorf("%w for %s", domain.ErrNoBlameData, path)
			}

			specs := domain.Render(out.Blame)
			if labelsOnly {
				printLabels(cmd.OutOrStdout(), specs)
				return nil
			}
			printBlame(cmd.OutOrStdout(), specs, strings.Split(strings.TrimSuffix(string(content), "\n"), "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&labelsOnly, "labels", false, "Print only group heads as <line>: <label>")

	return cmd
}

// printBlame writes the gutter column followed by the line number and text.
// Labels are padded by display width so wide author names stay aligned.
func printBlame(w io.Writer, specs []domain.RenderSpec, lines []string) {
	byLine := lo.KeyBy(specs, func(s domain.RenderSpec) int { return s.Line })
	labelWidth := lo.Max(lo.Map(specs, func(s domain.RenderSpec, _ int) int { return runewidth.StringWidth(s.Label) }))
	numWidth := len(fmt.Sprint(len(lines)))

	for i, text := range lines {
		label := runewidth.FillRight(byLine[i].Label, labelWidth)
		_, _ = fmt.Fprintf(w, "%s │ %*d %s\n", label, numWidth, i+1, strings.TrimSuffix(text, "\r"))
	}
}

// printLabels writes one row per group head.
func printLabels(w io.Writer, specs []domain.RenderSpec) {
	for _, s := range specs {
		if s.Head {
			_, _ = fmt.Fprintf(w, "%d: %s\n", s.Line+1, s.Label)
		}
	}
}
