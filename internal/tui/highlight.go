package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// CodeStyle is the chroma style used for file contents.
const CodeStyle = "blame-gutter"

func init() {
	styles.Register(chroma.MustNewStyle(CodeStyle, chroma.StyleEntries{
		chroma.Text:                "#DFE6E9",
		chroma.Error:               "#D63031",
		chroma.Comment:             "#636E72 italic",
		chroma.CommentPreproc:      "#FD79A8",
		chroma.Keyword:             "#A29BFE",
		chroma.KeywordType:         "#FDCB6E",
		chroma.KeywordDeclaration:  "#A29BFE italic",
		chroma.KeywordNamespace:    "#FD79A8",
		chroma.Operator:            "#81ECEC",
		chroma.Punctuation:         "#B2BEC3",
		chroma.Name:                "#DFE6E9",
		chroma.NameAttribute:       "#FDCB6E",
		chroma.NameClass:           "#FDCB6E",
		chroma.NameConstant:        "#FAB1A0",
		chroma.NameFunction:        "#74B9FF",
		chroma.NameTag:             "#A29BFE",
		chroma.LiteralNumber:       "#FAB1A0",
		chroma.LiteralString:       "#55EFC4",
		chroma.LiteralStringEscape: "#FFEAA7",
		chroma.GenericDeleted:      "#D63031",
		chroma.GenericInserted:     "#00B894",
		chroma.GenericHeading:      "#74B9FF bold",
		chroma.GenericStrong:       "bold",
		chroma.GenericEmph:         "italic",
		chroma.Background:          "",
	}))
}

// Highlight returns lines colored for the language of path. Tabs must already
// be expanded. Lines are returned as is when the language is unknown, and any
// line whose highlighted text would differ from the input is left plain.
func Highlight(path string, lines []string) []string {
	lexer := lexers.Match(path)
	if lexer == nil || len(lines) == 0 {
		return lines
	}

	it, err := chroma.Coalesce(lexer).Tokenise(nil, strings.Join(lines, "\n"))
	if err != nil {
		return lines
	}

	style := styles.Get(CodeStyle)
	tokenLines := chroma.SplitTokensIntoLines(it.Tokens())

	out := make([]string, len(lines))
	for i, plain := range lines {
		out[i] = plain
		if i >= len(tokenLines) {
			continue
		}
		var b strings.Builder
		for _, tok := range tokenLines[i] {
			text := strings.TrimSuffix(tok.Value, "\n")
			if text == "" {
				continue
			}
			b.WriteString(tokenStyle(style.Get(tok.Type)).Render(text))
		}
		if colored := b.String(); ansi.Strip(colored) == plain {
			out[i] = colored
		}
	}
	return out
}

func tokenStyle(entry chroma.StyleEntry) lipgloss.Style {
	s := lipgloss.NewStyle()
	if entry.Colour.IsSet() {
		s = s.Foreground(lipgloss.Color(entry.Colour.String()))
	}
	if entry.Bold == chroma.Yes {
		s = s.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		s = s.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		s = s.Underline(true)
	}
	return s
}
