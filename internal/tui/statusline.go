package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/blame-gutter/internal/domain"
)

// StatusLineInfo contains information for rendering the status line.
// Fields are ordered to minimize memory padding.
type StatusLineInfo struct {
	Err        error
	Notice     string
	KeyHints   []KeyHint
	Line       int // 1-based cursor line
	Lines      int
	Width      int // gutter width in pixels
	Visibility domain.Visibility
}

// KeyHint represents a key and its description.
type KeyHint struct {
	Key  string
	Desc string
}

// StatusLine renders a unified status line at the bottom of the screen.
// Fields are ordered to minimize memory padding.
type StatusLine struct {
	styles *Styles
	width  int
}

// NewStatusLine creates a new StatusLine with the given width and styles.
func NewStatusLine(width int, styles *Styles) *StatusLine {
	return &StatusLine{
		width:  width,
		styles: styles,
	}
}

// SetWidth updates the status line width.
func (s *StatusLine) SetWidth(width int) {
	s.width = width
}

// Render renders the status line with the given info.
// A notice or error replaces the key hints.
func (s *StatusLine) Render(info StatusLineInfo) string {
	var content string
	switch {
	case info.Err != nil:
		content = s.styles.ErrorMsg.Render("Error: " + info.Err.Error())
	case info.Notice != "":
		content = s.styles.Notice.Render(info.Notice)
	default:
		hints := make([]string, 0, len(info.KeyHints))
		for _, h := range info.KeyHints {
			hints = append(hints, s.styles.FooterKey.Render(h.Key)+" "+h.Desc)
		}
		content = strings.Join(hints, "  ")
	}

	mutedStyle := lipgloss.NewStyle().Foreground(Colors.Muted)
	gutter := "blame:" + info.Visibility.String()
	if info.Visibility == domain.Visible {
		gutter += fmt.Sprintf(" %dpx", info.Width)
	}
	rightContent := mutedStyle.Render(fmt.Sprintf("%d/%d  %s", info.Line, info.Lines, gutter))

	rightLen := lipgloss.Width(rightContent)
	contentLen := lipgloss.Width(content)

	// Truncate content if needed
	maxContentWidth := s.width - rightLen - 2
	if contentLen > maxContentWidth {
		if maxContentWidth <= 3 {
			content = "..."
		} else {
			truncateStyle := lipgloss.NewStyle().MaxWidth(maxContentWidth - 3)
			content = truncateStyle.Render(content) + "..."
		}
		contentLen = lipgloss.Width(content)
	}

	spacing := s.width - contentLen - rightLen
	if spacing < 1 {
		spacing = 1
	}

	return s.styles.Footer.Render(content + strings.Repeat(" ", spacing) + rightContent)
}

// GetStatusInfo returns status line info for the TUI model.
func (m *Model) GetStatusInfo() StatusLineInfo {
	info := StatusLineInfo{
		Err:    m.err,
		Notice: m.presenter.Notice(),
		Line:   m.cursor + 1,
		Lines:  len(m.doc.Lines()),
	}
	if c := m.controller(); c != nil {
		state := c.State()
		info.Visibility = state.Visibility
		info.Width = state.Width
	}

	switch m.mode {
	case ModeNormal:
		info.KeyHints = []KeyHint{
			{Key: "j/k", Desc: "nav"},
			{Key: "b", Desc: "blame"},
			{Key: "y", Desc: "copy"},
			{Key: "o", Desc: "open"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		}
	case ModeHelp:
		info.KeyHints = []KeyHint{
			{Key: "esc", Desc: "back"},
		}
	}
	return info
}
