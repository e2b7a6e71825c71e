package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/blame-gutter/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Background lipgloss.Color

	// Text
	Text       lipgloss.Color
	LineNumber lipgloss.Color
	CursorLine lipgloss.Color

	// Gutter bands
	BandEven lipgloss.Color
	BandOdd  lipgloss.Color
	Handle   lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Background: lipgloss.Color("#2D3436"), // Dark gray

	Text:       lipgloss.Color("#DFE6E9"), // Light gray
	LineNumber: lipgloss.Color("#636E72"), // Gray
	CursorLine: lipgloss.Color("#3B4245"), // Slightly lighter than background

	BandEven: lipgloss.Color("#2D3436"),
	BandOdd:  lipgloss.Color("#3D4447"),
	Handle:   lipgloss.Color("#636E72"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Header
	Header      lipgloss.Style
	HeaderText  lipgloss.Style
	HeaderMuted lipgloss.Style

	// Gutter
	BandEven     lipgloss.Style
	BandOdd      lipgloss.Style
	Uncommitted  lipgloss.Style
	Handle       lipgloss.Style
	HandleActive lipgloss.Style

	// File view
	LineNumber lipgloss.Style
	Text       lipgloss.Style
	CursorLine lipgloss.Style

	// Popover
	Popover      lipgloss.Style
	PopoverTitle lipgloss.Style

	// Help
	Help lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	Notice    lipgloss.Style

	// Error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		HeaderMuted: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		BandEven: lipgloss.NewStyle().
			Foreground(Colors.Text).
			Background(Colors.BandEven),

		BandOdd: lipgloss.NewStyle().
			Foreground(Colors.Text).
			Background(Colors.BandOdd),

		Uncommitted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		Handle: lipgloss.NewStyle().
			Foreground(Colors.Handle),

		HandleActive: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		LineNumber: lipgloss.NewStyle().
			Foreground(Colors.LineNumber),

		Text: lipgloss.NewStyle().
			Foreground(Colors.Text),

		CursorLine: lipgloss.NewStyle().
			Background(Colors.CursorLine),

		Popover: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Secondary),

		PopoverTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Secondary),

		Help: lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Muted),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(Colors.Success),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// BandStyle returns the gutter style of a band.
func (s Styles) BandStyle(band domain.Band) lipgloss.Style {
	if band == domain.BandOdd {
		return s.BandOdd
	}
	return s.BandEven
}
