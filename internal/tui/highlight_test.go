package tui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

func withColor(t *testing.T) {
	t.Helper()
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })
}

func TestHighlight_ColorsKnownLanguage(t *testing.T) {
	withColor(t)
	lines := []string{"package a", "", "func A() {}"}

	got := Highlight("a.go", lines)

	assert.Len(t, got, len(lines))
	assert.Contains(t, got[0], "\x1b[")
	for i, l := range got {
		assert.Equal(t, lines[i], ansi.Strip(l))
	}
}

func TestHighlight_UnknownLanguageIsPlain(t *testing.T) {
	withColor(t)
	lines := []string{"just words"}

	assert.Equal(t, lines, Highlight("notes.unknown-ext", lines))
}

func TestHighlight_EmptyDocument(t *testing.T) {
	assert.Empty(t, Highlight("a.go", nil))
}

func TestHighlight_PlainWithoutColorProfile(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	lines := []string{"package a", "func A() {}"}

	assert.Equal(t, lines, Highlight("a.go", lines))
}
