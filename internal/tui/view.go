package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/gertd/go-pluralize"
	"github.com/muesli/reflow/wordwrap"
)

// Layout rows outside the file view.
const (
	headerHeight    = 1
	footerHeight    = 1
	maxPopoverLines = 8
	tabWidth        = 4
)

var plural = pluralize.NewClient()

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.mode == ModeHelp {
		return m.viewHelp()
	}

	view := m.surface.View()
	popover := m.viewPopover(view)
	popoverHeight := 0
	if popover != "" {
		popoverHeight = lipgloss.Height(popover)
	}

	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-headerHeight-footerHeight-popoverHeight)
	m.viewport.SetContent(m.renderLines(view))
	m.ensureCursorVisible()

	parts := []string{m.viewHeader(), m.viewport.View()}
	if popover != "" {
		parts = append(parts, popover)
	}
	if m.mode == ModeGoto {
		parts = append(parts, m.gotoInput.View())
	} else {
		parts = append(parts, m.statusLine.Render(m.GetStatusInfo()))
	}
	return strings.Join(parts, "\n")
}

// ensureCursorVisible scrolls the viewport so the cursor row is shown.
func (m *Model) ensureCursorVisible() {
	switch {
	case m.cursor < m.viewport.YOffset:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// viewHeader renders the file path with the line count right-aligned.
func (m *Model) viewHeader() string {
	title := m.styles.HeaderText.Render(m.doc.Path())
	rightText := m.styles.HeaderMuted.Render(plural.Pluralize("line", len(m.doc.Lines()), true))

	spacing := m.width - lipgloss.Width(title) - lipgloss.Width(rightText)
	if spacing < 1 {
		spacing = 1
	}
	return m.styles.Header.Render(ansi.Truncate(title+strings.Repeat(" ", spacing)+rightText, m.width, ""))
}

// renderLines renders every document line with its gutter cell.
func (m *Model) renderLines(view SurfaceView) string {
	lines := m.doc.Lines()
	numWidth := len(fmt.Sprint(max(1, len(lines))))
	textWidth := m.width - numWidth - 1
	if view.Shown {
		textWidth -= view.Cells() + 1
	}

	rows := make([]string, len(lines))
	for i, text := range lines {
		if i < len(m.code) {
			text = m.code[i]
		}
		rows[i] = m.renderRow(i, text, view, numWidth, max(0, textWidth))
	}
	return strings.Join(rows, "\n")
}

func (m *Model) renderRow(i int, text string, view SurfaceView, numWidth, textWidth int) string {
	var b strings.Builder
	if view.Shown {
		b.WriteString(m.renderGutterCell(i, view))
		handle := m.styles.Handle
		if m.resizing {
			handle = m.styles.HandleActive
		}
		b.WriteString(handle.Render("│"))
	}

	text = ansi.Truncate(strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth)), textWidth, "")
	line := m.styles.LineNumber.Render(fmt.Sprintf("%*d ", numWidth, i+1)) + m.styles.Text.Render(text)
	if i == m.cursor {
		line = m.styles.CursorLine.Render(line)
	}
	b.WriteString(line)
	return b.String()
}

// renderGutterCell renders the gutter column of line i. Every line carries
// its band background; only group heads carry a label.
func (m *Model) renderGutterCell(i int, view SurfaceView) string {
	cells := view.Cells()
	mv, ok := view.Markers[i]
	if !ok {
		return strings.Repeat(" ", cells)
	}

	style := m.styles.BandStyle(mv.Spec.Band)
	if !mv.Spec.Committed {
		style = style.Foreground(Colors.Muted).Italic(true)
	}
	label := ""
	if mv.Spec.Head {
		label = ansi.Truncate(mv.Spec.Label, cells, "…")
	}
	return style.Width(cells).Render(label)
}

// viewPopover renders the commit detail of the cursor's revision group.
func (m *Model) viewPopover(view SurfaceView) string {
	if !view.Shown {
		return ""
	}
	head, ok := view.GroupHead(m.cursor)
	if !ok || head.Detail == "" {
		return ""
	}

	inner := max(1, m.width-4) // border and padding
	lines := strings.Split(wordwrap.String(head.Detail, inner), "\n")
	if len(lines) > maxPopoverLines {
		lines = append(lines[:maxPopoverLines-1], "…")
	}
	for i, l := range lines {
		lines[i] = ansi.Truncate(l, inner, "…")
	}
	lines[0] = m.styles.PopoverTitle.Render(lines[0])
	return m.styles.Popover.Width(m.width - 2).Render(strings.Join(lines, "\n"))
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.HeaderText.Render("KEYBOARD SHORTCUTS")
	body := m.help.FullHelpView(m.keys.FullHelp())
	mouse := m.styles.Footer.Render("Drag the gutter's right edge to resize it.")
	return m.styles.Help.Render(title+"\n\n"+body+"\n\n"+mouse) + "\n" +
		m.statusLine.Render(m.GetStatusInfo())
}
