package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/blame-gutter/internal/domain"
)

// noticeTimeout is how long a notice stays in the status line.
const noticeTimeout = 3 * time.Second

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.statusLine.SetWidth(msg.Width)
		return m, nil

	case MsgSurfaceChanged:
		cmds := []tea.Cmd{m.waitForChange(), m.hover()}
		if notice := m.presenter.Notice(); notice != "" {
			cmds = append(cmds, clearNoticeAfter(noticeTimeout, notice))
		}
		return m, tea.Batch(cmds...)

	case MsgActionDone:
		m.handleActionError(msg.Err)
		return m, nil

	case MsgReloaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.highlight()
		m.clampCursor()
		m.presenter.Notify("Reloaded " + m.doc.Path())
		return m, nil

	case MsgClearNotice:
		if m.presenter.Notice() == msg.Notice {
			m.presenter.ClearNotice()
		}
		return m, nil
	}

	return m, nil
}

func clearNoticeAfter(d time.Duration, notice string) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return MsgClearNotice{Notice: notice}
	})
}

// handleActionError turns action failures into status line feedback.
func (m *Model) handleActionError(err error) {
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUncommitted):
		m.presenter.Notify(domain.UncommittedAuthor)
	case errors.Is(err, domain.ErrNoBlameData):
		m.presenter.Notify("No blame for this line")
	case errors.Is(err, domain.ErrNoLink), errors.Is(err, domain.ErrNoRemote):
		// The controller already notified the user.
	case errors.Is(err, domain.ErrNoCommitDetail), errors.Is(err, context.Canceled):
		// No popover for this group.
	default:
		m.err = err
	}
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == ModeGoto {
		return m.handleGotoMode(msg)
	}
	if key.Matches(msg, m.keys.Quit) {
		m.manager.DisposeAll()
		return m, tea.Quit
	}

	switch m.mode {
	case ModeHelp:
		return m.handleHelpMode(msg)
	case ModeNormal:
		return m.handleNormalMode(msg)
	}
	return m, nil
}

func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Help) {
		m.mode = ModeNormal
	}
	return m, nil
}

// handleGotoMode edits the line number prompt and jumps on enter.
func (m *Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.leaveGoto()
		return m, nil

	case msg.Type == tea.KeyEnter:
		value := strings.TrimSpace(m.gotoInput.Value())
		m.leaveGoto()
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			m.presenter.Notify(fmt.Sprintf("Invalid line number: %q", value))
			return m, nil
		}
		return m, m.moveCursor(n - 1 - m.cursor)
	}

	var cmd tea.Cmd
	m.gotoInput, cmd = m.gotoInput.Update(msg)
	return m, cmd
}

func (m *Model) leaveGoto() {
	m.mode = ModeNormal
	m.gotoInput.Reset()
	m.gotoInput.Blur()
}

func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.err = nil

	switch {
	case key.Matches(msg, m.keys.Up):
		return m, m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		return m, m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		return m, m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		return m, m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.Top):
		return m, m.moveCursor(-m.cursor)
	case key.Matches(msg, m.keys.Bottom):
		return m, m.moveCursor(len(m.doc.Lines()))
	case key.Matches(msg, m.keys.GoTo):
		m.mode = ModeGoto
		m.gotoInput.Reset()
		return m, m.gotoInput.Focus()

	case key.Matches(msg, m.keys.Toggle):
		return m, m.toggleGutter()
	case key.Matches(msg, m.keys.Copy):
		return m, m.copyRevision()
	case key.Matches(msg, m.keys.OpenLink):
		return m, m.openLink()
	case key.Matches(msg, m.keys.Reload):
		return m, m.reload()
	case key.Matches(msg, m.keys.Narrow):
		m.resizeBy(-WidthStep)
		return m, nil
	case key.Matches(msg, m.keys.Widen):
		m.resizeBy(WidthStep)
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil
	}
	return m, nil
}

// moveCursor moves the cursor by delta lines and hovers the new line.
func (m *Model) moveCursor(delta int) tea.Cmd {
	m.cursor += delta
	m.clampCursor()
	return m.hover()
}

func (m *Model) clampCursor() {
	last := len(m.doc.Lines()) - 1
	m.cursor = max(0, min(m.cursor, last))
}

func (m *Model) pageSize() int {
	return max(1, m.viewport.Height)
}

// hover requests commit detail for the cursor line.
func (m *Model) hover() tea.Cmd {
	c := m.controller()
	if c == nil {
		return nil
	}
	if st := c.State(); !st.Visible() {
		return nil
	}
	ctx, line := m.ctx, m.cursor
	return func() tea.Msg {
		return MsgActionDone{Err: c.Hover(ctx, line)}
	}
}

// toggleGutter flips the gutter and explains why it stayed hidden.
func (m *Model) toggleGutter() tea.Cmd {
	before := domain.Hidden
	if c := m.controller(); c != nil {
		before = c.State().Visibility
	}
	_, after := m.manager.Toggle(m.doc, m.surface)
	if before == domain.Hidden && after == domain.Hidden && m.doc.IsModified() {
		m.presenter.Notify(fmt.Sprintf("%s changed on disk, press r to reload", m.doc.Path()))
	}
	return nil
}

func (m *Model) copyRevision() tea.Cmd {
	c := m.controller()
	if c == nil {
		return nil
	}
	if st := c.State(); !st.Visible() {
		return nil
	}
	line := m.cursor
	return func() tea.Msg {
		return MsgActionDone{Err: c.Copy(line)}
	}
}

func (m *Model) openLink() tea.Cmd {
	c := m.controller()
	if c == nil {
		return nil
	}
	if st := c.State(); !st.Visible() {
		return nil
	}
	ctx, line := m.ctx, m.cursor
	return func() tea.Msg {
		return MsgActionDone{Err: c.OpenLink(ctx, line)}
	}
}

// reload re-reads the file, which refreshes a visible gutter.
func (m *Model) reload() tea.Cmd {
	doc := m.doc
	return func() tea.Msg {
		return MsgReloaded{Err: doc.Reload()}
	}
}

func (m *Model) resizeBy(delta int) {
	c := m.controller()
	if c == nil {
		return
	}
	if st := c.State(); !st.Visible() {
		return
	}
	c.SetWidth(c.State().Width + delta)
}

// handleMouseMsg resizes the gutter by dragging its right edge, moves the
// cursor on click and scrolls on wheel.
func (m *Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}
	c := m.controller()

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, m.moveCursor(-3)
		case tea.MouseButtonWheelDown:
			return m, m.moveCursor(3)
		case tea.MouseButtonLeft:
			view := m.surface.View()
			if c != nil && view.Shown && msg.X == view.Cells() {
				c.BeginResize(msg.X * PixelsPerCell)
				m.resizing = true
				return m, nil
			}
			if line, ok := m.lineAt(msg.Y); ok {
				m.cursor = line
				return m, m.hover()
			}
		default:
		}
	case tea.MouseActionMotion:
		if m.resizing && c != nil {
			c.MoveResize(msg.X * PixelsPerCell)
		}
	case tea.MouseActionRelease:
		if m.resizing {
			m.resizing = false
			if c != nil {
				c.EndResize()
			}
		}
	}
	return m, nil
}

// lineAt maps a screen row to a document line.
func (m *Model) lineAt(y int) (int, bool) {
	row := y - headerHeight
	if row < 0 || row >= m.viewport.Height {
		return 0, false
	}
	line := m.viewport.YOffset + row
	if line >= len(m.doc.Lines()) {
		return 0, false
	}
	return line, true
}
