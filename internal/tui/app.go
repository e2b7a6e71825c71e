package tui

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/blame-gutter/internal/app"
	"github.com/runoshun/blame-gutter/internal/gutter"
	"github.com/runoshun/blame-gutter/internal/infra/clipboard"
)

// WidthStep is the gutter width change per narrow/widen key press, in pixels.
const WidthStep = 2 * PixelsPerCell

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	ctx        context.Context
	manager    *gutter.Manager
	doc        *Document
	surface    *Surface
	presenter  *Presenter
	statusLine *StatusLine
	err        error

	// Highlighted document lines
	code []string

	// Components (structs with pointers)
	keys      KeyMap
	styles    Styles
	help      help.Model
	viewport  viewport.Model
	gotoInput textinput.Model

	// Numeric state (smaller types last)
	mode     Mode
	cursor   int // 0-based line
	width    int
	height   int
	resizing bool
}

// New creates a new TUI Model for doc.
func New(ctx context.Context, doc *Document, surface *Surface, presenter *Presenter, manager *gutter.Manager) *Model {
	gi := textinput.New()
	gi.Prompt = ":"
	gi.Placeholder = "line number"
	gi.CharLimit = 9

	styles := DefaultStyles()
	m := &Model{
		ctx:       ctx,
		manager:   manager,
		doc:       doc,
		surface:   surface,
		presenter: presenter,
		keys:      DefaultKeyMap(),
		styles:    styles,
		help:      help.New(),
		viewport:  viewport.New(0, 0),
		gotoInput: gi,
		mode:      ModeNormal,
	}
	m.statusLine = NewStatusLine(0, &m.styles)
	m.highlight()
	return m
}

// highlight refreshes the highlighted copy of the document lines.
func (m *Model) highlight() {
	lines := m.doc.Lines()
	expanded := make([]string, len(lines))
	for i, l := range lines {
		expanded[i] = strings.ReplaceAll(l, "\t", strings.Repeat(" ", tabWidth))
	}
	m.code = Highlight(m.doc.Path(), expanded)
}

// Run opens path and runs the viewer until the user quits.
func Run(ctx context.Context, c *app.Container, path string) error {
	doc, err := OpenDocument(path)
	if err != nil {
		return err
	}

	surface := NewSurface()
	presenter := NewPresenter(
		surface,
		clipboard.New(os.Stdout, os.Getenv),
		c.Opener(),
		c.Clock,
	)
	manager := c.GutterManager(presenter)
	defer manager.DisposeAll()

	m := New(ctx, doc, surface, presenter, manager)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run viewer: %w", err)
	}
	return nil
}

// Init toggles the gutter on and starts listening for surface updates.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.toggleGutter(), m.waitForChange())
}

// waitForChange returns a command that waits for the next surface update.
func (m *Model) waitForChange() tea.Cmd {
	changes := m.surface.Changes()
	ctx := m.ctx
	return func() tea.Msg {
		select {
		case <-changes:
			return MsgSurfaceChanged{}
		case <-ctx.Done():
			return nil
		}
	}
}

// controller returns the gutter controller of the document, if created.
func (m *Model) controller() *gutter.Controller {
	c, ok := m.manager.Get(m.doc.ID())
	if !ok {
		return nil
	}
	return c
}

// Cursor returns the 0-based cursor line.
func (m *Model) Cursor() int {
	return m.cursor
}
