// Package gutter drives the blame gutter of open documents: visibility,
// re-rendering on save, hover detail, link and copy actions, and resizing.
package gutter

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/runoshun/blame-gutter/internal/domain"
	"github.com/runoshun/blame-gutter/internal/usecase"
)

// NoLinkMessage is the notice shown when a revision has no permalink.
const NoLinkMessage = "Unknown url."

// Deps are the collaborators shared by every controller.
type Deps struct {
	Blame     *usecase.FetchBlame
	Links     *usecase.ResolveLink
	Details   domain.CommitDetails
	Presenter domain.Presenter
	State     domain.StateStore // optional
	Logger    domain.Logger
}

// item is one installed gutter decoration.
type item struct {
	marker    domain.Marker
	line      domain.BlameLine
	spec      domain.RenderSpec
	hasDetail bool
}

// Controller owns the gutter of a single document.
//
// Every asynchronous result is tagged with the generation current when the
// work started; results whose generation is no longer current, or that land
// after the gutter was hidden or disposed, are dropped.
type Controller struct {
	doc     domain.Document
	surface domain.GutterSurface
	deps    Deps

	ctx    context.Context
	cancel context.CancelFunc

	unsubscribe func()
	items       []*item
	specs       []domain.RenderSpec

	wg       sync.WaitGroup
	renderMu sync.Mutex // serializes re-renders
	mu       sync.Mutex

	state    domain.GutterState
	gen      uint64
	disposed bool
}

// NewController creates a hidden gutter for doc.
func NewController(doc domain.Document, surface domain.GutterSurface, width int, deps Deps) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		doc:     doc,
		surface: surface,
		deps:    deps,
		ctx:     ctx,
		cancel:  cancel,
		state:   domain.NewGutterState(width),
	}
	surface.SetWidth(c.state.Width)
	surface.Hide()
	return c
}

// Document returns the controlled document.
func (c *Controller) Document() domain.Document {
	return c.doc
}

// State returns a snapshot of the gutter state.
func (c *Controller) State() domain.GutterState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Specs returns the render specs currently installed.
func (c *Controller) Specs() []domain.RenderSpec {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.specs)
}

// ToggleVisible flips the gutter between hidden and visible.
func (c *Controller) ToggleVisible() domain.Visibility {
	c.mu.Lock()
	visible := c.state.Visible()
	c.mu.Unlock()
	return c.SetVisible(!visible)
}

// SetVisible moves the gutter to the requested state. Entering Visible on a
// modified document falls back to Hidden. Entering Visible schedules a render.
func (c *Controller) SetVisible(visible bool) domain.Visibility {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return domain.Hidden
	}

	modified := c.doc.IsModified()
	v := c.state.SetVisible(visible, modified)
	if v == domain.Hidden {
		if visible && modified {
			c.deps.Logger.Debug("gutter", fmt.Sprintf("%s is modified, staying hidden", c.doc.Path()))
		}
		c.hideLocked()
		c.mu.Unlock()
		return v
	}

	if c.unsubscribe == nil {
		c.unsubscribe = c.doc.OnDidSave(c.onSave)
	}
	c.surface.Show()
	c.mu.Unlock()

	c.refreshAsync()
	return v
}

// hideLocked unsubscribes from saves, invalidates in-flight work and
// destroys every marker. Calling it while already hidden is a no-op.
func (c *Controller) hideLocked() {
	c.gen++
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.surface.Hide()
	c.clearLocked()
}

func (c *Controller) clearLocked() {
	for _, it := range c.items {
		it.marker.Destroy()
	}
	c.items = nil
	c.specs = nil
}

func (c *Controller) onSave() {
	c.refreshAsync()
}

func (c *Controller) refreshAsync() {
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		if err := c.Refresh(c.ctx); err != nil && !errors.Is(err, context.Canceled) {
			c.deps.Logger.Warn("gutter", fmt.Sprintf("refresh %s: %v", c.doc.Path(), err))
		}
	}()
}

// Refresh re-runs blame and replaces every marker. It is a no-op while hidden.
// Concurrent refreshes are serialized and only the newest one is applied.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.disposed || !c.state.Visible() {
		c.mu.Unlock()
		return nil
	}
	c.gen++
	gen := c.gen
	c.mu.Unlock()

	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	if !c.current(gen) {
		return nil
	}

	out, err := c.deps.Blame.Execute(ctx, usecase.FetchBlameInput{FilePath: c.doc.Path()})
	if err != nil {
		return err
	}
	specs := domain.Render(out.Blame)

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) {
		c.deps.Logger.Debug("gutter", fmt.Sprintf("dropping stale blame for %s", c.doc.Path()))
		return nil
	}

	c.clearLocked()
	c.items = make([]*item, 0, len(specs))
	for _, spec := range specs {
		c.items = append(c.items, &item{
			marker: c.surface.AddMarker(spec),
			line:   out.Blame[spec.Line],
			spec:   spec,
		})
	}
	c.specs = specs
	return nil
}

func (c *Controller) current(gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked(gen)
}

func (c *Controller) currentLocked(gen uint64) bool {
	return !c.disposed && c.state.Visible() && gen == c.gen
}

// headLocked returns the group head item covering line.
func (c *Controller) headLocked(line int) (*item, bool) {
	pos, found := slices.BinarySearchFunc(c.specs, line, func(s domain.RenderSpec, l int) int {
		return cmp.Compare(s.Line, l)
	})
	if !found {
		return nil, false
	}
	head := domain.GroupHead(c.specs, pos)
	if head < 0 {
		return nil, false
	}
	return c.items[head], true
}

// lineLocked returns the item installed on line.
func (c *Controller) lineLocked(line int) (*item, bool) {
	pos, found := slices.BinarySearchFunc(c.specs, line, func(s domain.RenderSpec, l int) int {
		return cmp.Compare(s.Line, l)
	})
	if !found {
		return nil, false
	}
	return c.items[pos], true
}

// Hover fetches commit detail for the group covering line and attaches it
// to the group's head marker. Each item is enriched at most once; a failed
// fetch leaves the item eligible for the next hover. Detail that arrives
// after its marker was replaced is dropped.
func (c *Controller) Hover(ctx context.Context, line int) error {
	c.mu.Lock()
	if !c.state.Visible() || c.disposed {
		c.mu.Unlock()
		return nil
	}
	it, ok := c.headLocked(line)
	if !ok || !it.spec.Committed || it.hasDetail {
		c.mu.Unlock()
		return nil
	}
	it.hasDetail = true
	gen := c.gen
	c.mu.Unlock()

	detail, err := c.deps.Details.GetDetail(ctx, c.doc.Path(), it.spec.Revision)
	if err != nil {
		c.deps.Logger.Debug("gutter", fmt.Sprintf("no detail for %s: %v", it.spec.Revision, err))
		c.mu.Lock()
		it.hasDetail = false
		c.mu.Unlock()
		return fmt.Errorf("%w for %s: %w", domain.ErrNoCommitDetail, domain.ShortHash(it.spec.Revision), err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.currentLocked(gen) || !slices.Contains(c.items, it) {
		c.deps.Logger.Debug("gutter", fmt.Sprintf("dropping stale detail for %s", it.spec.Revision))
		return nil
	}
	c.deps.Presenter.AttachDetail(it.marker, it.line, detail)
	return nil
}

// Copy writes the revision of line to the clipboard.
func (c *Controller) Copy(line int) error {
	c.mu.Lock()
	it, ok := c.lineLocked(line)
	c.mu.Unlock()
	if !ok {
		return domain.ErrNoBlameData
	}
	if !it.spec.Committed {
		return domain.ErrUncommitted
	}
	return c.deps.Presenter.CopyToClipboard(domain.StripBoundary(it.spec.Revision))
}

// OpenLink resolves the permalink of line's revision and opens it, or
// notifies the user that no link is available.
func (c *Controller) OpenLink(ctx context.Context, line int) error {
	c.mu.Lock()
	it, ok := c.lineLocked(line)
	c.mu.Unlock()
	if !ok {
		return domain.ErrNoBlameData
	}
	if !it.spec.Committed {
		return domain.ErrUncommitted
	}

	out, err := c.deps.Links.Execute(ctx, usecase.ResolveLinkInput{
		FilePath: c.doc.Path(),
		Revision: it.spec.Revision,
	})
	if err != nil {
		c.deps.Logger.Debug("gutter", fmt.Sprintf("no link for %s: %v", it.spec.Revision, err))
		c.deps.Presenter.Notify(NoLinkMessage)
		return err
	}
	return c.deps.Presenter.OpenURL(out.URL)
}

// BeginResize starts a width drag at pointer position x.
func (c *Controller) BeginResize(x int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.disposed {
		return
	}
	c.state.BeginResize(x)
}

// MoveResize applies the drag and returns the rendered width.
func (c *Controller) MoveResize(x int) (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	w, ok := c.state.MoveResize(x)
	if ok {
		c.surface.SetWidth(w)
	}
	return w, ok
}

// EndResize stops the drag and persists the final width.
func (c *Controller) EndResize() {
	c.mu.Lock()
	active := c.state.EndResize()
	width := c.state.Width
	c.mu.Unlock()
	if active {
		c.saveWidth(width)
	}
}

// SetWidth applies a clamped width directly.
func (c *Controller) SetWidth(width int) int {
	c.mu.Lock()
	w := c.state.SetWidth(width)
	c.surface.SetWidth(w)
	c.mu.Unlock()
	c.saveWidth(w)
	return w
}

func (c *Controller) saveWidth(width int) {
	if c.deps.State == nil {
		return
	}
	if err := c.deps.State.SaveWidth(width); err != nil {
		c.deps.Logger.Warn("gutter", fmt.Sprintf("save width: %v", err))
	}
}

// Wait blocks until background renders have finished.
func (c *Controller) Wait() {
	c.wg.Wait()
}

// Dispose hides the gutter and cancels in-flight work. The controller
// cannot be shown again.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.state.SetVisible(false, false)
	c.hideLocked()
	c.disposed = true
	c.mu.Unlock()
	c.cancel()
}
