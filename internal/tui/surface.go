package tui

import (
	"sync"

	"github.com/runoshun/blame-gutter/internal/domain"
)

// PixelsPerCell converts gutter widths to terminal columns.
const PixelsPerCell = 8

// Ensure Surface implements domain.GutterSurface.
var _ domain.GutterSurface = (*Surface)(nil)

// marker is one gutter decoration installed on a Surface.
type marker struct {
	surface *Surface
	detail  string
	spec    domain.RenderSpec
}

// Destroy removes the marker. Destroying twice is harmless.
func (m *marker) Destroy() {
	m.surface.remove(m)
}

// MarkerView is a snapshot of a marker for rendering.
type MarkerView struct {
	Detail string // popover text, empty until attached
	Spec   domain.RenderSpec
}

// SurfaceView is a snapshot of the gutter for rendering.
type SurfaceView struct {
	Markers map[int]MarkerView // by 0-based line
	Width   int                // in pixels
	Shown   bool
}

// Cells returns the gutter width in terminal columns.
func (v SurfaceView) Cells() int {
	return PixelsToCells(v.Width)
}

// PixelsToCells converts a pixel width to columns.
func PixelsToCells(px int) int {
	return px / PixelsPerCell
}

// Surface is the terminal gutter. It is written from background work and
// read by the bubbletea loop; Changes delivers a signal after every update.
type Surface struct {
	markers map[int]*marker
	changes chan struct{}
	width   int
	mu      sync.Mutex
	shown   bool
}

// NewSurface creates an empty, hidden surface.
func NewSurface() *Surface {
	return &Surface{
		markers: make(map[int]*marker),
		changes: make(chan struct{}, 1),
	}
}

// Changes returns the update signal channel.
func (s *Surface) Changes() <-chan struct{} {
	return s.changes
}

func (s *Surface) changed() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

// AddMarker installs a decoration for spec.Line.
func (s *Surface) AddMarker(spec domain.RenderSpec) domain.Marker {
	m := &marker{surface: s, spec: spec}
	s.mu.Lock()
	s.markers[spec.Line] = m
	s.mu.Unlock()
	s.changed()
	return m
}

func (s *Surface) remove(m *marker) {
	s.mu.Lock()
	if s.markers[m.spec.Line] != m {
		s.mu.Unlock()
		return
	}
	delete(s.markers, m.spec.Line)
	s.mu.Unlock()
	s.changed()
}

func (s *Surface) attach(m *marker, detail string) {
	s.mu.Lock()
	m.detail = detail
	s.mu.Unlock()
	s.changed()
}

// SetWidth sets the gutter width in pixels.
func (s *Surface) SetWidth(width int) {
	s.mu.Lock()
	s.width = width
	s.mu.Unlock()
	s.changed()
}

// Show makes the gutter visible.
func (s *Surface) Show() {
	s.mu.Lock()
	s.shown = true
	s.mu.Unlock()
	s.changed()
}

// Hide removes the gutter from view.
func (s *Surface) Hide() {
	s.mu.Lock()
	s.shown = false
	s.mu.Unlock()
	s.changed()
}

// View returns a snapshot for rendering.
func (s *Surface) View() SurfaceView {
	s.mu.Lock()
	defer s.mu.Unlock()
	markers := make(map[int]MarkerView, len(s.markers))
	for line, m := range s.markers {
		markers[line] = MarkerView{Spec: m.spec, Detail: m.detail}
	}
	return SurfaceView{
		Markers: markers,
		Width:   s.width,
		Shown:   s.shown,
	}
}

// GroupHead returns the head marker of the group covering line.
func (v SurfaceView) GroupHead(line int) (MarkerView, bool) {
	for l := line; l >= 0; l-- {
		mv, ok := v.Markers[l]
		if !ok {
			return MarkerView{}, false
		}
		if mv.Spec.Head {
			return mv, true
		}
	}
	return MarkerView{}, false
}
