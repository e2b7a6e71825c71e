package domain

// Gutter width bounds in pixels. They hold regardless of the configured default.
const (
	MinGutterWidth     = 50
	MaxGutterWidth     = 500
	DefaultGutterWidth = 250
)

// ClampWidth restricts w to [MinGutterWidth, MaxGutterWidth].
func ClampWidth(w int) int {
	return max(MinGutterWidth, min(w, MaxGutterWidth))
}

// Visibility is the gutter's lifecycle state.
type Visibility int

// Visibility states.
const (
	Hidden Visibility = iota
	Visible
)

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Visible:
		return "visible"
	}
	return "unknown"
}

// ResizeDrag tracks an in-progress width drag.
type ResizeDrag struct {
	StartX     int
	StartWidth int
	Active     bool
}

// GutterState is the per-document gutter state.
// Fields are ordered to minimize memory padding.
type GutterState struct {
	Drag       ResizeDrag
	Width      int
	Visibility Visibility
}

// NewGutterState returns a hidden gutter of the given width.
func NewGutterState(width int) GutterState {
	return GutterState{
		Visibility: Hidden,
		Width:      ClampWidth(width),
	}
}

// Visible reports whether the gutter is shown.
func (s *GutterState) Visible() bool {
	return s.Visibility == Visible
}

// SetVisible moves to the requested state. A modified document can never
// become visible; the resulting state is returned.
func (s *GutterState) SetVisible(visible, modified bool) Visibility {
	if visible && !modified {
		s.Visibility = Visible
	} else {
		s.Visibility = Hidden
		s.Drag = ResizeDrag{}
	}
	return s.Visibility
}

// Toggle flips visibility, honoring the modified-document rule.
func (s *GutterState) Toggle(modified bool) Visibility {
	return s.SetVisible(!s.Visible(), modified)
}

// SetWidth stores a clamped width and returns it.
func (s *GutterState) SetWidth(w int) int {
	s.Width = ClampWidth(w)
	return s.Width
}

// BeginResize starts tracking a drag at pointer position x.
func (s *GutterState) BeginResize(x int) {
	s.Drag = ResizeDrag{Active: true, StartX: x, StartWidth: s.Width}
}

// MoveResize applies pointer movement to x. It returns the new width and
// false when no drag is active.
func (s *GutterState) MoveResize(x int) (int, bool) {
	if !s.Drag.Active {
		return s.Width, false
	}
	return s.SetWidth(s.Drag.StartWidth + (x - s.Drag.StartX)), true
}

// EndResize stops tracking. It reports whether a drag was active.
func (s *GutterState) EndResize() bool {
	active := s.Drag.Active
	s.Drag = ResizeDrag{}
	return active
}
