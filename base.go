package tui

import "github.com/grindlemire/tuikit/internal/debug"

var _ Component = (*Base)(nil)

// Base implements the leaf behaviour of Component: plain position and size
// state, a single focus toggle, an optional cursor and no drawing. Concrete
// components embed *Base and override Draw, Event, PreferredSize and
// Diagnostic as needed.
//
// Because Go embedding does not dispatch back to the outer type, an
// embedder that overrides PreferredSize, HasFocus or the cursor methods
// should also override Diagnostic, usually as
// ComponentDiagnostic(kind, outer).
type Base struct {
	kind      string
	position  Point
	size      Extent
	preferred Extent

	focusable bool
	enabled   bool
	focused   bool

	cursor    bool
	cursorPos Point

	signals Signals
}

// Option configures a Base at construction time.
type Option func(*Base)

// WithFocusable sets whether the component accepts focus. Defaults to true.
func WithFocusable(focusable bool) Option {
	return func(b *Base) {
		b.focusable = focusable
	}
}

// WithCursor makes the component report a visible cursor at p.
func WithCursor(p Point) Option {
	return func(b *Base) {
		b.cursor = true
		b.cursorPos = p
	}
}

// WithPreferredSize sets the initial preferred size.
func WithPreferredSize(e Extent) Option {
	return func(b *Base) {
		b.preferred = e
	}
}

// NewBase creates a Base whose diagnostics report the given type tag.
func NewBase(kind string, opts ...Option) *Base {
	b := &Base{
		kind:      kind,
		focusable: true,
		enabled:   true,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Kind returns the diagnostic type tag.
func (b *Base) Kind() string {
	return b.kind
}

// SetPosition places the component relative to its parent.
func (b *Base) SetPosition(p Point) {
	b.position = p
}

// Position returns the component's origin relative to its parent.
func (b *Base) Position() Point {
	return b.position
}

// SetSize assigns the component's extent.
func (b *Base) SetSize(s Extent) {
	b.size = s
}

// Size returns the component's extent.
func (b *Base) Size() Extent {
	return b.size
}

// PreferredSize returns the last value given to SetPreferredSize.
func (b *Base) PreferredSize() Extent {
	return b.preferred
}

// SetPreferredSize updates the preferred size, announcing the change.
func (b *Base) SetPreferredSize(e Extent) {
	if e == b.preferred {
		return
	}
	b.preferred = e
	b.signals.PreferredSizeChanged.Notify()
}

// --- Focus ---

// CanFocus reports whether SetFocus would succeed.
func (b *Base) CanFocus() bool {
	return b.focusable && b.enabled
}

// Enabled reports whether the component is enabled.
func (b *Base) Enabled() bool {
	return b.enabled
}

// SetEnabled enables or disables the component. Disabling a focused
// component releases its focus.
func (b *Base) SetEnabled(enabled bool) {
	if b.enabled == enabled {
		return
	}
	b.enabled = enabled
	if !enabled {
		b.LoseFocus()
	}
	b.RequestRedraw()
}

// HasFocus reports whether the component currently holds focus.
func (b *Base) HasFocus() bool {
	return b.focused
}

// SetFocus takes focus if the component can accept it.
func (b *Base) SetFocus() {
	if b.focused || !b.CanFocus() {
		return
	}
	debug.Log("Base.SetFocus: kind=%s", b.kind)
	b.focused = true
	b.signals.FocusSet.Notify()
}

// LoseFocus releases focus.
func (b *Base) LoseFocus() {
	if !b.focused {
		return
	}
	debug.Log("Base.LoseFocus: kind=%s", b.kind)
	b.focused = false
	b.signals.FocusLost.Notify()
}

// FocusNext toggles focus: an unfocused leaf takes it, a focused one yields it.
func (b *Base) FocusNext() {
	if b.focused {
		b.LoseFocus()
		return
	}
	b.SetFocus()
}

// FocusPrevious behaves exactly like FocusNext for a leaf.
func (b *Base) FocusPrevious() {
	b.FocusNext()
}

// --- Cursor ---

// CursorState reports whether the component shows a cursor.
func (b *Base) CursorState() bool {
	return b.cursor
}

// SetCursorVisible shows or hides the cursor.
func (b *Base) SetCursorVisible(visible bool) {
	if b.cursor == visible {
		return
	}
	b.cursor = visible
	b.signals.CursorStateChanged.Notify()
}

// CursorPosition returns the cursor location, or the origin when the
// component has no cursor.
func (b *Base) CursorPosition() Point {
	if !b.cursor {
		return Point{}
	}
	return b.cursorPos
}

// SetCursorPosition moves the cursor. Ignored when the component has no cursor.
func (b *Base) SetCursorPosition(p Point) {
	if !b.cursor || p == b.cursorPos {
		return
	}
	b.cursorPos = p
	b.signals.CursorPositionChanged.Notify()
}

// --- Drawing and events ---

// Draw does nothing; leaves override it.
func (b *Base) Draw(s Surface, region Rect) {}

// Event ignores every event; leaves override it.
func (b *Base) Event(ev Event) {}

// RequestRedraw announces that the given local areas need repainting.
// With no arguments the whole component is invalidated. Empty areas are
// dropped and nothing is emitted if none remain.
func (b *Base) RequestRedraw(regions ...Rect) {
	if len(regions) == 0 {
		regions = []Rect{RectAt(Point{}, b.size)}
	}
	out := make([]Rect, 0, len(regions))
	for _, r := range regions {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return
	}
	b.signals.Redraw.Emit(out)
}

// Diagnostic returns the standard component snapshot.
func (b *Base) Diagnostic() *Diagnostic {
	return ComponentDiagnostic(b.kind, b)
}

// Signals exposes the component's outgoing notifications.
func (b *Base) Signals() *Signals {
	return &b.signals
}
