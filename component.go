package tui

// Component is a drawable, focusable, event-receiving node of the UI tree.
//
// Position and size are assigned by the owning container or its layout;
// setting them never triggers a redraw by itself. A component talks to its
// parent only through the signals returned by Signals.
type Component interface {
	// SetPosition places the component relative to its parent.
	SetPosition(p Point)
	// Position returns the component's origin relative to its parent.
	Position() Point
	// SetSize assigns the component's extent.
	SetSize(s Extent)
	// Size returns the component's extent.
	Size() Extent
	// PreferredSize is the extent at which the content is fully legible.
	// It is advisory and must be computable at any current size.
	PreferredSize() Extent

	// HasFocus reports whether the component currently holds focus.
	HasFocus() bool
	// SetFocus asks the component to take focus. Components that refuse
	// focus ignore the request.
	SetFocus()
	// LoseFocus releases focus.
	LoseFocus()
	// FocusNext advances focus. A leaf takes focus if it did not have it
	// and yields it if it did. Callers re-check HasFocus to learn the outcome.
	FocusNext()
	// FocusPrevious is FocusNext in reverse order.
	FocusPrevious()

	// CursorState reports whether a cursor should be shown.
	CursorState() bool
	// CursorPosition returns the cursor location in local coordinates.
	CursorPosition() Point
	// SetCursorPosition moves the cursor.
	SetCursorPosition(p Point)

	// Draw renders the part of the component inside region, which is in
	// local coordinates and already clipped to the component's bounds.
	// Draw must not write outside region.
	Draw(s Surface, region Rect)
	// Event delivers an input event. Unknown kinds are ignored.
	Event(ev Event)

	// Diagnostic returns a structured snapshot for tooling and tests.
	Diagnostic() *Diagnostic
	// Signals exposes the component's outgoing notifications.
	Signals() *Signals
}

// Signals is the set of notifications a component raises toward its parent.
type Signals struct {
	// Redraw carries the areas needing a repaint, in local coordinates.
	Redraw Signal[[]Rect]
	// PreferredSizeChanged fires when PreferredSize may return a new value.
	PreferredSizeChanged Notifier
	// FocusSet fires when the component gains focus.
	FocusSet Notifier
	// FocusLost fires when the component loses focus.
	FocusLost Notifier
	// CursorStateChanged fires when CursorState may return a new value.
	CursorStateChanged Notifier
	// CursorPositionChanged fires when CursorPosition may return a new value.
	CursorPositionChanged Notifier
}

// Bounds returns the area c occupies in its parent's coordinate space.
func Bounds(c Component) Rect {
	return RectAt(c.Position(), c.Size())
}
