package tui

import "github.com/grindlemire/tuikit/internal/debug"

// Window drives repaints of one root component. It collects the root's
// redraw requests into a set of disjoint regions and announces, once per
// burst, that a repaint is due. The host answers by calling Repaint with
// the canvas to draw into.
//
// The root is always placed at the origin and sized to the canvas.
type Window struct {
	root Component
	caps Capabilities

	pending   RegionSet
	size      Extent
	sized     bool
	requested bool
	subs      Subscriptions

	repaintRequest Notifier
}

// WindowOption configures a Window at construction time.
type WindowOption func(*Window)

// WithCapabilities sets the capabilities handed to components while they
// draw. Defaults to DefaultCapabilities.
func WithCapabilities(caps Capabilities) WindowOption {
	return func(w *Window) {
		w.caps = caps
	}
}

// NewWindow creates a window around root and subscribes to its redraw
// requests.
func NewWindow(root Component, opts ...WindowOption) *Window {
	if root == nil {
		panic("tui: nil root component in NewWindow")
	}
	w := &Window{
		root: root,
		caps: DefaultCapabilities(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.subs = Subscriptions{
		root.Signals().Redraw.Connect(w.rootRedraw),
	}
	return w
}

// Root returns the root component.
func (w *Window) Root() Component {
	return w.root
}

// Caps returns the capabilities used for drawing.
func (w *Window) Caps() Capabilities {
	return w.caps
}

// SetCaps changes the capabilities used for drawing and invalidates the
// whole window, since glyph choices may change.
func (w *Window) SetCaps(caps Capabilities) {
	w.caps = caps
	w.Invalidate()
}

// OnRepaintRequest returns the notifier raised when a repaint becomes due.
// It fires at most once between calls to Repaint.
func (w *Window) OnRepaintRequest() *Notifier {
	return &w.repaintRequest
}

// Pending returns the regions awaiting a repaint.
func (w *Window) Pending() []Rect {
	return w.pending.Rects()
}

// Invalidate marks the whole window as needing a repaint.
func (w *Window) Invalidate() {
	w.rootRedraw([]Rect{RectAt(Point{}, w.size)})
}

func (w *Window) rootRedraw(regions []Rect) {
	for _, r := range regions {
		w.pending.Add(r)
	}
	if w.requested {
		debug.Log("Window.rootRedraw: coalesced %d regions, pending=%d", len(regions), w.pending.Len())
		return
	}
	if w.pending.IsEmpty() && w.sized {
		return
	}
	w.requested = true
	w.repaintRequest.Notify()
}

// Repaint draws the pending regions into canvas and returns them. If the
// canvas size differs from the last repaint, the root is resized to match
// and the whole canvas is repainted instead. Each repainted region is
// blanked before the root draws into it.
func (w *Window) Repaint(canvas *Canvas) []Rect {
	size := canvas.Size()
	bounds := RectAt(Point{}, size)

	var regions []Rect
	if !w.sized || size != w.size {
		debug.Log("Window.Repaint: resize %v -> %v", w.size, size)
		w.size = size
		w.sized = true
		w.root.SetPosition(Point{})
		w.root.SetSize(size)
		if !bounds.IsEmpty() {
			regions = []Rect{bounds}
		}
	} else {
		for _, r := range w.pending.Rects() {
			if clip, ok := Intersection(r, bounds); ok {
				regions = append(regions, clip)
			}
		}
	}

	// Requests raised while drawing belong to the next repaint.
	w.pending.Clear()
	w.requested = false

	surface := NewRenderSurface(canvas, w.caps)
	blank := BlankCell(NewStyle())
	for _, r := range regions {
		FillRegion(surface, r, blank)
		w.root.Draw(surface, r)
	}
	debug.Log("Window.Repaint: drew %d regions", len(regions))
	return regions
}

// Event delivers ev to the root component.
func (w *Window) Event(ev Event) {
	w.root.Event(ev)
}

// FocusNext advances focus through the tree, wrapping to the first
// focusable component after the last one yields.
func (w *Window) FocusNext() {
	w.root.FocusNext()
	if !w.root.HasFocus() {
		w.root.FocusNext()
	}
}

// FocusPrevious moves focus backwards, wrapping to the last focusable
// component after the first one yields.
func (w *Window) FocusPrevious() {
	w.root.FocusPrevious()
	if !w.root.HasFocus() {
		w.root.FocusPrevious()
	}
}

// CursorState reports whether the terminal cursor should be shown.
func (w *Window) CursorState() bool {
	return w.root.CursorState()
}

// CursorPosition returns the terminal cursor location in window coordinates.
func (w *Window) CursorPosition() Point {
	return w.root.Position().Add(w.root.CursorPosition())
}

// Diagnostic returns the root component's snapshot.
func (w *Window) Diagnostic() *Diagnostic {
	return w.root.Diagnostic()
}

// Close disconnects the window from its root. Further redraw requests from
// the root are ignored.
func (w *Window) Close() {
	w.subs.DisconnectAll()
	w.subs = nil
}
