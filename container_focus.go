package tui

import "github.com/grindlemire/tuikit/internal/debug"

// connect subscribes the container to every signal of a child.
func (c *Container) connect(e *entry) Subscriptions {
	sig := e.component.Signals()
	return Subscriptions{
		sig.Redraw.Connect(func(regions []Rect) { c.childRedraw(e, regions) }),
		sig.PreferredSizeChanged.Connect(func() { c.childPreferredSizeChanged(e) }),
		sig.FocusSet.Connect(func() { c.childFocusSet(e) }),
		sig.FocusLost.Connect(func() { c.childFocusLost(e) }),
		sig.CursorStateChanged.Connect(func() { c.childCursorChanged(e, &c.base.signals.CursorStateChanged) }),
		sig.CursorPositionChanged.Connect(func() { c.childCursorChanged(e, &c.base.signals.CursorPositionChanged) }),
	}
}

// --- Focus ---

// focusedEntry reconciles the cached focus owner with what the children
// report and returns it, or nil when no child has focus.
func (c *Container) focusedEntry() *entry {
	if c.focused != nil && (c.focused.removed || !c.focused.component.HasFocus()) {
		c.focused = nil
	}
	if c.focused == nil {
		for _, e := range c.entries {
			if e.component.HasFocus() {
				c.focused = e
				break
			}
		}
	}
	return c.focused
}

// HasFocus reports whether any child holds focus.
func (c *Container) HasFocus() bool {
	return c.focusedEntry() != nil
}

// SetFocus gives focus to the first child, in order, that accepts it.
// Does nothing if a child already has focus or none accepts.
func (c *Container) SetFocus() {
	if c.focusedEntry() != nil {
		return
	}
	c.driving++
	found := c.scan(c.live(), 0, +1, Component.SetFocus)
	c.driving--

	if found == nil {
		return
	}
	debug.Log("Container.SetFocus: kind=%s", c.kind)
	c.focused = found
	c.emitFocusGained()
}

// LoseFocus takes focus from the focused child, if any.
func (c *Container) LoseFocus() {
	e := c.focusedEntry()
	if e == nil {
		return
	}
	c.driving++
	e.component.LoseFocus()
	c.driving--

	debug.Log("Container.LoseFocus: kind=%s", c.kind)
	c.focused = nil
	c.emitFocusDropped()
}

// FocusNext moves focus forward. The focused child is asked to advance
// first; if it yields, focus moves to the next child after it that
// accepts. Moving past the last child leaves the container unfocused so
// its parent can continue with its own siblings. An unfocused container
// hands focus to the first child that accepts it.
func (c *Container) FocusNext() {
	c.moveFocus(+1)
}

// FocusPrevious is FocusNext in reverse order.
func (c *Container) FocusPrevious() {
	c.moveFocus(-1)
}

func (c *Container) moveFocus(dir int) {
	step := Component.FocusNext
	if dir < 0 {
		step = Component.FocusPrevious
	}

	entries := c.live()
	cur := c.focusedEntry()
	if cur == nil {
		start := 0
		if dir < 0 {
			start = len(entries) - 1
		}
		c.driving++
		found := c.scan(entries, start, dir, step)
		c.driving--
		if found != nil {
			c.focused = found
			c.emitFocusGained()
		}
		return
	}

	c.driving++
	step(cur.component)
	if cur.component.HasFocus() {
		c.driving--
		return
	}
	found := c.scan(entries, indexOfEntry(entries, cur)+dir, dir, step)
	c.driving--

	c.focused = found
	if found == nil {
		debug.Log("Container.moveFocus: kind=%s yielded focus", c.kind)
		c.emitFocusDropped()
		return
	}
	c.base.signals.CursorStateChanged.Notify()
	c.base.signals.CursorPositionChanged.Notify()
}

// scan applies try to entries from start in direction dir and returns the
// first one that then reports focus.
func (c *Container) scan(entries []*entry, start, dir int, try func(Component)) *entry {
	for i := start; i >= 0 && i < len(entries); i += dir {
		e := entries[i]
		if e.removed {
			continue
		}
		try(e.component)
		if e.component.HasFocus() {
			return e
		}
	}
	return nil
}

func indexOfEntry(entries []*entry, target *entry) int {
	for i, e := range entries {
		if e == target {
			return i
		}
	}
	return -1
}

func (c *Container) emitFocusGained() {
	c.base.signals.FocusSet.Notify()
	c.base.signals.CursorStateChanged.Notify()
	c.base.signals.CursorPositionChanged.Notify()
}

func (c *Container) emitFocusDropped() {
	c.base.signals.FocusLost.Notify()
	c.base.signals.CursorStateChanged.Notify()
}

// childFocusSet handles a child taking focus on its own, for example after
// a click. Any other focused child is made to lose focus so that at most
// one child holds it.
func (c *Container) childFocusSet(e *entry) {
	if c.driving > 0 || e.removed {
		return
	}
	wasFocused := c.focused != nil && !c.focused.removed

	c.driving++
	for _, other := range c.live() {
		if other != e && !other.removed && other.component.HasFocus() {
			other.component.LoseFocus()
		}
	}
	c.driving--

	if c.focused == e {
		return
	}
	debug.Log("Container.childFocusSet: kind=%s index=%d", c.kind, c.indexOf(e.component))
	c.focused = e
	if !wasFocused {
		c.base.signals.FocusSet.Notify()
	}
	c.base.signals.CursorStateChanged.Notify()
	c.base.signals.CursorPositionChanged.Notify()
}

// childFocusLost handles a child dropping focus on its own.
func (c *Container) childFocusLost(e *entry) {
	if c.driving > 0 || c.focused != e {
		return
	}
	c.focused = nil
	c.emitFocusDropped()
}

// --- Cursor ---

// CursorState reports the focused child's cursor state, or false when no
// child has focus.
func (c *Container) CursorState() bool {
	if e := c.focusedEntry(); e != nil {
		return e.component.CursorState()
	}
	return false
}

// CursorPosition returns the focused child's cursor translated into the
// container's coordinates, or the origin when no child has focus.
func (c *Container) CursorPosition() Point {
	if e := c.focusedEntry(); e != nil {
		return e.component.Position().Add(e.component.CursorPosition())
	}
	return Point{}
}

// SetCursorPosition forwards p, translated into the focused child's
// coordinates. Ignored when no child has focus.
func (c *Container) SetCursorPosition(p Point) {
	if e := c.focusedEntry(); e != nil {
		e.component.SetCursorPosition(p.Sub(e.component.Position()))
	}
}

func (c *Container) childCursorChanged(e *entry, out *Notifier) {
	if c.focused == e && !e.removed {
		out.Notify()
	}
}

// --- Child geometry signals ---

// childRedraw forwards a child's redraw request in container coordinates.
func (c *Container) childRedraw(e *entry, regions []Rect) {
	origin := e.component.Position()
	out := make([]Rect, 0, len(regions))
	for _, r := range regions {
		if r.IsEmpty() {
			continue
		}
		out = append(out, r.Translate(origin))
	}
	if len(out) == 0 {
		return
	}
	c.base.signals.Redraw.Emit(out)
}

// childPreferredSizeChanged re-runs the child's layer layout and announces
// that the container's own preferred size may have changed.
func (c *Container) childPreferredSizeChanged(e *entry) {
	c.applyLayer(e.layer)
	c.base.signals.PreferredSizeChanged.Notify()
}
