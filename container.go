package tui

import (
	"slices"

	"github.com/grindlemire/tuikit/internal/debug"
)

var _ Component = (*Container)(nil)

// entry is one child of a Container together with its placement data and
// the subscriptions that tie the child's signals to the container.
type entry struct {
	component Component
	hint      Hint
	layer     Layer
	subs      Subscriptions
	removed   bool
}

// Container is a Component that owns an ordered list of children, lays
// them out per layer, draws them clipped to the requested region, routes
// events and focus among them, and forwards their redraw requests upward
// in its own coordinate space.
//
// Children are ordered by layer, then by insertion. At most one child has
// focus at a time. A container is not safe for concurrent use.
type Container struct {
	kind    string
	base    Base
	entries []*entry
	layouts map[Layer]Layout

	// focused caches the child that last reported focus.
	focused *entry
	// driving is non-zero while the container itself is changing a
	// child's focus, so the child's resulting signals are not mistaken
	// for spontaneous ones.
	driving int
}

// ContainerOption configures a Container at construction time.
type ContainerOption func(*Container)

// WithLayout sets the layout of the default layer.
func WithLayout(l Layout) ContainerOption {
	return func(c *Container) {
		c.layouts[DefaultLayer] = l
	}
}

// WithLayerLayout sets the layout of a specific layer.
func WithLayerLayout(layer Layer, l Layout) ContainerOption {
	return func(c *Container) {
		c.layouts[layer] = l
	}
}

// WithKind overrides the diagnostic type tag, for composite components
// built around a container.
func WithKind(kind string) ContainerOption {
	return func(c *Container) {
		c.kind = kind
	}
}

// NewContainer creates an empty container with no layout.
func NewContainer(opts ...ContainerOption) *Container {
	c := &Container{
		kind:    "container",
		layouts: make(map[Layer]Layout),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// --- Children ---

// AddComponent appends comp to the default layer.
func (c *Container) AddComponent(comp Component, hint Hint) {
	c.AddComponentToLayer(comp, hint, DefaultLayer)
}

// AddComponentToLayer appends comp to the given layer, subscribes to its
// signals and re-runs that layer's layout if it has one.
func (c *Container) AddComponentToLayer(comp Component, hint Hint, layer Layer) {
	if comp == nil {
		panic("tui: nil component in AddComponent")
	}
	e := &entry{component: comp, hint: hint, layer: layer}

	at := len(c.entries)
	for i, existing := range c.entries {
		if existing.layer > layer {
			at = i
			break
		}
	}
	c.entries = slices.Insert(c.entries, at, e)
	e.subs = c.connect(e)
	debug.Log("Container.AddComponent: kind=%s index=%d layer=%d total=%d", c.kind, at, layer, len(c.entries))

	c.applyLayer(layer)
	c.base.signals.PreferredSizeChanged.Notify()
	c.base.RequestRedraw()
}

// RemoveComponent detaches comp, releasing its subscriptions before the
// container drops its reference. If comp held focus the container becomes
// unfocused; focus is not moved to another child. Returns false if comp is
// not a child.
func (c *Container) RemoveComponent(comp Component) bool {
	idx := c.indexOf(comp)
	if idx < 0 {
		return false
	}
	e := c.entries[idx]
	e.subs.DisconnectAll()
	e.removed = true
	c.entries = slices.Delete(c.entries, idx, idx+1)
	debug.Log("Container.RemoveComponent: kind=%s index=%d remaining=%d", c.kind, idx, len(c.entries))

	if c.focused == e {
		c.focused = nil
		c.base.signals.FocusLost.Notify()
		c.base.signals.CursorStateChanged.Notify()
	}

	c.applyLayer(e.layer)
	c.base.signals.PreferredSizeChanged.Notify()
	c.base.RequestRedraw()
	return true
}

// NumberOfComponents returns the number of children.
func (c *Container) NumberOfComponents() int {
	return len(c.entries)
}

// Component returns the child at index i. Indices run in draw order:
// by layer, then by insertion. Panics if i is out of range.
func (c *Container) Component(i int) Component {
	if i < 0 || i >= len(c.entries) {
		panic("tui: component index out of range")
	}
	return c.entries[i].component
}

// ComponentHint returns the layout hint of the child at index i.
// Panics if i is out of range.
func (c *Container) ComponentHint(i int) Hint {
	if i < 0 || i >= len(c.entries) {
		panic("tui: component index out of range")
	}
	return c.entries[i].hint
}

// Components returns the children in draw order.
func (c *Container) Components() []Component {
	out := make([]Component, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.component
	}
	return out
}

func (c *Container) indexOf(comp Component) int {
	for i, e := range c.entries {
		if e.component == comp {
			return i
		}
	}
	return -1
}

// live returns a snapshot of the entry list. Iterating a snapshot keeps
// loops stable while signal handlers add or remove children; callers skip
// entries marked removed.
func (c *Container) live() []*entry {
	return slices.Clone(c.entries)
}

// --- Layout ---

// SetLayout sets the layout of the default layer and re-runs it.
// A nil layout removes it.
func (c *Container) SetLayout(l Layout) {
	c.SetLayerLayout(DefaultLayer, l)
}

// SetLayerLayout sets the layout of a layer and re-runs it. A nil layout
// removes it, leaving the layer's children where they were last placed.
func (c *Container) SetLayerLayout(layer Layer, l Layout) {
	if l == nil {
		delete(c.layouts, layer)
	} else {
		c.layouts[layer] = l
	}
	c.applyLayer(layer)
	c.base.signals.PreferredSizeChanged.Notify()
	c.base.RequestRedraw()
}

// Layout returns the layout of a layer. The second result is false when
// the layer has none, which is a normal state.
func (c *Container) Layout(layer Layer) (Layout, bool) {
	l, ok := c.layouts[layer]
	return l, ok
}

// layerMembers collects the components and hints of one layer.
func (c *Container) layerMembers(layer Layer) ([]Component, []Hint) {
	var comps []Component
	var hints []Hint
	for _, e := range c.entries {
		if e.layer == layer {
			comps = append(comps, e.component)
			hints = append(hints, e.hint)
		}
	}
	return comps, hints
}

// applyLayer runs the layer's layout over the full container extent.
// Layers without a layout, or without children, are left alone.
func (c *Container) applyLayer(layer Layer) {
	l, ok := c.layouts[layer]
	if !ok {
		return
	}
	comps, hints := c.layerMembers(layer)
	if len(comps) == 0 {
		return
	}
	debug.Log("Container.applyLayer: kind=%s layer=%d components=%d size=%v", c.kind, layer, len(comps), c.base.size)
	l.Apply(comps, hints, c.base.size)
}

// layers returns the layers that have a layout, lowest first.
func (c *Container) layers() []Layer {
	out := make([]Layer, 0, len(c.layouts))
	for layer := range c.layouts {
		out = append(out, layer)
	}
	slices.Sort(out)
	return out
}

// --- Geometry ---

// SetPosition places the container relative to its parent.
func (c *Container) SetPosition(p Point) {
	c.base.SetPosition(p)
}

// Position returns the container's origin relative to its parent.
func (c *Container) Position() Point {
	return c.base.Position()
}

// SetSize assigns the container's extent and re-runs every layer's layout.
func (c *Container) SetSize(s Extent) {
	c.base.SetSize(s)
	for _, layer := range c.layers() {
		c.applyLayer(layer)
	}
}

// Size returns the container's extent.
func (c *Container) Size() Extent {
	return c.base.Size()
}

// PreferredSize returns the largest preferred size reported by the
// layer layouts, or the current size when there are no layouts.
func (c *Container) PreferredSize() Extent {
	layers := c.layers()
	if len(layers) == 0 {
		return c.base.Size()
	}
	var pref Extent
	for _, layer := range layers {
		comps, hints := c.layerMembers(layer)
		pref = pref.Max(c.layouts[layer].PreferredSize(comps, hints))
	}
	return pref
}

// --- Drawing ---

// Draw dispatches region to each child it overlaps, lowest layer first.
// Each child receives only its share of region, in its own coordinates,
// with the surface offset to its origin for the duration of the call.
// Children entirely outside region are not called.
func (c *Container) Draw(s Surface, region Rect) {
	for _, e := range c.live() {
		if e.removed {
			continue
		}
		bounds := Bounds(e.component)
		clip, ok := Intersection(region, bounds)
		if !ok {
			continue
		}
		origin := bounds.Origin
		s.OffsetBy(origin)
		e.component.Draw(s, clip.Translate(origin.Neg()))
		s.OffsetBy(origin.Neg())
	}
}

// --- Events ---

// Event routes a mouse event to the topmost child under the pointer, in
// that child's coordinates, and every other event to the focused child.
func (c *Container) Event(ev Event) {
	if me, ok := ev.(MouseEvent); ok {
		for i := len(c.entries) - 1; i >= 0; i-- {
			e := c.entries[i]
			if Bounds(e.component).Contains(me.Position) {
				e.component.Event(me.Translated(e.component.Position()))
				return
			}
		}
		return
	}

	if e := c.focusedEntry(); e != nil {
		e.component.Event(ev)
	}
}

// --- Diagnostics ---

// Diagnostic returns the standard component snapshot plus the layout of
// the default layer (or the lowest layer with a layout) and the snapshots
// of every child in order.
func (c *Container) Diagnostic() *Diagnostic {
	d := ComponentDiagnostic(c.kind, c)

	var layout *Diagnostic
	if l, ok := c.layouts[DefaultLayer]; ok {
		layout = l.Diagnostic()
	} else if layers := c.layers(); len(layers) > 0 {
		layout = c.layouts[layers[0]].Diagnostic()
	}
	d.Set("layout", layout)

	subs := make([]*Diagnostic, 0, len(c.entries))
	for _, e := range c.entries {
		subs = append(subs, e.component.Diagnostic())
	}
	return d.Set("subcomponents", subs)
}

// Signals exposes the container's outgoing notifications.
func (c *Container) Signals() *Signals {
	return &c.base.signals
}

// RequestRedraw announces that the given local areas need repainting.
// With no arguments the whole container is invalidated.
func (c *Container) RequestRedraw(regions ...Rect) {
	c.base.RequestRedraw(regions...)
}
