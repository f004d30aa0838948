package layout

import tui "github.com/grindlemire/tuikit"

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left int
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() int {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() int {
	return e.Top + e.Bottom
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e == Edges{}
}

// Inset shrinks r by the edges. The result never has a negative size.
func (e Edges) Inset(r tui.Rect) tui.Rect {
	return tui.NewRect(
		r.Origin.X+e.Left,
		r.Origin.Y+e.Top,
		max(r.Size.Width-e.Horizontal(), 0),
		max(r.Size.Height-e.Vertical(), 0),
	)
}

// Grow adds the edges to an extent.
func (e Edges) Grow(size tui.Extent) tui.Extent {
	return tui.Ext(size.Width+e.Horizontal(), size.Height+e.Vertical())
}

var _ tui.Layout = Padded{}

// Padded places every component in the container's area minus a fixed
// margin. Components overlap; hints are ignored.
type Padded struct {
	Padding Edges
}

// NewPadded creates a padded layout with the given margin.
func NewPadded(padding Edges) Padded {
	return Padded{Padding: padding}
}

// PreferredSize returns the largest preferred size plus the margin.
func (p Padded) PreferredSize(components []tui.Component, hints []tui.Hint) tui.Extent {
	var pref tui.Extent
	for _, c := range components {
		pref = pref.Max(c.PreferredSize())
	}
	return p.Padding.Grow(pref)
}

// Apply gives every component the inset area.
func (p Padded) Apply(components []tui.Component, hints []tui.Hint, size tui.Extent) {
	inner := p.Padding.Inset(tui.RectAt(tui.Point{}, size))
	for _, c := range components {
		c.SetPosition(inner.Origin)
		c.SetSize(inner.Size)
	}
}

// Diagnostic returns the layout's type tag and margin.
func (p Padded) Diagnostic() *tui.Diagnostic {
	return tui.NewDiagnostic("padded").
		Set("padding", (&tui.Diagnostic{}).
			Set("top", p.Padding.Top).
			Set("right", p.Padding.Right).
			Set("bottom", p.Padding.Bottom).
			Set("left", p.Padding.Left))
}
