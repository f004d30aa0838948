package layout

import tui "github.com/grindlemire/tuikit"

var _ tui.Layout = Compass{}

// Heading is the Compass hint naming where a component is docked.
type Heading uint8

const (
	Centre Heading = iota
	North
	South
	East
	West
)

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	}
	return "centre"
}

// Compass docks components to the container's edges. North and south
// take the full width at their preferred height; east and west take the
// band between them at their preferred width; the centre gets what is
// left. Docked components never get more than the space remaining, and
// components sharing a heading share its area. Unknown hints mean Centre.
type Compass struct{}

// NewCompass creates a compass layout.
func NewCompass() Compass {
	return Compass{}
}

func heading(h tui.Hint) Heading {
	if hd, ok := h.(Heading); ok && hd <= West {
		return hd
	}
	return Centre
}

// preferred returns the largest preferred size per heading.
func (Compass) preferred(components []tui.Component, hints []tui.Hint) map[Heading]tui.Extent {
	out := make(map[Heading]tui.Extent, 5)
	for i, c := range components {
		h := heading(hintAt(hints, i))
		out[h] = out[h].Max(c.PreferredSize())
	}
	return out
}

// PreferredSize returns the extent at which every docked component gets
// its preferred size.
func (l Compass) PreferredSize(components []tui.Component, hints []tui.Hint) tui.Extent {
	p := l.preferred(components, hints)
	middle := tui.Ext(
		p[West].Width+p[Centre].Width+p[East].Width,
		max(p[West].Height, p[Centre].Height, p[East].Height),
	)
	return tui.Ext(
		max(p[North].Width, p[South].Width, middle.Width),
		p[North].Height+middle.Height+p[South].Height,
	)
}

// Apply docks each component according to its heading.
func (l Compass) Apply(components []tui.Component, hints []tui.Hint, size tui.Extent) {
	p := l.preferred(components, hints)
	w, h := max(size.Width, 0), max(size.Height, 0)

	north := min(p[North].Height, h)
	south := min(p[South].Height, h-north)
	band := h - north - south
	west := min(p[West].Width, w)
	east := min(p[East].Width, w-west)

	areas := map[Heading]tui.Rect{
		North:  tui.NewRect(0, 0, w, north),
		South:  tui.NewRect(0, h-south, w, south),
		West:   tui.NewRect(0, north, west, band),
		East:   tui.NewRect(w-east, north, east, band),
		Centre: tui.NewRect(west, north, w-west-east, band),
	}
	for i, c := range components {
		r := areas[heading(hintAt(hints, i))]
		c.SetPosition(r.Origin)
		c.SetSize(r.Size)
	}
}

// Diagnostic returns the layout's type tag.
func (Compass) Diagnostic() *tui.Diagnostic {
	return tui.NewDiagnostic("compass")
}

// hintAt returns hints[i], or nil when the hint list is short.
func hintAt(hints []tui.Hint, i int) tui.Hint {
	if i < len(hints) {
		return hints[i]
	}
	return nil
}
