package layout

import tui "github.com/grindlemire/tuikit"

var _ tui.Layout = Strip{}

// Direction specifies the axis a Strip stacks along.
type Direction uint8

const (
	Row    Direction = iota // Components laid out left-to-right
	Column                  // Components laid out top-to-bottom
)

// Strip stacks components along one axis, each spanning the full cross
// extent. A component's length along the strip comes from its Value hint;
// unknown hints mean Auto. Fill components share whatever is left, with
// any remainder going to the earliest. Lengths are never clipped: when
// they add up to more than the container, later components are placed
// past its far edge and a scrolling parent decides what is visible.
type Strip struct {
	Direction Direction
}

// NewStrip creates a strip layout.
func NewStrip(dir Direction) Strip {
	return Strip{Direction: dir}
}

// Horizontal is shorthand for NewStrip(Row).
func Horizontal() Strip {
	return Strip{Direction: Row}
}

// Vertical is shorthand for NewStrip(Column).
func Vertical() Strip {
	return Strip{Direction: Column}
}

func value(h tui.Hint) Value {
	if v, ok := h.(Value); ok {
		return v
	}
	return Auto()
}

// axes splits an extent into its main and cross components.
func (s Strip) axes(e tui.Extent) (main, cross int) {
	if s.Direction == Column {
		return e.Height, e.Width
	}
	return e.Width, e.Height
}

func (s Strip) extent(main, cross int) tui.Extent {
	if s.Direction == Column {
		return tui.Ext(cross, main)
	}
	return tui.Ext(main, cross)
}

func (s Strip) point(main int) tui.Point {
	if s.Direction == Column {
		return tui.Pt(0, main)
	}
	return tui.Pt(main, 0)
}

// PreferredSize sums the preferred lengths along the strip (fixed values
// count as given) and takes the largest preferred cross extent.
func (s Strip) PreferredSize(components []tui.Component, hints []tui.Hint) tui.Extent {
	var mainTotal, crossMax int
	for i, c := range components {
		pm, pc := s.axes(c.PreferredSize())
		v := value(hintAt(hints, i))
		if v.Unit == UnitFixed {
			pm = v.Resolve(0, pm)
		}
		mainTotal += max(pm, 0)
		crossMax = max(crossMax, pc)
	}
	return s.extent(mainTotal, crossMax)
}

// Apply stacks the components.
func (s Strip) Apply(components []tui.Component, hints []tui.Hint, size tui.Extent) {
	mainAvail, cross := s.axes(size)
	mainAvail, cross = max(mainAvail, 0), max(cross, 0)

	lengths := make([]int, len(components))
	var fills []int
	used := 0
	for i, c := range components {
		v := value(hintAt(hints, i))
		if v.Unit == UnitFill {
			fills = append(fills, i)
			continue
		}
		pm, _ := s.axes(c.PreferredSize())
		lengths[i] = max(v.Resolve(mainAvail, pm), 0)
		used += lengths[i]
	}
	if len(fills) > 0 {
		spare := max(mainAvail-used, 0)
		for n, i := range fills {
			_, lengths[i] = split(spare, len(fills), n)
		}
	}

	offset := 0
	for i, c := range components {
		c.SetPosition(s.point(offset))
		c.SetSize(s.extent(lengths[i], cross))
		offset += lengths[i]
	}
}

// Diagnostic returns the layout's type tag.
func (s Strip) Diagnostic() *tui.Diagnostic {
	if s.Direction == Column {
		return tui.NewDiagnostic("vertical_strip")
	}
	return tui.NewDiagnostic("horizontal_strip")
}
