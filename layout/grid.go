package layout

import tui "github.com/grindlemire/tuikit"

var _ tui.Layout = Grid{}

// Grid divides the container into Columns x Rows equal cells and fills
// them in row-major order. When the extent does not divide evenly, the
// spare cells go to the earliest columns and rows, one each. Components
// beyond the last cell are given an empty extent. Hints are ignored.
type Grid struct {
	Columns int
	Rows    int
}

// NewGrid creates a grid layout. Dimensions below 1 are treated as 1.
func NewGrid(columns, rows int) Grid {
	return Grid{Columns: max(columns, 1), Rows: max(rows, 1)}
}

func (g Grid) dims() (int, int) {
	return max(g.Columns, 1), max(g.Rows, 1)
}

// PreferredSize returns the extent at which every cell is as large as the
// largest preferred size of any component.
func (g Grid) PreferredSize(components []tui.Component, hints []tui.Hint) tui.Extent {
	cols, rows := g.dims()
	var cell tui.Extent
	for _, c := range components {
		cell = cell.Max(c.PreferredSize())
	}
	return tui.Ext(cell.Width*cols, cell.Height*rows)
}

// Apply places each component in its cell.
func (g Grid) Apply(components []tui.Component, hints []tui.Hint, size tui.Extent) {
	cols, rows := g.dims()
	for i, c := range components {
		if i >= cols*rows {
			c.SetPosition(tui.Point{})
			c.SetSize(tui.Extent{})
			continue
		}
		x, w := split(size.Width, cols, i%cols)
		y, h := split(size.Height, rows, i/cols)
		c.SetPosition(tui.Pt(x, y))
		c.SetSize(tui.Ext(w, h))
	}
}

// Diagnostic returns the layout's type tag.
func (g Grid) Diagnostic() *tui.Diagnostic {
	return tui.NewDiagnostic("grid")
}

// split divides total into parts slices and returns the offset and length
// of slice i. The first total%parts slices are one cell longer.
func split(total, parts, i int) (offset, length int) {
	total = max(total, 0)
	base, rem := total/parts, total%parts
	offset = i*base + min(i, rem)
	length = base
	if i < rem {
		length++
	}
	return offset, length
}
