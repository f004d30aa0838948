package tui

// Surface is the 2D element sink components draw into. Coordinates passed
// to Cell and SetCell are relative to the current offset, which containers
// move with OffsetBy before handing the surface to a child and restore
// afterwards.
type Surface interface {
	// Size returns the extent of the underlying canvas.
	Size() Extent
	// OffsetBy shifts the coordinate origin by d.
	OffsetBy(d Point)
	// Offset returns the current coordinate origin.
	Offset() Point
	// Cell returns the element at (x, y) relative to the offset.
	Cell(x, y int) Cell
	// SetCell writes the element at (x, y) relative to the offset.
	// Writes that land outside the canvas are dropped.
	SetCell(x, y int, c Cell)
	// Caps describes what the target can display.
	Caps() Capabilities
}

var _ Surface = (*RenderSurface)(nil)

// RenderSurface adapts a Canvas to the Surface interface.
type RenderSurface struct {
	canvas *Canvas
	offset Point
	caps   Capabilities
}

// NewRenderSurface wraps canvas with the given capabilities.
func NewRenderSurface(canvas *Canvas, caps Capabilities) *RenderSurface {
	return &RenderSurface{canvas: canvas, caps: caps}
}

// Size returns the extent of the underlying canvas.
func (s *RenderSurface) Size() Extent {
	return s.canvas.Size()
}

// OffsetBy shifts the coordinate origin by d.
func (s *RenderSurface) OffsetBy(d Point) {
	s.offset = s.offset.Add(d)
}

// Offset returns the current coordinate origin.
func (s *RenderSurface) Offset() Point {
	return s.offset
}

// Cell returns the element at (x, y) relative to the offset.
func (s *RenderSurface) Cell(x, y int) Cell {
	return s.canvas.Cell(s.offset.X+x, s.offset.Y+y)
}

// SetCell writes the element at (x, y) relative to the offset.
func (s *RenderSurface) SetCell(x, y int, c Cell) {
	s.canvas.SetCell(s.offset.X+x, s.offset.Y+y, c)
}

// Caps describes what the target can display.
func (s *RenderSurface) Caps() Capabilities {
	return s.caps
}

// FillRegion writes cell to every coordinate of region.
func FillRegion(s Surface, region Rect, cell Cell) {
	for y := region.Origin.Y; y < region.Bottom(); y++ {
		for x := region.Origin.X; x < region.Right(); x++ {
			s.SetCell(x, y, cell)
		}
	}
}

// DrawString writes str starting at at, clipped to region. Wide characters
// that would straddle the clip edge are replaced by a blank. Returns the
// number of columns the full string occupies, clipped or not.
func DrawString(s Surface, at Point, str string, style Style, region Rect) int {
	x := at.X
	for _, r := range str {
		left := region.Contains(Pt(x, at.Y))
		if RuneWidth(r) == 1 {
			if left {
				s.SetCell(x, at.Y, Cell{Rune: r, Style: style, Width: 1})
			}
			x++
			continue
		}

		right := region.Contains(Pt(x+1, at.Y))
		switch {
		case left && right:
			s.SetCell(x, at.Y, Cell{Rune: r, Style: style, Width: 2})
			s.SetCell(x+1, at.Y, Cell{Style: style, Width: 0})
		case left:
			s.SetCell(x, at.Y, BlankCell(style))
		case right:
			s.SetCell(x+1, at.Y, BlankCell(style))
		}
		x += 2
	}
	return x - at.X
}
