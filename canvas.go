package tui

import "strings"

// Canvas is a 2D grid of cells that a Window repaints into. It is owned by
// whoever drives the repaint loop; backends read it back after each Repaint
// and copy the painted regions to the real terminal.
type Canvas struct {
	cells  []Cell
	width  int
	height int
}

// NewCanvas creates a canvas of the specified dimensions filled with blanks.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(Ext(width, height))
	return c
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() Extent {
	return Ext(c.width, c.height)
}

// Bounds returns the canvas area as a Rect starting at (0, 0).
func (c *Canvas) Bounds() Rect {
	return NewRect(0, 0, c.width, c.height)
}

// Resize changes the canvas dimensions. Cells inside both the old and the
// new bounds keep their content; new cells are blank.
func (c *Canvas) Resize(size Extent) {
	w, h := max(size.Width, 0), max(size.Height, 0)
	if w == c.width && h == c.height && c.cells != nil {
		return
	}

	cells := make([]Cell, w*h)
	blank := BlankCell(NewStyle())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x < c.width && y < c.height {
				cells[y*w+x] = c.cells[y*c.width+x]
			} else {
				cells[y*w+x] = blank
			}
		}
	}
	c.cells, c.width, c.height = cells, w, h
}

// idx converts (x, y) coordinates to a flat index.
// Returns -1 if out of bounds.
func (c *Canvas) idx(x, y int) int {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return -1
	}
	return y*c.width + x
}

// Cell returns the cell at (x, y), or an empty Cell if out of bounds.
func (c *Canvas) Cell(x, y int) Cell {
	i := c.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return c.cells[i]
}

// SetCell sets the cell at (x, y). Does nothing if out of bounds.
func (c *Canvas) SetCell(x, y int, cell Cell) {
	i := c.idx(x, y)
	if i < 0 {
		return
	}
	c.cells[i] = cell
}

// Fill sets every cell of r that lies on the canvas to cell.
func (c *Canvas) Fill(r Rect, cell Cell) {
	r, ok := Intersection(r, c.Bounds())
	if !ok {
		return
	}
	for y := r.Origin.Y; y < r.Bottom(); y++ {
		for x := r.Origin.X; x < r.Right(); x++ {
			c.cells[y*c.width+x] = cell
		}
	}
}

// Clear resets every cell to a blank with the default style.
func (c *Canvas) Clear() {
	c.Fill(c.Bounds(), BlankCell(NewStyle()))
}

// Line returns row y as plain text. Continuation cells are skipped so wide
// characters appear once.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < c.width; x++ {
		cell := c.cells[y*c.width+x]
		if cell.IsContinuation() {
			continue
		}
		if cell.Rune == 0 {
			sb.WriteRune(' ')
			continue
		}
		sb.WriteRune(cell.Rune)
	}
	return sb.String()
}

// String returns the canvas content as plain text, one line per row.
func (c *Canvas) String() string {
	lines := make([]string, c.height)
	for y := range lines {
		lines[y] = c.Line(y)
	}
	return strings.Join(lines, "\n")
}
