package geom

import "fmt"

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Neg returns the point mirrored through the origin.
func (p Point) Neg() Point {
	return Point{X: -p.X, Y: -p.Y}
}

// In returns true if the point is inside the given rectangle.
func (p Point) In(r Rect) bool {
	return r.Contains(p)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Extent is a width/height pair.
type Extent struct {
	Width, Height int
}

// Ext is shorthand for Extent{Width: w, Height: h}.
func Ext(w, h int) Extent {
	return Extent{Width: w, Height: h}
}

// IsEmpty returns true if either dimension is zero or negative.
func (e Extent) IsEmpty() bool {
	return e.Width <= 0 || e.Height <= 0
}

// Max returns the component-wise maximum of two extents.
func (e Extent) Max(other Extent) Extent {
	return Extent{Width: max(e.Width, other.Width), Height: max(e.Height, other.Height)}
}

// Min returns the component-wise minimum of two extents.
func (e Extent) Min(other Extent) Extent {
	return Extent{Width: min(e.Width, other.Width), Height: min(e.Height, other.Height)}
}

func (e Extent) String() string {
	return fmt.Sprintf("%dx%d", e.Width, e.Height)
}
