// geometry.go re-exports geometry types from internal/geom.
// Any changes to internal/geom types must be mirrored here.
package tui

import "github.com/grindlemire/tuikit/internal/geom"

// Point represents an x/y coordinate.
type Point = geom.Point

// Extent represents a width/height pair.
type Extent = geom.Extent

// Rect represents a rectangle as an origin and a size.
type Rect = geom.Rect

// RegionSet is a set of disjoint rectangles awaiting a redraw.
type RegionSet = geom.RegionSet

// Pt creates a Point.
func Pt(x, y int) Point {
	return geom.Pt(x, y)
}

// Ext creates an Extent.
func Ext(w, h int) Extent {
	return geom.Ext(w, h)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geom.NewRect(x, y, width, height)
}

// RectAt creates a Rect from an origin and a size.
func RectAt(origin Point, size Extent) Rect {
	return geom.RectAt(origin, size)
}

// Intersection returns the overlap of a and b and whether there is one.
func Intersection(a, b Rect) (Rect, bool) {
	return geom.Intersection(a, b)
}

// Subtract returns the disjoint parts of a not covered by b.
func Subtract(a, b Rect) []Rect {
	return geom.Subtract(a, b)
}
