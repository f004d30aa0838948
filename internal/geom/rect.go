package geom

import "fmt"

// Rect is an origin plus a size. It is used both for the area a component
// occupies and for an area that needs to be redrawn.
type Rect struct {
	Origin Point
	Size   Extent
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Extent{Width: width, Height: height}}
}

// RectAt creates a Rect from an origin and a size.
func RectAt(origin Point, size Extent) Rect {
	return Rect{Origin: origin, Size: size}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.Origin.X + r.Size.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Origin.Y + r.Size.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.IsEmpty()
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Size.Width * r.Size.Height
}

// Contains returns true if p is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Right() && p.Y >= r.Origin.Y && p.Y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.Origin.X >= r.Origin.X && other.Origin.Y >= r.Origin.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Translate returns a new Rect moved by d.
func (r Rect) Translate(d Point) Rect {
	return Rect{Origin: r.Origin.Add(d), Size: r.Size}
}

// Intersect returns the overlapping area of r and other.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	i, ok := Intersection(r, other)
	if !ok {
		return Rect{}
	}
	return i
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	_, ok := Intersection(r, other)
	return ok
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.Origin.X, other.Origin.X)
	y := min(r.Origin.Y, other.Origin.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return NewRect(x, y, right-x, bottom-y)
}

func (r Rect) String() string {
	return fmt.Sprintf("{%s %s}", r.Origin, r.Size)
}

// Intersection returns the overlap of a and b and whether there is one.
// Rectangles that only touch along an edge, or where either side is empty,
// have no intersection.
func Intersection(a, b Rect) (Rect, bool) {
	if a.IsEmpty() || b.IsEmpty() {
		return Rect{}, false
	}

	x := max(a.Origin.X, b.Origin.X)
	y := max(a.Origin.Y, b.Origin.Y)
	right := min(a.Right(), b.Right())
	bottom := min(a.Bottom(), b.Bottom())

	if right-x <= 0 || bottom-y <= 0 {
		return Rect{}, false
	}
	return NewRect(x, y, right-x, bottom-y), true
}

// Subtract returns the parts of a not covered by b as up to four disjoint
// slices: a full-width band above, a full-width band below, and the left and
// right remainders of the overlapping rows. Empty slices are pruned.
func Subtract(a, b Rect) []Rect {
	if a.IsEmpty() {
		return nil
	}
	i, ok := Intersection(a, b)
	if !ok {
		return []Rect{a}
	}

	slices := []Rect{
		NewRect(a.Origin.X, a.Origin.Y, a.Size.Width, i.Origin.Y-a.Origin.Y),
		NewRect(a.Origin.X, i.Origin.Y, i.Origin.X-a.Origin.X, i.Size.Height),
		NewRect(i.Right(), i.Origin.Y, a.Right()-i.Right(), i.Size.Height),
		NewRect(a.Origin.X, i.Bottom(), a.Size.Width, a.Bottom()-i.Bottom()),
	}
	return Prune(slices)
}

// Prune drops empty rectangles, reusing the backing array.
func Prune(rects []Rect) []Rect {
	out := rects[:0]
	for _, r := range rects {
		if !r.IsEmpty() {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
