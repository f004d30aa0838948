package geom

// RegionSet is a collection of disjoint rectangles covering every area that
// has been added to it. Overlapping additions are sliced so that no cell is
// covered twice, and neighbouring slices that line up are merged back
// together. The zero value is an empty set ready to use.
type RegionSet struct {
	rects []Rect
}

// Add inserts r into the set. Only the parts of r not already covered are
// kept. Empty rectangles are ignored. Returns true if the covered area grew.
func (s *RegionSet) Add(r Rect) bool {
	if r.IsEmpty() {
		return false
	}

	pending := []Rect{r}
	for _, existing := range s.rects {
		var next []Rect
		for _, p := range pending {
			next = append(next, Subtract(p, existing)...)
		}
		pending = next
		if len(pending) == 0 {
			return false
		}
	}

	s.rects = append(s.rects, pending...)
	s.merge()
	return true
}

// AddAll inserts each rectangle in turn.
func (s *RegionSet) AddAll(rects ...Rect) {
	for _, r := range rects {
		s.Add(r)
	}
}

// Rects returns a copy of the disjoint rectangles in the set.
func (s *RegionSet) Rects() []Rect {
	if len(s.rects) == 0 {
		return nil
	}
	out := make([]Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// Len returns the number of disjoint rectangles in the set.
func (s *RegionSet) Len() int {
	return len(s.rects)
}

// IsEmpty returns true if nothing has been added since the last Clear.
func (s *RegionSet) IsEmpty() bool {
	return len(s.rects) == 0
}

// Area returns the number of cells covered by the set.
func (s *RegionSet) Area() int {
	total := 0
	for _, r := range s.rects {
		total += r.Area()
	}
	return total
}

// Bounds returns the smallest rectangle containing every region.
func (s *RegionSet) Bounds() Rect {
	var b Rect
	for _, r := range s.rects {
		b = b.Union(r)
	}
	return b
}

// Clear empties the set.
func (s *RegionSet) Clear() {
	s.rects = nil
}

// merge joins pairs of slices that share a full edge until no more pairs
// can be joined.
func (s *RegionSet) merge() {
	for {
		merged := false
		for i := 0; i < len(s.rects) && !merged; i++ {
			for j := i + 1; j < len(s.rects); j++ {
				if m, ok := join(s.rects[i], s.rects[j]); ok {
					s.rects[i] = m
					s.rects = append(s.rects[:j], s.rects[j+1:]...)
					merged = true
					break
				}
			}
		}
		if !merged {
			return
		}
	}
}

// join returns the union of a and b when it is itself a rectangle made of
// exactly those two, i.e. they share a complete edge.
func join(a, b Rect) (Rect, bool) {
	if a.Origin.Y == b.Origin.Y && a.Size.Height == b.Size.Height {
		if a.Right() == b.Origin.X || b.Right() == a.Origin.X {
			return a.Union(b), true
		}
	}
	if a.Origin.X == b.Origin.X && a.Size.Width == b.Size.Width {
		if a.Bottom() == b.Origin.Y || b.Bottom() == a.Origin.Y {
			return a.Union(b), true
		}
	}
	return Rect{}, false
}
