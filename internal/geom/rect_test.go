package geom

import "testing"

func TestNewRect(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Origin != Pt(5, 10) {
		t.Errorf("NewRect().Origin = %v, want (5,10)", r.Origin)
	}
	if r.Size != Ext(20, 15) {
		t.Errorf("NewRect().Size = %v, want 20x15", r.Size)
	}
}

func TestRect_RightBottom(t *testing.T) {
	type tc struct {
		rect   Rect
		right  int
		bottom int
	}

	tests := map[string]tc{
		"standard rect": {
			rect:   NewRect(5, 10, 20, 15),
			right:  25,
			bottom: 25,
		},
		"negative position": {
			rect:   NewRect(-5, -5, 10, 10),
			right:  5,
			bottom: 5,
		},
		"zero size": {
			rect:   NewRect(5, 5, 0, 0),
			right:  5,
			bottom: 5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Right(); got != tt.right {
				t.Errorf("Right() = %d, want %d", got, tt.right)
			}
			if got := tt.rect.Bottom(); got != tt.bottom {
				t.Errorf("Bottom() = %d, want %d", got, tt.bottom)
			}
		})
	}
}

func TestRect_AreaAndEmpty(t *testing.T) {
	type tc struct {
		rect    Rect
		area    int
		isEmpty bool
	}

	tests := map[string]tc{
		"standard rect":   {rect: NewRect(0, 0, 10, 5), area: 50},
		"zero width":      {rect: NewRect(0, 0, 0, 10), isEmpty: true},
		"zero height":     {rect: NewRect(0, 0, 10, 0), isEmpty: true},
		"negative width":  {rect: NewRect(0, 0, -5, 10), isEmpty: true},
		"negative height": {rect: NewRect(0, 0, 10, -5), isEmpty: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.rect.Area(); got != tt.area {
				t.Errorf("Area() = %d, want %d", got, tt.area)
			}
			if got := tt.rect.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestRect_Contains(t *testing.T) {
	r := NewRect(2, 3, 4, 5)

	type tc struct {
		p    Point
		want bool
	}

	tests := map[string]tc{
		"origin":        {p: Pt(2, 3), want: true},
		"inside":        {p: Pt(4, 5), want: true},
		"last cell":     {p: Pt(5, 7), want: true},
		"right edge":    {p: Pt(6, 3), want: false},
		"bottom edge":   {p: Pt(2, 8), want: false},
		"left of rect":  {p: Pt(1, 3), want: false},
		"above of rect": {p: Pt(2, 2), want: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := r.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestIntersection(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
		ok   bool
	}

	tests := map[string]tc{
		"partial overlap": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(5, 5, 10, 10),
			want: NewRect(5, 5, 5, 5),
			ok:   true,
		},
		"full containment returns smaller": {
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 3, 4, 5),
			want: NewRect(2, 3, 4, 5),
			ok:   true,
		},
		"identical": {
			a:    NewRect(1, 1, 3, 3),
			b:    NewRect(1, 1, 3, 3),
			want: NewRect(1, 1, 3, 3),
			ok:   true,
		},
		"disjoint": {
			a: NewRect(0, 0, 2, 2),
			b: NewRect(5, 5, 2, 2),
		},
		"touching right edge": {
			a: NewRect(0, 0, 2, 2),
			b: NewRect(2, 0, 2, 2),
		},
		"touching bottom edge": {
			a: NewRect(0, 0, 2, 2),
			b: NewRect(0, 2, 2, 2),
		},
		"touching corner": {
			a: NewRect(0, 0, 2, 2),
			b: NewRect(2, 2, 2, 2),
		},
		"zero sized inside": {
			a: NewRect(0, 0, 10, 10),
			b: NewRect(3, 3, 0, 0),
		},
		"zero width inside": {
			a: NewRect(0, 0, 10, 10),
			b: NewRect(3, 3, 0, 4),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Intersection(tt.a, tt.b)
			if ok != tt.ok {
				t.Fatalf("Intersection() ok = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Intersection() = %v, want %v", got, tt.want)
			}

			rev, revOK := Intersection(tt.b, tt.a)
			if revOK != ok || rev != got {
				t.Errorf("Intersection is not symmetric: (%v, %v) vs (%v, %v)", got, ok, rev, revOK)
			}
		})
	}
}

func TestIntersection_SymmetricGrid(t *testing.T) {
	var rects []Rect
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			for w := 0; w <= 3; w++ {
				rects = append(rects, NewRect(x, y, w, 2))
			}
		}
	}

	for _, a := range rects {
		for _, b := range rects {
			ab, okAB := Intersection(a, b)
			ba, okBA := Intersection(b, a)
			if okAB != okBA || ab != ba {
				t.Fatalf("Intersection(%v, %v) = (%v, %v), reversed = (%v, %v)", a, b, ab, okAB, ba, okBA)
			}
			if okAB && ab.IsEmpty() {
				t.Fatalf("Intersection(%v, %v) reported an empty overlap %v", a, b, ab)
			}
		}
	}
}

func TestRect_Union(t *testing.T) {
	type tc struct {
		a, b Rect
		want Rect
	}

	tests := map[string]tc{
		"disjoint": {
			a:    NewRect(0, 0, 2, 2),
			b:    NewRect(4, 4, 2, 2),
			want: NewRect(0, 0, 6, 6),
		},
		"empty left": {
			a:    NewRect(9, 9, 0, 0),
			b:    NewRect(1, 1, 2, 2),
			want: NewRect(1, 1, 2, 2),
		},
		"empty right": {
			a:    NewRect(1, 1, 2, 2),
			b:    Rect{},
			want: NewRect(1, 1, 2, 2),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubtract(t *testing.T) {
	type tc struct {
		a, b     Rect
		wantArea int
		wantLen  int
	}

	tests := map[string]tc{
		"no overlap keeps original": {
			a:        NewRect(0, 0, 4, 4),
			b:        NewRect(10, 10, 1, 1),
			wantArea: 16,
			wantLen:  1,
		},
		"hole in the middle": {
			a:        NewRect(0, 0, 4, 4),
			b:        NewRect(1, 1, 2, 2),
			wantArea: 12,
			wantLen:  4,
		},
		"fully covered": {
			a:        NewRect(1, 1, 2, 2),
			b:        NewRect(0, 0, 4, 4),
			wantArea: 0,
			wantLen:  0,
		},
		"left half covered": {
			a:        NewRect(0, 0, 4, 2),
			b:        NewRect(0, 0, 2, 2),
			wantArea: 4,
			wantLen:  1,
		},
		"empty input": {
			a:        NewRect(0, 0, 0, 3),
			b:        NewRect(0, 0, 1, 1),
			wantArea: 0,
			wantLen:  0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := Subtract(tt.a, tt.b)
			if len(got) != tt.wantLen {
				t.Fatalf("len(Subtract()) = %d, want %d (%v)", len(got), tt.wantLen, got)
			}
			area := 0
			for _, r := range got {
				if r.IsEmpty() {
					t.Errorf("Subtract() returned empty slice %v", r)
				}
				if r.Intersects(tt.b) {
					t.Errorf("Subtract() slice %v still overlaps %v", r, tt.b)
				}
				if !tt.a.ContainsRect(r) {
					t.Errorf("Subtract() slice %v escapes %v", r, tt.a)
				}
				area += r.Area()
			}
			if area != tt.wantArea {
				t.Errorf("Subtract() area = %d, want %d", area, tt.wantArea)
			}
		})
	}
}
