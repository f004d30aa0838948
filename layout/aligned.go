package layout

import tui "github.com/grindlemire/tuikit"

var _ tui.Layout = Aligned{}

// Align specifies how a component is positioned along one axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to the left or top edge
	AlignCenter               // Center in the available space
	AlignEnd                  // Align to the right or bottom edge
	AlignStretch              // Fill the available space
)

// Alignment is the Aligned hint: one Align per axis.
type Alignment struct {
	Horizontal Align
	Vertical   Align
}

// Common alignments.
var (
	Centred  = Alignment{Horizontal: AlignCenter, Vertical: AlignCenter}
	Filled   = Alignment{Horizontal: AlignStretch, Vertical: AlignStretch}
	TopLeft  = Alignment{Horizontal: AlignStart, Vertical: AlignStart}
	TopRight = Alignment{Horizontal: AlignEnd, Vertical: AlignStart}
)

// Aligned positions every component within the whole container. A
// component gets its preferred size, clipped to the container, unless the
// axis is stretched. Unknown hints mean Centred.
type Aligned struct{}

// NewAligned creates an aligned layout.
func NewAligned() Aligned {
	return Aligned{}
}

func alignment(h tui.Hint) Alignment {
	if a, ok := h.(Alignment); ok {
		return a
	}
	return Centred
}

// PreferredSize returns the largest preferred size of any component.
func (Aligned) PreferredSize(components []tui.Component, hints []tui.Hint) tui.Extent {
	var pref tui.Extent
	for _, c := range components {
		pref = pref.Max(c.PreferredSize())
	}
	return pref
}

// Apply positions each component according to its alignment.
func (Aligned) Apply(components []tui.Component, hints []tui.Hint, size tui.Extent) {
	for i, c := range components {
		a := alignment(hintAt(hints, i))
		pref := c.PreferredSize()
		x, w := place(a.Horizontal, max(size.Width, 0), pref.Width)
		y, h := place(a.Vertical, max(size.Height, 0), pref.Height)
		c.SetPosition(tui.Pt(x, y))
		c.SetSize(tui.Ext(w, h))
	}
}

// Diagnostic returns the layout's type tag.
func (Aligned) Diagnostic() *tui.Diagnostic {
	return tui.NewDiagnostic("aligned")
}

// place returns the offset and length of an item along one axis.
func place(align Align, available, preferred int) (offset, length int) {
	if align == AlignStretch {
		return 0, available
	}
	length = min(max(preferred, 0), available)
	switch align {
	case AlignEnd:
		return available - length, length
	case AlignCenter:
		return (available - length) / 2, length
	default: // AlignStart
		return 0, length
	}
}
