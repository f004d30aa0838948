package widget

import tui "github.com/grindlemire/tuikit"

var _ tui.Component = (*Filler)(nil)

// Filler paints every cell it is asked to draw with one glyph. Wide
// glyphs are drawn as blanks since they cannot tile an arbitrary region.
type Filler struct {
	*tui.Base
	glyph rune
	style tui.Style
}

// NewFiller creates a filler that never takes focus.
func NewFiller(glyph rune, style tui.Style) *Filler {
	return &Filler{
		Base:  tui.NewBase("filler", tui.WithFocusable(false)),
		glyph: glyph,
		style: style,
	}
}

// SetGlyph changes the fill glyph.
func (f *Filler) SetGlyph(glyph rune) {
	if glyph == f.glyph {
		return
	}
	f.glyph = glyph
	f.RequestRedraw()
}

// Draw fills region.
func (f *Filler) Draw(s tui.Surface, region tui.Rect) {
	cell := tui.NewCell(f.glyph, f.style)
	if cell.Width != 1 {
		cell = tui.BlankCell(f.style)
	}
	tui.FillRegion(s, region, cell)
}

// Diagnostic adds the glyph to the standard snapshot.
func (f *Filler) Diagnostic() *tui.Diagnostic {
	return tui.ComponentDiagnostic(f.Kind(), f).Set("glyph", string(f.glyph))
}
