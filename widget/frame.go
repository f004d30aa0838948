package widget

import tui "github.com/grindlemire/tuikit"

var _ tui.Component = (*Frame)(nil)

// Frame draws a border around its whole area with an optional title on the
// top edge. It never takes focus.
type Frame struct {
	*tui.Base
	border tui.BorderStyle
	style  tui.Style
	title  string
}

// NewFrame creates a frame with the given border.
func NewFrame(border tui.BorderStyle) *Frame {
	return &Frame{
		Base:   tui.NewBase("frame", tui.WithFocusable(false), tui.WithPreferredSize(tui.Ext(2, 2))),
		border: border,
	}
}

// SetTitle changes the title shown on the top edge.
func (f *Frame) SetTitle(title string) {
	if title == f.title {
		return
	}
	f.title = title
	f.RequestRedraw(tui.NewRect(0, 0, f.Size().Width, 1))
}

// Title returns the current title.
func (f *Frame) Title() string {
	return f.title
}

// SetBorder changes the border style.
func (f *Frame) SetBorder(border tui.BorderStyle) {
	f.border = border
	f.RequestRedraw()
}

// SetStyle changes the style of the border and title.
func (f *Frame) SetStyle(style tui.Style) {
	f.style = style
	f.RequestRedraw()
}

// Draw renders the border and the title, degrading to ASCII when the
// surface has no unicode.
func (f *Frame) Draw(s tui.Surface, region tui.Rect) {
	size := f.Size()
	tui.DrawBox(s, tui.RectAt(tui.Point{}, size), f.border, f.style, region)
	if f.title == "" || size.Width < 5 {
		return
	}
	// The title stays between the corners.
	clip, ok := tui.Intersection(region, tui.NewRect(2, 0, size.Width-4, 1))
	if !ok {
		return
	}
	tui.DrawString(s, tui.Pt(2, 0), f.title, f.style, clip)
}

// Diagnostic adds the border and title to the standard snapshot.
func (f *Frame) Diagnostic() *tui.Diagnostic {
	return tui.ComponentDiagnostic(f.Kind(), f).
		Set("border", int(f.border)).
		Set("title", f.title)
}
