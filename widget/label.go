package widget

import (
	"strings"

	tui "github.com/grindlemire/tuikit"
)

var _ tui.Component = (*Label)(nil)

// Label displays one or more lines of text. It never takes focus.
type Label struct {
	*tui.Base
	text  string
	style tui.Style
}

// NewLabel creates a label showing text. Newlines start new rows.
func NewLabel(text string) *Label {
	return &Label{
		Base: tui.NewBase("label", tui.WithFocusable(false), tui.WithPreferredSize(measure(text))),
		text: text,
	}
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetText replaces the text, updating the preferred size and requesting a
// redraw.
func (l *Label) SetText(text string) {
	if text == l.text {
		return
	}
	l.text = text
	l.SetPreferredSize(measure(text))
	l.RequestRedraw()
}

// SetStyle changes the text style.
func (l *Label) SetStyle(style tui.Style) {
	l.style = style
	l.RequestRedraw()
}

// Draw writes the rows of text that fall inside region.
func (l *Label) Draw(s tui.Surface, region tui.Rect) {
	for y, line := range strings.Split(l.text, "\n") {
		if y >= region.Bottom() {
			break
		}
		if y < region.Origin.Y {
			continue
		}
		tui.DrawString(s, tui.Pt(0, y), line, l.style, region)
	}
}

// Diagnostic adds the text to the standard snapshot.
func (l *Label) Diagnostic() *tui.Diagnostic {
	return tui.ComponentDiagnostic(l.Kind(), l).Set("text", l.text)
}

// measure returns the widest row and the number of rows.
func measure(text string) tui.Extent {
	lines := strings.Split(text, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, tui.StringWidth(line))
	}
	return tui.Ext(width, len(lines))
}
