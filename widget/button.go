package widget

import (
	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/debug"
)

var _ tui.Component = (*Button)(nil)

// Button is a single-row, focusable push button rendered as "[ label ]".
// It shows a cursor on the first label character and is drawn reversed
// while focused.
type Button struct {
	*tui.Base
	label   string
	style   tui.Style
	onClick tui.Notifier
	subs    tui.Subscriptions
}

// NewButton creates a button with the given label.
func NewButton(label string) *Button {
	b := &Button{
		Base:  tui.NewBase("button", tui.WithCursor(tui.Pt(2, 0)), tui.WithPreferredSize(tui.Ext(tui.StringWidth(label)+4, 1))),
		label: label,
	}
	b.subs = tui.Subscriptions{
		b.Signals().FocusSet.Connect(b.focusChanged),
		b.Signals().FocusLost.Connect(b.focusChanged),
	}
	return b
}

// Label returns the button text.
func (b *Button) Label() string {
	return b.label
}

// SetStyle changes the unfocused style.
func (b *Button) SetStyle(style tui.Style) {
	b.style = style
	b.RequestRedraw()
}

// OnClick returns the notifier raised when the button is activated.
func (b *Button) OnClick() *tui.Notifier {
	return &b.onClick
}

// Click activates the button as if the user had pressed it.
func (b *Button) Click() {
	if !b.Enabled() {
		return
	}
	debug.Log("Button.Click: label=%q", b.label)
	b.onClick.Notify()
}

func (b *Button) focusChanged() {
	b.RequestRedraw()
}

// Draw renders the bracketed label.
func (b *Button) Draw(s tui.Surface, region tui.Rect) {
	style := b.style
	if b.HasFocus() {
		style = style.With(tui.AttrReverse)
	}
	tui.DrawString(s, tui.Pt(0, 0), "[ "+b.label+" ]", style, region)
}

// Event activates the button on Enter or Space while focused, and on a
// left click anywhere inside it.
func (b *Button) Event(ev tui.Event) {
	if !b.Enabled() {
		return
	}
	switch e := ev.(type) {
	case tui.KeyEvent:
		if b.HasFocus() && (e.Is(tui.KeyEnter) || e.Char() == ' ') {
			b.Click()
		}
	case tui.MouseEvent:
		if e.Button != tui.MouseLeft || e.Action != tui.MousePress {
			return
		}
		if !tui.RectAt(tui.Point{}, b.Size()).Contains(e.Position) {
			return
		}
		b.SetFocus()
		b.Click()
	}
}

// Diagnostic adds the label to the standard snapshot.
func (b *Button) Diagnostic() *tui.Diagnostic {
	return tui.ComponentDiagnostic(b.Kind(), b).Set("label", b.label)
}
