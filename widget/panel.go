package widget

import (
	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/layout"
)

var _ tui.Component = (*Panel)(nil)

// Panel surrounds a content component with a Frame. The content sits on
// the default layer, inset by one cell on every side. The frame sits on
// the highest layer, which has no layout; the panel sizes it itself.
type Panel struct {
	*tui.Container
	content tui.Component
	frame   *Frame
}

// NewPanel wraps content in a frame with the given border.
func NewPanel(content tui.Component, border tui.BorderStyle) *Panel {
	p := &Panel{
		Container: tui.NewContainer(tui.WithKind("panel"), tui.WithLayout(layout.NewPadded(layout.EdgeAll(1)))),
		content:   content,
		frame:     NewFrame(border),
	}
	p.AddComponent(content, nil)
	p.AddComponentToLayer(p.frame, nil, tui.HighestLayer)
	return p
}

// Content returns the wrapped component.
func (p *Panel) Content() tui.Component {
	return p.content
}

// Frame returns the border component.
func (p *Panel) Frame() *Frame {
	return p.frame
}

// SetTitle shows title on the top edge of the frame.
func (p *Panel) SetTitle(title string) {
	p.frame.SetTitle(title)
}

// SetSize lays out the content and stretches the frame over the whole panel.
func (p *Panel) SetSize(s tui.Extent) {
	p.Container.SetSize(s)
	p.frame.SetPosition(tui.Point{})
	p.frame.SetSize(s)
}

// Event sends mouse events that land inside the content to the content, so
// the frame above it does not swallow them. Other events follow focus.
func (p *Panel) Event(ev tui.Event) {
	me, ok := ev.(tui.MouseEvent)
	if !ok {
		p.Container.Event(ev)
		return
	}
	if tui.Bounds(p.content).Contains(me.Position) {
		p.content.Event(me.Translated(p.content.Position()))
	}
}
