package widget

import (
	tui "github.com/grindlemire/tuikit"
)

// render paints c into a fresh canvas of the given size through a Window.
func render(c tui.Component, width, height int, caps tui.Capabilities) *tui.Canvas {
	canvas := tui.NewCanvas(width, height)
	tui.NewWindow(c, tui.WithCapabilities(caps)).Repaint(canvas)
	return canvas
}

// counter counts notifications.
type counter struct {
	n int
}

func (c *counter) inc() {
	c.n++
}

// count subscribes a counter to n.
func count(n *tui.Notifier) *counter {
	c := &counter{}
	n.Connect(c.inc)
	return c
}

var unicode = tui.Capabilities{Colors: tui.Color256, Unicode: true}
