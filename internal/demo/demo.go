// Package demo assembles the component tree shown by the tuikit CLI.
package demo

import (
	"fmt"

	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/config"
	"github.com/grindlemire/tuikit/internal/debug"
	"github.com/grindlemire/tuikit/layout"
	"github.com/grindlemire/tuikit/widget"
)

// Demo is the assembled tree with handles to the parts tests and the CLI
// poke at.
type Demo struct {
	Root    *tui.Container
	Header  *widget.Label
	Body    *widget.Panel
	Status  *widget.Label
	Buttons []*widget.Button
}

// Build creates the demo tree: a header docked north, a status line docked
// south and a framed body in the centre whose arrangement follows
// cfg.Layout. Pressing a button reports it on the status line.
func Build(cfg *config.Config) *Demo {
	d := &Demo{
		Root:   tui.NewContainer(tui.WithKind("demo"), tui.WithLayout(layout.NewCompass())),
		Header: widget.NewLabel(cfg.Title),
		Status: widget.NewLabel("Tab moves focus, Enter presses"),
	}
	d.Header.SetStyle(cfg.Theme.AccentStyle().With(tui.AttrBold))
	d.Status.SetStyle(cfg.Theme.Style())

	body := d.body(cfg)
	d.Body = widget.NewPanel(body, cfg.BorderStyle())
	d.Body.SetTitle(cfg.Layout.Kind)

	d.Root.AddComponent(d.Header, layout.North)
	d.Root.AddComponent(d.Body, layout.Centre)
	d.Root.AddComponent(d.Status, layout.South)
	debug.Log("demo.Build: layout=%s buttons=%d", cfg.Layout.Kind, len(d.Buttons))
	return d
}

func (d *Demo) body(cfg *config.Config) *tui.Container {
	switch cfg.Layout.Kind {
	case config.LayoutCompass:
		body := tui.NewContainer(tui.WithLayout(layout.NewCompass()))
		for _, h := range []layout.Heading{layout.North, layout.West, layout.East, layout.South} {
			body.AddComponent(d.button(h.String()), h)
		}
		body.AddComponent(widget.NewFiller('·', cfg.Theme.Style()), layout.Centre)
		return body

	case config.LayoutStrip:
		body := tui.NewContainer(tui.WithLayout(layout.Vertical()))
		for i := range 3 {
			body.AddComponent(d.button(fmt.Sprintf("Item %d", i+1)), layout.Auto())
		}
		body.AddComponent(widget.NewFiller(' ', cfg.Theme.Style()), layout.Fill())
		return body
	}

	body := tui.NewContainer(tui.WithLayout(layout.NewGrid(cfg.Layout.Columns, cfg.Layout.Rows)))
	for i := range cfg.Layout.Columns * cfg.Layout.Rows {
		cell := tui.NewContainer(tui.WithLayout(layout.NewAligned()))
		cell.AddComponent(d.button(fmt.Sprintf("%d", i+1)), layout.Centred)
		body.AddComponent(cell, nil)
	}
	return body
}

func (d *Demo) button(label string) *widget.Button {
	b := widget.NewButton(label)
	b.OnClick().Connect(func() {
		d.Status.SetText("Pressed " + label)
	})
	d.Buttons = append(d.Buttons, b)
	return b
}
