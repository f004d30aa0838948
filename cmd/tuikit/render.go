package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/demo"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// sizeFlags selects the canvas size for headless commands.
type sizeFlags struct {
	width  int
	height int
}

func (f *sizeFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.width, "width", 0, "Canvas width (default: terminal width or 80)")
	cmd.Flags().IntVar(&f.height, "height", 0, "Canvas height (default: terminal height or 24)")
}

// extent returns the requested size, filling unset dimensions from the
// terminal on stdout or the defaults.
func (f *sizeFlags) extent() tui.Extent {
	w, h := defaultWidth, defaultHeight
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if tw, th, err := term.GetSize(fd); err == nil {
			w, h = tw, th
		}
	}
	if f.width > 0 {
		w = f.width
	}
	if f.height > 0 {
		h = f.height
	}
	return tui.Ext(w, h)
}

// paint builds the demo and repaints it once into a canvas of size.
func paint(opts *options, size tui.Extent) (*demo.Demo, *tui.Canvas) {
	d := demo.Build(opts.cfg)
	canvas := tui.NewCanvas(size.Width, size.Height)
	w := tui.NewWindow(d.Root, tui.WithCapabilities(opts.cfg.Capabilities(tui.DetectCapabilities())))
	w.Repaint(canvas)
	w.Close()
	return d, canvas
}

func newRenderCmd(opts *options) *cobra.Command {
	var size sizeFlags

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the demo once as plain text",
		Long: `Lay out and draw the demo tree once without a terminal and print the
canvas as plain text. Useful for checking layouts and glyph fallbacks.`,
		Example: `  # Render at a fixed size with ASCII glyphs
  tuikit render --width 40 --height 10 --config ascii.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, canvas := paint(opts, size.extent())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), canvas.String())
			return err
		},
	}
	size.register(cmd)
	return cmd
}
