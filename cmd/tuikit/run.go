package main

import (
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	tui "github.com/grindlemire/tuikit"
	"github.com/grindlemire/tuikit/internal/demo"
	"github.com/grindlemire/tuikit/tcellscreen"
	"github.com/grindlemire/tuikit/teahost"
)

const (
	backendTcell = "tcell"
	backendTea   = "tea"
)

func newRunCmd(opts *options) *cobra.Command {
	var backend string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the interactive demo",
		Long: `Run the interactive demo on the terminal.

Tab and Shift+Tab move focus, Enter or a click presses the focused button
and Ctrl+C quits. The tcell backend drives the terminal directly; the tea
backend hosts the same tree inside a Bubble Tea program.`,
		Example: `  # Run with the defaults
  tuikit run

  # Use a config file and the Bubble Tea host
  tuikit run --config demo.yaml --backend tea`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, backend)
		},
	}
	cmd.Flags().StringVar(&backend, "backend", backendTcell, "Terminal backend: tcell or tea")
	return cmd
}

func runDemo(cmd *cobra.Command, opts *options, backend string) error {
	d := demo.Build(opts.cfg)
	window := tui.NewWindow(d.Root, tui.WithCapabilities(opts.cfg.Capabilities(tui.DetectCapabilities())))
	defer window.Close()

	switch backend {
	case backendTcell:
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		screen := tcellscreen.New(window)
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		return screen.Run(ctx)

	case backendTea:
		model := teahost.New(window, teahost.WithHelp(true))
		if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run(); err != nil {
			return fmt.Errorf("bubble tea program failed: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown backend %q", backend)
}
