// Tuikit is a demo and inspection tool for the tuikit component toolkit.
//
// Usage:
//
//	tuikit [command] [flags]
//
// Running without arguments starts the interactive demo on the terminal.
// See 'tuikit --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/tuikit/internal/config"
	"github.com/grindlemire/tuikit/internal/debug"
)

const version = "0.1.0"

// options holds the flags shared by every command.
type options struct {
	configPath string
	logFile    string
	logLevel   string

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tuikit",
		Short: "Retained-mode terminal UI toolkit demo",
		Long: `Demo and inspection tool for the tuikit component toolkit.

The demo tree is a header, a framed body and a status line. The body
arrangement, border, theme and glyph set come from a YAML config file.

If no command is specified, the interactive demo starts.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return debug.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, opts, backendTcell)
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	root.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write debug logs to this file (overrides config and "+debug.EnvVar+")")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newDumpCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// load reads the config and starts logging. Flags win over the file.
func (o *options) load() error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logFile != "" {
		cfg.Log.File = o.logFile
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Log.File != "" {
		if err := debug.Init(cfg.Log.File, cfg.Log.Level); err != nil {
			return fmt.Errorf("failed to start logging: %w", err)
		}
	}
	o.cfg = cfg
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tuikit %s\n", version)
		},
	}
}
