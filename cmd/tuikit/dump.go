package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCmd(opts *options) *cobra.Command {
	var (
		size   sizeFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the diagnostic snapshot of the laid-out demo",
		Long: `Lay out the demo tree at the given size and print the root's diagnostic
snapshot: every component's type, geometry, focus and cursor state, and
each container's layout and children.`,
		Example: `  # YAML snapshot at 60x20
  tuikit dump --width 60 --height 20

  # JSON for scripting
  tuikit dump --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, _ := paint(opts, size.extent())
			diag := d.Root.Diagnostic()

			var (
				out []byte
				err error
			)
			switch format {
			case "yaml":
				out, err = yaml.Marshal(diag)
			case "json":
				out, err = json.MarshalIndent(diag, "", "  ")
				out = append(out, '\n')
			default:
				return fmt.Errorf("unknown format %q (want yaml or json)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode diagnostic: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	size.register(cmd)
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format: yaml or json")
	return cmd
}
