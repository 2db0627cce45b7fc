package cli

import (
	"github.com/spf13/cobra"

	"github.com/crossflow/crossflow/pkg/style"
)

// schemesCommand creates the schemes command, which lists the color
// schemes accepted by node_scheme and edge_scheme.
func (c *CLI) schemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List available color schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			printInfo("Colormaps")
			for _, name := range style.ColormapNames() {
				printDetail("%s", name)
			}
			printInfo("Any SVG color name also works as a flat scheme (e.g. steelblue, tomato)")
			return nil
		},
	}
}
