package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepviz/driver"
	"github.com/katalvlaran/stepviz/render"
)

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show the available algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			infos := driver.Algorithms()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.AlgorithmTable(infos))
			if verbose {
				for _, info := range infos {
					fmt.Fprintf(out, "\n%s: %s\n", info.ID, info.Description)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Also print each algorithm's description")

	return cmd
}
