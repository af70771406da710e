package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/io"
)

// exportCommand creates the export command, which writes a JSON snapshot
// back to DOT.
func (c *CLI) exportCommand() *cobra.Command {
	var output, labelLocation string

	cmd := &cobra.Command{
		Use:   "export <file.json>",
		Short: "Export a JSON snapshot of visual graphs to DOT",
		Long: `Export writes every graph of a JSON snapshot (as produced by import) as
DOT. Default statements carry the style defaults and each element lists
only the attributes that differ from them.`,
		Example: `  dotstyle export graph.json -o graph.dot
  dotstyle export graph.json --label-location external`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			w, err := c.writer(cmd, labelLocation)
			if err != nil {
				return err
			}
			graphs, err := io.ImportJSON(args[0])
			if err != nil {
				return err
			}
			data, report, err := writeDOT(ctx, w, graphs)
			if err != nil {
				return err
			}
			logReport(loggerFromContext(ctx), report)

			if err := c.writeOutput(output, data); err != nil {
				return err
			}
			nodes, edges := countElements(graphs)
			printStats(len(graphs), nodes, edges, false)
			prog.done(fmt.Sprintf("Exported %s", plural(len(graphs), "graph")))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output DOT file (default: stdout)")
	cmd.Flags().StringVar(&labelLocation, "label-location", "", "where node labels are placed: internal or external")

	return cmd
}
