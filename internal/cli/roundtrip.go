package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// roundtripCommand creates the roundtrip command: DOT in, DOT out, through
// the visual model.
func (c *CLI) roundtripCommand() *cobra.Command {
	var (
		output        string
		labelLocation string
		flags         readFlags
	)

	cmd := &cobra.Command{
		Use:   "roundtrip <file.dot>",
		Short: "Normalize a DOT file by reading and re-writing it",
		Long: `Roundtrip imports a DOT file and immediately exports it again. The
output has normalized colors, identifiers and default statements and
is stable: running roundtrip on its own output reproduces it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)
			prog := newProgress(logger)

			rd, err := c.reader(cmd, flags)
			if err != nil {
				return err
			}
			w, err := c.writer(cmd, labelLocation)
			if err != nil {
				return err
			}

			graphs, readReport, err := loadGraphs(ctx, rd, args[0])
			if err != nil {
				return err
			}
			logReport(logger, readReport)

			data, writeReport, err := writeDOT(ctx, w, graphs)
			if err != nil {
				return err
			}
			logReport(logger, writeReport)

			if err := c.writeOutput(output, data); err != nil {
				return err
			}
			nodes, edges := countElements(graphs)
			printStats(len(graphs), nodes, edges, false)
			prog.done(fmt.Sprintf("Rewrote %s", plural(len(graphs), "graph")))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output DOT file (default: stdout)")
	cmd.Flags().StringVar(&labelLocation, "label-location", "", "where node labels are placed: internal or external")
	flags.register(cmd)

	return cmd
}
