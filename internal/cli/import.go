package cli

import (
	"bytes"
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/cache"
	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/io"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// importCommand creates the import command, which converts DOT into a JSON
// snapshot of visual graphs.
func (c *CLI) importCommand() *cobra.Command {
	var (
		output string
		flags  readFlags
	)

	cmd := &cobra.Command{
		Use:   "import <file.dot>",
		Short: "Import a DOT file into a JSON snapshot of visual graphs",
		Long: `Import reads every graph of a DOT file into the visual model: style
defaults per element kind, per-element overrides and unmapped attributes.
The result is written as JSON to the output file or stdout.

Imports without warnings are cached; use --no-cache to bypass the cache.`,
		Example: `  dotstyle import graph.dot -o graph.json
  dotstyle import graph.dot --color-scheme svg | jq '.graphs[0].nodes'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rd, err := c.reader(cmd, flags)
			if err != nil {
				return err
			}
			return c.runImport(cmd.Context(), args[0], rd, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output JSON file (default: stdout)")
	flags.register(cmd)

	return cmd
}

func (c *CLI) runImport(ctx context.Context, path string, rd *dot.Reader, output string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	src, err := readSource(path)
	if err != nil {
		return err
	}

	store, err := c.newCache()
	if err != nil {
		return err
	}
	defer store.Close()

	ttl, err := c.cfg.Render.TTL()
	if err != nil {
		return err
	}
	key := c.keyer().GraphKey(cache.Hash(src), cache.GraphKeyOpts{ColorScheme: rd.Resolver.Scheme})

	var graphs []*visual.Graph
	data, cached, err := store.Get(ctx, key)
	if err != nil {
		logger.Debug("cache read failed", "key", key, "err", err)
		cached = false
	}
	if cached {
		if graphs, err = io.ReadJSON(bytes.NewReader(data)); err != nil {
			logger.Debug("discarding cache entry", "key", key, "err", err)
			cached = false
		}
	}

	if !cached {
		var report *dot.Report
		graphs, report, err = io.ReadDOT(ctx, rd, bytes.NewReader(src))
		if err != nil {
			return err
		}
		logReport(logger, report)

		var buf bytes.Buffer
		if err := io.WriteJSON(graphs, &buf); err != nil {
			return err
		}
		data = buf.Bytes()

		// Imports with warnings are re-read every time so the warnings are
		// reported again.
		if report.Empty() {
			if err := store.Set(ctx, key, data, ttl); err != nil {
				logger.Debug("cache write failed", "key", key, "err", err)
			}
		}
	}

	if err := c.writeOutput(output, data); err != nil {
		return err
	}
	nodes, edges := countElements(graphs)
	printStats(len(graphs), nodes, edges, cached)
	prog.done(fmt.Sprintf("Imported %s", plural(len(graphs), "graph")))
	return nil
}
