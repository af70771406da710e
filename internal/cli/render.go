package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output        string   // output file path (or base path for multiple outputs)
	formats       []string // output formats: "svg", "png", "pdf", "dot"
	layout        string   // Graphviz layout engine
	scale         float64  // PNG resolution multiplier
	labelLocation string
	read          readFlags
}

// renderCommand creates the render command for generating images.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <file.dot|file.json>",
		Short: "Render a DOT file or JSON snapshot with Graphviz",
		Long: `Render lays out every graph of the input with Graphviz and writes one
file per graph and format. PNG and PDF output needs rsvg-convert.

The dot format writes the input annotated with the computed layout, which
import reads back as node positions and edge bend points.`,
		Example: `  dotstyle render graph.dot
  dotstyle render graph.json -f svg,png --scale 2 -o out/graph
  dotstyle render graph.dot --layout neato -f dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, or base name when writing several files")
	cmd.Flags().StringSliceVarP(&opts.formats, "format", "f", nil, "output formats: svg, png, pdf, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.layout, "layout", "", "layout engine: "+strings.Join(render.Layouts(), ", "))
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG resolution multiplier")
	cmd.Flags().StringVar(&opts.labelLocation, "label-location", "", "where node labels are placed: internal or external")
	opts.read.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	base := c.cfg.Render.Options()
	if cmd.Flags().Changed("layout") {
		base.Layout = opts.layout
	}
	if cmd.Flags().Changed("scale") {
		base.Scale = opts.scale
	}
	if err := render.ValidateLayout(base.Layout); err != nil {
		return err
	}
	formats := []string{base.Format}
	if cmd.Flags().Changed("format") {
		formats = normalizeFormats(opts.formats)
	}
	for _, f := range formats {
		if err := errors.ValidateFormat(f); err != nil {
			return err
		}
		if f == "json" {
			return errors.New(errors.ErrCodeInvalidFormat, "json is not a render format; use import")
		}
	}

	rd, err := c.reader(cmd, opts.read)
	if err != nil {
		return err
	}
	w, err := c.writer(cmd, opts.labelLocation)
	if err != nil {
		return err
	}

	graphs, report, err := loadGraphs(ctx, rd, input)
	if err != nil {
		return err
	}
	logReport(logger, report)

	store, err := c.newCache()
	if err != nil {
		return err
	}
	defer store.Close()
	ttl, err := c.cfg.Render.TTL()
	if err != nil {
		return err
	}
	r := render.Renderer{Cache: store, Keyer: c.keyer(), TTL: ttl}

	written := 0
	for i, g := range graphs {
		for j, format := range formats {
			o := base
			o.Format = format

			label := graphLabel(g.Name, i)
			spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s as %s...", label, format))
			spinner.Start()
			data, wr, err := r.RenderGraph(ctx, w, g, o)
			switch {
			case err != nil && spinner.Cancelled():
				spinner.Stop()
				return ctx.Err()
			case err != nil:
				spinner.StopWithError(fmt.Sprintf("Rendering %s as %s failed", label, format))
				return err
			}
			spinner.Stop()
			if j == 0 {
				logReport(logger, wr)
			}

			path := outputPath(input, opts.output, i, len(graphs), format, len(formats))
			if err := c.writeOutput(path, data); err != nil {
				return err
			}
			written++
		}
	}

	prog.done(fmt.Sprintf("Rendered %s", plural(written, "file")))
	return nil
}

// normalizeFormats lower-cases and de-duplicates format names.
func normalizeFormats(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range in {
		f = strings.ToLower(strings.TrimSpace(f))
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// outputPath returns the file for graph i in format. An explicit output is
// used verbatim when only one file is written; otherwise it serves as the
// base name, as does the input path without its extension. The input file
// itself is never returned.
func outputPath(input, output string, i, graphs int, format string, formats int) string {
	if output != "" && graphs == 1 && formats == 1 {
		return output
	}
	base := output
	if base == "" {
		base = input
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if graphs > 1 {
		base = fmt.Sprintf("%s-%d", base, i+1)
	}
	if path := base + "." + format; path != input {
		return path
	}
	return base + ".layout." + format
}

func graphLabel(name string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("graph %d", i+1)
}
