package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotstyle/pkg/dot"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/io"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// =============================================================================
// Reader and Writer Flags
// =============================================================================

// readFlags holds the DOT import flags shared by several commands.
type readFlags struct {
	colorScheme string
	workers     int
}

func (f *readFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.colorScheme, "color-scheme", "", "scheme for unqualified color names: x11 or svg")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "number of elements resolved in parallel")
}

// reader builds a DOT reader from the config, overridden by any flag the
// user set.
func (c *CLI) reader(cmd *cobra.Command, f readFlags) (*dot.Reader, error) {
	cfg := c.cfg
	if cmd.Flags().Changed("color-scheme") {
		cfg.Read.ColorScheme = f.colorScheme
	}
	if cmd.Flags().Changed("workers") {
		cfg.Read.Workers = f.workers
	}
	if err := errors.ValidateColorScheme(cfg.Read.ColorScheme, dotcolor.Default.Names()); err != nil {
		return nil, err
	}
	if err := errors.ValidateWorkers(cfg.Read.Workers); err != nil {
		return nil, err
	}
	return cfg.Reader(), nil
}

// writer builds a DOT writer from the config and the --label-location flag.
func (c *CLI) writer(cmd *cobra.Command, labelLocation string) (*dot.Writer, error) {
	cfg := c.cfg
	if cmd.Flags().Changed("label-location") {
		cfg.Write.LabelLocation = labelLocation
	}
	if err := errors.ValidateLabelLocation(cfg.Write.LabelLocation); err != nil {
		return nil, err
	}
	return cfg.Writer(), nil
}

// =============================================================================
// Files
// =============================================================================

// readSource reads an input file.
func readSource(path string) ([]byte, error) {
	if err := errors.ValidatePath(path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	return data, nil
}

// writeOutput writes data to path, or to c.Stdout when path is empty.
func (c *CLI) writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := c.Stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printFile(path)
	return nil
}

func isJSON(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".json")
}

// loadGraphs reads DOT, or a JSON snapshot when path ends in .json.
func loadGraphs(ctx context.Context, rd *dot.Reader, path string) ([]*visual.Graph, *dot.Report, error) {
	if isJSON(path) {
		graphs, err := io.ImportJSON(path)
		return graphs, &dot.Report{}, err
	}
	return io.ImportDOT(ctx, rd, path)
}

// writeDOT serializes graphs one after another into a single document and
// merges their reports.
func writeDOT(ctx context.Context, w *dot.Writer, graphs []*visual.Graph) ([]byte, *dot.Report, error) {
	var buf bytes.Buffer
	report := &dot.Report{}
	for _, g := range graphs {
		r, err := w.Write(ctx, &buf, g)
		if err != nil {
			return nil, nil, err
		}
		report.Warnings = append(report.Warnings, r.Warnings...)
	}
	return buf.Bytes(), report, nil
}

func countElements(graphs []*visual.Graph) (nodes, edges int) {
	for _, g := range graphs {
		nodes += g.NodeCount()
		edges += g.EdgeCount()
	}
	return nodes, edges
}
