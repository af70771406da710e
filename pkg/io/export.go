package io

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// WriteJSON encodes graphs as a JSON snapshot and writes it to w.
// The snapshot holds the style defaults, overrides and unmapped attributes
// of every graph and can be re-imported with [ReadJSON].
func WriteJSON(graphs []*visual.Graph, w io.Writer) error {
	doc := document{Graphs: make([]graph, len(graphs))}
	for i, g := range graphs {
		out, err := encodeGraph(g)
		if err != nil {
			return fmt.Errorf("graph %q: %w", g.Name, err)
		}
		doc.Graphs[i] = out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes graphs to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(graphs []*visual.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(graphs, f)
}

// ExportDOT writes g as DOT to a file at path using w. The file is only
// created when the graph could be written.
func ExportDOT(ctx context.Context, w *dot.Writer, g *visual.Graph, path string) (*dot.Report, error) {
	var buf bytes.Buffer
	report, err := w.Write(ctx, &buf, g)
	if err != nil {
		return report, err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return report, errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return report, nil
}

func encodeGraph(g *visual.Graph) (graph, error) {
	out := graph{
		Name:     g.Name,
		Defaults: make(map[string]values, len(visual.Kinds)),
		Unmapped: make(map[string]map[string]string),
		Nodes:    make([]node, g.NodeCount()),
		Edges:    make([]edge, g.EdgeCount()),
	}
	for _, k := range visual.Kinds {
		vals, err := encodeValues(g.Defaults[k])
		if err != nil {
			return out, fmt.Errorf("%s defaults: %w", k, err)
		}
		out.Defaults[k.String()] = vals
		if len(g.Unmapped[k]) > 0 {
			out.Unmapped[k.String()] = g.Unmapped[k]
		}
	}
	network, err := encodeValues(g.Network)
	if err != nil {
		return out, fmt.Errorf("network: %w", err)
	}
	out.Network = network

	for i, n := range g.Nodes() {
		vals, err := encodeValues(n.Overrides)
		if err != nil {
			return out, fmt.Errorf("node %s: %w", n.ID, err)
		}
		out.Nodes[i] = node{ID: n.ID, Overrides: vals, Unmapped: nonEmpty(n.Unmapped)}
	}
	for i, e := range g.Edges() {
		vals, err := encodeValues(e.Overrides)
		if err != nil {
			return out, fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, err)
		}
		out.Edges[i] = edge{
			Source:    e.Source,
			Target:    e.Target,
			Directed:  e.Directed,
			Weight:    e.Weight,
			Overrides: vals,
			Unmapped:  nonEmpty(e.Unmapped),
		}
	}
	return out, nil
}

func nonEmpty(m map[string]string) map[string]string {
	if len(m) == 0 {
		return nil
	}
	return m
}
