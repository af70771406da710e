package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// ReadJSON decodes a JSON snapshot from r into visual graphs.
//
// The input must be an object with a "graphs" array as written by
// [WriteJSON]. Property IDs are checked against the registry and every value
// must match its property's type.
//
// ReadJSON returns an error if:
//   - The JSON is malformed
//   - A property ID is unknown or used for the wrong element kind
//   - A node ID is duplicated or an edge references an unknown node
//
// Errors carry the INVALID_INPUT code and name the graph and element that
// caused them. ReadJSON does not close r.
func ReadJSON(r io.Reader) ([]*visual.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode")
	}

	graphs := make([]*visual.Graph, 0, len(doc.Graphs))
	for _, data := range doc.Graphs {
		g, err := decodeGraph(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "graph %q", data.Name)
		}
		graphs = append(graphs, g)
	}
	return graphs, nil
}

// ImportJSON reads a JSON snapshot file at path. A missing file yields a
// FILE_NOT_FOUND error.
func ImportJSON(path string) ([]*visual.Graph, error) {
	f, err := open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadJSON(f)
}

// ReadDOT reads all of r and imports it with rd.
func ReadDOT(ctx context.Context, rd *dot.Reader, r io.Reader) ([]*visual.Graph, *dot.Report, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, &dot.Report{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "read DOT")
	}
	return rd.Read(ctx, src)
}

// ImportDOT reads a DOT file at path and imports it with rd.
func ImportDOT(ctx context.Context, rd *dot.Reader, path string) ([]*visual.Graph, *dot.Report, error) {
	f, err := open(path)
	if err != nil {
		return nil, &dot.Report{}, err
	}
	defer f.Close()
	return ReadDOT(ctx, rd, f)
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	switch {
	case os.IsNotExist(err):
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	return f, nil
}

func decodeGraph(data graph) (*visual.Graph, error) {
	g := visual.New(data.Name)
	for name, vals := range data.Defaults {
		k, ok := kindFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown element kind %q", name)
		}
		decoded, err := decodeValues(k, vals)
		if err != nil {
			return nil, fmt.Errorf("%s defaults: %w", name, err)
		}
		g.Defaults[k] = decoded
	}
	for name, attrs := range data.Unmapped {
		k, ok := kindFromName(name)
		if !ok {
			return nil, fmt.Errorf("unknown element kind %q", name)
		}
		g.Unmapped[k] = attrs
	}
	network, err := decodeValues(visual.KindNetwork, data.Network)
	if err != nil {
		return nil, fmt.Errorf("network: %w", err)
	}
	g.Network = network

	for _, n := range data.Nodes {
		vals, err := decodeValues(visual.KindNode, n.Overrides)
		if err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
		if _, err := g.AddNode(visual.Node{ID: n.ID, Overrides: vals, Unmapped: n.Unmapped}); err != nil {
			return nil, fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	for _, e := range data.Edges {
		vals, err := decodeValues(visual.KindEdge, e.Overrides)
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, err)
		}
		_, err = g.AddEdge(visual.Edge{
			Source:    e.Source,
			Target:    e.Target,
			Directed:  e.Directed,
			Weight:    e.Weight,
			Overrides: vals,
			Unmapped:  e.Unmapped,
		})
		if err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.Source, e.Target, err)
		}
	}
	return g, nil
}
