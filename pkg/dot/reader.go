package dot

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/dotstyle/pkg/dot/parser"
	"github.com/matzehuels/dotstyle/pkg/dot/resolve"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/observability"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// Edge dir values.
const (
	dirNone    = "none"
	dirForward = "forward"
	dirBack    = "back"
	dirBoth    = "both"
)

// Reader imports DOT source into visual graphs.
//
// The zero value resolves colors with the x11 scheme and processes elements
// sequentially.
type Reader struct {
	Resolver resolve.Resolver
	// Workers is the number of elements resolved in parallel. Values below
	// one mean sequential resolution.
	Workers int
}

// Read parses src and returns one visual graph per graph block.
//
// Invalid DOT syntax fails the whole read with an INVALID_DOT error and no
// graphs. A graph whose edges reference missing nodes is skipped and
// reported with a MODEL_INTEGRITY warning. The returned report is never nil.
func (r *Reader) Read(ctx context.Context, src []byte) (graphs []*visual.Graph, report *Report, err error) {
	report = &Report{}
	start := time.Now()
	hooks := observability.Codec()
	hooks.OnImportStart(ctx, len(src))
	defer func() {
		hooks.OnImportComplete(ctx, len(graphs), len(report.Warnings), time.Since(start), err)
	}()

	parsed, err := parser.Parse(src)
	if err != nil {
		return nil, report, errors.Wrap(errors.ErrCodeInvalidDOT, err, "parse DOT")
	}

	graphs, err = r.readAll(ctx, parsed, report)
	if err != nil {
		return nil, report, err
	}
	return graphs, report, nil
}

// readAll converts parsed graphs, skipping those that fail the integrity
// checks.
func (r *Reader) readAll(ctx context.Context, parsed []*parser.Graph, report *Report) ([]*visual.Graph, error) {
	var graphs []*visual.Graph
	for _, pg := range parsed {
		g, err := r.readGraph(ctx, pg, report)
		switch {
		case errors.Is(err, errors.ErrCodeModelIntegrity):
			report.add(Warning{
				Code:    errors.ErrCodeModelIntegrity,
				Element: graphElement(pg.ID),
				Message: errors.UserMessage(err),
			})
		case err != nil:
			return nil, err
		default:
			graphs = append(graphs, g)
		}
	}
	return graphs, nil
}

func (r *Reader) readGraph(ctx context.Context, pg *parser.Graph, report *Report) (*visual.Graph, error) {
	g := visual.New(pg.ID)

	// Defaults must be final before any element is compared against them.
	defaults := []parser.Attrs{pg.Attrs, pg.NodeDefaults, pg.EdgeDefaults}
	for i, kind := range visual.Kinds {
		res := r.Resolver.Defaults(kind, defaults[i])
		g.Defaults[kind] = res.Values
		g.Unmapped[kind] = res.Unmapped
		addIssues(report, defaultsElement(kind, pg.ID), res.Issues)
	}

	nodeResults := make([]resolve.Result, len(pg.Nodes))
	err := r.each(ctx, len(pg.Nodes), func(i int) {
		n := pg.Nodes[i]
		nodeResults[i] = r.Resolver.Element(visual.KindNode, g.Defaults[visual.KindNode], n.Inherited, n.Attrs)
	})
	if err != nil {
		return nil, err
	}
	edgeResults := make([]resolve.Result, len(pg.Edges))
	err = r.each(ctx, len(pg.Edges), func(i int) {
		e := pg.Edges[i]
		edgeResults[i] = r.Resolver.Element(visual.KindEdge, g.Defaults[visual.KindEdge], e.Inherited, e.Attrs)
	})
	if err != nil {
		return nil, err
	}

	for i, n := range pg.Nodes {
		res := nodeResults[i]
		addIssues(report, nodeElement(n.ID), res.Issues)
		if _, err := g.AddNode(visual.Node{ID: n.ID, Overrides: res.Values, Unmapped: res.Unmapped}); err != nil {
			return nil, errors.Wrap(errors.ErrCodeModelIntegrity, err, "node %q", n.ID)
		}
	}
	for i, e := range pg.Edges {
		res := edgeResults[i]
		name := edgeElement(e.Source, e.Target)
		addIssues(report, name, res.Issues)
		directed := e.Directed
		switch res.Dir {
		case "":
		case dirNone:
			directed = false
		case dirForward, dirBack, dirBoth:
			directed = true
		default:
			report.add(Warning{
				Code:      errors.ErrCodeMalformedValue,
				Element:   name,
				Attribute: "dir",
				Message:   fmt.Sprintf("unknown direction %q", res.Dir),
			})
		}
		_, err := g.AddEdge(visual.Edge{
			Source:    e.Source,
			Target:    e.Target,
			Directed:  directed,
			Weight:    res.Weight,
			Overrides: res.Values,
			Unmapped:  res.Unmapped,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeModelIntegrity, err, "%s", name)
		}
	}
	return g, nil
}

// each calls fn for every index in [0, n), using up to Workers goroutines.
// It stops early when ctx is cancelled.
func (r *Reader) each(ctx context.Context, n int, fn func(i int)) error {
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(1, r.Workers))
	for i := range n {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			fn(i)
			return nil
		})
	}
	return eg.Wait()
}

func addIssues(report *Report, element string, issues []resolve.Issue) {
	for _, is := range issues {
		report.add(Warning{
			Code:      errors.ErrCodeMalformedValue,
			Element:   element,
			Attribute: is.Attribute,
			Message:   is.Err.Error(),
		})
	}
}

func graphElement(id string) string {
	if id == "" {
		return "graph"
	}
	return fmt.Sprintf("graph %q", id)
}

func defaultsElement(kind visual.Kind, graphID string) string {
	if kind == visual.KindNetwork {
		return graphElement(graphID)
	}
	return fmt.Sprintf("%s defaults", kind)
}

func nodeElement(id string) string {
	return fmt.Sprintf("node %q", id)
}

func edgeElement(src, dst string) string {
	return fmt.Sprintf("edge %q -> %q", src, dst)
}
