// Package parser reads DOT source into flat attribute trees.
//
// Tokenizing and grammar are delegated to
// [github.com/awalterschulze/gographviz]. This package walks the resulting
// syntax tree and applies the Graphviz scoping rules the visual importer
// needs:
//
//   - IDs and attribute values are unquoted
//   - node [...] and edge [...] statements are defaults for the elements
//     declared after them, scoped to the enclosing (sub)graph
//   - subgraphs are flattened: their nodes and edges join the graph, and a
//     subgraph used as an edge endpoint stands for all of its nodes
//   - edge chains (a -> b -> c) yield one edge per hop
//
// gographviz reads a single graph per call, so [Parse] first splits the
// source into top-level graph blocks.
package parser

import (
	"errors"
	"fmt"
	"maps"

	"github.com/awalterschulze/gographviz"
	"github.com/awalterschulze/gographviz/ast"

	"github.com/matzehuels/dotstyle/pkg/dot/ident"
)

// ErrSyntax is wrapped by every error returned for malformed DOT source.
var ErrSyntax = errors.New("invalid DOT syntax")

// Attrs is a raw attribute list with unquoted names and values.
type Attrs map[string]string

// Graph is one parsed graph or digraph block.
type Graph struct {
	ID       string
	Directed bool
	// Attrs holds the top-level graph attributes.
	Attrs Attrs
	// NodeDefaults and EdgeDefaults hold the top-level node [...] and
	// edge [...] statements merged in order.
	NodeDefaults Attrs
	EdgeDefaults Attrs
	Nodes        []*Node
	Edges        []*Edge
}

// Node is a node with its own attributes and the defaults in effect where
// it was first declared.
type Node struct {
	ID        string
	Attrs     Attrs
	Inherited Attrs
}

// Edge is one hop of an edge statement.
type Edge struct {
	Source    string
	Target    string
	Directed  bool
	Attrs     Attrs
	Inherited Attrs
}

// Parse parses every graph in src.
func Parse(src []byte) ([]*Graph, error) {
	chunks, err := split(string(src))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	graphs := make([]*Graph, 0, len(chunks))
	for i, chunk := range chunks {
		tree, err := gographviz.Parse([]byte(chunk))
		if err != nil {
			return nil, fmt.Errorf("%w: graph %d: %v", ErrSyntax, i+1, err)
		}
		graphs = append(graphs, build(tree))
	}
	return graphs, nil
}

// scope is the default attribute state of a (sub)graph body.
type scope struct {
	node Attrs
	edge Attrs
}

func (s scope) child() scope {
	return scope{node: maps.Clone(s.node), edge: maps.Clone(s.edge)}
}

type builder struct {
	g     *Graph
	nodes map[string]*Node
}

func build(tree *ast.Graph) *Graph {
	b := &builder{
		g: &Graph{
			ID:           ident.Unquote(tree.ID.String()),
			Directed:     tree.Type == ast.DIGRAPH,
			Attrs:        Attrs{},
			NodeDefaults: Attrs{},
			EdgeDefaults: Attrs{},
		},
		nodes: make(map[string]*Node),
	}
	top := scope{node: Attrs{}, edge: Attrs{}}
	b.stmts(tree.StmtList, top, true)
	maps.Copy(b.g.NodeDefaults, top.node)
	maps.Copy(b.g.EdgeDefaults, top.edge)
	return b.g
}

// stmts walks a statement list and returns the IDs of the nodes it
// mentions, in first-mention order.
func (b *builder) stmts(list ast.StmtList, sc scope, topLevel bool) []string {
	var members []string
	seen := make(map[string]bool)
	add := func(ids ...string) {
		for _, id := range ids {
			if !seen[id] {
				seen[id] = true
				members = append(members, id)
			}
		}
	}
	for _, stmt := range list {
		switch s := stmt.(type) {
		case *ast.NodeStmt:
			id := nodeID(s.NodeID)
			b.node(id, sc).merge(attrMap(s.Attrs))
			add(id)
		case *ast.EdgeStmt:
			add(b.edge(s, sc)...)
		case ast.NodeAttrs:
			maps.Copy(sc.node, attrMap(ast.AttrList(s)))
		case ast.EdgeAttrs:
			maps.Copy(sc.edge, attrMap(ast.AttrList(s)))
		case ast.GraphAttrs:
			if topLevel {
				maps.Copy(b.g.Attrs, attrMap(ast.AttrList(s)))
			}
		case *ast.Attr:
			if topLevel {
				b.g.Attrs[unquote(s.Field)] = unquote(s.Value)
			}
		case *ast.SubGraph:
			add(b.stmts(s.StmtList, sc.child(), false)...)
		}
	}
	return members
}

// node returns the node with id, declaring it with the current defaults on
// first mention.
func (b *builder) node(id string, sc scope) *Node {
	if n, ok := b.nodes[id]; ok {
		return n
	}
	n := &Node{ID: id, Attrs: Attrs{}, Inherited: maps.Clone(sc.node)}
	b.nodes[id] = n
	b.g.Nodes = append(b.g.Nodes, n)
	return n
}

func (n *Node) merge(attrs Attrs) {
	maps.Copy(n.Attrs, attrs)
}

func (b *builder) edge(s *ast.EdgeStmt, sc scope) []string {
	attrs := attrMap(s.Attrs)
	var members []string
	prev := b.endpoint(s.Source, sc)
	members = append(members, prev...)
	for _, rh := range s.EdgeRHS {
		next := b.endpoint(rh.Destination, sc)
		members = append(members, next...)
		for _, src := range prev {
			for _, dst := range next {
				b.g.Edges = append(b.g.Edges, &Edge{
					Source:    src,
					Target:    dst,
					Directed:  rh.Op == ast.DIRECTED,
					Attrs:     maps.Clone(attrs),
					Inherited: maps.Clone(sc.edge),
				})
			}
		}
		prev = next
	}
	return members
}

func (b *builder) endpoint(loc ast.Location, sc scope) []string {
	switch l := loc.(type) {
	case *ast.NodeID:
		id := nodeID(l)
		b.node(id, sc)
		return []string{id}
	case *ast.SubGraph:
		return b.stmts(l.StmtList, sc.child(), false)
	}
	return nil
}

func nodeID(n *ast.NodeID) string {
	return unquote(n.ID)
}

func attrMap(list ast.AttrList) Attrs {
	out := Attrs{}
	for _, alist := range list {
		for _, a := range alist {
			out[unquote(a.Field)] = unquote(a.Value)
		}
	}
	return out
}

func unquote(id ast.ID) string {
	return ident.Unquote(id.String())
}
