package visual

import (
	"errors"
	"fmt"
	"maps"
)

var (
	// ErrInvalidNodeID is returned by [Graph.AddNode] when the node ID is
	// empty.
	ErrInvalidNodeID = errors.New("node ID must not be empty")

	// ErrDuplicateNodeID is returned by [Graph.AddNode] when a node with the
	// same ID already exists in the graph.
	ErrDuplicateNodeID = errors.New("duplicate node ID")

	// ErrUnknownNode is returned by [Graph.AddEdge] and [Graph.Validate] when
	// an edge references a node that is not part of the graph.
	ErrUnknownNode = errors.New("unknown node")

	// ErrWrongKind is returned by [Values.Set] when a property of another
	// element kind is assigned.
	ErrWrongKind = errors.New("property belongs to another element kind")

	// ErrWrongType is returned by [Values.Set] when the value does not have
	// the Go type required by the property.
	ErrWrongType = errors.New("value type does not match property")
)

// Values maps visual properties to their values. A Values map is restricted
// to the properties of one [Kind]; use [Values.Set] to enforce this.
type Values map[Property]any

// Set stores val under p after checking the property kind and value type.
func (v Values) Set(kind Kind, p Property, val any) error {
	if p.Kind != kind {
		return fmt.Errorf("%s on %s: %w", p, kind, ErrWrongKind)
	}
	if !p.Type.Accepts(val) {
		return fmt.Errorf("%s = %T: %w", p, val, ErrWrongType)
	}
	v[p] = val
	return nil
}

// Clone returns a shallow copy. A nil map clones to an empty one.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	maps.Copy(out, v)
	return out
}

// Equal reports whether both maps hold the same properties with values
// that compare equal under [Equal].
func (v Values) Equal(o Values) bool {
	if len(v) != len(o) {
		return false
	}
	for p, a := range v {
		b, ok := o[p]
		if !ok || !Equal(a, b) {
			return false
		}
	}
	return true
}

// Get returns the value of p converted to T. The second result is false when
// the property is unset or holds another type.
func Get[T any](v Values, p Property) (T, bool) {
	val, ok := v[p].(T)
	return val, ok
}

// StyleDefaults holds the style-wide value set of each element kind.
type StyleDefaults map[Kind]Values

// For returns the defaults of kind, creating an empty set on first use.
func (s StyleDefaults) For(kind Kind) Values {
	vals, ok := s[kind]
	if !ok {
		vals = Values{}
		s[kind] = vals
	}
	return vals
}

// Equal reports whether both default sets match kind by kind.
func (s StyleDefaults) Equal(o StyleDefaults) bool {
	for _, k := range Kinds {
		if !s[k].Equal(o[k]) {
			return false
		}
	}
	return true
}

// Node is a vertex of a visual graph. Overrides holds the bypass values that
// differ from the node defaults; Unmapped keeps DOT attributes without a
// visual property.
type Node struct {
	ID        string
	Overrides Values
	Unmapped  map[string]string
}

// Edge connects two nodes of the same graph. Weight is set only when the
// source file carried an explicit edge weight.
type Edge struct {
	Source    string
	Target    string
	Directed  bool
	Weight    *float64
	Overrides Values
	Unmapped  map[string]string
}

// Graph is a visual graph: one network, ordered nodes and ordered edges,
// plus the style defaults applying to each element kind.
//
// The zero value is not usable; create graphs with [New].
type Graph struct {
	Name     string
	Defaults StyleDefaults
	// Network holds the network bypass values.
	Network Values
	// Unmapped keeps attributes without a visual property: graph attributes
	// under KindNetwork and node/edge default statements under KindNode and
	// KindEdge.
	Unmapped map[Kind]map[string]string

	nodes []*Node
	index map[string]*Node
	edges []*Edge
}

// New creates an empty graph named name with empty defaults.
func New(name string) *Graph {
	return &Graph{
		Name:     name,
		Defaults: StyleDefaults{KindNetwork: {}, KindNode: {}, KindEdge: {}},
		Network:  Values{},
		Unmapped: map[Kind]map[string]string{KindNetwork: {}, KindNode: {}, KindEdge: {}},
		index:    make(map[string]*Node),
	}
}

// AddNode appends a node and returns it. Overrides and Unmapped are
// initialized when nil.
func (g *Graph) AddNode(n Node) (*Node, error) {
	if n.ID == "" {
		return nil, ErrInvalidNodeID
	}
	if _, exists := g.index[n.ID]; exists {
		return nil, fmt.Errorf("%q: %w", n.ID, ErrDuplicateNodeID)
	}
	if n.Overrides == nil {
		n.Overrides = Values{}
	}
	if n.Unmapped == nil {
		n.Unmapped = map[string]string{}
	}
	node := &n
	g.nodes = append(g.nodes, node)
	g.index[node.ID] = node
	return node, nil
}

// AddEdge appends an edge between two existing nodes. Parallel edges and
// self-loops are allowed.
func (g *Graph) AddEdge(e Edge) (*Edge, error) {
	if _, ok := g.index[e.Source]; !ok {
		return nil, fmt.Errorf("edge source %q: %w", e.Source, ErrUnknownNode)
	}
	if _, ok := g.index[e.Target]; !ok {
		return nil, fmt.Errorf("edge target %q: %w", e.Target, ErrUnknownNode)
	}
	if e.Overrides == nil {
		e.Overrides = Values{}
	}
	if e.Unmapped == nil {
		e.Unmapped = map[string]string{}
	}
	edge := &e
	g.edges = append(g.edges, edge)
	return edge, nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.index[id]
	return n, ok
}

// Nodes returns the nodes in insertion order. The slice must not be
// modified.
func (g *Graph) Nodes() []*Node { return g.nodes }

// Edges returns the edges in insertion order. The slice must not be
// modified.
func (g *Graph) Edges() []*Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Directed reports whether any edge of the graph is directed. A graph with
// no edges is undirected.
func (g *Graph) Directed() bool {
	for _, e := range g.edges {
		if e.Directed {
			return true
		}
	}
	return false
}

// NodeValue returns the effective value of p for n: the override when
// present, the node default otherwise.
func (g *Graph) NodeValue(n *Node, p Property) (any, bool) {
	return g.effective(KindNode, n.Overrides, p)
}

// EdgeValue returns the effective value of p for e.
func (g *Graph) EdgeValue(e *Edge, p Property) (any, bool) {
	return g.effective(KindEdge, e.Overrides, p)
}

// NetworkValue returns the effective network value of p.
func (g *Graph) NetworkValue(p Property) (any, bool) {
	return g.effective(KindNetwork, g.Network, p)
}

func (g *Graph) effective(kind Kind, overrides Values, p Property) (any, bool) {
	if v, ok := overrides[p]; ok {
		return v, true
	}
	v, ok := g.Defaults[kind][p]
	return v, ok
}

// Validate checks that every edge references nodes of this graph and that
// every stored value matches its property's kind and type. Graphs built
// through [Graph.AddNode] and [Graph.AddEdge] only fail the value checks.
func (g *Graph) Validate() error {
	for _, e := range g.edges {
		if _, ok := g.index[e.Source]; !ok {
			return fmt.Errorf("edge %s -> %s: %w", e.Source, e.Target, ErrUnknownNode)
		}
		if _, ok := g.index[e.Target]; !ok {
			return fmt.Errorf("edge %s -> %s: %w", e.Source, e.Target, ErrUnknownNode)
		}
		if err := checkValues(KindEdge, e.Overrides); err != nil {
			return fmt.Errorf("edge %s -> %s: %w", e.Source, e.Target, err)
		}
	}
	for _, n := range g.nodes {
		if err := checkValues(KindNode, n.Overrides); err != nil {
			return fmt.Errorf("node %s: %w", n.ID, err)
		}
	}
	if err := checkValues(KindNetwork, g.Network); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	for _, k := range Kinds {
		if err := checkValues(k, g.Defaults[k]); err != nil {
			return fmt.Errorf("%s defaults: %w", k, err)
		}
	}
	return nil
}

func checkValues(kind Kind, vals Values) error {
	for p, v := range vals {
		if err := (Values{}).Set(kind, p, v); err != nil {
			return err
		}
	}
	return nil
}
