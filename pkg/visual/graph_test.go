package visual

import (
	"errors"
	"image/color"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New("G")
	if _, err := g.AddNode(Node{ID: "a"}); err != nil {
		t.Fatalf("AddNode(a) error: %v", err)
	}
	if _, err := g.AddNode(Node{ID: "a"}); !errors.Is(err, ErrDuplicateNodeID) {
		t.Errorf("AddNode(a) again = %v, want ErrDuplicateNodeID", err)
	}
	if _, err := g.AddNode(Node{}); !errors.Is(err, ErrInvalidNodeID) {
		t.Errorf("AddNode(\"\") = %v, want ErrInvalidNodeID", err)
	}
	n, ok := g.Node("a")
	if !ok {
		t.Fatal("Node(a) not found")
	}
	if n.Overrides == nil || n.Unmapped == nil {
		t.Error("AddNode did not initialize maps")
	}
}

func TestAddEdge(t *testing.T) {
	g := New("G")
	g.AddNode(Node{ID: "a"})
	g.AddNode(Node{ID: "b"})

	tests := []struct {
		name    string
		edge    Edge
		wantErr error
	}{
		{"valid", Edge{Source: "a", Target: "b", Directed: true}, nil},
		{"self loop", Edge{Source: "a", Target: "a"}, nil},
		{"unknown source", Edge{Source: "x", Target: "b"}, ErrUnknownNode},
		{"unknown target", Edge{Source: "a", Target: "y"}, ErrUnknownNode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := g.AddEdge(tt.edge)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddEdge() = %v, want %v", err, tt.wantErr)
			}
		})
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount() = %d, want 2", got)
	}
}

func TestDirected(t *testing.T) {
	g := New("G")
	g.AddNode(Node{ID: "a"})
	g.AddNode(Node{ID: "b"})
	if g.Directed() {
		t.Error("empty graph reported directed")
	}
	g.AddEdge(Edge{Source: "a", Target: "b"})
	if g.Directed() {
		t.Error("undirected edges reported directed")
	}
	g.AddEdge(Edge{Source: "b", Target: "a", Directed: true})
	if !g.Directed() {
		t.Error("graph with a directed edge reported undirected")
	}
}

func TestValuesSet(t *testing.T) {
	v := Values{}
	if err := v.Set(KindNode, NodeLabel, "x"); err != nil {
		t.Fatalf("Set(label) error: %v", err)
	}
	if err := v.Set(KindNode, NodeLabel, 3); !errors.Is(err, ErrWrongType) {
		t.Errorf("Set(label, int) = %v, want ErrWrongType", err)
	}
	if err := v.Set(KindNode, EdgeLabel, "x"); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Set(edge label) = %v, want ErrWrongKind", err)
	}
	if got, ok := Get[string](v, NodeLabel); !ok || got != "x" {
		t.Errorf("Get(label) = %q, %v", got, ok)
	}
	if _, ok := Get[int](v, NodeLabel); ok {
		t.Error("Get[int](label) succeeded")
	}
}

func TestEffectiveValue(t *testing.T) {
	g := New("G")
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}
	g.Defaults.For(KindNode)[NodeFillColor] = red
	a, _ := g.AddNode(Node{ID: "a"})
	b, _ := g.AddNode(Node{ID: "b", Overrides: Values{NodeFillColor: blue}})

	if v, _ := g.NodeValue(a, NodeFillColor); v != red {
		t.Errorf("a fill = %v, want default %v", v, red)
	}
	if v, _ := g.NodeValue(b, NodeFillColor); v != blue {
		t.Errorf("b fill = %v, want override %v", v, blue)
	}
	if _, ok := g.NodeValue(a, NodeLabel); ok {
		t.Error("unset label reported present")
	}
}

func TestValidate(t *testing.T) {
	g := New("G")
	g.AddNode(Node{ID: "a"})
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	g.edges = append(g.edges, &Edge{Source: "a", Target: "ghost"})
	if err := g.Validate(); !errors.Is(err, ErrUnknownNode) {
		t.Errorf("Validate() = %v, want ErrUnknownNode", err)
	}
	g.edges = nil

	g.Network[NodeLabel] = "wrong kind"
	if err := g.Validate(); !errors.Is(err, ErrWrongKind) {
		t.Errorf("Validate() = %v, want ErrWrongKind", err)
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b any
		want bool
	}{
		{"float tolerance", 72.0, 72.00000000001, true},
		{"float differs", 72.0, 72.1, false},
		{"string", "a", "a", true},
		{"mixed types", 1, 1.0, false},
		{"points", []Point{{1, 2}}, []Point{{1, 2}}, true},
		{"points length", []Point{{1, 2}}, []Point{}, false},
		{
			"gradient",
			Gradient{Kind: RadialGradient, Stops: []Stop{{Weight: 0.3}, {Weight: 0.7}}, Center: Point{0.5, 0}},
			Gradient{Kind: RadialGradient, Stops: []Stop{{Weight: 0.3}, {Weight: 0.7000000000001}}, Center: Point{0.5, 0}},
			true,
		},
		{
			"gradient kind",
			Gradient{Kind: RadialGradient},
			Gradient{Kind: LinearGradient},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPropertiesRegistry(t *testing.T) {
	for _, k := range Kinds {
		props := Properties(k)
		if len(props) == 0 {
			t.Errorf("no properties for %s", k)
		}
		for _, p := range props {
			if p.Kind != k {
				t.Errorf("%s listed under %s", p, k)
			}
			if got, ok := Lookup(p.ID); !ok || got != p {
				t.Errorf("Lookup(%s) = %v, %v", p.ID, got, ok)
			}
		}
	}
	if _, ok := Lookup("NOPE"); ok {
		t.Error("Lookup(NOPE) succeeded")
	}
}
