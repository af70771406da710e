package parser

import (
	"errors"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestParseScoping(t *testing.T) {
	src := `digraph "G" {
		bgcolor="#FF0000FF"
		node [shape=box]
		a [label="A \"quoted\""]
		node [color=red]
		b
		subgraph cluster_x {
			node [fillcolor=blue]
			c
		}
		d
		a -> b -> c [color=green]
	}`
	graphs, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(graphs) != 1 {
		t.Fatalf("got %d graphs, want 1", len(graphs))
	}
	g := graphs[0]
	if g.ID != "G" || !g.Directed {
		t.Errorf("header = %q directed=%v", g.ID, g.Directed)
	}
	if g.Attrs["bgcolor"] != "#FF0000FF" {
		t.Errorf("graph attrs = %v", g.Attrs)
	}

	want := []*Node{
		{ID: "a", Attrs: Attrs{"label": `A "quoted"`}, Inherited: Attrs{"shape": "box"}},
		{ID: "b", Attrs: Attrs{}, Inherited: Attrs{"shape": "box", "color": "red"}},
		{ID: "c", Attrs: Attrs{}, Inherited: Attrs{"shape": "box", "color": "red", "fillcolor": "blue"}},
		{ID: "d", Attrs: Attrs{}, Inherited: Attrs{"shape": "box", "color": "red"}},
	}
	if diff := pretty.Compare(g.Nodes, want); diff != "" {
		t.Errorf("nodes (-got +want):\n%s", diff)
	}
	if diff := pretty.Compare(g.NodeDefaults, Attrs{"shape": "box", "color": "red"}); diff != "" {
		t.Errorf("node defaults (-got +want):\n%s", diff)
	}

	if len(g.Edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(g.Edges))
	}
	for _, e := range g.Edges {
		if !e.Directed || e.Attrs["color"] != "green" {
			t.Errorf("edge %s->%s = %+v", e.Source, e.Target, e)
		}
	}
	if g.Edges[1].Source != "b" || g.Edges[1].Target != "c" {
		t.Errorf("second hop = %s->%s", g.Edges[1].Source, g.Edges[1].Target)
	}
}

func TestParseSubgraphEndpoint(t *testing.T) {
	graphs, err := Parse([]byte(`graph { x -- {y z} }`))
	if err != nil {
		t.Fatal(err)
	}
	g := graphs[0]
	if g.Directed {
		t.Error("graph parsed as directed")
	}
	var got [][2]string
	for _, e := range g.Edges {
		if e.Directed {
			t.Errorf("edge %s--%s directed", e.Source, e.Target)
		}
		got = append(got, [2]string{e.Source, e.Target})
	}
	want := [][2]string{{"x", "y"}, {"x", "z"}}
	if diff := pretty.Compare(got, want); diff != "" {
		t.Errorf("edges (-got +want):\n%s", diff)
	}
}

func TestParseAttrStatements(t *testing.T) {
	src := `strict digraph {
		graph [bgcolor=red, rankdir=LR]
		edge [color=blue]
		subgraph s { graph [label=inner]; edge [style=dashed]; x -> y }
		a -> b
	}`
	graphs, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	g := graphs[0]
	if diff := pretty.Compare(g.Attrs, Attrs{"bgcolor": "red", "rankdir": "LR"}); diff != "" {
		t.Errorf("graph attrs (-got +want):\n%s", diff)
	}
	if diff := pretty.Compare(g.EdgeDefaults, Attrs{"color": "blue"}); diff != "" {
		t.Errorf("edge defaults (-got +want):\n%s", diff)
	}
	want := []Attrs{
		{"color": "blue", "style": "dashed"},
		{"color": "blue"},
	}
	if len(g.Edges) != len(want) {
		t.Fatalf("got %d edges, want %d", len(g.Edges), len(want))
	}
	for i, e := range g.Edges {
		if diff := pretty.Compare(e.Inherited, want[i]); diff != "" {
			t.Errorf("edge %s->%s inherited (-got +want):\n%s", e.Source, e.Target, diff)
		}
	}
}

func TestParseMultipleGraphs(t *testing.T) {
	src := `// first
digraph one { a -> b }
# 1 "preprocessed"
/* second } */
graph two { label="}" c }
`
	graphs, err := Parse([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(graphs) != 2 {
		t.Fatalf("got %d graphs, want 2", len(graphs))
	}
	if graphs[0].ID != "one" || graphs[1].ID != "two" {
		t.Errorf("ids = %q, %q", graphs[0].ID, graphs[1].ID)
	}
	if graphs[1].Attrs["label"] != "}" {
		t.Errorf("label = %q", graphs[1].Attrs["label"])
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"Unbalanced", `digraph { a -> b`},
		{"ExtraBrace", `digraph { a } }`},
		{"Trailing", `digraph { a } junk`},
		{"Unterminated", `digraph { a [label="x] }`},
		{"Grammar", `digraph { a -> -> b }`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.src))
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse() error = %v, want ErrSyntax", err)
			}
		})
	}
}

func TestParseEmpty(t *testing.T) {
	graphs, err := Parse([]byte("  // nothing\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(graphs) != 0 {
		t.Errorf("got %d graphs", len(graphs))
	}
}
