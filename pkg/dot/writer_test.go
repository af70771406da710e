package dot

import (
	"bytes"
	"context"
	"image/color"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"

	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

func write(t *testing.T, w *Writer, g *visual.Graph) (string, *Report) {
	t.Helper()
	var buf bytes.Buffer
	report, err := w.Write(context.Background(), &buf, g)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	return buf.String(), report
}

func mustNode(t *testing.T, g *visual.Graph, n visual.Node) *visual.Node {
	t.Helper()
	node, err := g.AddNode(n)
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func mustEdge(t *testing.T, g *visual.Graph, e visual.Edge) *visual.Edge {
	t.Helper()
	edge, err := g.AddEdge(e)
	if err != nil {
		t.Fatal(err)
	}
	return edge
}

func TestWriteScenario(t *testing.T) {
	var r Reader
	g, _ := readOne(t, &r, scenario)
	var w Writer
	got, report := write(t, &w, g)

	want := `digraph G {
  bgcolor="#FF0000FF";
  splines=true;
  outputorder=edgesfirst;
  esep=0;
  pad=2;
  node [fillcolor="#D3D3D3FF", style=filled];

  a [label=X, shape=diamond];
  b;

  a -> b [color="#00FF00FF"];
}
`
	if diff := pretty.Compare(strings.Split(got, "\n"), strings.Split(want, "\n")); diff != "" {
		t.Errorf("Write() (-got +want):\n%s", diff)
	}
	if !report.Empty() {
		t.Errorf("warnings: %v", report.Warnings)
	}
}

func TestWriteBypassCompaction(t *testing.T) {
	g := visual.New("compact")
	g.Defaults.For(visual.KindNode)[visual.NodeFillColor] = color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 255}
	mustNode(t, g, visual.Node{ID: "same", Overrides: visual.Values{
		visual.NodeFillColor: color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 255},
	}})
	mustNode(t, g, visual.Node{ID: "other", Overrides: visual.Values{
		visual.NodeFillColor: color.NRGBA{R: 0xAA, A: 255},
	}})

	var w Writer
	got, _ := write(t, &w, g)
	if !strings.Contains(got, "\n  same;\n") {
		t.Errorf("node equal to defaults written with attributes:\n%s", got)
	}
	if !strings.Contains(got, `other [fillcolor="#AA0000FF"];`) {
		t.Errorf("differing fill missing:\n%s", got)
	}
	if !strings.Contains(got, `node [fillcolor="#112233FF", style=filled];`) {
		t.Errorf("node defaults missing:\n%s", got)
	}
}

func TestWriteTransparency(t *testing.T) {
	g := visual.New("alpha")
	mustNode(t, g, visual.Node{ID: "a", Overrides: visual.Values{
		visual.NodeTransparency:       128,
		visual.NodeBorderColor:        color.NRGBA{R: 255, A: 255},
		visual.NodeBorderTransparency: 0,
	}})
	var w Writer
	got, _ := write(t, &w, g)
	if !strings.Contains(got, `a [fillcolor="#D3D3D380", color="#FF000000"];`) {
		t.Errorf("transparency not folded into colors:\n%s", got)
	}
}

func TestWriteLabelLocation(t *testing.T) {
	g := visual.New("labels")
	mustNode(t, g, visual.Node{ID: "a", Overrides: visual.Values{visual.NodeLabel: "outside"}})

	tests := []struct {
		loc  LabelLocation
		want string
	}{
		{LabelInternal, `a [label=outside];`},
		{LabelExternal, `a [label="", xlabel=outside];`},
	}
	for _, tt := range tests {
		t.Run(string(tt.loc), func(t *testing.T) {
			w := Writer{LabelLocation: tt.loc}
			got, _ := write(t, &w, g)
			if !strings.Contains(got, tt.want) {
				t.Errorf("missing %s in:\n%s", tt.want, got)
			}
		})
	}
}

func TestWriteIdentifiers(t *testing.T) {
	g := visual.New("my graph")
	mustNode(t, g, visual.Node{ID: "two words"})
	mustNode(t, g, visual.Node{ID: "plain"})
	mustNode(t, g, visual.Node{ID: `"plain"`})
	mustEdge(t, g, visual.Edge{Source: "two words", Target: "plain"})

	var w Writer
	got, report := write(t, &w, g)
	for _, want := range []string{
		`graph "my graph" {`,
		`  "two words";`,
		`  plain;`,
		`  plain_1;`,
		`  "two words" -- plain;`,
	} {
		if !strings.Contains(got, want+"\n") {
			t.Errorf("missing %q in:\n%s", want, got)
		}
	}
	if n := report.Count(errors.ErrCodeIdentifierModified); n != 3 {
		t.Errorf("modified identifiers = %d, want 3: %v", n, report.Warnings)
	}
	summary := report.Summary()
	if len(summary) != 1 || summary[0] != "3 names were modified to satisfy DOT syntax" {
		t.Errorf("Summary() = %v", summary)
	}
}

func TestWriteTextValues(t *testing.T) {
	labels := []struct {
		id, label, want string
	}{
		{"quoted", `"hi"`, `quoted [label="\"hi\""];`},
		{"speech", `say "hi"`, `speech [label="say \"hi\""];`},
		{"html", `<<b>bold</b>>`, `html [label=<<b>bold</b>>];`},
		{"keyword", "node", `keyword [label="node"];`},
	}
	g := visual.New("text")
	for _, l := range labels {
		mustNode(t, g, visual.Node{ID: l.id, Overrides: visual.Values{visual.NodeLabel: l.label}})
	}

	back, text := roundTrip(t, g)
	for i, l := range labels {
		if !strings.Contains(text, l.want+"\n") {
			t.Errorf("missing %s in:\n%s", l.want, text)
		}
		if got := back.Nodes()[i].Overrides[visual.NodeLabel]; got != l.label {
			t.Errorf("label of %s read back as %q, want %q", l.id, got, l.label)
		}
	}
}

func TestWriteMixedDirection(t *testing.T) {
	g := visual.New("mixed")
	mustNode(t, g, visual.Node{ID: "a"})
	mustNode(t, g, visual.Node{ID: "b"})
	mustEdge(t, g, visual.Edge{Source: "a", Target: "b", Directed: true})
	mustEdge(t, g, visual.Edge{Source: "b", Target: "a"})

	var w Writer
	got, _ := write(t, &w, g)
	if !strings.HasPrefix(got, "digraph mixed {") {
		t.Errorf("mixed graph not written as digraph:\n%s", got)
	}
	if !strings.Contains(got, "  b -> a [dir=none];\n") {
		t.Errorf("undirected edge lacks dir=none:\n%s", got)
	}
}

func TestWriteStyleTokens(t *testing.T) {
	g := visual.New("styles")
	g.Defaults.For(visual.KindNode)[visual.NodeShapeProp] = visual.ShapeRoundRectangle
	mustNode(t, g, visual.Node{ID: "dashed", Overrides: visual.Values{visual.NodeBorderLineType: visual.LineEqualDash}})
	mustNode(t, g, visual.Node{ID: "square", Overrides: visual.Values{visual.NodeShapeProp: visual.ShapeRectangle}})
	mustNode(t, g, visual.Node{ID: "hidden", Overrides: visual.Values{visual.NodeVisible: false}})

	var w Writer
	got, _ := write(t, &w, g)
	for _, want := range []string{
		`node [shape=rectangle, fillcolor="#D3D3D3FF", style="filled,rounded"];`,
		`dashed [style="dashed,filled,rounded"];`,
		`square [shape=rectangle, style=filled];`,
		`hidden [style="filled,rounded,invis"];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in:\n%s", want, got)
		}
	}
}

func TestWriteGradient(t *testing.T) {
	g := visual.New("grad")
	mustNode(t, g, visual.Node{ID: "a", Overrides: visual.Values{
		visual.NodeFillGradient: visual.Gradient{
			Kind:   visual.RadialGradient,
			Stops:  []visual.Stop{{Color: red, Weight: 0.3}, {Color: green, Weight: 0.7}},
			Center: visual.Point{X: 0.5, Y: 0},
		},
	}})
	var w Writer
	got, _ := write(t, &w, g)
	want := `a [fillcolor="#FF0000FF;0.3:#00FF00FF", gradientangle=90, style="filled,radial"];`
	if !strings.Contains(got, want) {
		t.Errorf("missing %s in:\n%s", want, got)
	}
}

func TestWritePositionAndEdgeExtras(t *testing.T) {
	g := visual.New("pos")
	mustNode(t, g, visual.Node{ID: "a", Overrides: visual.Values{
		visual.NodeXLocation: 10.0,
		visual.NodeYLocation: -20.0,
	}, Unmapped: map[string]string{"group": "g1"}})
	w8 := 2.5
	mustEdge(t, g, visual.Edge{
		Source: "a", Target: "a", Directed: true, Weight: &w8,
		Overrides: visual.Values{visual.EdgeBend: []visual.Point{{X: 1, Y: -2}}},
	})
	var w Writer
	got, _ := write(t, &w, g)
	for _, want := range []string{
		`a [pos="10,20", group=g1];`,
		`a -> a [pos="1,2", weight=2.5];`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %s in:\n%s", want, got)
		}
	}
}

func TestWriteRejectsInvalidGraph(t *testing.T) {
	g := visual.New("bad")
	mustNode(t, g, visual.Node{ID: "a", Overrides: visual.Values{visual.NodeWidth: "wide"}})
	var (
		w   Writer
		buf bytes.Buffer
	)
	_, err := w.Write(context.Background(), &buf, g)
	if !errors.Is(err, errors.ErrCodeModelIntegrity) {
		t.Errorf("Write() error = %v, want MODEL_INTEGRITY", err)
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
}
