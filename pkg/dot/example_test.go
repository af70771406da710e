package dot_test

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/dotstyle/pkg/dot"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

func ExampleReader() {
	src := `digraph G {bgcolor="#FF0000FF"; a[label="X",shape=diamond]; b; a->b[color="#00FF00FF"]}`

	var r dot.Reader
	graphs, report, err := r.Read(context.Background(), []byte(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	g := graphs[0]
	a, _ := g.Node("a")
	shape, _ := g.NodeValue(a, visual.NodeShapeProp)

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("a shape:", shape)
	fmt.Println("a overrides:", len(a.Overrides))
	fmt.Println("warnings:", len(report.Warnings))
	// Output:
	// nodes: 2
	// edges: 1
	// a shape: DIAMOND
	// a overrides: 2
	// warnings: 0
}

func ExampleWriter() {
	src := `digraph G {bgcolor="#FF0000FF"; a[label="X",shape=diamond]; b; a->b[color="#00FF00FF"]}`

	var r dot.Reader
	graphs, _, err := r.Read(context.Background(), []byte(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var w dot.Writer
	if _, err := w.Write(context.Background(), os.Stdout, graphs[0]); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// digraph G {
	//   bgcolor="#FF0000FF";
	//   splines=true;
	//   outputorder=edgesfirst;
	//   esep=0;
	//   pad=2;
	//   node [fillcolor="#D3D3D3FF", style=filled];
	//
	//   a [label=X, shape=diamond];
	//   b;
	//
	//   a -> b [color="#00FF00FF"];
	// }
}

func ExampleReport_Summary() {
	g := visual.New("names")
	g.AddNode(visual.Node{ID: "two words"})
	g.AddNode(visual.Node{ID: "a-b"})

	var w dot.Writer
	report, err := w.Write(context.Background(), io.Discard, g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range report.Summary() {
		fmt.Println(line)
	}
	// Output:
	// 2 names were modified to satisfy DOT syntax
}
