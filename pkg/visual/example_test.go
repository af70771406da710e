package visual_test

import (
	"fmt"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

func ExampleGraph() {
	g := visual.New("deps")
	g.Defaults.For(visual.KindNode)[visual.NodeShapeProp] = visual.ShapeEllipse
	_, _ = g.AddNode(visual.Node{ID: "app"})
	lib, _ := g.AddNode(visual.Node{
		ID:        "lib",
		Overrides: visual.Values{visual.NodeShapeProp: visual.ShapeDiamond},
	})
	_, _ = g.AddEdge(visual.Edge{Source: "app", Target: "lib", Directed: true})

	app, _ := g.Node("app")
	appShape, _ := g.NodeValue(app, visual.NodeShapeProp)
	libShape, _ := g.NodeValue(lib, visual.NodeShapeProp)
	fmt.Println("Nodes:", g.NodeCount())
	fmt.Println("Directed:", g.Directed())
	fmt.Println("app:", appShape)
	fmt.Println("lib:", libShape)
	// Output:
	// Nodes: 2
	// Directed: true
	// app: ELLIPSE
	// lib: DIAMOND
}
