package attrs

import (
	"errors"
	"testing"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

func TestToVisualProperty(t *testing.T) {
	tests := []struct {
		name     string
		kind     visual.Kind
		attr     string
		raw      string
		wantProp visual.Property
		want     any
	}{
		{"NetworkLabel", visual.KindNetwork, "label", "Title", visual.NetworkTitle, "Title"},
		{"NodeLabel", visual.KindNode, "label", "X", visual.NodeLabel, "X"},
		{"NodeXLabel", visual.KindNode, "xlabel", "outside", visual.NodeLabel, "outside"},
		{"Width", visual.KindNode, "width", "1.5", visual.NodeWidth, 108.0},
		{"Height", visual.KindNode, "height", "0.5", visual.NodeHeight, 36.0},
		{"PenWidth", visual.KindNode, "penwidth", "2.5", visual.NodeBorderWidth, 2.5},
		{"FontSize", visual.KindNode, "fontsize", "10.6", visual.NodeFontSize, 11},
		{"Shape", visual.KindNode, "shape", "diamond", visual.NodeShapeProp, visual.ShapeDiamond},
		{"ShapeAlias", visual.KindNode, "shape", "box", visual.NodeShapeProp, visual.ShapeRectangle},
		{"ShapeCase", visual.KindNode, "Shape", "Oval", visual.NodeShapeProp, visual.ShapeEllipse},
		{"ArrowHead", visual.KindEdge, "arrowhead", "vee", visual.EdgeTargetArrowShape, visual.ArrowArrow},
		{"ArrowTail", visual.KindEdge, "arrowtail", "tee", visual.EdgeSourceArrowShape, visual.ArrowT},
		{"EdgePenWidth", visual.KindEdge, "penwidth", "3", visual.EdgeWidth, 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, ok, err := For(tt.kind).ToVisualProperty(tt.attr, tt.raw)
			if err != nil || !ok {
				t.Fatalf("ToVisualProperty(%s, %s) = %v, %v", tt.attr, tt.raw, ok, err)
			}
			if a.Property != tt.wantProp {
				t.Errorf("property = %s, want %s", a.Property, tt.wantProp)
			}
			if !visual.Equal(a.Value, tt.want) {
				t.Errorf("value = %v (%T), want %v (%T)", a.Value, a.Value, tt.want, tt.want)
			}
		})
	}
}

func TestToVisualPropertyUnknown(t *testing.T) {
	for _, name := range []string{"rankdir", "color", "pos", "arrowhead"} {
		if _, ok, err := For(visual.KindNode).ToVisualProperty(name, "x"); ok || err != nil {
			t.Errorf("node %s: ok=%v err=%v, want unmapped", name, ok, err)
		}
	}
}

func TestToVisualPropertyMalformed(t *testing.T) {
	tests := []struct {
		kind visual.Kind
		attr string
		raw  string
	}{
		{visual.KindNode, "width", "wide"},
		{visual.KindNode, "fontsize", "NaN"},
		{visual.KindNode, "shape", "star"},
		{visual.KindEdge, "arrowhead", "crow"},
		{visual.KindEdge, "penwidth", ""},
	}
	for _, tt := range tests {
		_, ok, err := For(tt.kind).ToVisualProperty(tt.attr, tt.raw)
		if !ok || !errors.Is(err, ErrMalformed) {
			t.Errorf("%s=%q: ok=%v err=%v, want ErrMalformed", tt.attr, tt.raw, ok, err)
		}
	}
}

func TestToDotAttribute(t *testing.T) {
	tests := []struct {
		kind visual.Kind
		prop visual.Property
		val  any
		want Attr
	}{
		{visual.KindNode, visual.NodeLabel, "X", Attr{"label", "X"}},
		{visual.KindNode, visual.NodeWidth, 108.0, Attr{"width", "1.5"}},
		{visual.KindNode, visual.NodeFontSize, 12, Attr{"fontsize", "12"}},
		{visual.KindNode, visual.NodeShapeProp, visual.ShapeRoundRectangle, Attr{"shape", "rectangle"}},
		{visual.KindEdge, visual.EdgeTargetArrowShape, visual.ArrowHalfTop, Attr{"arrowhead", "olnormal"}},
		{visual.KindNetwork, visual.NetworkTitle, "T", Attr{"label", "T"}},
	}
	for _, tt := range tests {
		got, ok := For(tt.kind).ToDotAttribute(tt.prop, tt.val)
		if !ok || got != tt.want {
			t.Errorf("ToDotAttribute(%s, %v) = %v, %v, want %v", tt.prop, tt.val, got, ok, tt.want)
		}
	}
	if _, ok := For(visual.KindNode).ToDotAttribute(visual.NodeFillColor, nil); ok {
		t.Error("fill color handled by simple table")
	}
	if _, ok := For(visual.KindNode).ToDotAttribute(visual.NodeWidth, "wide"); ok {
		t.Error("wrong value type accepted")
	}
}

func TestTableRoundTrip(t *testing.T) {
	for _, kind := range visual.Kinds {
		table := For(kind)
		for p, v := range Baseline(kind) {
			if !table.Covers(p) {
				continue
			}
			attr, ok := table.ToDotAttribute(p, v)
			if !ok {
				t.Errorf("%s: baseline value %v not encodable", p, v)
				continue
			}
			a, ok, err := table.ToVisualProperty(attr.Name, attr.Value)
			if err != nil || !ok || a.Property != p || !visual.Equal(a.Value, v) {
				t.Errorf("%s round trip = %v, %v, %v", p, a, ok, err)
			}
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known(visual.KindNode, "fillcolor") || !Known(visual.KindNode, "shape") {
		t.Error("node fillcolor/shape not known")
	}
	if Known(visual.KindNode, "rankdir") || Known(visual.KindEdge, "fillcolor") {
		t.Error("unmapped attribute reported known")
	}
}

func TestBaselineTypes(t *testing.T) {
	for _, kind := range visual.Kinds {
		for p, v := range Baseline(kind) {
			if err := (visual.Values{}).Set(kind, p, v); err != nil {
				t.Errorf("baseline %s: %v", p, err)
			}
		}
	}
}
