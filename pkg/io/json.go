package io

import (
	"encoding/json"
	"fmt"
	"image/color"
	"sort"

	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

type document struct {
	Graphs []graph `json:"graphs"`
}

type graph struct {
	Name     string                       `json:"name"`
	Defaults map[string]values            `json:"defaults"`
	Network  values                       `json:"network,omitempty"`
	Unmapped map[string]map[string]string `json:"unmapped,omitempty"`
	Nodes    []node                       `json:"nodes"`
	Edges    []edge                       `json:"edges"`
}

type node struct {
	ID        string            `json:"id"`
	Overrides values            `json:"overrides,omitempty"`
	Unmapped  map[string]string `json:"unmapped,omitempty"`
}

type edge struct {
	Source    string            `json:"source"`
	Target    string            `json:"target"`
	Directed  bool              `json:"directed,omitempty"`
	Weight    *float64          `json:"weight,omitempty"`
	Overrides values            `json:"overrides,omitempty"`
	Unmapped  map[string]string `json:"unmapped,omitempty"`
}

// values maps property IDs to their JSON encoding.
type values map[string]json.RawMessage

type gradient struct {
	Kind   string        `json:"kind"`
	Stops  []stop        `json:"stops,omitempty"`
	Angle  float64       `json:"angle,omitempty"`
	Center *visual.Point `json:"center,omitempty"`
}

type stop struct {
	Color  string  `json:"color"`
	Weight float64 `json:"weight"`
}

func encodeValues(vals visual.Values) (values, error) {
	if len(vals) == 0 {
		return nil, nil
	}
	out := make(values, len(vals))
	for p, v := range vals {
		raw, err := json.Marshal(encodeValue(p, v))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		out[p.ID] = raw
	}
	return out, nil
}

func encodeValue(p visual.Property, v any) any {
	switch p.Type {
	case visual.TypeColor:
		return dotcolor.Format(v.(color.NRGBA))
	case visual.TypeGradient:
		g := v.(visual.Gradient)
		out := gradient{Kind: g.Kind.String(), Angle: g.Angle}
		if g.Kind == visual.RadialGradient {
			center := g.Center
			out.Center = &center
		}
		for _, s := range g.Stops {
			out.Stops = append(out.Stops, stop{Color: dotcolor.Format(s.Color), Weight: s.Weight})
		}
		return out
	}
	return v
}

func decodeValues(kind visual.Kind, in values) (visual.Values, error) {
	out := make(visual.Values, len(in))
	// Sorted so the first reported error does not depend on map order.
	ids := make([]string, 0, len(in))
	for id := range in {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p, ok := visual.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("unknown property %q", id)
		}
		v, err := decodeValue(p, in[id])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", id, err)
		}
		if err := out.Set(kind, p, v); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func decodeValue(p visual.Property, raw json.RawMessage) (any, error) {
	switch p.Type {
	case visual.TypeColor:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return dotcolor.Parse(s, "")
	case visual.TypeGradient:
		var g gradient
		if err := json.Unmarshal(raw, &g); err != nil {
			return nil, err
		}
		return decodeGradient(g)
	case visual.TypeString:
		return unmarshal[string](raw)
	case visual.TypeDouble:
		return unmarshal[float64](raw)
	case visual.TypeInt:
		return unmarshal[int](raw)
	case visual.TypeBool:
		return unmarshal[bool](raw)
	case visual.TypeLineType:
		return unmarshal[visual.LineType](raw)
	case visual.TypeNodeShape:
		return unmarshal[visual.NodeShape](raw)
	case visual.TypeArrowShape:
		return unmarshal[visual.ArrowShape](raw)
	case visual.TypePoints:
		return unmarshal[[]visual.Point](raw)
	}
	return nil, fmt.Errorf("unsupported value type %d", p.Type)
}

func decodeGradient(g gradient) (visual.Gradient, error) {
	out := visual.Gradient{Angle: g.Angle}
	switch g.Kind {
	case "linear", "":
		out.Kind = visual.LinearGradient
	case "radial":
		out.Kind = visual.RadialGradient
	default:
		return out, fmt.Errorf("unknown gradient kind %q", g.Kind)
	}
	if g.Center != nil {
		out.Center = *g.Center
	}
	for _, s := range g.Stops {
		c, err := dotcolor.Parse(s.Color, "")
		if err != nil {
			return out, err
		}
		out.Stops = append(out.Stops, visual.Stop{Color: c, Weight: s.Weight})
	}
	return out, nil
}

func unmarshal[T any](raw json.RawMessage) (T, error) {
	var v T
	err := json.Unmarshal(raw, &v)
	return v, err
}

func kindFromName(name string) (visual.Kind, bool) {
	for _, k := range visual.Kinds {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}
