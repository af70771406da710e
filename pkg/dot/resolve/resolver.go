package resolve

import (
	"fmt"
	"image/color"
	"maps"
	"slices"
	"strings"

	dotattrs "github.com/matzehuels/dotstyle/pkg/dot/attrs"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/dot/gradient"
	"github.com/matzehuels/dotstyle/pkg/dot/style"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// Issue describes an attribute that was skipped because its value could
// not be converted.
type Issue struct {
	Attribute string
	Value     string
	Err       error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s=%q: %v", i.Attribute, i.Value, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Resolver converts raw attribute lists into visual values.
//
// The zero value resolves color names against [dotcolor.Default] with the
// x11 scheme.
type Resolver struct {
	// Lookup resolves color names. Nil selects dotcolor.Default.
	Lookup dotcolor.Lookup
	// Scheme is the color scheme used when an attribute list has no
	// colorscheme attribute. Empty selects x11.
	Scheme string
}

func (r *Resolver) lookup() dotcolor.Lookup {
	if r.Lookup == nil {
		return dotcolor.Default
	}
	return r.Lookup
}

func (r *Resolver) scheme(attrs map[string]string) string {
	if s := strings.TrimSpace(attrs[dotattrs.ColorScheme]); s != "" {
		return s
	}
	if r.Scheme != "" {
		return r.Scheme
	}
	return dotcolor.X11
}

// Result is the outcome of resolving one attribute list.
type Result struct {
	// Values holds the full defaults for [Resolver.Defaults] and the
	// overrides for [Resolver.Element].
	Values visual.Values
	// Unmapped holds the attributes of the list that map to no visual
	// property.
	Unmapped map[string]string
	// Source records where the fill came from.
	Source FillSource
	// Weight is the edge weight, when given.
	Weight *float64
	// Dir is the raw dir attribute of an edge, empty when absent.
	Dir    string
	Issues []Issue
}

// Defaults resolves the default attribute list of kind into the complete
// style defaults: the Graphviz baseline overlaid with attrs.
func (r *Resolver) Defaults(kind visual.Kind, attrs map[string]string) Result {
	vals := dotattrs.Baseline(kind)
	res := Result{Values: vals, Unmapped: unmapped(kind, attrs)}
	res.Source, res.Issues = r.apply(kind, vals, attrs)
	return res
}

// Element resolves one node or edge. inherited is the default attribute
// list in effect where the element was declared, own the element's own
// attributes, and defaults the style defaults of kind as returned by
// [Resolver.Defaults]. Values of the result holds only the overrides.
func (r *Resolver) Element(kind visual.Kind, defaults visual.Values, inherited, own map[string]string) Result {
	merged := make(map[string]string, len(inherited)+len(own))
	maps.Copy(merged, inherited)
	maps.Copy(merged, own)
	delete(merged, dotattrs.Pos)
	delete(merged, dotattrs.Weight)

	vals := dotattrs.Baseline(kind)
	res := Result{Unmapped: unmapped(kind, own)}
	res.Source, res.Issues = r.apply(kind, vals, merged)
	res.Values = Diff(vals, defaults)

	if kind == visual.KindEdge {
		res.Dir = strings.ToLower(strings.TrimSpace(merged[dotattrs.Dir]))
	}
	if raw, ok := own[dotattrs.Pos]; ok {
		if err := position(kind, res.Values, raw); err != nil {
			res.Issues = append(res.Issues, Issue{Attribute: dotattrs.Pos, Value: raw, Err: err})
		}
	}
	if raw, ok := own[dotattrs.Weight]; ok && kind == visual.KindEdge {
		w, err := dotattrs.ParseFloat(raw)
		if err != nil {
			res.Issues = append(res.Issues, Issue{Attribute: dotattrs.Weight, Value: raw, Err: err})
		} else {
			res.Weight = &w
		}
	}
	return res
}

// Diff returns the entries of resolved that are absent from defaults or
// differ from the default value.
func Diff(resolved, defaults visual.Values) visual.Values {
	out := visual.Values{}
	for p, v := range resolved {
		if d, ok := defaults[p]; ok && visual.Equal(d, v) {
			continue
		}
		out[p] = v
	}
	return out
}

// apply overlays attrs onto vals.
func (r *Resolver) apply(kind visual.Kind, vals visual.Values, attrs map[string]string) (FillSource, []Issue) {
	var issues []Issue
	roles := dotattrs.RolesFor(kind)
	table := dotattrs.For(kind)

	for _, name := range slices.Sorted(maps.Keys(attrs)) {
		if name == dotattrs.XLabel {
			continue
		}
		a, ok, err := table.ToVisualProperty(name, attrs[name])
		if !ok {
			continue
		}
		if err != nil {
			issues = append(issues, Issue{Attribute: name, Value: attrs[name], Err: err})
			continue
		}
		vals[a.Property] = a.Value
	}
	if xl := attrs[dotattrs.XLabel]; xl != "" && kind != visual.KindNetwork {
		vals[roles.Label] = xl
	}

	tokens := style.Parse(attrs[dotattrs.Style])
	if dotattrs.Has(roles.LineType) {
		vals[roles.LineType] = tokens.LineType()
	}
	if dotattrs.Has(roles.Visible) {
		vals[roles.Visible] = !tokens.Invisible
	}
	if dotattrs.Has(roles.Shape) && tokens.Rounded && vals[roles.Shape] == visual.ShapeRectangle {
		vals[roles.Shape] = visual.ShapeRoundRectangle
	}

	angle := 0.0
	if raw, ok := attrs[dotattrs.GradientAngle]; ok {
		f, err := dotattrs.ParseFloat(raw)
		if err != nil {
			issues = append(issues, Issue{Attribute: dotattrs.GradientAngle, Value: raw, Err: err})
		} else {
			angle = f
		}
	}

	colors, colorIssues := r.ResolveColors(kind, attrs)
	issues = append(issues, colorIssues...)
	if p := colors.Fill; p != nil {
		g := visual.Gradient{}
		if p.IsList() {
			g = gradient.Build(p.List, tokens, angle)
		}
		vals[roles.FillGradient] = g
		setColor(vals, roles.Fill, roles.FillAlpha, p.Color)
	}
	if p := colors.Border; p != nil && dotattrs.Has(roles.Border) {
		setColor(vals, roles.Border, roles.BorderAlpha, p.Color)
	}
	if p := colors.Font; p != nil && dotattrs.Has(roles.Font) {
		setColor(vals, roles.Font, roles.FontAlpha, p.Color)
	}
	return colors.Source, issues
}

// setColor stores c, moving its alpha to the transparency property when the
// kind tracks one.
func setColor(vals visual.Values, colorProp, alphaProp visual.Property, c color.NRGBA) {
	if dotattrs.Has(alphaProp) {
		vals[alphaProp] = int(c.A)
		c.A = 255
	}
	vals[colorProp] = c
}

func unmapped(kind visual.Kind, attrs map[string]string) map[string]string {
	out := map[string]string{}
	for name, v := range attrs {
		if !dotattrs.Known(kind, name) {
			out[name] = v
		}
	}
	return out
}
