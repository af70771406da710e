package dot

import (
	"bytes"
	"context"
	"fmt"
	"image/color"
	"io"
	"maps"
	"slices"
	"strings"
	"time"

	dotattrs "github.com/matzehuels/dotstyle/pkg/dot/attrs"
	dotcolor "github.com/matzehuels/dotstyle/pkg/dot/color"
	"github.com/matzehuels/dotstyle/pkg/dot/gradient"
	"github.com/matzehuels/dotstyle/pkg/dot/ident"
	"github.com/matzehuels/dotstyle/pkg/dot/resolve"
	"github.com/matzehuels/dotstyle/pkg/dot/style"
	"github.com/matzehuels/dotstyle/pkg/errors"
	"github.com/matzehuels/dotstyle/pkg/observability"
	"github.com/matzehuels/dotstyle/pkg/visual"
)

// LabelLocation selects where node and edge labels are drawn.
type LabelLocation string

const (
	// LabelInternal writes labels with the label attribute.
	LabelInternal LabelLocation = errors.LabelInternal
	// LabelExternal writes label="" and puts the text in xlabel, which
	// Graphviz draws outside the element.
	LabelExternal LabelLocation = errors.LabelExternal
)

// Default values of the fixed network settings.
const (
	DefaultSplines     = "true"
	DefaultOutputOrder = "edgesfirst"
	DefaultESep        = "0"
	DefaultPad         = "2"
)

// Writer exports visual graphs as DOT. The zero value writes internal labels
// and the default network settings.
type Writer struct {
	LabelLocation LabelLocation

	// Fixed network settings emitted for deterministic rendering. Empty
	// fields select the Default* constants. A graph attribute of the same
	// name kept in the graph's unmapped attributes takes precedence.
	Splines     string
	OutputOrder string
	ESep        string
	Pad         string
}

// Write emits g as one graph or digraph block. Output is buffered and only
// written to w once the whole graph has been encoded.
func (w *Writer) Write(ctx context.Context, out io.Writer, g *visual.Graph) (report *Report, err error) {
	report = &Report{}
	if g == nil {
		return report, errors.New(errors.ErrCodeInvalidInput, "nil graph")
	}
	start := time.Now()
	hooks := observability.Codec()
	hooks.OnExportStart(ctx, g.NodeCount(), g.EdgeCount())
	defer func() {
		hooks.OnExportComplete(ctx, len(report.Warnings), time.Since(start), err)
	}()

	if err := g.Validate(); err != nil {
		return report, errors.Wrap(errors.ErrCodeModelIntegrity, err, "graph %q", g.Name)
	}

	var buf bytes.Buffer
	directed := g.Directed()
	keyword, op := "graph", "--"
	if directed {
		keyword, op = "digraph", "->"
	}
	buf.WriteString(keyword)
	if g.Name != "" {
		id := ident.Quote(g.Name)
		if id != g.Name {
			report.add(Warning{
				Code:    errors.ErrCodeIdentifierModified,
				Element: graphElement(g.Name),
				Message: "written as " + id,
			})
		}
		buf.WriteString(" " + id)
	}
	buf.WriteString(" {\n")

	for _, a := range w.networkAttrs(g) {
		fmt.Fprintf(&buf, "  %s=%s;\n", ident.Quote(a.Name), ident.QuoteValue(a.Value))
	}

	refs := make(map[visual.Kind]visual.Values, 2)
	for _, kind := range []visual.Kind{visual.KindNode, visual.KindEdge} {
		base := dotattrs.Baseline(kind)
		ref := overlay(base, g.Defaults[kind])
		refs[kind] = ref
		list := w.encode(kind, ref, changedFrom(ref, base), true)
		list = appendUnmapped(list, g.Unmapped[kind])
		if len(list) > 0 {
			fmt.Fprintf(&buf, "  %s [%s];\n", kind, joinAttrs(list))
		}
	}

	var namer ident.Namer
	name := func(id string) string {
		out, modified := namer.Name(id)
		if modified {
			report.add(Warning{
				Code:    errors.ErrCodeIdentifierModified,
				Element: nodeElement(id),
				Message: "written as " + out,
			})
		}
		return out
	}

	ids := make(map[string]string, g.NodeCount())
	buf.WriteByte('\n')
	for _, n := range g.Nodes() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ref := refs[visual.KindNode]
		list := w.encode(visual.KindNode, overlay(ref, n.Overrides), overridden(n.Overrides, ref), false)
		list = appendUnmapped(list, n.Unmapped)
		ids[n.ID] = name(n.ID)
		writeStmt(&buf, ids[n.ID], list)
	}

	if g.EdgeCount() > 0 {
		buf.WriteByte('\n')
	}
	for _, e := range g.Edges() {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ref := refs[visual.KindEdge]
		list := w.encode(visual.KindEdge, overlay(ref, e.Overrides), overridden(e.Overrides, ref), false)
		if e.Weight != nil {
			list = append(list, dotattrs.Attr{Name: dotattrs.Weight, Value: dotattrs.FormatFloat(*e.Weight)})
		}
		if directed && !e.Directed {
			list = append(list, dotattrs.Attr{Name: dotattrs.Dir, Value: dirNone})
		}
		list = appendUnmapped(list, e.Unmapped)
		writeStmt(&buf, ids[e.Source]+" "+op+" "+ids[e.Target], list)
	}
	buf.WriteString("}\n")

	if _, err := out.Write(buf.Bytes()); err != nil {
		return report, errors.Wrap(errors.ErrCodeInternal, err, "write DOT")
	}
	return report, nil
}

// networkAttrs returns the graph attribute lines: the network values that
// differ from the Graphviz baseline, the fixed settings, then the unmapped
// graph attributes.
func (w *Writer) networkAttrs(g *visual.Graph) []dotattrs.Attr {
	base := dotattrs.Baseline(visual.KindNetwork)
	eff := overlay(overlay(base, g.Defaults[visual.KindNetwork]), g.Network)
	list := w.encode(visual.KindNetwork, eff, changedFrom(eff, base), true)

	unmapped := g.Unmapped[visual.KindNetwork]
	for _, fixed := range []dotattrs.Attr{
		{Name: dotattrs.Splines, Value: or(w.Splines, DefaultSplines)},
		{Name: dotattrs.OutputOrder, Value: or(w.OutputOrder, DefaultOutputOrder)},
		{Name: dotattrs.ESep, Value: or(w.ESep, DefaultESep)},
		{Name: dotattrs.Pad, Value: or(w.Pad, DefaultPad)},
	} {
		if v, ok := unmapped[fixed.Name]; ok {
			fixed.Value = v
		}
		list = append(list, fixed)
	}
	return appendUnmapped(list, unmapped)
}

// encode converts the effective values eff of one element kind into DOT
// attributes, emitting only the attribute groups that contain a changed
// property. defaults selects the rules of a default statement, which has no
// position and always carries the node fill.
func (w *Writer) encode(kind visual.Kind, eff visual.Values, changed func(visual.Property) bool, defaults bool) []dotattrs.Attr {
	var list []dotattrs.Attr
	add := func(name, value string) {
		list = append(list, dotattrs.Attr{Name: name, Value: value})
	}
	roles := dotattrs.RolesFor(kind)
	table := dotattrs.For(kind)
	anyChanged := func(props ...visual.Property) bool {
		for _, p := range props {
			if dotattrs.Has(p) && changed(p) {
				return true
			}
		}
		return false
	}

	for _, p := range visual.Properties(kind) {
		if !table.Covers(p) || !changed(p) {
			continue
		}
		if p == roles.Label {
			w.label(kind, eff[p], add)
			continue
		}
		if a, ok := table.ToDotAttribute(p, eff[p]); ok {
			add(a.Name, a.Value)
		}
	}

	grad, _ := visual.Get[visual.Gradient](eff, roles.FillGradient)
	if dotattrs.Has(roles.Fill) && (anyChanged(roles.Fill, roles.FillGradient, roles.FillAlpha) || (defaults && kind == visual.KindNode)) {
		name := dotattrs.FillColor
		if kind == visual.KindNetwork {
			name = dotattrs.BgColor
		}
		if !grad.Flat() {
			stops, angle, _ := gradient.Format(grad)
			add(name, stops)
			if !defaults || angle != 0 {
				add(dotattrs.GradientAngle, dotattrs.FormatFloat(angle))
			}
		} else {
			add(name, paint(eff, roles.Fill, roles.FillAlpha))
		}
	}
	if dotattrs.Has(roles.Border) && anyChanged(roles.Border, roles.BorderAlpha) {
		add(dotattrs.Color, paint(eff, roles.Border, roles.BorderAlpha))
	}
	if dotattrs.Has(roles.Font) && anyChanged(roles.Font, roles.FontAlpha) {
		add(dotattrs.FontColor, paint(eff, roles.Font, roles.FontAlpha))
	}

	// An element's style replaces the inherited one, so every token is
	// written whenever one of them changes. Only rectangles carry the
	// rounded token.
	rounding := false
	if dotattrs.Has(roles.Shape) && changed(roles.Shape) {
		rounding = eff[roles.Shape] == visual.ShapeRoundRectangle || eff[roles.Shape] == visual.ShapeRectangle
	}
	if rounding || anyChanged(roles.LineType, roles.Visible, roles.FillGradient) || (defaults && kind == visual.KindNode) {
		tokens := style.Tokens{
			Filled: kind == visual.KindNode,
			Radial: !grad.Flat() && grad.Kind == visual.RadialGradient,
		}
		if lt, ok := visual.Get[visual.LineType](eff, roles.LineType); ok {
			tokens.Line = lt
		}
		if dotattrs.Has(roles.Shape) {
			tokens.Rounded = eff[roles.Shape] == visual.ShapeRoundRectangle
		}
		if v, ok := visual.Get[bool](eff, roles.Visible); ok {
			tokens.Invisible = !v
		}
		text := style.Format(tokens)
		switch {
		case text != "":
			add(dotattrs.Style, text)
		case kind != visual.KindNetwork:
			add(dotattrs.Style, style.Solid)
		}
	}

	if !defaults {
		if pos, ok := position(kind, eff); ok {
			add(dotattrs.Pos, pos)
		}
	}
	return list
}

func (w *Writer) label(kind visual.Kind, v any, add func(name, value string)) {
	s, _ := v.(string)
	if kind == visual.KindNetwork || w.LabelLocation != LabelExternal {
		add(dotattrs.Label, s)
		return
	}
	add(dotattrs.Label, "")
	add(dotattrs.XLabel, s)
}

// paint formats a color property, taking the alpha channel from the
// transparency property when the kind has one.
func paint(eff visual.Values, colorProp, alphaProp visual.Property) string {
	c, _ := visual.Get[color.NRGBA](eff, colorProp)
	if !dotattrs.Has(alphaProp) {
		return dotcolor.Format(c)
	}
	alpha, ok := visual.Get[int](eff, alphaProp)
	if !ok {
		alpha = 255
	}
	return dotcolor.Format(dotcolor.WithAlpha(c, alpha))
}

func position(kind visual.Kind, eff visual.Values) (string, bool) {
	switch kind {
	case visual.KindNode:
		x, okX := visual.Get[float64](eff, visual.NodeXLocation)
		y, okY := visual.Get[float64](eff, visual.NodeYLocation)
		if !okX && !okY {
			return "", false
		}
		return resolve.FormatPoint(visual.Point{X: x, Y: y}), true
	case visual.KindEdge:
		pts, _ := visual.Get[[]visual.Point](eff, visual.EdgeBend)
		if len(pts) == 0 {
			return "", false
		}
		return resolve.FormatBend(pts), true
	}
	return "", false
}

// overlay returns base with top laid over it.
func overlay(base, top visual.Values) visual.Values {
	out := base.Clone()
	maps.Copy(out, top)
	return out
}

// changedFrom reports the properties of eff that are missing from base or
// hold another value.
func changedFrom(eff, base visual.Values) func(visual.Property) bool {
	return func(p visual.Property) bool {
		v, ok := eff[p]
		if !ok {
			return false
		}
		b, ok := base[p]
		return !ok || !visual.Equal(v, b)
	}
}

// overridden reports the properties an element overrides with a value that
// differs from ref.
func overridden(overrides, ref visual.Values) func(visual.Property) bool {
	return func(p visual.Property) bool {
		v, ok := overrides[p]
		if !ok {
			return false
		}
		r, ok := ref[p]
		return !ok || !visual.Equal(v, r)
	}
}

func appendUnmapped(list []dotattrs.Attr, unmapped map[string]string) []dotattrs.Attr {
	for _, name := range slices.Sorted(maps.Keys(unmapped)) {
		if slices.ContainsFunc(list, func(a dotattrs.Attr) bool { return a.Name == name }) {
			continue
		}
		list = append(list, dotattrs.Attr{Name: name, Value: unmapped[name]})
	}
	return list
}

func joinAttrs(list []dotattrs.Attr) string {
	parts := make([]string, len(list))
	for i, a := range list {
		parts[i] = ident.Quote(a.Name) + "=" + ident.QuoteValue(a.Value)
	}
	return strings.Join(parts, ", ")
}

func writeStmt(buf *bytes.Buffer, head string, list []dotattrs.Attr) {
	if len(list) == 0 {
		fmt.Fprintf(buf, "  %s;\n", head)
		return
	}
	fmt.Fprintf(buf, "  %s [%s];\n", head, joinAttrs(list))
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
