package attrs

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

// PointsPerInch converts DOT sizes (inches) to visual sizes (points).
const PointsPerInch = 72.0

// ErrMalformed is wrapped by errors for attribute values that cannot be
// converted.
var ErrMalformed = errors.New("malformed attribute value")

// Assignment is a visual property together with its converted value.
type Assignment struct {
	Property visual.Property
	Value    any
}

// Attr is one DOT attribute in raw text form.
type Attr struct {
	Name  string
	Value string
}

type codec struct {
	decode func(raw string) (any, error)
	encode func(v any) (string, bool)
}

type entry struct {
	name string
	prop visual.Property
	codec
	// readOnly entries decode but never win the reverse mapping.
	readOnly bool
}

// Table is the attribute table of one element kind.
type Table struct {
	kind   visual.Kind
	names  []string
	byName map[string]*entry
	byProp map[visual.Property]*entry
}

func newTable(kind visual.Kind, entries ...entry) *Table {
	t := &Table{
		kind:   kind,
		byName: make(map[string]*entry, len(entries)),
		byProp: make(map[visual.Property]*entry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		if e.prop.Kind != kind {
			panic(fmt.Sprintf("attrs: %s is not a %s property", e.prop, kind))
		}
		t.names = append(t.names, e.name)
		t.byName[e.name] = e
		if !e.readOnly {
			t.byProp[e.prop] = e
		}
	}
	return t
}

// Kind returns the element kind the table applies to.
func (t *Table) Kind() visual.Kind { return t.kind }

// Names returns the DOT attribute names covered by the table.
func (t *Table) Names() []string { return t.names }

// ToVisualProperty converts a raw DOT attribute. ok is false when the
// attribute has no visual property in this table; err is non-nil when the
// attribute is known but its value cannot be converted.
func (t *Table) ToVisualProperty(name, raw string) (a Assignment, ok bool, err error) {
	e, ok := t.byName[strings.ToLower(name)]
	if !ok {
		return Assignment{}, false, nil
	}
	v, err := e.decode(raw)
	if err != nil {
		return Assignment{}, true, fmt.Errorf("%s=%q: %w", e.name, raw, err)
	}
	return Assignment{Property: e.prop, Value: v}, true, nil
}

// ToDotAttribute converts a visual value to its DOT attribute. ok is false
// when the property has no entry in this table or the value has the wrong
// type.
func (t *Table) ToDotAttribute(p visual.Property, v any) (Attr, bool) {
	e, ok := t.byProp[p]
	if !ok {
		return Attr{}, false
	}
	raw, ok := e.encode(v)
	if !ok {
		return Attr{}, false
	}
	return Attr{Name: e.name, Value: raw}, true
}

// Covers reports whether p is converted by this table.
func (t *Table) Covers(p visual.Property) bool {
	_, ok := t.byProp[p]
	return ok
}

var tables = map[visual.Kind]*Table{
	visual.KindNetwork: newTable(visual.KindNetwork,
		entry{name: Label, prop: visual.NetworkTitle, codec: stringCodec},
	),
	visual.KindNode: newTable(visual.KindNode,
		entry{name: Label, prop: visual.NodeLabel, codec: stringCodec},
		entry{name: XLabel, prop: visual.NodeLabel, codec: stringCodec, readOnly: true},
		entry{name: PenWidth, prop: visual.NodeBorderWidth, codec: doubleCodec},
		entry{name: Width, prop: visual.NodeWidth, codec: inchCodec},
		entry{name: Height, prop: visual.NodeHeight, codec: inchCodec},
		entry{name: Shape, prop: visual.NodeShapeProp, codec: shapeCodec},
		entry{name: FontName, prop: visual.NodeFontFace, codec: stringCodec},
		entry{name: FontSize, prop: visual.NodeFontSize, codec: fontSizeCodec},
		entry{name: Tooltip, prop: visual.NodeTooltip, codec: stringCodec},
	),
	visual.KindEdge: newTable(visual.KindEdge,
		entry{name: Label, prop: visual.EdgeLabel, codec: stringCodec},
		entry{name: XLabel, prop: visual.EdgeLabel, codec: stringCodec, readOnly: true},
		entry{name: PenWidth, prop: visual.EdgeWidth, codec: doubleCodec},
		entry{name: FontName, prop: visual.EdgeFontFace, codec: stringCodec},
		entry{name: FontSize, prop: visual.EdgeFontSize, codec: fontSizeCodec},
		entry{name: Tooltip, prop: visual.EdgeTooltip, codec: stringCodec},
		entry{name: ArrowHead, prop: visual.EdgeTargetArrowShape, codec: arrowCodec},
		entry{name: ArrowTail, prop: visual.EdgeSourceArrowShape, codec: arrowCodec},
	),
}

// For returns the table of kind. It panics for an unknown kind.
func For(kind visual.Kind) *Table {
	t, ok := tables[kind]
	if !ok {
		panic(fmt.Sprintf("attrs: no table for %s", kind))
	}
	return t
}

// DOT attribute names.
const (
	Label     = string(gographviz.Label)
	XLabel    = string(gographviz.XLabel)
	PenWidth  = string(gographviz.PenWidth)
	Width     = string(gographviz.Width)
	Height    = string(gographviz.Height)
	Shape     = string(gographviz.Shape)
	FontName  = string(gographviz.FontName)
	FontSize  = string(gographviz.FontSize)
	Tooltip   = string(gographviz.Tooltip)
	ArrowHead = string(gographviz.ArrowHead)
	ArrowTail = string(gographviz.ArrowTail)

	// Resolved outside the simple tables.
	Color         = string(gographviz.Color)
	FillColor     = string(gographviz.FillColor)
	FontColor     = string(gographviz.FontColor)
	BgColor       = string(gographviz.BgColor)
	Style         = string(gographviz.Style)
	Pos           = string(gographviz.Pos)
	Weight        = string(gographviz.Weight)
	GradientAngle = string(gographviz.GradientAngle)
	Dir           = string(gographviz.Dir)
	ColorScheme   = string(gographviz.ColorScheme)

	// Written as fixed network settings.
	Splines     = string(gographviz.Splines)
	OutputOrder = string(gographviz.OutputOrder)
	ESep        = string(gographviz.ESep)
	Pad         = string(gographviz.Pad)
)

var consumed = map[visual.Kind]map[string]bool{
	visual.KindNetwork: {BgColor: true, Style: true, GradientAngle: true, ColorScheme: true},
	visual.KindNode: {
		Color: true, FillColor: true, FontColor: true, Style: true,
		Pos: true, GradientAngle: true, ColorScheme: true,
	},
	visual.KindEdge: {
		Color: true, FontColor: true, Style: true,
		Pos: true, Weight: true, Dir: true, ColorScheme: true,
	},
}

// Consumed reports whether name is handled by cross-attribute resolution
// for kind.
func Consumed(kind visual.Kind, name string) bool {
	return consumed[kind][strings.ToLower(name)]
}

// Known reports whether name is mapped for kind, either by the simple table
// or by cross-attribute resolution.
func Known(kind visual.Kind, name string) bool {
	if Consumed(kind, name) {
		return true
	}
	_, ok := For(kind).byName[strings.ToLower(name)]
	return ok
}

// FormatFloat writes f in the shortest form that parses back exactly.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ParseFloat parses a DOT number, rejecting NaN and infinities.
func ParseFloat(raw string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%q is not a number: %w", raw, ErrMalformed)
	}
	return f, nil
}
