package visual

import (
	"image/color"
	"math"
	"slices"
)

// LineType is the dash pattern of a border or edge line.
type LineType string

const (
	LineSolid     LineType = "SOLID"
	LineDot       LineType = "DOT"
	LineEqualDash LineType = "EQUAL_DASH"
)

// NodeShape is the outline of a node.
type NodeShape string

const (
	ShapeRectangle      NodeShape = "RECTANGLE"
	ShapeRoundRectangle NodeShape = "ROUND_RECTANGLE"
	ShapeTriangle       NodeShape = "TRIANGLE"
	ShapeDiamond        NodeShape = "DIAMOND"
	ShapeEllipse        NodeShape = "ELLIPSE"
	ShapeHexagon        NodeShape = "HEXAGON"
	ShapeOctagon        NodeShape = "OCTAGON"
	ShapeParallelogram  NodeShape = "PARALLELOGRAM"
)

// ArrowShape is the marker drawn at an edge end.
type ArrowShape string

const (
	ArrowArrow      ArrowShape = "ARROW"
	ArrowCircle     ArrowShape = "CIRCLE"
	ArrowDelta      ArrowShape = "DELTA"
	ArrowDiamond    ArrowShape = "DIAMOND"
	ArrowHalfBottom ArrowShape = "HALF_BOTTOM"
	ArrowHalfTop    ArrowShape = "HALF_TOP"
	ArrowNone       ArrowShape = "NONE"
	ArrowT          ArrowShape = "T"
)

// LineTypes, NodeShapes and ArrowShapes enumerate the closed value sets.
var (
	LineTypes   = []LineType{LineSolid, LineDot, LineEqualDash}
	NodeShapes  = []NodeShape{ShapeRectangle, ShapeRoundRectangle, ShapeTriangle, ShapeDiamond, ShapeEllipse, ShapeHexagon, ShapeOctagon, ShapeParallelogram}
	ArrowShapes = []ArrowShape{ArrowArrow, ArrowCircle, ArrowDelta, ArrowDiamond, ArrowHalfBottom, ArrowHalfTop, ArrowNone, ArrowT}
)

// Point is a position in the visual coordinate system, where Y grows
// downward.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GradientKind tags a [Gradient] as linear or radial.
type GradientKind int

const (
	LinearGradient GradientKind = iota
	RadialGradient
)

func (k GradientKind) String() string {
	if k == RadialGradient {
		return "radial"
	}
	return "linear"
}

// Stop is one color of a gradient together with the fraction of the fill it
// occupies.
type Stop struct {
	Color  color.NRGBA
	Weight float64
}

// Gradient is a two-stop color transition derived from a weighted DOT color
// list. Linear gradients carry Angle in degrees; radial gradients carry the
// Center of the transition in unit coordinates.
//
// A gradient without stops stands for a flat fill. It lets an element
// override a gradient default with a plain color.
type Gradient struct {
	Kind   GradientKind
	Stops  []Stop
	Angle  float64
	Center Point
}

// Flat reports whether g has no stops.
func (g Gradient) Flat() bool { return len(g.Stops) == 0 }

// floatTolerance absorbs the rounding introduced by unit conversions such as
// inches to points.
const floatTolerance = 1e-9

// Equal reports whether two property values are equal. Floating point values
// are compared with a small tolerance; gradients and point lists are
// compared element-wise.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && floatEqual(av, bv)
	case Gradient:
		bv, ok := b.(Gradient)
		return ok && gradientEqual(av, bv)
	case []Point:
		bv, ok := b.([]Point)
		return ok && slices.EqualFunc(av, bv, pointEqual)
	default:
		return a == b
	}
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) <= floatTolerance*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func pointEqual(a, b Point) bool {
	return floatEqual(a.X, b.X) && floatEqual(a.Y, b.Y)
}

func gradientEqual(a, b Gradient) bool {
	if a.Kind != b.Kind || !floatEqual(a.Angle, b.Angle) || !pointEqual(a.Center, b.Center) {
		return false
	}
	return slices.EqualFunc(a.Stops, b.Stops, func(x, y Stop) bool {
		return x.Color == y.Color && floatEqual(x.Weight, y.Weight)
	})
}
