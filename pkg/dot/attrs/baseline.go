package attrs

import (
	"image/color"

	"github.com/matzehuels/dotstyle/pkg/visual"
)

var (
	black     = color.NRGBA{A: 255}
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	lightgrey = color.NRGBA{R: 0xD3, G: 0xD3, B: 0xD3, A: 255}
)

// DefaultNodeLabel is Graphviz's default node label, expanded to the node
// name when rendered.
const DefaultNodeLabel = `\N`

var baselines = map[visual.Kind]visual.Values{
	visual.KindNetwork: {
		visual.NetworkBackgroundColor:    white,
		visual.NetworkBackgroundGradient: visual.Gradient{},
		visual.NetworkTitle:              "",
	},
	visual.KindNode: {
		visual.NodeFillColor:          lightgrey,
		visual.NodeFillGradient:       visual.Gradient{},
		visual.NodeTransparency:       255,
		visual.NodeBorderColor:        black,
		visual.NodeBorderTransparency: 255,
		visual.NodeBorderWidth:        1.0,
		visual.NodeBorderLineType:     visual.LineSolid,
		visual.NodeLabel:              DefaultNodeLabel,
		visual.NodeLabelColor:         black,
		visual.NodeLabelTransparency:  255,
		visual.NodeFontFace:           "Times-Roman",
		visual.NodeFontSize:           14,
		visual.NodeShapeProp:          visual.ShapeEllipse,
		visual.NodeWidth:              0.75 * PointsPerInch,
		visual.NodeHeight:             0.5 * PointsPerInch,
		visual.NodeTooltip:            "",
		visual.NodeVisible:            true,
	},
	visual.KindEdge: {
		visual.EdgeStrokeColor:       black,
		visual.EdgeTransparency:      255,
		visual.EdgeWidth:             1.0,
		visual.EdgeLineType:          visual.LineSolid,
		visual.EdgeLabel:             "",
		visual.EdgeLabelColor:        black,
		visual.EdgeLabelTransparency: 255,
		visual.EdgeFontFace:          "Times-Roman",
		visual.EdgeFontSize:          14,
		visual.EdgeTooltip:           "",
		visual.EdgeSourceArrowShape:  visual.ArrowNone,
		visual.EdgeTargetArrowShape:  visual.ArrowDelta,
		visual.EdgeVisible:           true,
	},
}

// Baseline returns a copy of the Graphviz built-in defaults for kind.
func Baseline(kind visual.Kind) visual.Values {
	return baselines[kind].Clone()
}
