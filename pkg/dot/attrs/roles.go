package attrs

import "github.com/matzehuels/dotstyle/pkg/visual"

// Roles names the visual properties that the cross-attribute rules (color,
// style, label location) write for one element kind. A zero Property means
// the kind has no such role.
type Roles struct {
	Label        visual.Property
	LineType     visual.Property
	Visible      visual.Property
	Shape        visual.Property
	Fill         visual.Property
	FillGradient visual.Property
	FillAlpha    visual.Property
	Border       visual.Property
	BorderAlpha  visual.Property
	Font         visual.Property
	FontAlpha    visual.Property
}

var roles = map[visual.Kind]Roles{
	visual.KindNetwork: {
		Label:        visual.NetworkTitle,
		Fill:         visual.NetworkBackgroundColor,
		FillGradient: visual.NetworkBackgroundGradient,
	},
	visual.KindNode: {
		Label:        visual.NodeLabel,
		LineType:     visual.NodeBorderLineType,
		Visible:      visual.NodeVisible,
		Shape:        visual.NodeShapeProp,
		Fill:         visual.NodeFillColor,
		FillGradient: visual.NodeFillGradient,
		FillAlpha:    visual.NodeTransparency,
		Border:       visual.NodeBorderColor,
		BorderAlpha:  visual.NodeBorderTransparency,
		Font:         visual.NodeLabelColor,
		FontAlpha:    visual.NodeLabelTransparency,
	},
	visual.KindEdge: {
		Label:       visual.EdgeLabel,
		LineType:    visual.EdgeLineType,
		Visible:     visual.EdgeVisible,
		Border:      visual.EdgeStrokeColor,
		BorderAlpha: visual.EdgeTransparency,
		Font:        visual.EdgeLabelColor,
		FontAlpha:   visual.EdgeLabelTransparency,
	},
}

// RolesFor returns the role properties of kind.
func RolesFor(kind visual.Kind) Roles {
	return roles[kind]
}

// Has reports whether p is set, i.e. the role exists for the kind.
func Has(p visual.Property) bool {
	return p.ID != ""
}
