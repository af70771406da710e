package visual

import (
	"fmt"
	"image/color"
)

// ValueType is the Go representation a property's values must have.
type ValueType int

const (
	TypeColor      ValueType = iota // color.NRGBA
	TypeGradient                    // Gradient
	TypeString                      // string
	TypeDouble                      // float64
	TypeInt                         // int
	TypeBool                        // bool
	TypeLineType                    // LineType
	TypeNodeShape                   // NodeShape
	TypeArrowShape                  // ArrowShape
	TypePoints                      // []Point
)

// Accepts reports whether v has the Go type required by t.
func (t ValueType) Accepts(v any) bool {
	switch t {
	case TypeColor:
		_, ok := v.(color.NRGBA)
		return ok
	case TypeGradient:
		_, ok := v.(Gradient)
		return ok
	case TypeString:
		_, ok := v.(string)
		return ok
	case TypeDouble:
		_, ok := v.(float64)
		return ok
	case TypeInt:
		_, ok := v.(int)
		return ok
	case TypeBool:
		_, ok := v.(bool)
		return ok
	case TypeLineType:
		_, ok := v.(LineType)
		return ok
	case TypeNodeShape:
		_, ok := v.(NodeShape)
		return ok
	case TypeArrowShape:
		_, ok := v.(ArrowShape)
		return ok
	case TypePoints:
		_, ok := v.([]Point)
		return ok
	}
	return false
}

// Property is a typed visual property key. Properties are comparable and can
// be used as map keys.
type Property struct {
	ID   string
	Kind Kind
	Type ValueType
}

func (p Property) String() string { return p.ID }

// Network properties.
var (
	NetworkBackgroundColor    = register("NETWORK_BACKGROUND_PAINT", KindNetwork, TypeColor)
	NetworkBackgroundGradient = register("NETWORK_BACKGROUND_GRADIENT", KindNetwork, TypeGradient)
	NetworkTitle              = register("NETWORK_TITLE", KindNetwork, TypeString)
)

// Node properties.
var (
	NodeFillColor          = register("NODE_FILL_COLOR", KindNode, TypeColor)
	NodeFillGradient       = register("NODE_FILL_GRADIENT", KindNode, TypeGradient)
	NodeTransparency       = register("NODE_TRANSPARENCY", KindNode, TypeInt)
	NodeBorderColor        = register("NODE_BORDER_PAINT", KindNode, TypeColor)
	NodeBorderTransparency = register("NODE_BORDER_TRANSPARENCY", KindNode, TypeInt)
	NodeBorderWidth        = register("NODE_BORDER_WIDTH", KindNode, TypeDouble)
	NodeBorderLineType     = register("NODE_BORDER_LINE_TYPE", KindNode, TypeLineType)
	NodeLabel              = register("NODE_LABEL", KindNode, TypeString)
	NodeLabelColor         = register("NODE_LABEL_COLOR", KindNode, TypeColor)
	NodeLabelTransparency  = register("NODE_LABEL_TRANSPARENCY", KindNode, TypeInt)
	NodeFontFace           = register("NODE_LABEL_FONT_FACE", KindNode, TypeString)
	NodeFontSize           = register("NODE_LABEL_FONT_SIZE", KindNode, TypeInt)
	NodeShapeProp          = register("NODE_SHAPE", KindNode, TypeNodeShape)
	NodeWidth              = register("NODE_WIDTH", KindNode, TypeDouble)
	NodeHeight             = register("NODE_HEIGHT", KindNode, TypeDouble)
	NodeTooltip            = register("NODE_TOOLTIP", KindNode, TypeString)
	NodeXLocation          = register("NODE_X_LOCATION", KindNode, TypeDouble)
	NodeYLocation          = register("NODE_Y_LOCATION", KindNode, TypeDouble)
	NodeVisible            = register("NODE_VISIBLE", KindNode, TypeBool)
)

// Edge properties.
var (
	EdgeStrokeColor       = register("EDGE_STROKE_UNSELECTED_PAINT", KindEdge, TypeColor)
	EdgeTransparency      = register("EDGE_TRANSPARENCY", KindEdge, TypeInt)
	EdgeWidth             = register("EDGE_WIDTH", KindEdge, TypeDouble)
	EdgeLineType          = register("EDGE_LINE_TYPE", KindEdge, TypeLineType)
	EdgeLabel             = register("EDGE_LABEL", KindEdge, TypeString)
	EdgeLabelColor        = register("EDGE_LABEL_COLOR", KindEdge, TypeColor)
	EdgeLabelTransparency = register("EDGE_LABEL_TRANSPARENCY", KindEdge, TypeInt)
	EdgeFontFace          = register("EDGE_LABEL_FONT_FACE", KindEdge, TypeString)
	EdgeFontSize          = register("EDGE_LABEL_FONT_SIZE", KindEdge, TypeInt)
	EdgeTooltip           = register("EDGE_TOOLTIP", KindEdge, TypeString)
	EdgeSourceArrowShape  = register("EDGE_SOURCE_ARROW_SHAPE", KindEdge, TypeArrowShape)
	EdgeTargetArrowShape  = register("EDGE_TARGET_ARROW_SHAPE", KindEdge, TypeArrowShape)
	EdgeVisible           = register("EDGE_VISIBLE", KindEdge, TypeBool)
	EdgeBend              = register("EDGE_BEND", KindEdge, TypePoints)
)

var (
	registry = map[string]Property{}
	byKind   = map[Kind][]Property{}
)

func register(id string, kind Kind, typ ValueType) Property {
	if _, dup := registry[id]; dup {
		panic(fmt.Sprintf("visual: duplicate property %s", id))
	}
	p := Property{ID: id, Kind: kind, Type: typ}
	registry[id] = p
	byKind[kind] = append(byKind[kind], p)
	return p
}

// Lookup returns the property registered under id.
func Lookup(id string) (Property, bool) {
	p, ok := registry[id]
	return p, ok
}

// Properties returns the properties of kind in declaration order. The
// returned slice must not be modified.
func Properties(kind Kind) []Property {
	return byKind[kind]
}
