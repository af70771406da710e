package visual

// Kind identifies the element family a property or default set applies to.
type Kind int

const (
	// KindNetwork is the graph itself (background, title).
	KindNetwork Kind = iota
	// KindNode is a graph vertex.
	KindNode
	// KindEdge is a connection between two nodes.
	KindEdge
)

// Kinds lists every element kind in processing order.
var Kinds = []Kind{KindNetwork, KindNode, KindEdge}

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindNode:
		return "node"
	case KindEdge:
		return "edge"
	default:
		return "unknown"
	}
}
