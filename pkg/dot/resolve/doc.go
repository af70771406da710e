// Package resolve turns raw DOT attribute lists into visual style defaults
// and per-element overrides.
//
// # Resolution Order
//
// For each element kind the [Resolver] first computes the style defaults
// with [Resolver.Defaults]: the Graphviz baseline from the attrs package,
// overlaid with the graph attributes (network), the node [...] statement
// (nodes) or the edge [...] statement (edges). Defaults must be complete
// before [Resolver.Element] runs for the same kind, because element
// resolution compares against them.
//
// An element is resolved from its effective attribute list: the defaults
// in effect where it was declared, overlaid with its own attributes. The
// result is compared to the style defaults and only differing values are
// kept as overrides. Unchanged gradients, styles and colors therefore never
// produce overrides.
//
// # Colors
//
// [Resolver.ResolveColors] applies the Graphviz fill rule once per list:
//
//   - fillcolor (bgcolor for the network) is the fill when present
//     ([FillExplicit])
//   - color sets the border or stroke, and also the fill when no explicit
//     fill was given ([FillBorderFallback])
//   - fontcolor is independent
//
// A color list on a fill attribute becomes a gradient built with the style
// "radial" token and gradientangle; on a border it contributes its first
// color. Colors are stored opaque with their alpha moved to the matching
// transparency property, except the network background which keeps it.
//
// # Per-element Attributes
//
// pos (node position or edge bend points, Y negated) and weight have no
// style defaults and are read from the element's own list only. dir is
// taken from the effective list and returned raw for the caller to combine
// with the graph type.
//
// # Problems
//
// Malformed values never abort resolution. The attribute is skipped and an
// [Issue] describing it is returned with the result.
//
// Resolver methods do not mutate shared state and may be called from
// several goroutines at once.
package resolve
