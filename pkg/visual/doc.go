// Package visual provides the in-memory visual graph model exchanged with
// DOT files.
//
// # Overview
//
// A [Graph] holds one network, an ordered list of nodes and an ordered list
// of edges. Every element carries typed presentation attributes ("visual
// properties") such as fill color, border line type, label font, size and
// position. Properties are keyed by [Property] values, each of which belongs
// to one [Kind] (network, node or edge) and has a fixed [ValueType].
//
// # Defaults and Overrides
//
// Appearance is stored in two layers:
//
//   - [StyleDefaults]: one value set per [Kind], applied to every element of
//     that kind unless overridden.
//   - Overrides ("bypasses"): per-element values that differ from the
//     defaults of the element's kind.
//
// Use [Graph.NodeValue], [Graph.EdgeValue] and [Graph.NetworkValue] to read
// the effective value of a property (override if present, default
// otherwise).
//
// # Invariants
//
// Node IDs are unique within a graph and every edge references two nodes of
// the same graph. [Graph.AddEdge] enforces the second rule at insertion time
// and [Graph.Validate] re-checks it for graphs assembled by hand.
//
// # Concurrency
//
// A Graph is owned by the import or export operation that created it and is
// not safe for concurrent mutation. The property registry and enum tables
// are read-only after package initialization.
package visual
