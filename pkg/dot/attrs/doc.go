// Package attrs holds the static tables mapping simple DOT attributes to
// visual properties, one [Table] per element kind.
//
// # Scope
//
// A table covers attributes whose value can be converted on its own:
// labels, pen widths, sizes, shapes, fonts, tooltips and arrow shapes.
// Attributes with cross-attribute rules (color, fillcolor, fontcolor,
// bgcolor, style, pos, weight, gradientangle, dir, colorscheme) are handled
// by the resolve package and are listed by [Consumed] so callers can tell
// them apart from attributes nobody understands.
//
// # Conversions
//
//   - width, height: inches in DOT, points in the visual model
//     ([PointsPerInch] = 72)
//   - fontsize: rounded to an integer
//   - shape, arrowhead, arrowtail: closed enum tables
//
// Unknown attribute names are not errors: [Table.ToVisualProperty] reports
// them with ok == false. Values that cannot be converted return an error
// wrapping [ErrMalformed].
//
// # Baseline
//
// [Baseline] returns the Graphviz built-in defaults expressed as visual
// values. Style defaults read from a file are layered on top of it, and the
// writer compares against it to decide which default statements to emit.
//
// Tables are built at package initialization and never modified.
package attrs
