// Package color parses and formats Graphviz color values.
//
// # Accepted Forms
//
// [Parse] accepts, in priority order:
//
//   - "#RRGGBB" (opaque)
//   - "#RRGGBBAA"
//   - an H,S,V triple of numbers in [0,1], separated by commas or whitespace
//   - a color name, optionally written "/scheme/name", resolved through a
//     [Lookup] (the x11 scheme is used when no scheme is given)
//
// Anything else yields [Fallback] together with an error wrapping
// [ErrUnparseable], so callers can both recover and report the problem.
//
// # Color Lists
//
// Gradient fills are written as colon separated lists such as
// "red;0.3:blue". [ParseWeightedList] reads at most two entries and infers
// missing weights: with one explicit weight w the other entry receives 1-w,
// with none every entry receives 1/n.
//
// # Output
//
// [Format] always emits the eight digit "#RRGGBBAA" form. [FormatAlpha]
// substitutes an alpha channel tracked separately from the color.
//
// # Named Colors
//
// The svg scheme is backed by [golang.org/x/image/colornames]. The x11
// scheme is derived from it with the names on which X11 and SVG disagree
// (gray, green, maroon, purple) replaced by their X11 values, plus the
// grayN/greyN ramp. Both tables are built once at package initialization
// and never modified, so they are safe for concurrent use.
package color
