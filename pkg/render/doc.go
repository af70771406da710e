// Package render turns DOT text into images using Graphviz.
//
// # Overview
//
// Layout and SVG output come from Graphviz compiled to WebAssembly
// (github.com/goccy/go-graphviz), so no Graphviz installation is needed.
// PNG and PDF are converted from the SVG with the external rsvg-convert
// tool (from librsvg).
//
//	var r render.Renderer
//	svg, err := r.Render(ctx, src, render.Options{Format: render.FormatSVG})
//	png, err := r.Render(ctx, src, render.Options{Format: render.FormatPNG, Scale: 2})
//
// [FormatDOT] returns the source annotated with the computed layout. Reading
// it back with the dot package gives every node a position and every edge
// its bend points.
//
// # Caching
//
// A [Renderer] with a Cache stores artifacts under a key derived from the
// DOT text and the options, so re-rendering an unchanged graph is a cache
// hit. Cache failures never fail a render.
//
// # Errors
//
// Unknown formats and layout engines are INVALID_FORMAT and INVALID_INPUT
// errors; DOT that Graphviz rejects is INVALID_DOT; a missing rsvg-convert
// is UNSUPPORTED.
package render
